// README: Terminal demo; runs the itinerary or eco generator against the configured provider and prints JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"ecoroute/internal/ai"
	"ecoroute/internal/config"
	"ecoroute/internal/infra"
	"ecoroute/internal/modules/eco"
	"ecoroute/internal/modules/itinerary"
)

func main() {
	_ = godotenv.Load()

	mode := flag.String("mode", "itinerary", "itinerary or eco")
	region := flag.String("region", "Seoul", "region for itinerary mode")
	category := flag.String("category", "café", "category for eco mode")
	timeout := flag.Duration("timeout", 0, "generation timeout (default ECO_UPSTREAM_TIMEOUT)")
	flag.Parse()

	cfg, err := config.LoadGeneration()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *timeout > 0 {
		cfg.UpstreamTimeout = *timeout
	}

	logger := infra.NewLogger(os.Stderr, cfg.Development())
	ctx := context.Background()

	gen, closeFn, err := ai.NewFromConfig(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer func() { _ = closeFn() }()
	guarded := ai.WithGuard(gen, cfg.AI.Provider, cfg.UpstreamTimeout, nil)

	var out any
	switch *mode {
	case "itinerary":
		fmt.Printf("Region: %s\n", *region)
		out, err = itinerary.NewService(guarded, itinerary.Options{Logger: logger}).Generate(ctx, *region)
	case "eco":
		fmt.Printf("Category: %s\n", *category)
		out, err = eco.NewService(guarded, eco.Options{Logger: logger}).Recommend(ctx, *category)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}

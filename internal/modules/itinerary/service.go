// README: Region itinerary generator; asks the text generator for three themed courses in a region.
package itinerary

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"ecoroute/internal/ai"
	"ecoroute/internal/prompts"
	"ecoroute/internal/types"
)

type Options struct {
	// Extract overrides the JSON extraction heuristic. Defaults to ai.ExtractJSON.
	Extract ai.ExtractFunc
	Logger  *slog.Logger
}

type Service struct {
	ai      ai.Provider
	extract ai.ExtractFunc
	logger  *slog.Logger
}

func NewService(provider ai.Provider, opts Options) *Service {
	extract := opts.Extract
	if extract == nil {
		extract = ai.ExtractJSON
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		ai:      provider,
		extract: extract,
		logger:  logger.With(slog.String("component", "itinerary")),
	}
}

// Generate returns the itineraries for region. Every failure, including
// extraction and decode errors, surfaces as *types.UpstreamGenerationError.
func (s *Service) Generate(ctx context.Context, region string) (*Plan, error) {
	region = strings.TrimSpace(region)

	prompt, err := prompts.Render(prompts.RegionItineraries, prompts.RegionData{Region: region})
	if err != nil {
		return nil, &types.UpstreamGenerationError{Detail: "render prompt", Err: err}
	}

	text, err := s.ai.Generate(ctx, prompt)
	if err != nil {
		return nil, &types.UpstreamGenerationError{Detail: "generate itineraries", Err: err}
	}

	raw, err := s.extract(text, false)
	if err != nil {
		s.logger.WarnContext(ctx, "itinerary output had no usable json",
			slog.String("region", region), slog.Any("error", err))
		return nil, &types.UpstreamGenerationError{Detail: "extract itineraries", Err: err}
	}

	var plan Plan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, &types.UpstreamGenerationError{Detail: "decode itineraries", Err: err}
	}
	if plan.RecommendedRoutes == nil {
		plan.RecommendedRoutes = []Itinerary{}
	}
	return &plan, nil
}

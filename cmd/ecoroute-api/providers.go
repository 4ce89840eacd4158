// README: fx providers for config, logging, metrics, collaborators, flow services and the HTTP server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"ecoroute/internal/ai"
	"ecoroute/internal/config"
	httptransport "ecoroute/internal/http"
	"ecoroute/internal/infra"
	"ecoroute/internal/maps"
	"ecoroute/internal/metrics"
	"ecoroute/internal/modules/eco"
	"ecoroute/internal/modules/itinerary"
	"ecoroute/internal/modules/route"
)

var Module = fx.Options(
	fx.Provide(
		config.Load,
		provideLogger,
		provideRegistry,
		provideMetrics,
		provideTextGenerator,
		providePlaces,
		provideDirections,
		provideRouteService,
		provideItineraryService,
		provideEcoService,
		provideRouter,
		provideServer,
	),
)

func newFxLogger(logger *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: logger}
}

func provideLogger(cfg config.Config) *slog.Logger {
	logger := infra.NewLogger(os.Stdout, cfg.Development())
	slog.SetDefault(logger)
	return logger
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.New(reg)
}

// provideTextGenerator selects the generation backend and wraps it with the timeout guard.
func provideTextGenerator(lc fx.Lifecycle, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) (ai.Provider, error) {
	p, closeFn, err := ai.NewFromConfig(context.Background(), cfg.AI)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return closeFn() },
	})
	logger.Info("text generator ready", slog.String("provider", cfg.AI.Provider))
	return ai.WithGuard(p, cfg.AI.Provider, cfg.UpstreamTimeout, m), nil
}

func providePlaces(cfg config.Config, m *metrics.Metrics) (*maps.PlacesService, error) {
	return maps.NewPlacesService(cfg.Places.APIKey, maps.Options{
		Language: cfg.Places.Language,
		Timeout:  cfg.UpstreamTimeout,
		Metrics:  m,
	})
}

func provideDirections(cfg config.Config, m *metrics.Metrics) (*maps.RouteService, error) {
	return maps.NewRouteService(cfg.Places.APIKey, maps.Options{
		Language: cfg.Places.Language,
		Timeout:  cfg.UpstreamTimeout,
		Metrics:  m,
	})
}

func provideRouteService(places *maps.PlacesService, directions *maps.RouteService, gen ai.Provider, cfg config.Config, logger *slog.Logger) *route.Service {
	opts := route.Options{
		ParallelLookups: cfg.ParallelLookups,
		Logger:          logger,
	}
	if cfg.TransitEstimates {
		opts.Legs = directions
	}
	return route.NewService(places, gen, opts)
}

func provideItineraryService(gen ai.Provider, logger *slog.Logger) *itinerary.Service {
	return itinerary.NewService(gen, itinerary.Options{Logger: logger})
}

func provideEcoService(gen ai.Provider, logger *slog.Logger) *eco.Service {
	return eco.NewService(gen, eco.Options{Logger: logger})
}

func provideRouter(
	cfg config.Config,
	routes *route.Service,
	itineraries *itinerary.Service,
	recommender *eco.Service,
	m *metrics.Metrics,
	reg *prometheus.Registry,
	logger *slog.Logger,
) *gin.Engine {
	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	return httptransport.NewRouter(httptransport.RouterDeps{
		Routes:      routes,
		Itineraries: itineraries,
		Eco:         recommender,
		Logger:      logger,
		Metrics:     m,
		Gatherer:    reg,
	})
}

func provideServer(cfg config.Config, engine *gin.Engine, logger *slog.Logger) *httptransport.Server {
	return httptransport.NewServer(httptransport.ServerConfig{
		Addr:        cfg.HTTP.Addr,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	}, engine, logger)
}

func registerServer(lc fx.Lifecycle, srv *httptransport.Server, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return srv.Start()
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping http server")
			return srv.Shutdown(ctx)
		},
	})
}

// README: HTTP router registration.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ecoroute/internal/http/handlers"
	"ecoroute/internal/http/middleware"
	"ecoroute/internal/metrics"
)

type RouterDeps struct {
	Routes      handlers.RouteComposer
	Itineraries handlers.ItineraryGenerator
	Eco         handlers.EcoRecommender
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

func NewRouter(deps RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(logger, deps.Metrics),
		middleware.Recovery(logger),
	)

	routeHandler := handlers.NewRouteHandler(deps.Routes)
	r.POST("/eco_routes_dynamic", routeHandler.Compose)

	itineraryHandler := handlers.NewItineraryHandler(deps.Itineraries)
	r.GET("/gemini_routes", itineraryHandler.Generate)

	ecoHandler := handlers.NewEcoHandler(deps.Eco)
	r.GET("/get_gemini_recommend", ecoHandler.Recommend)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	return r
}

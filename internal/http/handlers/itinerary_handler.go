// README: Region itinerary handler (GET /gemini_routes).
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ecoroute/internal/modules/itinerary"
)

type ItineraryGenerator interface {
	Generate(ctx context.Context, region string) (*itinerary.Plan, error)
}

type ItineraryHandler struct {
	itineraries ItineraryGenerator
}

func NewItineraryHandler(itineraries ItineraryGenerator) *ItineraryHandler {
	return &ItineraryHandler{itineraries: itineraries}
}

// Generate handles GET /gemini_routes?region=.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	region := strings.TrimSpace(c.Query("region"))
	if region == "" {
		writeError(c, http.StatusBadRequest, "missing region")
		return
	}

	plan, err := h.itineraries.Generate(c.Request.Context(), region)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, plan)
}

// README: Eco recommendation handler (GET /get_gemini_recommend).
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecoroute/internal/modules/eco"
)

type EcoRecommender interface {
	Recommend(ctx context.Context, category string) (*eco.RecommendationSet, error)
}

type EcoHandler struct {
	eco EcoRecommender
}

func NewEcoHandler(recommender EcoRecommender) *EcoHandler {
	return &EcoHandler{eco: recommender}
}

type ecoResp struct {
	Responses *eco.RecommendationSet `json:"responses"`
}

// Recommend handles GET /get_gemini_recommend?user_category_answer=.
// Category validation happens in the service so the 400 carries the allowed set.
func (h *EcoHandler) Recommend(c *gin.Context) {
	set, err := h.eco.Recommend(c.Request.Context(), c.Query("user_category_answer"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, ecoResp{Responses: set})
}

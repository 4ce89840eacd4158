// README: Ordered-route handler (POST /eco_routes_dynamic).
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecoroute/internal/modules/route"
)

type RouteComposer interface {
	Compose(ctx context.Context, cmd route.ComposeCommand) (*route.Route, error)
}

type RouteHandler struct {
	routes RouteComposer
}

func NewRouteHandler(routes RouteComposer) *RouteHandler {
	return &RouteHandler{routes: routes}
}

type routeReq struct {
	Categories []string `json:"selected_category_from_ui" binding:"required"`
	PlaceNames []string `json:"place_names" binding:"required"`
}

// Compose handles POST /eco_routes_dynamic.
func (h *RouteHandler) Compose(c *gin.Context) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorDetail(c, http.StatusBadRequest, "invalid json", err.Error())
		return
	}

	rt, err := h.routes.Compose(c.Request.Context(), route.ComposeCommand{
		Categories: req.Categories,
		Names:      req.PlaceNames,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, rt)
}

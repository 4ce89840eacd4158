// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecoroute/internal/types"
)

type errorResponse struct {
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeErrorDetail(c *gin.Context, status int, msg string, detail any) {
	writeJSON(c, status, errorResponse{Error: msg, Detail: detail})
}

// writeServiceError maps the flow error taxonomy onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	_ = c.Error(err)

	var (
		mismatch  *types.LengthMismatchError
		invalid   *types.InvalidCategoryError
		notFound  *types.PlaceNotFoundError
		timeout   *types.UpstreamTimeoutError
		malformed *types.MalformedGenerationError
		upstream  *types.UpstreamGenerationError
	)
	switch {
	case errors.As(err, &mismatch):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &invalid):
		writeErrorDetail(c, http.StatusBadRequest, err.Error(), invalid.Allowed)
	case errors.As(err, &notFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &timeout):
		writeErrorDetail(c, http.StatusInternalServerError, "upstream timeout", err.Error())
	case errors.As(err, &malformed):
		writeErrorDetail(c, http.StatusInternalServerError, "malformed generation output", err.Error())
	case errors.As(err, &upstream):
		writeErrorDetail(c, http.StatusInternalServerError, "generation failed", err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartpark-edge/internal/models"
)

// ErrorResponse is the failure body for every JSON endpoint.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// respondError translates a component failure into its HTTP class. Nothing
// reaches the transport untranslated: camera failures map to 502, anything
// else to 500 with the original message preserved.
func respondError(c *gin.Context, err error) {
	var upstream *models.UpstreamError
	if errors.As(err, &upstream) {
		c.JSON(http.StatusBadGateway, ErrorResponse{Detail: upstream.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"smartpark-edge/internal/logging"
	"smartpark-edge/internal/services/store"
)

type HistoryHandler struct {
	store        store.Store
	defaultLimit int
}

func NewHistoryHandler(st store.Store, defaultLimit int) *HistoryHandler {
	return &HistoryHandler{store: st, defaultLimit: defaultLimit}
}

// GetDetections returns recent tracking results.
// @Summary Detection history
// @Description Get recent tracking results from Firebase
// @Tags history
// @Produce json
// @Param limit query int false "Maximum records" default(50)
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /api/firebase/detections [get]
func (h *HistoryHandler) GetDetections(c *gin.Context) {
	detections, err := h.store.GetDetections(c.Request.Context(), h.limit(c))
	if err != nil {
		logging.Error(c).Err(err).Msg("Failed to read detection history")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "detections": detections})
}

// GetPlateHistory returns recent plate detections.
// @Summary Plate history
// @Description Get recent plate detections from Firebase
// @Tags history
// @Produce json
// @Param limit query int false "Maximum records" default(50)
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /api/firebase/plates [get]
func (h *HistoryHandler) GetPlateHistory(c *gin.Context) {
	plates, err := h.store.GetPlateHistory(c.Request.Context(), h.limit(c))
	if err != nil {
		logging.Error(c).Err(err).Msg("Failed to read plate history")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "plates": plates})
}

func (h *HistoryHandler) limit(c *gin.Context) int {
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			return limit
		}
	}
	return h.defaultLimit
}

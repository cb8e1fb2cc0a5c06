package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Readiness exposes the lifecycle manager's singleton state to the health
// endpoint.
type Readiness interface {
	ModelsLoaded() bool
	FirebaseConnected() bool
}

type HealthHandler struct {
	EdgeID    string
	Version   string
	readiness Readiness
}

func NewHealthHandler(edgeID, version string, readiness Readiness) *HealthHandler {
	return &HealthHandler{EdgeID: edgeID, Version: version, readiness: readiness}
}

type HealthResponse struct {
	Status            string `json:"status" example:"ok"`
	Service           string `json:"service" example:"smartpark-edge"`
	ModelsLoaded      bool   `json:"models_loaded"`
	FirebaseConnected bool   `json:"firebase_connected"`
}

type ServiceInfoResponse struct {
	EdgeID       string   `json:"edge_id" example:"edge-1"`
	Status       string   `json:"status" example:"running"`
	Version      string   `json:"version" example:"2.0.0"`
	Capabilities []string `json:"capabilities"`
}

// @Summary Health check
// @Description Check service health and singleton readiness state
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:            "ok",
		Service:           "smartpark-edge",
		ModelsLoaded:      h.readiness.ModelsLoaded(),
		FirebaseConnected: h.readiness.FirebaseConnected(),
	})
}

// @Summary Service information
// @Description Get basic service information and capabilities
// @Tags health
// @Produce json
// @Success 200 {object} ServiceInfoResponse
// @Router / [get]
func (h *HealthHandler) ServiceInfo(c *gin.Context) {
	c.JSON(http.StatusOK, ServiceInfoResponse{
		EdgeID:  h.EdgeID,
		Status:  "running",
		Version: h.Version,
		Capabilities: []string{
			"stream_relay",
			"plate_detection",
			"object_tracking",
			"firebase_history",
		},
	})
}

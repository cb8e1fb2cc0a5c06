package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartpark-edge/internal/logging"
	"smartpark-edge/internal/models"
	"smartpark-edge/internal/services/detection"
)

type DetectHandler struct {
	svc *detection.Service
}

func NewDetectHandler(svc *detection.Service) *DetectHandler {
	return &DetectHandler{svc: svc}
}

type plateDetectResponse struct {
	Success bool `json:"success"`
	models.DetectionResult
}

// DetectPlate runs license plate detection on a submitted image.
// @Summary Detect license plates
// @Description Run plate detection on a base64 data-URL image
// @Tags detection
// @Accept json
// @Produce json
// @Param request body models.PlateDetectRequest true "Image payload"
// @Success 200 {object} plateDetectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/plate-detect [post]
func (h *DetectHandler) DetectPlate(c *gin.Context) {
	var req models.PlateDetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid request body: " + err.Error()})
		return
	}

	// Validated here so no collaborator is ever invoked for an empty payload.
	if req.ImageData == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "imageData is required"})
		return
	}

	logging.Info(c).Msg("Received plate detection request")

	result, err := h.svc.Detect(c.Request.Context(), req.ImageData)
	if err != nil {
		logging.Error(c).Err(err).Msg("Plate detection error")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plateDetectResponse{Success: true, DetectionResult: *result})
}

// TrackObjects runs object tracking on a submitted video.
// @Summary Track objects
// @Description Run object tracking on a base64 data-URL video with optional tunables
// @Tags detection
// @Accept json
// @Produce json
// @Param request body models.ObjectTrackingRequest true "Video payload and tunables"
// @Success 200 {object} models.TrackingResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/object-tracking [post]
func (h *DetectHandler) TrackObjects(c *gin.Context) {
	var req models.ObjectTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid request body: " + err.Error()})
		return
	}

	if req.VideoData == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "videoData is required"})
		return
	}

	logging.Info(c).Msg("Received tracking request")

	result, err := h.svc.Track(c.Request.Context(), req.VideoData, req.Params())
	if err != nil {
		logging.Error(c).Err(err).Msg("Tracking error")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

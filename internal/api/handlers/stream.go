package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartpark-edge/internal/logging"
	"smartpark-edge/internal/models"
	"smartpark-edge/internal/services/relay"
)

type StreamHandler struct {
	relay   *relay.Service
	bufSize int
}

func NewStreamHandler(relaySvc *relay.Service, bufSize int) *StreamHandler {
	return &StreamHandler{relay: relaySvc, bufSize: bufSize}
}

// Stream relays the camera's live MJPEG feed to one viewer.
// @Summary Live camera stream
// @Description Relay the camera's multipart MJPEG feed to the client
// @Tags stream
// @Produce mpfd
// @Success 200 {string} string "multipart/x-mixed-replace stream"
// @Failure 502 {object} ErrorResponse
// @Router /stream [get]
func (h *StreamHandler) Stream(c *gin.Context) {
	sess, err := h.relay.OpenStream(c.Request.Context())
	if err != nil {
		// No byte has been written yet; a structured error is still possible.
		respondError(c, err)
		return
	}
	defer sess.Close()

	// The boundary is a contract with the camera firmware; forward its
	// content type verbatim.
	c.Header("Content-Type", sess.ContentType)
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "streaming unsupported"})
		return
	}

	// One bounded buffer per session regardless of stream duration. Once
	// bytes are flowing a failure on either side just ends the session;
	// headers are long gone, so there is nothing structured left to send.
	buf := make([]byte, h.bufSize)
	for {
		n, err := sess.Read(buf)
		if n > 0 {
			if _, werr := c.Writer.Write(buf[:n]); werr != nil {
				logging.Debug(c).Err(werr).Msg("Viewer disconnected mid-stream")
				return
			}
			flusher.Flush()
		}
		if err != nil {
			logging.Debug(c).Err(err).Msg("Relay session ended")
			return
		}
	}
}

// Snapshot captures one still frame from the camera.
// @Summary Camera snapshot
// @Description Fetch one still frame and return it as a base64 data URL
// @Tags stream
// @Produce json
// @Success 200 {object} models.SnapshotResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/esp32/snapshot [get]
func (h *StreamHandler) Snapshot(c *gin.Context) {
	imageData, err := h.relay.Snapshot(c.Request.Context())
	if err != nil {
		logging.Error(c).Err(err).Msg("Snapshot failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SnapshotResponse{
		Success:   true,
		ImageData: imageData,
	})
}

// TestCamera reports camera connectivity without touching the relay.
// @Summary Test camera connection
// @Description Probe the camera's live endpoint and report a verdict
// @Tags stream
// @Produce json
// @Success 200 {object} models.ProbeVerdict
// @Router /test/esp32 [get]
func (h *StreamHandler) TestCamera(c *gin.Context) {
	c.JSON(http.StatusOK, h.relay.Probe(c.Request.Context()))
}

package api

import (
	"net/http"

	_ "smartpark-edge/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (s *Server) setupSwagger() {
	s.router.GET("/api/info", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"title":       "SmartPark Edge API",
			"version":     s.config.Version,
			"description": "Edge relay for ESP32-CAM streaming, plate detection and object tracking",
			"swagger_ui":  "/docs/index.html",
			"endpoints": gin.H{
				"health":          "/health",
				"stream":          "/stream",
				"plate_detect":    "/api/plate-detect",
				"object_tracking": "/api/object-tracking",
				"snapshot":        "/api/esp32/snapshot",
				"detections":      "/api/firebase/detections",
				"plates":          "/api/firebase/plates",
				"camera_test":     "/test/esp32",
			},
			"edge_id": s.config.EdgeID,
			"port":    s.config.Port,
		})
	})

	s.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.router.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
}

var SwaggerInfo = struct {
	Version     string
	Host        string
	BasePath    string
	Schemes     []string
	Title       string
	Description string
}{
	Version:     "2.0.0",
	Host:        "localhost:8000",
	BasePath:    "/",
	Schemes:     []string{"http"},
	Title:       "SmartPark Edge API",
	Description: "An edge relay that proxies ESP32-CAM video, orchestrates plate detection and object tracking, and persists results to Firebase",
}

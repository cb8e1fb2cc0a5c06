package api

func (s *Server) setupRoutes() {
	s.router.GET("/", s.healthHandler.ServiceInfo)
	s.router.GET("/health", s.healthHandler.HealthCheck)

	s.router.GET("/stream", s.streamHandler.Stream)

	api := s.router.Group("/api")
	{
		api.POST("/plate-detect", s.detectHandler.DetectPlate)
		api.POST("/object-tracking", s.detectHandler.TrackObjects)
		api.GET("/esp32/snapshot", s.streamHandler.Snapshot)

		firebase := api.Group("/firebase")
		{
			firebase.GET("/detections", s.historyHandler.GetDetections)
			firebase.GET("/plates", s.historyHandler.GetPlateHistory)
		}
	}

	s.router.GET("/test/esp32", s.streamHandler.TestCamera)
}

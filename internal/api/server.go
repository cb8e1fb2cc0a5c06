package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"smartpark-edge/internal/api/handlers"
	"smartpark-edge/internal/config"
	"smartpark-edge/internal/services"
)

type Server struct {
	config    *config.Config
	container *services.ServiceContainer
	router    *gin.Engine
	server    *http.Server

	healthHandler  *handlers.HealthHandler
	streamHandler  *handlers.StreamHandler
	detectHandler  *handlers.DetectHandler
	historyHandler *handlers.HistoryHandler
}

// NewServer constructs the service container and the HTTP server. Container
// construction blocks until the engine models are loaded and the store is
// authenticated; an error here means the process must not serve.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	container, err := services.NewServiceContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		config:         cfg,
		container:      container,
		router:         gin.New(),
		healthHandler:  handlers.NewHealthHandler(cfg.EdgeID, cfg.Version, container),
		streamHandler:  handlers.NewStreamHandler(container.RelaySvc, cfg.StreamBufferSize),
		detectHandler:  handlers.NewDetectHandler(container.DetectionSvc),
		historyHandler: handlers.NewHistoryHandler(container.Store, cfg.DefaultHistoryLimit),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupSwagger()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: s.router,
	}

	return s, nil
}

func (s *Server) Start() error {
	log.Info().Int("port", s.config.Port).Msg("Starting SmartPark edge API")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting traffic, then tears down the singleton handles.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Stopping SmartPark edge API")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	return s.container.Shutdown(ctx)
}

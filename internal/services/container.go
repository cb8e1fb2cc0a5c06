// Package services owns the process-wide singleton handles. The container
// is constructed exactly once before the server accepts traffic and torn
// down once on shutdown; no handle is ever re-created mid-process.
package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"smartpark-edge/internal/config"
	"smartpark-edge/internal/services/detection"
	"smartpark-edge/internal/services/engine"
	"smartpark-edge/internal/services/messaging"
	"smartpark-edge/internal/services/relay"
	"smartpark-edge/internal/services/store"
)

// ServiceContainer holds all services
type ServiceContainer struct {
	Config       *config.Config
	Engine       *engine.Client
	Store        store.Store
	Messaging    *messaging.Service
	DetectionSvc *detection.Service
	RelaySvc     *relay.Service
}

// NewServiceContainer builds the container in startup order: engine model
// loading first, then persistence auth. Either failing means the process
// must not begin serving. NATS is best-effort; a missing broker only
// disables event publishing.
func NewServiceContainer(ctx context.Context, cfg *config.Config) (*ServiceContainer, error) {
	engineClient := engine.NewClient(cfg.EngineURL, cfg.EngineTimeout)

	loadCtx, cancel := context.WithTimeout(ctx, cfg.EngineLoadTimeout)
	defer cancel()
	if err := engineClient.Load(loadCtx); err != nil {
		return nil, err
	}

	st, err := store.NewFirestoreStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var msgSvc *messaging.Service
	if cfg.NatsEnabled {
		msgSvc, err = messaging.NewService(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("NATS unavailable, event publishing disabled")
			msgSvc = nil
		}
	}

	// detection.Publisher is an interface; pass nil explicitly rather than
	// a typed nil when messaging is disabled.
	var publisher detection.Publisher
	if msgSvc != nil {
		publisher = msgSvc
	}

	return &ServiceContainer{
		Config:       cfg,
		Engine:       engineClient,
		Store:        st,
		Messaging:    msgSvc,
		DetectionSvc: detection.NewService(cfg, engineClient, st, publisher),
		RelaySvc:     relay.NewService(cfg),
	}, nil
}

// ModelsLoaded reports whether the engine handle is live.
func (sc *ServiceContainer) ModelsLoaded() bool {
	return sc.Engine != nil && sc.Engine.IsLoaded()
}

// FirebaseConnected reports whether the persistence handle is live.
func (sc *ServiceContainer) FirebaseConnected() bool {
	return sc.Store != nil
}

// Shutdown releases engine resources first (accelerator memory), then
// drains messaging and closes the store. Store teardown is best-effort.
func (sc *ServiceContainer) Shutdown(ctx context.Context) error {
	var firstErr error

	if sc.Engine != nil {
		if err := sc.Engine.Cleanup(ctx); err != nil {
			log.Warn().Err(err).Msg("Engine cleanup failed")
			firstErr = err
		}
	}

	if sc.Messaging != nil {
		if err := sc.Messaging.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if sc.Store != nil {
		if err := sc.Store.Close(); err != nil {
			log.Warn().Err(err).Msg("Store close failed")
		}
	}

	return firstErr
}

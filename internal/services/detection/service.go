// Package detection orchestrates inference requests: it invokes the shared
// engine, persists qualifying results, and publishes events. Validation of
// request payloads happens at the API boundary before this package is
// reached.
package detection

import (
	"context"

	"github.com/rs/zerolog/log"

	"smartpark-edge/internal/config"
	"smartpark-edge/internal/models"
	"smartpark-edge/internal/services/store"
)

// Engine is the inference collaborator. Implementations must either
// tolerate concurrent invocation or serialize internally; this service
// takes no lock around calls.
type Engine interface {
	Detect(ctx context.Context, imageData string) (*models.DetectionResult, error)
	Track(ctx context.Context, videoData string, params models.TrackParams) (*models.TrackingResult, error)
}

// Publisher is the optional event sink. A nil Publisher disables
// publishing.
type Publisher interface {
	Publish(subject string, data interface{}) error
}

type Service struct {
	cfg       *config.Config
	engine    Engine
	store     store.Store
	publisher Publisher
}

func NewService(cfg *config.Config, engine Engine, st store.Store, publisher Publisher) *Service {
	return &Service{
		cfg:       cfg,
		engine:    engine,
		store:     st,
		publisher: publisher,
	}
}

// Detect runs plate detection on one image and persists the result when at
// least one plate was found. A persistence or publish failure is logged
// and does not invalidate an otherwise-successful detection.
func (s *Service) Detect(ctx context.Context, imageData string) (*models.DetectionResult, error) {
	result, err := s.engine.Detect(ctx, imageData)
	if err != nil {
		return nil, &models.ProcessingError{Op: "plate detection", Err: err}
	}

	if len(result.Plates) > 0 {
		if err := s.store.SavePlateDetection(ctx, result); err != nil {
			log.Error().Err(err).Int("plates", len(result.Plates)).Msg("Failed to persist plate detection")
		}
		s.publish(s.cfg.DetectionsSubject, result)
	}

	log.Info().Int("plates", len(result.Plates)).Msg("Plate detection completed")
	return result, nil
}

// Track runs object tracking on a video payload and persists the result
// whenever the engine reports overall success.
func (s *Service) Track(ctx context.Context, videoData string, params models.TrackParams) (*models.TrackingResult, error) {
	result, err := s.engine.Track(ctx, videoData, params)
	if err != nil {
		return nil, &models.ProcessingError{Op: "object tracking", Err: err}
	}

	if result.Success {
		if err := s.store.SaveTrackingResult(ctx, result); err != nil {
			log.Error().Err(err).Int("unique_tracks", result.UniqueTracks).Msg("Failed to persist tracking result")
		}
		s.publish(s.cfg.TrackingSubject, result)
	}

	log.Info().Int("unique_tracks", result.UniqueTracks).Msg("Tracking completed")
	return result, nil
}

func (s *Service) publish(subject string, data interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(subject, data); err != nil {
		log.Warn().Err(err).Str("subject", subject).Msg("Failed to publish event")
	}
}

// Package store persists qualifying inference results and serves history
// queries. The production implementation is backed by Firestore; the
// orchestrator only sees this interface.
package store

import (
	"context"

	"smartpark-edge/internal/models"
)

type Store interface {
	SavePlateDetection(ctx context.Context, result *models.DetectionResult) error
	SaveTrackingResult(ctx context.Context, result *models.TrackingResult) error
	GetDetections(ctx context.Context, limit int) ([]map[string]interface{}, error)
	GetPlateHistory(ctx context.Context, limit int) ([]map[string]interface{}, error)
	Close() error
}

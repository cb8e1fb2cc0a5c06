package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"smartpark-edge/internal/config"
	"smartpark-edge/internal/models"
)

const (
	detectionsCollection = "tracking_results"
	platesCollection     = "plate_detections"
)

// FirestoreStore is the Firebase-backed Store. The client is created and
// authenticated once at process start and shared by all requests.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore constructs and authenticates the Firestore client.
// A failure here is fatal at startup: the process must not serve traffic
// without its persistence handle.
func NewFirestoreStore(ctx context.Context, cfg *config.Config) (*FirestoreStore, error) {
	var opts []option.ClientOption
	if cfg.FirebaseCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
	}

	fbCfg := &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	app, err := firebase.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	log.Info().Str("project_id", cfg.FirebaseProjectID).Msg("Firebase initialized")
	return &FirestoreStore{client: client}, nil
}

func (s *FirestoreStore) SavePlateDetection(ctx context.Context, result *models.DetectionResult) error {
	plates := make([]map[string]interface{}, 0, len(result.Plates))
	for _, p := range result.Plates {
		plates = append(plates, map[string]interface{}{
			"text":       p.Text,
			"confidence": p.Confidence,
			"bbox":       p.BBox,
		})
	}

	_, _, err := s.client.Collection(platesCollection).Add(ctx, map[string]interface{}{
		"plates":             plates,
		"plate_count":        len(result.Plates),
		"processing_time_ms": result.ProcessingTimeMS,
		"timestamp":          firestore.ServerTimestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to save plate detection: %w", err)
	}
	return nil
}

func (s *FirestoreStore) SaveTrackingResult(ctx context.Context, result *models.TrackingResult) error {
	_, _, err := s.client.Collection(detectionsCollection).Add(ctx, map[string]interface{}{
		"unique_tracks":      result.UniqueTracks,
		"total_detections":   result.TotalDetections,
		"class_counts":       result.ClassCounts,
		"frames_processed":   result.FramesProcessed,
		"processing_time_ms": result.ProcessingTimeMS,
		"timestamp":          firestore.ServerTimestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to save tracking result: %w", err)
	}
	return nil
}

func (s *FirestoreStore) GetDetections(ctx context.Context, limit int) ([]map[string]interface{}, error) {
	return s.queryCollection(ctx, detectionsCollection, limit)
}

func (s *FirestoreStore) GetPlateHistory(ctx context.Context, limit int) ([]map[string]interface{}, error) {
	return s.queryCollection(ctx, platesCollection, limit)
}

func (s *FirestoreStore) queryCollection(ctx context.Context, collection string, limit int) ([]map[string]interface{}, error) {
	iter := s.client.Collection(collection).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	results := make([]map[string]interface{}, 0, limit)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", collection, err)
		}

		data := doc.Data()
		data["id"] = doc.Ref.ID
		if ts, ok := data["timestamp"].(time.Time); ok {
			data["timestamp"] = ts.Format(time.RFC3339)
		}
		results = append(results, data)
	}
	return results, nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

package engine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smartpark-edge/internal/models"
)

func TestLoadMarksClientLoaded(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	if client.IsLoaded() {
		t.Fatal("client must not report loaded before Load")
	}

	if err := client.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if gotPath != "/load" {
		t.Errorf("Load hit %q, want /load", gotPath)
	}
	if !client.IsLoaded() {
		t.Error("client must report loaded after successful Load")
	}
}

func TestLoadReportsEngineRefusal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "weights missing"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	err := client.Load(context.Background())
	if err == nil {
		t.Fatal("expected Load to fail when engine reports success=false")
	}
	if !strings.Contains(err.Error(), "weights missing") {
		t.Errorf("engine message lost: %v", err)
	}
	if client.IsLoaded() {
		t.Error("failed Load must not mark the client loaded")
	}
}

func TestDetectSendsImagePayload(t *testing.T) {
	var got detectRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/detect" {
			t.Errorf("detect hit %q", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(models.DetectionResult{
			Success: true,
			Plates:  []models.Plate{{Text: "KA01AB1234", Confidence: 0.9}},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	result, err := client.Detect(context.Background(), "data:image/jpeg;base64,abc")
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if got.ImageData != "data:image/jpeg;base64,abc" {
		t.Errorf("image payload not forwarded, got %q", got.ImageData)
	}
	if len(result.Plates) != 1 || result.Plates[0].Text != "KA01AB1234" {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestTrackAppliesDefaultsForZeroParams(t *testing.T) {
	var got trackRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(models.TrackingResult{Success: true})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	if _, err := client.Track(context.Background(), "vid", models.TrackParams{}); err != nil {
		t.Fatalf("Track failed: %v", err)
	}

	if got.FrameSkip != models.DefaultFrameSkip {
		t.Errorf("frameSkip = %d, want %d", got.FrameSkip, models.DefaultFrameSkip)
	}
	if got.ConfThreshold != models.DefaultConfThreshold {
		t.Errorf("confThreshold = %v, want %v", got.ConfThreshold, models.DefaultConfThreshold)
	}
	if got.IOUThreshold != models.DefaultIOUThreshold {
		t.Errorf("iouThreshold = %v, want %v", got.IOUThreshold, models.DefaultIOUThreshold)
	}
}

func TestTrackForwardsExplicitParams(t *testing.T) {
	var got trackRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(models.TrackingResult{Success: true})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	params := models.TrackParams{FrameSkip: 5, ConfThreshold: 0.6, IOUThreshold: 0.7}
	if _, err := client.Track(context.Background(), "vid", params); err != nil {
		t.Fatalf("Track failed: %v", err)
	}

	if got.FrameSkip != 5 || got.ConfThreshold != 0.6 || got.IOUThreshold != 0.7 {
		t.Errorf("explicit params not forwarded: %+v", got)
	}
}

func TestPostSurfacesEngineErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "cuda out of memory", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	_, err := client.Detect(context.Background(), "img")
	if err == nil {
		t.Fatal("expected error for 500 engine response")
	}
	if !strings.Contains(err.Error(), "status 500") || !strings.Contains(err.Error(), "cuda out of memory") {
		t.Errorf("error lost engine detail: %v", err)
	}
}

func TestCleanupClearsLoadedState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	if err := client.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := client.Cleanup(context.Background()); err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if client.IsLoaded() {
		t.Error("client must not report loaded after Cleanup")
	}
}

func TestHealthCheck(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("health check hit %q", r.URL.Path)
		}
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2*time.Second)
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("healthy engine reported error: %v", err)
	}

	healthy = false
	if err := client.HealthCheck(context.Background()); err == nil {
		t.Error("expected error for unhealthy engine")
	}
}

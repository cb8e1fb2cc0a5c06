package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != 8000 {
		t.Errorf("Port = %d, want 8000", cfg.Port)
	}
	if cfg.EdgeID != "edge-1" {
		t.Errorf("EdgeID = %q, want edge-1", cfg.EdgeID)
	}
	if cfg.StreamIdleTimeout != 30*time.Second {
		t.Errorf("StreamIdleTimeout = %v, want 30s", cfg.StreamIdleTimeout)
	}
	if cfg.SnapshotTimeout != 10*time.Second {
		t.Errorf("SnapshotTimeout = %v, want 10s", cfg.SnapshotTimeout)
	}
	if cfg.ProbeTimeout != 5*time.Second {
		t.Errorf("ProbeTimeout = %v, want 5s", cfg.ProbeTimeout)
	}
	if cfg.DefaultHistoryLimit != 50 {
		t.Errorf("DefaultHistoryLimit = %d, want 50", cfg.DefaultHistoryLimit)
	}
	if cfg.NatsEnabled {
		t.Error("NATS must be disabled by default")
	}
	if cfg.DetectionsSubject != "parking.detections" || cfg.TrackingSubject != "parking.tracking" {
		t.Errorf("unexpected subjects %q / %q", cfg.DetectionsSubject, cfg.TrackingSubject)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("EDGE_ID", "edge-lot-b")
	t.Setenv("STREAM_URL", "http://10.0.0.5:81/stream")
	t.Setenv("SNAPSHOT_URL", "http://10.0.0.6:80/capture")
	t.Setenv("STREAM_IDLE_TIMEOUT", "45s")
	t.Setenv("NATS_ENABLED", "true")
	t.Setenv("DEFAULT_HISTORY_LIMIT", "25")

	cfg := Load()

	if cfg.Port != 9100 {
		t.Errorf("Port = %d, want 9100", cfg.Port)
	}
	if cfg.EdgeID != "edge-lot-b" {
		t.Errorf("EdgeID = %q", cfg.EdgeID)
	}
	if cfg.StreamURL != "http://10.0.0.5:81/stream" {
		t.Errorf("StreamURL = %q", cfg.StreamURL)
	}
	if cfg.SnapshotURL != "http://10.0.0.6:80/capture" {
		t.Errorf("SnapshotURL = %q", cfg.SnapshotURL)
	}
	if cfg.StreamIdleTimeout != 45*time.Second {
		t.Errorf("StreamIdleTimeout = %v, want 45s", cfg.StreamIdleTimeout)
	}
	if !cfg.NatsEnabled {
		t.Error("NATS_ENABLED=true not honored")
	}
	if cfg.DefaultHistoryLimit != 25 {
		t.Errorf("DefaultHistoryLimit = %d, want 25", cfg.DefaultHistoryLimit)
	}
}

func TestStreamAndSnapshotURLsIndependent(t *testing.T) {
	t.Setenv("STREAM_URL", "http://camera-a:81/stream")

	cfg := Load()

	if cfg.StreamURL != "http://camera-a:81/stream" {
		t.Errorf("StreamURL = %q", cfg.StreamURL)
	}
	// Snapshot endpoint keeps its own default; overriding one must not move
	// the other.
	if cfg.SnapshotURL != "http://192.168.33.122:81/capture" {
		t.Errorf("SnapshotURL = %q, want default", cfg.SnapshotURL)
	}
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("STREAM_IDLE_TIMEOUT", "soon")
	t.Setenv("NATS_ENABLED", "maybe")

	cfg := Load()

	if cfg.Port != 8000 {
		t.Errorf("Port = %d, want fallback 8000", cfg.Port)
	}
	if cfg.StreamIdleTimeout != 30*time.Second {
		t.Errorf("StreamIdleTimeout = %v, want fallback 30s", cfg.StreamIdleTimeout)
	}
	if cfg.NatsEnabled {
		t.Error("unparseable bool must fall back to false")
	}
}

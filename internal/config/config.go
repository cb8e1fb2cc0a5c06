package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// Application
	Version     string
	Environment string
	EdgeID      string
	Port        int
	LogLevel    string

	// Logdy (lightweight web log viewer)
	LogdyEnabled bool
	LogdyHost    string
	LogdyPort    int

	// Camera endpoints. The live stream and the still capture are served
	// from independently configured addresses; some ESP32 firmwares expose
	// them on different hosts or ports.
	StreamURL   string
	SnapshotURL string

	// Stream relay
	// No total read deadline - a live stream is unbounded. A read that
	// yields no data for StreamIdleTimeout is treated as a dead upstream.
	StreamIdleTimeout time.Duration
	StreamBufferSize  int
	SnapshotTimeout   time.Duration
	ProbeTimeout      time.Duration

	// Inference engine (HTTP sidecar)
	EngineURL         string
	EngineLoadTimeout time.Duration
	EngineTimeout     time.Duration

	// Firebase / Firestore persistence
	FirebaseProjectID       string
	FirebaseCredentialsFile string

	// NATS (detection/tracking event publishing)
	NatsEnabled        bool
	NatsURL            string
	NatsConnectTimeout time.Duration
	NatsReconnectWait  time.Duration
	NatsMaxReconnects  int
	DetectionsSubject  string
	TrackingSubject    string

	// History queries
	DefaultHistoryLimit int

	// Graceful Shutdown
	ShutdownTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file found, using environment variables and defaults")
	} else {
		log.Info().Msg("Loaded configuration from .env file")
	}

	return &Config{
		// Application
		Version:     getEnv("VERSION", "2.0.0"),
		Environment: getEnv("ENVIRONMENT", "development"),
		EdgeID:      getEnv("EDGE_ID", "edge-1"),
		Port:        getEnvInt("PORT", 8000),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// Logdy (lightweight web log viewer)
		LogdyEnabled: getEnvBool("LOGDY_ENABLED", false),
		LogdyHost:    getEnv("LOGDY_HOST", "localhost"),
		LogdyPort:    getEnvInt("LOGDY_PORT", 8080),

		// Camera endpoints
		StreamURL:   getEnv("STREAM_URL", "http://192.168.33.122:81/stream"),
		SnapshotURL: getEnv("SNAPSHOT_URL", "http://192.168.33.122:81/capture"),

		// Stream relay
		StreamIdleTimeout: getEnvDuration("STREAM_IDLE_TIMEOUT", 30*time.Second),
		StreamBufferSize:  getEnvInt("STREAM_BUFFER_SIZE", 32*1024),
		SnapshotTimeout:   getEnvDuration("SNAPSHOT_TIMEOUT", 10*time.Second),
		ProbeTimeout:      getEnvDuration("PROBE_TIMEOUT", 5*time.Second),

		// Inference engine
		EngineURL:         getEnv("ENGINE_URL", "http://localhost:8600"),
		EngineLoadTimeout: getEnvDuration("ENGINE_LOAD_TIMEOUT", 2*time.Minute),
		EngineTimeout:     getEnvDuration("ENGINE_TIMEOUT", 120*time.Second),

		// Firebase / Firestore
		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", "serviceAccountKey.json"),

		// NATS
		NatsEnabled:        getEnvBool("NATS_ENABLED", false),
		NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		NatsConnectTimeout: getEnvDuration("NATS_CONNECT_TIMEOUT", 10*time.Second),
		NatsReconnectWait:  getEnvDuration("NATS_RECONNECT_WAIT", 2*time.Second),
		NatsMaxReconnects:  getEnvInt("NATS_MAX_RECONNECTS", -1), // -1 = unlimited
		DetectionsSubject:  getEnv("DETECTIONS_SUBJECT", "parking.detections"),
		TrackingSubject:    getEnv("TRACKING_SUBJECT", "parking.tracking"),

		// History queries
		DefaultHistoryLimit: getEnvInt("DEFAULT_HISTORY_LIMIT", 50),

		// Graceful Shutdown
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

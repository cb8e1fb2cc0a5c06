package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"smartpark-edge/internal/config"
)

func NewServiceLogger(cfg *config.Config, service string) zerolog.Logger {
	return log.With().Str("edge_id", cfg.EdgeID).Str("service", service).Logger()
}

func WithSession(base zerolog.Logger, sessionID string) zerolog.Logger {
	return base.With().Str("session_id", sessionID).Logger()
}

package server

import (
	"log/slog"

	"github.com/preston-bernstein/city-team-dashboard/internal/config"
	"github.com/preston-bernstein/city-team-dashboard/internal/metrics"
	"github.com/preston-bernstein/city-team-dashboard/internal/preferences"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers"
)

// Sources builds the configured fetchers for callers that run without the HTTP server.
func Sources(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.Sources {
	return newSourceFactory(logger, recorder).build(cfg)
}

// Preferences opens the configured preference slot. The returned func releases it.
func Preferences(cfg config.Config, logger *slog.Logger) (*preferences.Store, func() error) {
	return buildPreferences(cfg, logger)
}

package server

import (
	"log/slog"

	"github.com/preston-bernstein/city-team-dashboard/internal/config"
	"github.com/preston-bernstein/city-team-dashboard/internal/logging"
	"github.com/preston-bernstein/city-team-dashboard/internal/preferences"
)

var openSlot = preferences.Open

// buildPreferences opens the configured slot, falling back to memory when it cannot be opened.
func buildPreferences(cfg config.Config, logger *slog.Logger) (*preferences.Store, func() error) {
	slot, closeFn, err := openSlot(cfg.Preferences.Backend, cfg.Preferences.Path)
	if err != nil {
		logging.Warn(logger, "preference slot unavailable, using memory",
			slog.String("backend", cfg.Preferences.Backend),
			slog.String("path", cfg.Preferences.Path),
			slog.Any("error", err),
		)
		slot, closeFn = preferences.NewMemorySlot(), func() error { return nil }
	}
	return preferences.NewStore(slot, logger), closeFn
}

package server

import (
	"log/slog"

	"github.com/preston-bernstein/city-team-dashboard/internal/config"
	"github.com/preston-bernstein/city-team-dashboard/internal/metrics"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers"
)

// sourceFactory assembles every fetcher around one shared upstream transport.
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newSourceFactory(logger *slog.Logger, metrics *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: metrics}
}

func (f sourceFactory) build(cfg config.Config) providers.Sources {
	upstream := providers.NewUpstream(providers.UpstreamConfig{
		Timeout: cfg.UpstreamTimeout,
		Logger:  f.logger,
		Metrics: f.metrics,
	})
	return selectSources(cfg, upstream, f.logger)
}

package server

import (
	"log/slog"

	"github.com/preston-bernstein/city-team-dashboard/internal/config"
	"github.com/preston-bernstein/city-team-dashboard/internal/logging"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers/fixture"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers/googlenews"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers/openmeteo"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers/sportsdb"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers/wikipedia"
)

func selectSources(cfg config.Config, upstream *providers.Upstream, logger *slog.Logger) providers.Sources {
	switch cfg.Provider {
	case config.ProviderFixture:
		return fixture.New().Sources()
	case config.ProviderLive, "":
		return liveSources(cfg.Upstreams, upstream, logger)
	default:
		logging.Warn(logger, "unknown provider, falling back to live sources", slog.String("provider", cfg.Provider))
		return liveSources(cfg.Upstreams, upstream, logger)
	}
}

func liveSources(urls config.UpstreamsConfig, upstream *providers.Upstream, logger *slog.Logger) providers.Sources {
	return providers.Sources{
		Facts: wikipedia.NewClient(wikipedia.Config{
			BaseURL:  urls.WikipediaBaseURL,
			Upstream: upstream,
		}),
		Conditions: openmeteo.NewClient(openmeteo.Config{
			GeocodingBaseURL: urls.GeocodingBaseURL,
			ForecastBaseURL:  urls.ForecastBaseURL,
			Upstream:         upstream,
		}),
		Stats: sportsdb.NewClient(sportsdb.Config{
			BaseURL:  urls.SportsDBBaseURL,
			Upstream: upstream,
		}),
		News: googlenews.NewClient(googlenews.Config{
			FeedURL:  urls.NewsFeedBaseURL,
			RelayURL: urls.NewsRelayURL,
			Upstream: upstream,
			Logger:   logger,
		}),
	}
}

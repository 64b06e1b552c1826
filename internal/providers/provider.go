package providers

import (
	"context"

	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
)

// Fetchers never return errors: every failure is folded into a display string or an empty list.

// FactFetcher returns a one-paragraph description of a free-text topic.
type FactFetcher interface {
	FetchFact(ctx context.Context, topic string) string
}

// ConditionsFetcher returns the local time and weather for a city.
type ConditionsFetcher interface {
	FetchCityConditions(ctx context.Context, city string) domain.WeatherConditions
}

// StatsFetcher returns the last game and league position for a team.
type StatsFetcher interface {
	FetchTeamStats(ctx context.Context, team string) domain.TeamStats
}

// NewsFetcher returns up to five headlines for a query.
type NewsFetcher interface {
	FetchNews(ctx context.Context, query string) []domain.NewsItem
}

// Sources bundles one fetcher per dashboard data source.
type Sources struct {
	Facts      FactFetcher
	Conditions ConditionsFetcher
	Stats      StatsFetcher
	News       NewsFetcher
}

// Package fixture serves deterministic offline data for every dashboard source.
package fixture

import (
	"context"
	"fmt"
	"time"

	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers/openmeteo"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers/sportsdb"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers/wikipedia"
	"github.com/preston-bernstein/city-team-dashboard/internal/timeutil"
)

const (
	sourceLabel   = "Fixture Wire"
	headlines     = 3
	fixtureLeague = "Fixture League"
)

// Provider implements every fetcher without touching the network.
type Provider struct {
	now func() time.Time
}

var (
	_ providers.FactFetcher       = (*Provider)(nil)
	_ providers.ConditionsFetcher = (*Provider)(nil)
	_ providers.StatsFetcher      = (*Provider)(nil)
	_ providers.NewsFetcher       = (*Provider)(nil)
)

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// Sources returns the provider bound to every source slot.
func (p *Provider) Sources() providers.Sources {
	return providers.Sources{Facts: p, Conditions: p, Stats: p, News: p}
}

// FetchFact returns a canned summary naming topic.
func (p *Provider) FetchFact(_ context.Context, topic string) string {
	if topic == "" {
		return wikipedia.MsgNoTopic
	}
	return fmt.Sprintf("%s is a fixture topic used for offline runs of the dashboard.", topic)
}

// FetchCityConditions reports the current UTC time and mild weather for any city.
func (p *Provider) FetchCityConditions(_ context.Context, city string) domain.WeatherConditions {
	if city == "" {
		return domain.WeatherConditions{Time: openmeteo.MsgTimeNoCity, Weather: openmeteo.MsgWeatherNoCity}
	}
	return domain.WeatherConditions{
		Time:    fmt.Sprintf("It's %s.", p.now().UTC().Format(timeutil.ClockLayout)),
		Weather: "Partly cloudy, 18°C right now.",
	}
}

// FetchTeamStats reports a home draw from yesterday and first place.
func (p *Provider) FetchTeamStats(_ context.Context, team string) domain.TeamStats {
	if team == "" {
		return domain.TeamStats{LastGame: sportsdb.MsgLastGameNoTeam, LeaguePosition: sportsdb.MsgPositionNoTeam}
	}
	yesterday := p.now().UTC().AddDate(0, 0, -1).Format(timeutil.ShortDateLayout)
	return domain.TeamStats{
		LastGame:       fmt.Sprintf("%s 2 - 2 Fixture Rovers • %s • %s", team, yesterday, sportsdb.OutcomeDraw),
		LeaguePosition: "#1 in " + fixtureLeague,
	}
}

// FetchNews returns a few headlines mentioning query, dated today.
func (p *Provider) FetchNews(_ context.Context, query string) []domain.NewsItem {
	if query == "" {
		return nil
	}
	date := p.now().UTC().Format(time.RFC1123Z)
	items := make([]domain.NewsItem, 0, headlines)
	for i := 1; i <= headlines; i++ {
		items = append(items, domain.NewsItem{
			Title:  fmt.Sprintf("%s headline %d", query, i),
			Link:   fmt.Sprintf("https://news.example.com/fixture/%d", i),
			Date:   date,
			Source: sourceLabel,
		})
	}
	return items
}

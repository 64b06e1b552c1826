// Package sportsdb looks up a team's most recent result and league rank on TheSportsDB.
package sportsdb

import (
	"context"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers"
	"github.com/preston-bernstein/city-team-dashboard/internal/timeutil"
)

// Config controls how the client reaches TheSportsDB.
type Config struct {
	BaseURL  string
	Upstream *providers.Upstream
}

// Client fetches team stats.
type Client struct {
	baseURL  string
	upstream *providers.Upstream
	now      func() time.Time
}

var _ providers.StatsFetcher = (*Client)(nil)

// NewClient constructs a TheSportsDB client.
func NewClient(cfg Config) *Client {
	up := cfg.Upstream
	if up == nil {
		up = providers.NewUpstream(providers.UpstreamConfig{})
	}
	return &Client{
		baseURL:  providers.NormalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		upstream: up,
		now:      time.Now,
	}
}

// FetchTeamStats resolves team to an id, then reads its last event and standings concurrently.
func (c *Client) FetchTeamStats(ctx context.Context, team string) domain.TeamStats {
	if team == "" {
		return domain.TeamStats{LastGame: MsgLastGameNoTeam, LeaguePosition: MsgPositionNoTeam}
	}

	var search searchResponse
	if err := c.upstream.GetJSON(ctx, sourceSearch, c.searchURL(team), &search); err != nil {
		return domain.TeamStats{LastGame: MsgStatsLoadFail, LeaguePosition: MsgStandingsLoadFail}
	}
	if len(search.Teams) == 0 || search.Teams[0].IDTeam == "" {
		return domain.TeamStats{LastGame: MsgTeamNotFound, LeaguePosition: MsgPositionNotFound}
	}

	found := search.Teams[0]
	if strings.TrimSpace(found.StrTeam) == "" {
		found.StrTeam = team
	}

	var stats domain.TeamStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats.LastGame = c.lastGame(gctx, found)
		return nil
	})
	g.Go(func() error {
		stats.LeaguePosition = c.leaguePosition(gctx, found)
		return nil
	})
	_ = g.Wait()
	return stats
}

func (c *Client) lastGame(ctx context.Context, team teamResponse) string {
	var events eventsResponse
	if err := c.upstream.GetJSON(ctx, sourceEvents, c.lastEventsURL(string(team.IDTeam)), &events); err != nil {
		return MsgLastGameNoData
	}
	if len(events.Results) == 0 {
		return MsgLastGameNoData
	}
	return formatLastGame(events.Results[0], team.StrTeam)
}

func (c *Client) leaguePosition(ctx context.Context, team teamResponse) string {
	if team.IDLeague == "" {
		return standingsUnavailable(team.StrLeague)
	}
	var table tableResponse
	season := timeutil.Season(c.now())
	if err := c.upstream.GetJSON(ctx, sourceStandings, c.tableURL(string(team.IDLeague), season), &table); err != nil {
		return standingsUnavailable(team.StrLeague)
	}
	return formatLeaguePosition(table.Table, team)
}

func (c *Client) searchURL(team string) string {
	return c.baseURL + "/searchteams.php?" + url.Values{"t": {team}}.Encode()
}

func (c *Client) lastEventsURL(teamID string) string {
	return c.baseURL + "/eventslast.php?" + url.Values{"id": {teamID}}.Encode()
}

func (c *Client) tableURL(leagueID, season string) string {
	q := url.Values{}
	q.Set("l", leagueID)
	q.Set("s", season)
	return c.baseURL + "/lookuptable.php?" + q.Encode()
}

package sportsdb

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/city-team-dashboard/internal/providers"
	"github.com/preston-bernstein/city-team-dashboard/internal/testutil"
)

const (
	arsenalSearch = `{"teams":[{"idTeam":"133604","idLeague":"4328","strTeam":"Arsenal","strLeague":"English Premier League"}]}`
	drawEvent     = `{"results":[{"strHomeTeam":"Arsenal","strAwayTeam":"Chelsea","intHomeScore":"2","intAwayScore":"2","dateEvent":"2024-03-09"}]}`
)

func newTestClient(routes testutil.Routes, log *testutil.RequestLog) *Client {
	c := NewClient(Config{
		BaseURL:  "http://sports.test/api",
		Upstream: providers.NewUpstream(providers.UpstreamConfig{HTTPClient: routes.Client(log)}),
	})
	c.now = func() time.Time { return testutil.MustParseRFC3339("2024-03-10T12:00:00Z") }
	return c
}

func TestFetchTeamStatsHomeDraw(t *testing.T) {
	client := newTestClient(testutil.Routes{
		"/api/searchteams.php": {Body: arsenalSearch},
		"/api/eventslast.php":  {Body: drawEvent},
		"/api/lookuptable.php": {Body: `{"table":[{"teamid":"133612","name":"Chelsea","intRank":"5"},{"teamid":"133604","name":"Arsenal","intRank":"1"}]}`},
	}, nil)

	got := client.FetchTeamStats(context.Background(), "arsenal")
	if got.LastGame != "Arsenal 2 - 2 Chelsea • Mar 9 • Draw" {
		t.Fatalf("unexpected last game %q", got.LastGame)
	}
	if got.LeaguePosition != "#1 in English Premier League" {
		t.Fatalf("unexpected position %q", got.LeaguePosition)
	}
}

func TestFetchTeamStatsQueriesCurrentSeason(t *testing.T) {
	var season, league string
	client := NewClient(Config{
		BaseURL: "http://sports.test",
		Upstream: providers.NewUpstream(providers.UpstreamConfig{
			HTTPClient: testutil.NewStubClient(func(req *http.Request) (*http.Response, error) {
				switch req.URL.Path {
				case "/searchteams.php":
					return testutil.StubResponse(http.StatusOK, arsenalSearch), nil
				case "/lookuptable.php":
					season = req.URL.Query().Get("s")
					league = req.URL.Query().Get("l")
					return testutil.StubResponse(http.StatusOK, `{"table":[]}`), nil
				default:
					return testutil.StubResponse(http.StatusOK, `{"results":[]}`), nil
				}
			}),
		}),
	})
	client.now = func() time.Time { return testutil.MustParseRFC3339("2024-08-01T00:00:00Z") }

	got := client.FetchTeamStats(context.Background(), "Arsenal")
	if season != "2024-2025" || league != "4328" {
		t.Fatalf("unexpected standings query l=%s s=%s", league, season)
	}
	if got.LastGame != MsgLastGameNoData {
		t.Fatalf("expected no-data message, got %q", got.LastGame)
	}
	if got.LeaguePosition != "Standings are unavailable for English Premier League." {
		t.Fatalf("unexpected position %q", got.LeaguePosition)
	}
}

func TestFetchTeamStatsEmptyTeamSkipsNetwork(t *testing.T) {
	log := &testutil.RequestLog{}
	client := newTestClient(testutil.Routes{}, log)

	got := client.FetchTeamStats(context.Background(), "")
	if got.LastGame != MsgLastGameNoTeam || got.LeaguePosition != MsgPositionNoTeam {
		t.Fatalf("unexpected prompts %+v", got)
	}
	if log.Count() != 0 {
		t.Fatalf("expected zero requests, got %d", log.Count())
	}
}

func TestFetchTeamStatsTeamNotFound(t *testing.T) {
	log := &testutil.RequestLog{}
	client := newTestClient(testutil.Routes{
		"/api/searchteams.php": {Body: `{"teams":null}`},
	}, log)

	got := client.FetchTeamStats(context.Background(), "Nobody FC")
	if got.LastGame != MsgTeamNotFound || got.LeaguePosition != MsgPositionNotFound {
		t.Fatalf("unexpected result %+v", got)
	}
	if log.Count() != 1 {
		t.Fatalf("expected only the search request, got %v", log.Paths())
	}
}

func TestFetchTeamStatsSearchFailure(t *testing.T) {
	client := newTestClient(testutil.Routes{
		"/api/searchteams.php": {Status: http.StatusServiceUnavailable},
	}, nil)

	got := client.FetchTeamStats(context.Background(), "Arsenal")
	if got.LastGame != MsgStatsLoadFail || got.LeaguePosition != MsgStandingsLoadFail {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestFetchTeamStatsPartialFailures(t *testing.T) {
	client := newTestClient(testutil.Routes{
		"/api/searchteams.php": {Body: arsenalSearch},
		"/api/eventslast.php":  {Status: http.StatusInternalServerError},
		"/api/lookuptable.php": {Body: `not json`},
	}, nil)

	got := client.FetchTeamStats(context.Background(), "Arsenal")
	if got.LastGame != MsgLastGameNoData {
		t.Fatalf("unexpected last game %q", got.LastGame)
	}
	if !strings.HasPrefix(got.LeaguePosition, "Standings are unavailable for") {
		t.Fatalf("unexpected position %q", got.LeaguePosition)
	}
}

func TestFormatLastGameOutcomes(t *testing.T) {
	cases := []struct {
		name  string
		event eventResponse
		team  string
		want  string
	}{
		{
			name:  "away win",
			event: eventResponse{StrHomeTeam: "Chelsea", StrAwayTeam: "Arsenal", IntHomeScore: "0", IntAwayScore: "3", DateEvent: "2024-01-02"},
			team:  "Arsenal",
			want:  "Chelsea 0 - 3 Arsenal • Jan 2 • Win",
		},
		{
			name:  "home loss, case-insensitive side",
			event: eventResponse{StrHomeTeam: "Arsenal", StrAwayTeam: "Chelsea", IntHomeScore: "1", IntAwayScore: "4"},
			team:  "ARSENAL",
			want:  "Arsenal 1 - 4 Chelsea • Loss",
		},
		{
			name:  "missing scores",
			event: eventResponse{StrHomeTeam: "Arsenal", StrAwayTeam: "Chelsea", IntHomeScore: "", DateEvent: "2024-05-19"},
			team:  "Arsenal",
			want:  "Arsenal vs Chelsea • May 19",
		},
		{
			name:  "bad date dropped",
			event: eventResponse{StrHomeTeam: "Arsenal", StrAwayTeam: "Chelsea", IntHomeScore: "1", IntAwayScore: "0", DateEvent: "soon"},
			team:  "Arsenal",
			want:  "Arsenal 1 - 0 Chelsea • Win",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatLastGame(tc.event, tc.team); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatLeaguePositionMatchesByIDOrName(t *testing.T) {
	team := teamResponse{IDTeam: "10", StrTeam: "Arsenal", StrLeague: "EPL"}

	byID := []standingResponse{{TeamID: "10", Name: "Renamed", IntRank: "3"}}
	if got := formatLeaguePosition(byID, team); got != "#3 in EPL" {
		t.Fatalf("id match: got %q", got)
	}

	byName := []standingResponse{{IDTeam: "99", StrTeam: "arsenal", IntRank: "7"}}
	if got := formatLeaguePosition(byName, team); got != "#7 in EPL" {
		t.Fatalf("name match: got %q", got)
	}

	noRank := []standingResponse{{TeamID: "10"}}
	if got := formatLeaguePosition(noRank, team); got != "Standings are unavailable for EPL." {
		t.Fatalf("missing rank: got %q", got)
	}

	if got := formatLeaguePosition(nil, teamResponse{IDTeam: "10"}); got != "Standings are unavailable for this league." {
		t.Fatalf("missing league name: got %q", got)
	}
}

func TestFlexStringAcceptsNumbersAndNull(t *testing.T) {
	var row standingResponse
	if err := json.Unmarshal([]byte(`{"teamid":133604,"intRank":null,"name":"Arsenal"}`), &row); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if row.id() != "133604" {
		t.Fatalf("expected numeric id as string, got %q", row.id())
	}
	if _, ok := row.IntRank.int(); ok {
		t.Fatal("expected null rank to be absent")
	}
}

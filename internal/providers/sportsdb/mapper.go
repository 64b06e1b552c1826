package sportsdb

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/city-team-dashboard/internal/timeutil"
)

// formatLastGame renders "<home> <hs> - <as> <away> • <date> • <outcome>" for the queried team.
// Without both scores the line reads "<home> vs <away>" and carries no outcome.
func formatLastGame(ev eventResponse, teamName string) string {
	home, away := strings.TrimSpace(ev.StrHomeTeam), strings.TrimSpace(ev.StrAwayTeam)
	homeScore, homeOK := ev.IntHomeScore.int()
	awayScore, awayOK := ev.IntAwayScore.int()
	scored := homeOK && awayOK

	parts := make([]string, 0, 3)
	if scored {
		parts = append(parts, fmt.Sprintf("%s %d - %d %s", home, homeScore, awayScore, away))
	} else {
		parts = append(parts, fmt.Sprintf("%s vs %s", home, away))
	}
	if date := timeutil.ShortDate(ev.DateEvent); date != "" {
		parts = append(parts, date)
	}
	if scored {
		parts = append(parts, outcome(ev, homeScore, awayScore, teamName))
	}
	return strings.Join(parts, metaSeparator)
}

// outcome compares the queried team's score with its opponent's; the side is decided by
// case-insensitive equality with the home team name.
func outcome(ev eventResponse, homeScore, awayScore int, teamName string) string {
	ours, theirs := awayScore, homeScore
	if strings.EqualFold(strings.TrimSpace(ev.StrHomeTeam), strings.TrimSpace(teamName)) {
		ours, theirs = homeScore, awayScore
	}
	switch {
	case ours > theirs:
		return OutcomeWin
	case ours < theirs:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}

// formatLeaguePosition finds team in the standings by id or canonical name.
func formatLeaguePosition(table []standingResponse, team teamResponse) string {
	league := strings.TrimSpace(team.StrLeague)
	if league == "" {
		league = fallbackLeagueName
	}
	for _, row := range table {
		if !matchesTeam(row, team) {
			continue
		}
		if rank, ok := row.IntRank.int(); ok {
			return fmt.Sprintf("#%d in %s", rank, league)
		}
		break
	}
	return standingsUnavailable(league)
}

func matchesTeam(row standingResponse, team teamResponse) bool {
	if id := row.id(); id != "" && id == string(team.IDTeam) {
		return true
	}
	name := row.name()
	return name != "" && strings.EqualFold(strings.TrimSpace(name), strings.TrimSpace(team.StrTeam))
}

func standingsUnavailable(league string) string {
	if league == "" {
		league = fallbackLeagueName
	}
	return fmt.Sprintf(fmtStandingsNoData, league)
}

package sportsdb

const (
	sourceSearch    = "sportsdb-search"
	sourceEvents    = "sportsdb-events"
	sourceStandings = "sportsdb-standings"
	defaultBaseURL  = "https://www.thesportsdb.com/api/v1/json/3"
	metaSeparator   = " • "
)

// Display strings returned by FetchTeamStats.
const (
	MsgLastGameNoTeam    = "Add a team to see the last game."
	MsgPositionNoTeam    = "Add a team to see the league position."
	MsgStatsLoadFail     = "We couldn't load team stats right now."
	MsgStandingsLoadFail = "We couldn't load standings right now."
	MsgTeamNotFound      = "We couldn't find that team."
	MsgPositionNotFound  = "League position is unavailable for this team."
	MsgLastGameNoData    = "Last game data is unavailable."
	fmtStandingsNoData   = "Standings are unavailable for %s."
	fallbackLeagueName   = "this league"
)

// Outcome tags appended to the last game line.
const (
	OutcomeWin  = "Win"
	OutcomeDraw = "Draw"
	OutcomeLoss = "Loss"
)

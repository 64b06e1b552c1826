package sportsdb

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type searchResponse struct {
	Teams []teamResponse `json:"teams"`
}

type teamResponse struct {
	IDTeam    flexString `json:"idTeam"`
	IDLeague  flexString `json:"idLeague"`
	StrLeague string     `json:"strLeague"`
	StrTeam   string     `json:"strTeam"`
}

type eventsResponse struct {
	Results []eventResponse `json:"results"`
}

type eventResponse struct {
	StrHomeTeam  string     `json:"strHomeTeam"`
	StrAwayTeam  string     `json:"strAwayTeam"`
	IntHomeScore flexString `json:"intHomeScore"`
	IntAwayScore flexString `json:"intAwayScore"`
	DateEvent    string     `json:"dateEvent"`
}

type tableResponse struct {
	Table []standingResponse `json:"table"`
}

// The standings feed has shipped both lowercase and str/id-prefixed keys.
type standingResponse struct {
	TeamID  flexString `json:"teamid"`
	IDTeam  flexString `json:"idTeam"`
	Name    string     `json:"name"`
	StrTeam string     `json:"strTeam"`
	IntRank flexString `json:"intRank"`
}

func (s standingResponse) id() string {
	if s.TeamID != "" {
		return string(s.TeamID)
	}
	return string(s.IDTeam)
}

func (s standingResponse) name() string {
	if s.Name != "" {
		return s.Name
	}
	return s.StrTeam
}

// flexString accepts a JSON string, number or null; null decodes to "".
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// int parses the value as an integer score or rank.
func (f flexString) int() (int, bool) {
	if f == "" {
		return 0, false
	}
	n, err := strconv.Atoi(string(f))
	if err != nil {
		return 0, false
	}
	return n, true
}

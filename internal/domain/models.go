package domain

import "strings"

// Preference is the user's chosen city and team; the only persisted input.
type Preference struct {
	City string `json:"city"`
	Team string `json:"team"`
}

// NewPreference builds a Preference with surrounding whitespace trimmed.
func NewPreference(city, team string) Preference {
	return Preference{
		City: strings.TrimSpace(city),
		Team: strings.TrimSpace(team),
	}
}

// Complete reports whether both fields are set.
func (p Preference) Complete() bool {
	return p.City != "" && p.Team != ""
}

// CityLabel is the header label for the city, defaulting to "City".
func (p Preference) CityLabel() string {
	if p.City == "" {
		return "City"
	}
	return p.City
}

// TeamLabel is the header label for the team, defaulting to "Team".
func (p Preference) TeamLabel() string {
	if p.Team == "" {
		return "Team"
	}
	return p.Team
}

// ThemeColors is the accent triple derived from a team name.
type ThemeColors struct {
	Accent string `json:"accent"`
	Strong string `json:"strong"`
	Soft   string `json:"soft"`
}

// Theme is the set of presentation variables applied for a team.
type Theme struct {
	Colors ThemeColors `json:"colors"`
	Shadow string      `json:"shadow"`
}

// WeatherConditions holds display-ready local time and weather strings.
type WeatherConditions struct {
	Time    string `json:"time"`
	Weather string `json:"weather"`
}

// TeamStats holds display-ready last game and league position strings.
type TeamStats struct {
	LastGame       string `json:"lastGame"`
	LeaguePosition string `json:"leaguePosition"`
}

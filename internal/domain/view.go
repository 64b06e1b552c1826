package domain

import "time"

// DashboardView is the complete set of display slots written in one step.
// A nil Theme means the previously applied theme stays in place.
type DashboardView struct {
	CityLabel  string            `json:"cityLabel"`
	TeamLabel  string            `json:"teamLabel"`
	CityFact   string            `json:"cityFact"`
	TeamFact   string            `json:"teamFact"`
	Conditions WeatherConditions `json:"conditions"`
	Stats      TeamStats         `json:"stats"`
	CityNews   NewsPanel         `json:"cityNews"`
	TeamNews   NewsPanel         `json:"teamNews"`
	Theme      *Theme            `json:"theme,omitempty"`
	Loading    bool              `json:"loading"`
	Generation uint64            `json:"generation"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// LoadingView returns the placeholder view shown while a refresh is in flight.
func LoadingView(pref Preference) DashboardView {
	return DashboardView{
		CityLabel: pref.CityLabel(),
		TeamLabel: pref.TeamLabel(),
		CityFact:  "Loading city fact...",
		TeamFact:  "Loading team fact...",
		Conditions: WeatherConditions{
			Time:    "Loading local time...",
			Weather: "Loading weather...",
		},
		Stats: TeamStats{
			LastGame:       "Loading last game...",
			LeaguePosition: "Loading league position...",
		},
		CityNews: LoadingNewsPanel("Loading city headlines..."),
		TeamNews: LoadingNewsPanel("Loading team headlines..."),
		Loading:  true,
	}
}

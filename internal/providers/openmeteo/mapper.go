package openmeteo

import (
	"fmt"
	"math"
	"time"

	"github.com/preston-bernstein/city-team-dashboard/internal/providers"
	"github.com/preston-bernstein/city-team-dashboard/internal/timeutil"
)

// WMO weather interpretation codes.
var weatherLabels = map[int]string{
	0:  "Clear",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Freezing fog",
	51: "Light drizzle",
	53: "Drizzle",
	55: "Heavy drizzle",
	56: "Freezing drizzle",
	57: "Heavy freezing drizzle",
	61: "Light rain",
	63: "Rain",
	65: "Heavy rain",
	66: "Freezing rain",
	67: "Heavy freezing rain",
	71: "Light snow",
	73: "Snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Light showers",
	81: "Showers",
	82: "Heavy showers",
	85: "Snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with hail",
	99: "Thunderstorm with heavy hail",
}

var observationLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// weatherLabel maps a WMO code to a label; nil or unknown codes get the generic label.
func weatherLabel(code *int) string {
	if code == nil {
		return defaultConditionsLabel
	}
	if label, ok := weatherLabels[*code]; ok {
		return label
	}
	return defaultConditionsLabel
}

func formatWeather(current currentResponse) string {
	if current.Temperature2m == nil {
		return MsgWeatherNoData
	}
	return fmt.Sprintf("%s, %d°C right now.", weatherLabel(current.WeatherCode), roundHalfUp(*current.Temperature2m))
}

// formatTime renders the observation timestamp in the forecast's timezone.
func formatTime(payload forecastResponse) string {
	loc := providers.ResolveTimezone(payload.Timezone, payload.TimezoneAbbreviation, payload.UTCOffsetSeconds)
	if loc == nil {
		loc = time.UTC
	}
	observed, ok := parseObservation(payload.Current.Time, loc)
	if !ok {
		return MsgTimeUnavailable
	}
	return fmt.Sprintf("It's %s.", observed.Format(timeutil.ClockLayout))
}

// Timestamps come back as local wall-clock time without an offset.
func parseObservation(raw string, loc *time.Location) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(loc), true
	}
	for _, layout := range observationLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Package theme derives a team's accent colors.
package theme

import (
	"strings"
	"unicode/utf16"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
)

// Shadow is the fixed shadow tint applied alongside every theme.
const Shadow = "rgba(15, 23, 42, 0.18)"

// Saturation and lightness for derived themes; only the hue varies by team.
const (
	derivedSaturation = 0.65
	accentLightness   = 0.45
	strongLightness   = 0.30
	softLightness     = 0.92
)

// known teams, keyed by lowercased name.
var known = map[string]domain.ThemeColors{
	"arsenal":             {Accent: "#ef0107", Strong: "#9c0000", Soft: "#fde7e7"},
	"chelsea":             {Accent: "#034694", Strong: "#022a5a", Soft: "#e3ecf8"},
	"liverpool":           {Accent: "#c8102e", Strong: "#7f0a1d", Soft: "#fae5e8"},
	"manchester united":   {Accent: "#da291c", Strong: "#8a1a12", Soft: "#fbe7e5"},
	"manchester city":     {Accent: "#6cabdd", Strong: "#1c2c5b", Soft: "#eaf3fb"},
	"tottenham hotspur":   {Accent: "#132257", Strong: "#0a1230", Soft: "#e4e7f1"},
	"real madrid":         {Accent: "#febe10", Strong: "#00529f", Soft: "#fff6dc"},
	"barcelona":           {Accent: "#a50044", Strong: "#004d98", Soft: "#f7e1ea"},
	"bayern munich":       {Accent: "#dc052d", Strong: "#0066b2", Soft: "#fce3e8"},
	"juventus":            {Accent: "#5c5c5c", Strong: "#111111", Soft: "#eeeeee"},
	"paris saint-germain": {Accent: "#004170", Strong: "#da291c", Soft: "#e0eaf2"},
	"boston celtics":      {Accent: "#007a33", Strong: "#004a1f", Soft: "#e0f2e8"},
	"los angeles lakers":  {Accent: "#552583", Strong: "#fdb927", Soft: "#ede5f5"},
	"new york yankees":    {Accent: "#0c2340", Strong: "#061224", Soft: "#e2e7ee"},
}

// Resolve returns the colors for team. ok is false for an empty team name.
// Unknown teams get a hue derived from a stable hash of the lowercased name.
func Resolve(team string) (colors domain.ThemeColors, ok bool) {
	if team == "" {
		return domain.ThemeColors{}, false
	}
	key := strings.ToLower(team)
	if colors, found := known[key]; found {
		return colors, true
	}
	return derive(Hue(key)), true
}

// Apply returns the presentation variables for team, or nil when the current theme should be kept.
func Apply(team string) *domain.Theme {
	colors, ok := Resolve(team)
	if !ok {
		return nil
	}
	return &domain.Theme{Colors: colors, Shadow: Shadow}
}

// Hue maps name to 0..359 via a 31-multiplier rolling hash over UTF-16 code units, wrapped to int32.
func Hue(name string) int {
	var h int32
	for _, unit := range utf16.Encode([]rune(name)) {
		h = h*31 + int32(unit)
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return int(abs % 360)
}

func derive(hue int) domain.ThemeColors {
	h := float64(hue)
	return domain.ThemeColors{
		Accent: colorful.Hsl(h, derivedSaturation, accentLightness).Hex(),
		Strong: colorful.Hsl(h, derivedSaturation, strongLightness).Hex(),
		Soft:   colorful.Hsl(h, derivedSaturation, softLightness).Hex(),
	}
}

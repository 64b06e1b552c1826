// Package render draws a dashboard view for the terminal, colored by the view's theme.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
)

const (
	defaultWidth  = 72
	defaultAccent = "#1d4ed8"
	defaultStrong = "#1e3a8a"
	defaultSoft   = "#dbeafe"
	mutedColor    = "245"
)

// Renderer formats views for a single output.
type Renderer struct {
	r     *lipgloss.Renderer
	width int
}

// New returns a Renderer whose color profile is detected from w.
func New(w io.Writer) *Renderer {
	return &Renderer{r: lipgloss.NewRenderer(w), width: defaultWidth}
}

type palette struct {
	pill    lipgloss.Style
	heading lipgloss.Style
	panel   lipgloss.Style
	muted   lipgloss.Style
	link    lipgloss.Style
}

func (r *Renderer) palette(theme *domain.Theme) palette {
	accent, strong, soft := defaultAccent, defaultStrong, defaultSoft
	if theme != nil {
		accent, strong, soft = theme.Colors.Accent, theme.Colors.Strong, theme.Colors.Soft
	}
	return palette{
		pill: r.r.NewStyle().Bold(true).Padding(0, 1).
			Foreground(lipgloss.Color(soft)).Background(lipgloss.Color(strong)),
		heading: r.r.NewStyle().Bold(true).Foreground(lipgloss.Color(strong)),
		panel: r.r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(accent)).
			Padding(0, 1).Width(r.width),
		muted: r.r.NewStyle().Foreground(lipgloss.Color(mutedColor)),
		link:  r.r.NewStyle().Underline(true).Foreground(lipgloss.Color(accent)),
	}
}

// Dashboard renders every display slot of view.
func (r *Renderer) Dashboard(view domain.DashboardView) string {
	p := r.palette(view.Theme)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		p.pill.Render("City"), " ", p.heading.Render(view.CityLabel), "   ",
		p.pill.Render("Team"), " ", p.heading.Render(view.TeamLabel),
	)

	sections := []string{
		header,
		r.section(p, "City fact", view.CityFact),
		r.section(p, "Team fact", view.TeamFact),
		r.section(p, "Right now", view.Conditions.Time, view.Conditions.Weather),
		r.section(p, "Team stats", "Last game: "+view.Stats.LastGame, "League position: "+view.Stats.LeaguePosition),
		r.section(p, view.CityLabel+" headlines", newsLines(p, view.CityNews)...),
		r.section(p, view.TeamLabel+" headlines", newsLines(p, view.TeamNews)...),
	}
	if !view.UpdatedAt.IsZero() && !view.Loading {
		sections = append(sections, p.muted.Render("Updated "+view.UpdatedAt.Format("Jan 2 15:04:05 MST")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetupPrompt tells the reader how to save a preference.
func (r *Renderer) SetupPrompt(command string) string {
	p := r.palette(nil)
	return p.panel.Render(p.heading.Render("Set up your dashboard") + "\n" +
		"Pick a city and a team to personalize the page.\n" +
		p.muted.Render(command))
}

// Theme renders the swatches resolved for team.
func (r *Renderer) Theme(team string, theme *domain.Theme) string {
	if theme == nil {
		return r.palette(nil).muted.Render("No team given; the current theme is kept.")
	}
	p := r.palette(theme)
	swatch := func(name, hex string) string {
		block := r.r.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
		return fmt.Sprintf("%s %-7s %s", block, name, hex)
	}
	lines := []string{
		p.heading.Render(team),
		swatch("accent", theme.Colors.Accent),
		swatch("strong", theme.Colors.Strong),
		swatch("soft", theme.Colors.Soft),
		p.muted.Render("shadow " + theme.Shadow),
	}
	return p.panel.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) section(p palette, title string, lines ...string) string {
	body := strings.Join(lines, "\n")
	return p.panel.Render(p.heading.Render(title) + "\n" + body)
}

func newsLines(p palette, panel domain.NewsPanel) []string {
	if panel.Message != "" {
		return []string{p.muted.Render(panel.Message)}
	}
	if len(panel.Items) == 0 {
		if panel.Fallback == nil {
			return nil
		}
		return []string{
			p.link.Render(panel.Fallback.Text) + " " + p.muted.Render(panel.Fallback.URL),
			p.muted.Render(panel.Fallback.Note),
		}
	}
	lines := make([]string, 0, len(panel.Items)*3)
	for _, item := range panel.Items {
		lines = append(lines, "• "+item.Title, "  "+p.muted.Render(item.Meta()), "  "+p.link.Render(item.Link))
	}
	return lines
}

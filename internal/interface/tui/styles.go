package tui

import "github.com/charmbracelet/lipgloss"

// theme holds the palette for one color scheme. The two palettes mirror the
// app's light (lavender/purple) and dark looks.
type theme struct {
	title    lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
	star     lipgloss.Style
	starDim  lipgloss.Style
	card     lipgloss.Style
	selected lipgloss.Style
	status   lipgloss.Style
	errText  lipgloss.Style
}

func newTheme(name string) theme {
	primary := lipgloss.Color("#6331c9")
	soft := lipgloss.Color("#a6aae3")
	if name == "dark" {
		primary = lipgloss.Color("#D2D6EF")
		soft = lipgloss.Color("#6331c9")
	}
	return theme{
		title:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		accent:   lipgloss.NewStyle().Foreground(primary),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		star:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		starDim:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(soft).Padding(0, 1),
		selected: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 1).Bold(true),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

func (t theme) starRow(stars, max int) string {
	row := ""
	for i := 1; i <= max; i++ {
		if i <= stars {
			row += t.star.Render("★")
		} else {
			row += t.starDim.Render("☆")
		}
	}
	return row
}

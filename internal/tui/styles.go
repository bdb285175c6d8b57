package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tugas/internal/theme"
)

type Styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Danger   lipgloss.Style
	Bar      lipgloss.Style
	Doc      lipgloss.Style

	PriorityHigh   lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityLow    lipgloss.Style
}

// NewStyles builds the style set for a theme mode. The palettes keep
// the same hue roles as the web client: red for high/danger, yellow
// for medium/pending, green for low/completed.
func NewStyles(mode theme.Mode) Styles {
	text := lipgloss.Color("235")
	subtle := lipgloss.Color("243")
	border := lipgloss.Color("250")
	if mode == theme.Dark {
		text = lipgloss.Color("252")
		subtle = lipgloss.Color("245")
		border = lipgloss.Color("238")
	}

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1),
		Subtle: lipgloss.NewStyle().Foreground(subtle),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Foreground(text).
			Padding(0, 2),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Bar: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Doc: lipgloss.NewStyle().Padding(1, 2),

		PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

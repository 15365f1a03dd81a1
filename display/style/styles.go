package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for the styled renderer.
type Styles struct {
	Label lipgloss.Style
	Cell  lipgloss.Style
	Muted lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Bold(true),
		Cell: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

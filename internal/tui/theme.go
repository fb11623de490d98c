package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Theme holds the handful of colors the demo uses.
type Theme struct {
	Title     lipgloss.Style
	Status    lipgloss.Style
	Help      lipgloss.Style
	Scrollbar lipgloss.Style
	Track     lipgloss.Style
}

// NewTheme picks colors for the detected terminal background.
func NewTheme() Theme {
	if termenv.HasDarkBackground() {
		return Theme{
			Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c6a0f6")),
			Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")),
			Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")),
			Scrollbar: lipgloss.NewStyle().Foreground(lipgloss.Color("#c6a0f6")),
			Track:     lipgloss.NewStyle().Foreground(lipgloss.Color("#45475a")),
		}
	}
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7a3bcc")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4c4f69")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("#8c8fa1")),
		Scrollbar: lipgloss.NewStyle().Foreground(lipgloss.Color("#7a3bcc")),
		Track:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ccd0da")),
	}
}

// itemColor derives a stable, evenly spread hue for the i-th item.
func itemColor(i int) string {
	hue := float64((i * 47) % 360)
	c := colorful.Hsv(hue, 0.55, 0.90)
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

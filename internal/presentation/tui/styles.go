package tui

import "github.com/charmbracelet/lipgloss"

// Theme colors, roughly the coffee-and-terminal palette of the storefront.
var (
	colorAccent = lipgloss.Color("#ff5c00")
	colorFg     = lipgloss.Color("#e8e4d9")
	colorDim    = lipgloss.Color("#6c6a60")
	colorError  = lipgloss.Color("#d62828")
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	styleTabActive   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Underline(true)
	styleTabInactive = lipgloss.NewStyle().Foreground(colorDim)

	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	stylePlain    = lipgloss.NewStyle().Foreground(colorFg)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)

	styleNotification = lipgloss.NewStyle().Bold(true).Foreground(colorError)

	styleFieldActive = lipgloss.NewStyle().Foreground(colorAccent)
	styleHeading     = lipgloss.NewStyle().Bold(true).Foreground(colorFg)

	styleFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(1, 2)
)

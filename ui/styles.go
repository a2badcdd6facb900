package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorRed     = lipgloss.Color("#FF5555")
	colorYellow  = lipgloss.Color("#F1FA8C")
	colorGreen   = lipgloss.Color("#50FA7B")
	colorCyan    = lipgloss.Color("#8BE9FD")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorGray    = lipgloss.Color("#6272A4")

	// Selector entries: bold red below 10% free, green otherwise.
	alertStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	healthyStyle = lipgloss.NewStyle().Foreground(colorGreen)

	// Strip colors, one per IO direction.
	readStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	writeStyle = lipgloss.NewStyle().Foreground(colorMagenta)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	labelStyle = lipgloss.NewStyle().Foreground(colorGray)
	valueStyle = lipgloss.NewStyle().Foreground(colorGreen)
	dimStyle   = lipgloss.NewStyle().Foreground(colorGray)
	helpStyle  = lipgloss.NewStyle().Foreground(colorGray)

	// BorderStyle frames the selector pane.
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray)
)

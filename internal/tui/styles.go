package tui

import "charm.land/lipgloss/v2"

var (
	highlight = lipgloss.Color("#1F7BB6")
	subtle    = lipgloss.Color("#6B7280")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Width(columnWidth - 4).
			Align(lipgloss.Center)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1).
			Width(columnWidth)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(subtle).
			Padding(0, 1).
			Width(columnWidth - 4)

	tranIDStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight)

	amountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#15803D"))

	filterStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(subtle)

	activeFilterStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(highlight)

	emptyStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(subtle)

	helpStyle = lipgloss.NewStyle().
			Foreground(subtle)
)

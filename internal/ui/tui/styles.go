package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#636B78")
	ColorRed       = lipgloss.Color("#E06C75")
	ColorGreen     = lipgloss.Color("#98C379")
	ColorYellow    = lipgloss.Color("#E5C07B")
	ColorBorder    = lipgloss.Color("#3F4451")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	DurationStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary)

	LockedStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)

	SessionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)

	FocusTitleStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	BreakTitleStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	PausedStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted).
			Italic(true)

	AppStyle = lipgloss.NewStyle().
			Padding(1, 2)
)

// Package tui contains the terminal UI components used by the bitcore CLI.
package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset
var (
	colText     = lipgloss.Color("#cdd6f4")
	colSubtext  = lipgloss.Color("#a6adc8")
	colSurface0 = lipgloss.Color("#313244")
	colSurface1 = lipgloss.Color("#45475a")
	colMauve    = lipgloss.Color("#cba6f7")
	colGreen    = lipgloss.Color("#a6e3a1")
	colRed      = lipgloss.Color("#f38ba8")
	colYellow   = lipgloss.Color("#f9e2af")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colMauve).
			Background(colSurface0).
			Padding(0, 1)

	statusConnectedStyle = lipgloss.NewStyle().
				Foreground(colGreen).
				Bold(true)

	statusDisconnectedStyle = lipgloss.NewStyle().
				Foreground(colRed).
				Bold(true)

	statusConnectingStyle = lipgloss.NewStyle().
				Foreground(colYellow).
				Bold(true)

	contentBorderStyle = lipgloss.NewStyle().
				BorderTop(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colSurface1)

	timestampStyle = lipgloss.NewStyle().
			Foreground(colSubtext)

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Margin(1, 0)
)

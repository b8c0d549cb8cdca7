// Package tui provides a bubbletea + lipgloss terminal UI for the calculator.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/nav"
)

// defaultAccentColor is the default accent color (indigo).
const defaultAccentColor = "#7D56F4"

// Color palette.
var (
	colorWhite  = lipgloss.Color("#FAFAFA")
	colorGray   = lipgloss.Color("#888888")
	colorDim    = lipgloss.Color("#3A3A3A")
	colorYellow = lipgloss.Color("#FFD93D")
	colorOrange = lipgloss.Color("#FFA54F")
)

// Styles used across the TUI. Accent-dependent styles live on Theme.
var (
	stackStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	entryStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	altBaseStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	storeModeStyle = lipgloss.NewStyle().
			Foreground(colorOrange).
			Bold(true)

	tooSmallStyle = lipgloss.NewStyle().
			Align(lipgloss.Center)
)

// storeModeLabel returns the status-bar marker for an armed store mode.
func storeModeLabel(mode nav.StoreMode) string {
	switch mode {
	case nav.StoreStore:
		return "STO"
	case nav.StoreRecall:
		return "RCL"
	default:
		return ""
	}
}

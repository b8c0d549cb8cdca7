package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/tui/components"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/tui/panels"
)

// Theme holds accent-color-derived styles.
type Theme struct {
	accentStyle  lipgloss.Style // status bar background
	keyStyle     lipgloss.Style // enabled keypad button
	blankStyle   lipgloss.Style // hidden or covered keypad cell
	optionStyle  lipgloss.Style // option page entry
	pickerBorder lipgloss.Style // picker overlay frame
	tabActive    lipgloss.Style
	tabInactive  lipgloss.Style
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#7D56F4").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)
	return Theme{
		accentStyle: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		keyStyle: lipgloss.NewStyle().
			Background(colorDim).
			Foreground(colorWhite).
			Align(lipgloss.Center, lipgloss.Center),
		blankStyle: lipgloss.NewStyle(),
		optionStyle: lipgloss.NewStyle().
			Foreground(colorWhite).
			Align(lipgloss.Left, lipgloss.Center),
		pickerBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c),
		tabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(c).
			Align(lipgloss.Center),
		tabInactive: lipgloss.NewStyle().
			Foreground(colorGray).
			Align(lipgloss.Center),
	}
}

// StatusStyle returns the style for the status bar.
func (t Theme) StatusStyle() lipgloss.Style {
	return t.accentStyle
}

// KeypadStyles returns the styles for keypad and option rendering.
func (t Theme) KeypadStyles() panels.KeypadStyles {
	return panels.KeypadStyles{Key: t.keyStyle, Blank: t.blankStyle, Option: t.optionStyle}
}

// PickerStyle returns the picker overlay frame.
func (t Theme) PickerStyle() lipgloss.Style {
	return t.pickerBorder
}

// TabStyles returns the styles for the tab bar.
func (t Theme) TabStyles() components.TabStyles {
	return components.TabStyles{Active: t.tabActive, Inactive: t.tabInactive}
}

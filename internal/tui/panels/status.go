// Package panels renders the regions of the calculator TUI.
package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/tui/components"
)

// StatusProps holds all data needed to render the status bar.
// Plain strings keep this package free of engine and nav imports.
type StatusProps struct {
	Exponent  string // "STD", ...
	Angle     string // "DEG" or "RAD"
	Base      string // "DEC", "HEX", ...
	Page      string // committed page name
	StoreMode string // "", "STO" or "RCL"
	Hyp       bool
}

// RenderStatus renders the mode line. The accent style is applied to the
// full bar width.
func RenderStatus(props StatusProps, width int, accentStyle lipgloss.Style) string {
	parts := []string{props.Exponent, props.Angle, props.Base}
	if props.Hyp {
		parts = append(parts, "HYP")
	}
	if props.StoreMode != "" {
		parts = append(parts, props.StoreMode)
	}
	left := " " + strings.Join(nonEmpty(parts), " │ ")
	right := props.Page + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return accentStyle.Width(width).Render(components.Fit(left, width))
	}
	return accentStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func nonEmpty(ss []string) []string {
	out := ss[:0:0]
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

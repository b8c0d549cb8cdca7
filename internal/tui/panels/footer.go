package panels

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/tui/components"
)

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD93D")).Bold(true)
)

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Notice  string // visible notice; empty shows Help
	Pending int    // notices queued behind the visible one
	Help    string // rendered short help, at most width columns
}

// RenderFooter renders the footer: the current notice when there is one,
// otherwise the key hints.
func RenderFooter(props FooterProps, width int) string {
	if props.Notice != "" {
		text := props.Notice
		if props.Pending > 0 {
			text += fmt.Sprintf("  (+%d)", props.Pending)
		}
		return noticeStyle.Width(width).Render(components.Fit(text, width))
	}
	// Help arrives styled and already truncated by bubbles/help.
	return footerStyle.Width(width).MaxWidth(width).Render(props.Help)
}

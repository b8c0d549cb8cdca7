// Package components provides reusable TUI components for the calculator.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TabStyles are the styles for active and inactive tabs.
type TabStyles struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// DefaultTabStyles renders the active tab with bold accent-colored text and
// the rest dimmed.
func DefaultTabStyles() TabStyles {
	return TabStyles{
		Active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Align(lipgloss.Center),
		Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Align(lipgloss.Center),
	}
}

// TabBar is a stateless tab bar component that renders a row of
// equal-width labelled tabs.
type TabBar struct {
	tabs   []string
	active int // -1 when no tab is active
	width  int
	styles TabStyles
}

// NewTabBar creates a TabBar with the given tab titles. The first tab is active.
func NewTabBar(tabs []string) TabBar {
	return TabBar{tabs: tabs, styles: DefaultTabStyles()}
}

// Active returns the index of the active tab, or -1.
func (t TabBar) Active() int {
	return t.active
}

// SetActive returns a TabBar with tab i active. Out-of-range indices leave
// no tab active.
func (t TabBar) SetActive(i int) TabBar {
	if i < 0 || i >= len(t.tabs) {
		i = -1
	}
	t.active = i
	return t
}

// SetLabels returns a TabBar with new titles, keeping the active index.
func (t TabBar) SetLabels(tabs []string) TabBar {
	t.tabs = tabs
	return t.SetActive(t.active)
}

// SetWidth returns a TabBar configured for the given render width.
func (t TabBar) SetWidth(w int) TabBar {
	t.width = w
	return t
}

// SetStyles returns a TabBar using styles.
func (t TabBar) SetStyles(s TabStyles) TabBar {
	t.styles = s
	return t
}

// TabWidth returns the width of tab i in columns. The last tab takes the
// columns left over by integer division.
func (t TabBar) TabWidth(i int) int {
	if len(t.tabs) == 0 || t.width <= 0 {
		return 0
	}
	w := t.width / len(t.tabs)
	if i == len(t.tabs)-1 {
		w = t.width - w*(len(t.tabs)-1)
	}
	return w
}

// View renders the tab bar as a single line. With no width set, tabs are
// separated by " │ " instead of being fitted.
func (t TabBar) View() string {
	if len(t.tabs) == 0 {
		return ""
	}

	if t.width <= 0 {
		parts := make([]string, len(t.tabs))
		for i, label := range t.tabs {
			parts[i] = t.style(i).Render(label)
		}
		return strings.Join(parts, " │ ")
	}

	var b strings.Builder
	for i, label := range t.tabs {
		w := t.TabWidth(i)
		b.WriteString(t.style(i).Width(w).MaxWidth(w).Render(Fit(label, w)))
	}
	return b.String()
}

func (t TabBar) style(i int) lipgloss.Style {
	if i == t.active {
		return t.styles.Active
	}
	return t.styles.Inactive
}

// Fit truncates s to w terminal columns, accounting for double-width runes.
func Fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, "…")
}

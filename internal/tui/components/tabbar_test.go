package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func TestNewTabBar(t *testing.T) {
	tb := NewTabBar([]string{"123", "f(x)", "conv"})
	if tb.Active() != 0 {
		t.Errorf("Active: got %d, want 0", tb.Active())
	}
}

func TestTabBar_SetActive(t *testing.T) {
	tb := NewTabBar([]string{"A", "B", "C"})

	tests := []struct {
		set  int
		want int
	}{
		{2, 2},
		{0, 0},
		{3, -1},
		{-1, -1},
	}
	for _, tt := range tests {
		tb = tb.SetActive(tt.set)
		if tb.Active() != tt.want {
			t.Errorf("SetActive(%d): got %d, want %d", tt.set, tb.Active(), tt.want)
		}
	}
}

func TestTabBar_SetLabels_KeepsActive(t *testing.T) {
	tb := NewTabBar([]string{"123", "f(x)"}).SetActive(1)
	tb = tb.SetLabels([]string{"123", "ABC"})
	if tb.Active() != 1 {
		t.Errorf("Active: got %d, want 1", tb.Active())
	}
	if !strings.Contains(tb.View(), "ABC") {
		t.Errorf("View() missing new label: %q", tb.View())
	}
}

func TestTabBar_View_ContainsAllTabs(t *testing.T) {
	labels := []string{"123", "f(x)", "conv", "const", "opts"}
	tb := NewTabBar(labels).SetWidth(40)
	view := tb.View()
	for _, label := range labels {
		if !strings.Contains(view, label) {
			t.Errorf("View() missing label %q: got %q", label, view)
		}
	}
	if w := lipgloss.Width(view); w != 40 {
		t.Errorf("width: got %d, want 40", w)
	}
}

func TestTabBar_View_NoWidth(t *testing.T) {
	tb := NewTabBar([]string{"Alpha", "Beta"})
	view := tb.View()
	if !strings.Contains(view, "Alpha") || !strings.Contains(view, "Beta") || !strings.Contains(view, "│") {
		t.Errorf("View() = %q, want both tabs with separator", view)
	}
}

func TestTabBar_Empty(t *testing.T) {
	tb := NewTabBar(nil)
	if view := tb.View(); view != "" {
		t.Errorf("empty TabBar View() = %q, want empty string", view)
	}
	if w := tb.TabWidth(0); w != 0 {
		t.Errorf("TabWidth: got %d, want 0", w)
	}
}

func TestTabBar_TabWidth(t *testing.T) {
	tb := NewTabBar([]string{"A", "B", "C", "D", "E"}).SetWidth(38)
	total := 0
	for i := 0; i < 5; i++ {
		total += tb.TabWidth(i)
	}
	if total != 38 {
		t.Errorf("tab widths sum to %d, want 38", total)
	}
	if got := tb.TabWidth(4); got != 10 {
		t.Errorf("last tab: got %d, want 10", got)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		in    string
		w     int
		width int
	}{
		{"sqrt", 6, 4},
		{"Convert", 4, 4},
		{"αβγ", 2, 2},
		{"計算機", 4, 3}, // a double-width rune cannot be split
		{"x", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Fit(tt.in, tt.w)
			if w := runewidth.StringWidth(got); w != tt.width {
				t.Errorf("Fit(%q, %d) = %q (width %d), want width %d", tt.in, tt.w, got, w, tt.width)
			}
		})
	}
}

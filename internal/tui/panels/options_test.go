package panels

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/grid"
)

func TestRenderOptions(t *testing.T) {
	entries := []grid.OptionEntry{
		{Key: "Degrees or Radians", Page: 0, Row: 4, Col: 0},
		{Key: "Decimal Places to Show", Page: 0, Row: 0, Col: 3},
		{Key: "Select Base", Page: 1, Row: 0, Col: 0},
	}
	values := map[string]string{"Degrees or Radians": "degrees", "Decimal Places to Show": "4", "Select Base": "hex"}
	value := func(key string) string { return values[key] }

	t.Run("page one", func(t *testing.T) {
		out := RenderOptions(grid.LayoutOptions(entries, 1), value, 60, 2, testStyles())
		for _, want := range []string{"Degrees or Radians", "degrees", "Decimal Places to Show", "4", "More…"} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %q", want)
			}
		}
		if strings.Contains(out, "Select Base") {
			t.Error("page two entry shown on page one")
		}
		if n := len(strings.Split(out, "\n")); n != grid.Rows*2 {
			t.Errorf("got %d lines, want %d", n, grid.Rows*2)
		}
	})

	t.Run("page two single line", func(t *testing.T) {
		out := RenderOptions(grid.LayoutOptions(entries, 2), value, 60, 1, testStyles())
		for _, want := range []string{"Select Base: hex", "Back…"} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %q", want)
			}
		}
		for i, line := range strings.Split(out, "\n") {
			if w := lipgloss.Width(line); w != 60 {
				t.Errorf("line %d: width %d, want 60", i, w)
			}
		}
	})
}

func TestToggleLabel(t *testing.T) {
	if got := ToggleLabel(1); got != "More…" {
		t.Errorf("page 1: got %q, want More…", got)
	}
	if got := ToggleLabel(2); got != "Back…" {
		t.Errorf("page 2: got %q, want Back…", got)
	}
}

package panels

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/picker"
)

func viewOf(title string, labels ...string) picker.View {
	v := picker.View{Title: title}
	for i, l := range labels {
		sc := ""
		if i < picker.MaxShortcuts {
			sc = string(rune('A' + i))
		}
		v.Items = append(v.Items, picker.Item{Label: l, Shortcut: sc})
	}
	return v
}

func TestPicker_View(t *testing.T) {
	p := NewPicker(viewOf("Conversion Category", "Distance", "Mass"), 40, 12)
	out := p.View(lipgloss.NewStyle().Border(lipgloss.RoundedBorder()))

	for _, want := range []string{"Conversion Category", "(A) Distance", "(B) Mass"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Errorf("got %d lines, want 12", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line %d: width %d, want 40", i, w)
		}
	}
}

func TestPicker_ItemAt(t *testing.T) {
	p := NewPicker(viewOf("Material", "Iron", "Water"), 40, 12)
	left := (40 - p.boxW) / 2

	tests := []struct {
		name   string
		x, y   int
		want   int
		wantOK bool
	}{
		{"first item", left + 2, 2, 0, true},
		{"second item", left + 2, 3, 1, true},
		{"title row", left + 2, 1, 0, false},
		{"below items", left + 2, 4, 0, false},
		{"left border", left, 2, 0, false},
		{"outside frame", 0, 2, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.ItemAt(tt.x, tt.y)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("ItemAt(%d, %d) = %d, %v; want %d, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestPicker_LongList(t *testing.T) {
	var labels []string
	for i := 0; i < 30; i++ {
		labels = append(labels, fmt.Sprintf("Unit %02d", i))
	}
	p := NewPicker(viewOf("Convert from", labels...), 40, 8)
	out := p.View(lipgloss.NewStyle().Border(lipgloss.RoundedBorder()))
	if !strings.Contains(out, "(A) Unit 00") {
		t.Errorf("first item should be visible: %q", out)
	}
	if strings.Contains(out, "Unit 29") {
		t.Error("items past the frame should be scrolled out of view")
	}
	if p.vp.Height != 5 {
		t.Errorf("list height: got %d, want 5", p.vp.Height)
	}

	p.vp.SetYOffset(25)
	left := (40 - p.boxW) / 2
	if got, ok := p.ItemAt(left+2, 2+4); !ok || got != 29 {
		t.Errorf("ItemAt after scroll: got %d, %v; want 29, true", got, ok)
	}
}

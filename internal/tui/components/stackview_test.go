package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewStackView(t *testing.T) {
	sv := NewStackView(30, 5)
	if !sv.Following() {
		t.Error("NewStackView: expected to be pinned to the bottom")
	}
	if sv.width != 30 || sv.height != 5 {
		t.Errorf("dimensions: got %dx%d, want 30x5", sv.width, sv.height)
	}
}

func TestStackView_BottomAligned(t *testing.T) {
	sv := NewStackView(20, 4).SetLines([]string{"3.0000", "2.0000"})
	lines := strings.Split(sv.View(), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %q", len(lines), lines)
	}
	if !strings.Contains(lines[2], "3.0000") || !strings.Contains(lines[3], "2.0000") {
		t.Errorf("entries should sit at the bottom: %q", lines)
	}
	if strings.TrimSpace(lines[0]) != "" {
		t.Errorf("top line should be blank, got %q", lines[0])
	}
}

func TestStackView_ShowsNearestWhenOverflowing(t *testing.T) {
	var in []string
	for i := 10; i >= 1; i-- {
		in = append(in, strings.Repeat("#", i))
	}
	sv := NewStackView(20, 3).SetLines(in)
	view := sv.View()
	if !strings.Contains(view, "###") || strings.Contains(view, "##########") {
		t.Errorf("expected the last three lines, got %q", view)
	}
}

func TestStackView_SetLines_IndependentCopy(t *testing.T) {
	original := []string{"a", "b"}
	sv := NewStackView(10, 2).SetLines(original)
	original[0] = "mutated"
	if sv.lines[0] != "a" {
		t.Error("SetLines should copy the slice, not reference it")
	}
}

func TestStackView_PageUpUnpins(t *testing.T) {
	var in []string
	for i := 0; i < 20; i++ {
		in = append(in, "x")
	}
	sv := NewStackView(10, 3).SetLines(in)
	sv = sv.PageUp()
	if sv.Following() {
		t.Error("PageUp should leave the bottom")
	}
	sv = sv.PageDown().PageDown().PageDown().PageDown().PageDown().PageDown().PageDown()
	if !sv.Following() {
		t.Error("paging back down should re-pin")
	}

	sv = sv.PageUp().SetLines(in)
	if !sv.Following() {
		t.Error("new content should re-pin")
	}
}

func TestStackView_SetSize(t *testing.T) {
	sv := NewStackView(10, 3).SetSize(40, 0)
	if sv.width != 40 || sv.height != 1 {
		t.Errorf("SetSize: got %dx%d, want 40x1", sv.width, sv.height)
	}
	if sv.vp.Width != 40 || sv.vp.Height != 1 {
		t.Errorf("viewport dimensions: got %dx%d, want 40x1", sv.vp.Width, sv.vp.Height)
	}
}

func TestStackView_Update_NoPanic(t *testing.T) {
	sv := NewStackView(10, 3).SetLines([]string{"1", "2"})
	sv, _ = sv.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	_ = sv.View()
}

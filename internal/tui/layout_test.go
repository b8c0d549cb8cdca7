package tui

import (
	"testing"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/layout"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		aspect   float64
		tooSmall bool
		cellW    int
		cellH    int
		stackH   int
		x        int
		binding  layout.Axis
	}{
		{name: "80x24", width: 80, height: 24, aspect: 2, cellW: 6, cellH: 2, stackH: 8, x: 22, binding: layout.AxisHeight},
		{name: "120x40", width: 120, height: 40, aspect: 2, cellW: 9, cellH: 3, stackH: 18, x: 33, binding: layout.AxisHeight},
		{name: "200x60", width: 200, height: 60, aspect: 2, cellW: 13, cellH: 3, stackH: 38, x: 61, binding: layout.AxisHeight},
		{name: "40x60 width binds", width: 40, height: 60, aspect: 2, cellW: 6, cellH: 2, stackH: 44, x: 2, binding: layout.AxisWidth},
		{name: "80x11 smallest height", width: 80, height: 11, aspect: 2, cellW: 6, cellH: 1, stackH: 1, x: 22, binding: layout.AxisHeight},
		{name: "zero aspect uses default", width: 80, height: 24, aspect: 0, cellW: 6, cellH: 2, stackH: 8, x: 22, binding: layout.AxisHeight},
		{name: "35 columns too narrow", width: 35, height: 24, aspect: 2, tooSmall: true},
		{name: "10 rows too short", width: 80, height: 10, aspect: 2, tooSmall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Calculate(tt.width, tt.height, tt.aspect)
			if l.TooSmall != tt.tooSmall {
				t.Fatalf("TooSmall: got %v, want %v", l.TooSmall, tt.tooSmall)
			}
			if tt.tooSmall {
				return
			}
			if l.CellWidth != tt.cellW {
				t.Errorf("CellWidth: got %d, want %d", l.CellWidth, tt.cellW)
			}
			if l.CellHeight != tt.cellH {
				t.Errorf("CellHeight: got %d, want %d", l.CellHeight, tt.cellH)
			}
			if l.Stack.Height != tt.stackH {
				t.Errorf("Stack.Height: got %d, want %d", l.Stack.Height, tt.stackH)
			}
			if l.Keypad.X != tt.x {
				t.Errorf("Keypad.X: got %d, want %d", l.Keypad.X, tt.x)
			}
			if l.Binding != tt.binding {
				t.Errorf("Binding: got %v, want %v", l.Binding, tt.binding)
			}
		})
	}
}

func TestCalculate_RegionsTileTheHeight(t *testing.T) {
	for _, size := range [][2]int{{80, 24}, {120, 40}, {40, 60}, {80, 11}} {
		l := Calculate(size[0], size[1], 2)
		regions := []Rect{l.Status, l.Stack, l.Entry, l.Tabs, l.Keypad, l.Footer}
		y := 0
		for i, r := range regions {
			if r.Y != y {
				t.Errorf("%dx%d region %d: Y=%d, want %d", size[0], size[1], i, r.Y, y)
			}
			if r.Width != l.CellWidth*6 {
				t.Errorf("%dx%d region %d: width %d, want %d", size[0], size[1], i, r.Width, l.CellWidth*6)
			}
			y += r.Height
		}
		if y != size[1] {
			t.Errorf("%dx%d: regions cover %d rows, want %d", size[0], size[1], y, size[1])
		}
		if l.Keypad.Height != 6*l.CellHeight {
			t.Errorf("%dx%d: keypad height %d, want %d", size[0], size[1], l.Keypad.Height, 6*l.CellHeight)
		}
	}
}

func TestLayout_HitTesting(t *testing.T) {
	l := Calculate(80, 24, 2) // keypad at (22, 11), 36x12, 6x2 cells; tabs 7 wide

	t.Run("keypad cell", func(t *testing.T) {
		r, c, ok := l.KeypadCell(22+6*2+1, 11+2*3)
		if !ok || r != 3 || c != 2 {
			t.Errorf("got (%d, %d, %v), want (3, 2, true)", r, c, ok)
		}
		if _, _, ok := l.KeypadCell(21, 11); ok {
			t.Error("left of the keypad should miss")
		}
		if _, _, ok := l.KeypadCell(22, 23); ok {
			t.Error("the footer row should miss")
		}
	})

	t.Run("option cell", func(t *testing.T) {
		r, c, ok := l.OptionCell(22+18, 11)
		if !ok || r != 0 || c != 1 {
			t.Errorf("got (%d, %d, %v), want (0, 1, true)", r, c, ok)
		}
		r, c, ok = l.OptionCell(22+17, 11+11)
		if !ok || r != 5 || c != 0 {
			t.Errorf("got (%d, %d, %v), want (5, 0, true)", r, c, ok)
		}
	})

	t.Run("tabs", func(t *testing.T) {
		tests := []struct {
			x      int
			want   int
			wantOK bool
		}{
			{22, 0, true},
			{22 + 21, 3, true},
			{22 + 35, 4, true}, // remainder columns belong to the last tab
			{21, 0, false},
			{22 + 36, 0, false},
		}
		for _, tt := range tests {
			got, ok := l.TabAt(tt.x, 10)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("TabAt(%d) = %d, %v; want %d, %v", tt.x, got, ok, tt.want, tt.wantOK)
			}
		}
		if _, ok := l.TabAt(22, 9); ok {
			t.Error("the entry row is not the tab bar")
		}
	})

	t.Run("too small never hits", func(t *testing.T) {
		small := Calculate(20, 10, 2)
		if _, _, ok := small.KeypadCell(0, 0); ok {
			t.Error("KeypadCell should miss when TooSmall")
		}
		if _, ok := small.TabAt(0, 0); ok {
			t.Error("TabAt should miss when TooSmall")
		}
	})
}

func TestMinSize(t *testing.T) {
	w, h := MinSize()
	if l := Calculate(w, h, 2); l.TooSmall {
		t.Errorf("MinSize %dx%d should fit", w, h)
	}
	if l := Calculate(w-1, h, 2); !l.TooSmall {
		t.Errorf("%dx%d should be too narrow", w-1, h)
	}
	if l := Calculate(w, h-1, 2); !l.TooSmall {
		t.Errorf("%dx%d should be too short", w, h-1)
	}
}

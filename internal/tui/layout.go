package tui

import (
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/grid"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/layout"
)

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Layout holds the computed region geometry for a given terminal size.
type Layout struct {
	Status, Stack, Entry Rect
	Tabs, Keypad, Footer Rect
	CellWidth            int // columns per keypad button
	CellHeight           int // rows per keypad button
	Binding              layout.Axis
	TooSmall             bool // true when a 6x6 keypad of MinButtonWidth buttons does not fit
}

const (
	// MinButtonWidth is the narrowest keypad button, in columns.
	MinButtonWidth = 6
	// DefaultCellAspect is a typical terminal cell height/width ratio.
	DefaultCellAspect = 2.0

	maxButtonRows = 3
	chromeRows    = 4 // status, entry, tabs, footer
	tabCount      = 5
)

// terminalSolver is the layout solver tuned for character cells: the
// margins are one column each side and no vertical margin.
var terminalSolver = layout.Solver{HFudge: 2, VFudge: 0, SpacerFudge: 0, MinUnit: 1}

// Calculate computes the region layout for a terminal of the given
// dimensions. aspect is the cell height divided by the cell width; rows are
// scaled by it so the solver sees square units.
//
// Algorithm:
//   - the solver picks the unit from width and aspect-scaled height
//   - buttons are FullWidth/6 columns wide, never below MinButtonWidth
//   - buttons are ButtonHeight/aspect rows high, clamped to [1, 3], and
//     shrink until the stack keeps at least one row
//   - the stack absorbs every row left over
//   - the column is centred horizontally
func Calculate(width, height int, aspect float64) Layout {
	if !(aspect > 0) {
		aspect = DefaultCellAspect
	}
	d := terminalSolver.Solve(float64(width), float64(height)*aspect)

	cellW := int(d.FullWidth) / grid.Cols
	if cellW < MinButtonWidth {
		cellW = MinButtonWidth
	}
	keypadW := cellW * grid.Cols

	cellH := int(d.ButtonHeight / aspect)
	if cellH < 1 {
		cellH = 1
	}
	if cellH > maxButtonRows {
		cellH = maxButtonRows
	}
	for cellH > 1 && chromeRows+grid.Rows*cellH+1 > height {
		cellH--
	}

	if keypadW > width || chromeRows+grid.Rows*cellH+1 > height {
		return Layout{TooSmall: true, Binding: d.Binding}
	}

	keypadH := grid.Rows * cellH
	stackH := height - chromeRows - keypadH
	x := (width - keypadW) / 2

	y := 0
	next := func(h int) Rect {
		r := Rect{X: x, Y: y, Width: keypadW, Height: h}
		y += h
		return r
	}
	return Layout{
		Status:     next(1),
		Stack:      next(stackH),
		Entry:      next(1),
		Tabs:       next(1),
		Keypad:     next(keypadH),
		Footer:     next(1),
		CellWidth:  cellW,
		CellHeight: cellH,
		Binding:    d.Binding,
	}
}

// KeypadCell maps a terminal cell inside the keypad to a button position.
func (l Layout) KeypadCell(x, y int) (row, col int, ok bool) {
	if l.TooSmall || !l.Keypad.Contains(x, y) {
		return 0, 0, false
	}
	return (y - l.Keypad.Y) / l.CellHeight, (x - l.Keypad.X) / l.CellWidth, true
}

// OptionCell maps a terminal cell inside the keypad to an option position.
func (l Layout) OptionCell(x, y int) (row, col int, ok bool) {
	if l.TooSmall || !l.Keypad.Contains(x, y) {
		return 0, 0, false
	}
	colW := l.Keypad.Width / grid.OptionCols
	col = (x - l.Keypad.X) / colW
	if col >= grid.OptionCols {
		col = grid.OptionCols - 1
	}
	return (y - l.Keypad.Y) / l.CellHeight, col, true
}

// TabAt maps a terminal cell inside the tab bar to a tab index.
func (l Layout) TabAt(x, y int) (int, bool) {
	if l.TooSmall || !l.Tabs.Contains(x, y) {
		return 0, false
	}
	i := (x - l.Tabs.X) / (l.Tabs.Width / tabCount)
	if i >= tabCount {
		i = tabCount - 1
	}
	return i, true
}

// Package layout derives every control dimension of the calculator from a
// single scale factor, the tab width ("unit"), so the whole control stack
// keeps its proportions at any viewport size.
package layout

import "math"

// Axis identifies which viewport dimension constrained the unit.
type Axis int

const (
	AxisWidth  Axis = iota // width produced the smaller unit
	AxisHeight             // height produced the smaller unit
)

// String returns "width" or "height".
func (a Axis) String() string {
	switch a {
	case AxisWidth:
		return "width"
	case AxisHeight:
		return "height"
	default:
		return "unknown"
	}
}

// Fixed ratios, expressed against a 96-point tab.
//
// Stack height in units: six keypad rows plus the entry line (7 * 64/96),
// the stack display and the tab row (2 * 96/96) and the status line (15/96),
// which sums to 655/96.
const (
	tabPoints    = 96.0
	buttonPoints = 64.0
	statusPoints = 15.0
	stackPoints  = 655.0
	tabsAcross   = 5.0
	widthInset   = 4.0
)

// Dimensions is the complete dimension set for one viewport. Every field
// except StackHeight and SpacerWidth is a fixed multiple of Unit; those two
// absorb the slack left by the binding axis.
type Dimensions struct {
	Unit             float64
	ButtonHeight     float64
	EntryHeight      float64
	StackHeight      float64
	StatusHeight     float64
	FullWidth        float64
	SpacerWidth      float64
	DisclaimerHeight float64
	Binding          Axis
}

// Solver holds the tuned margins for one rendering surface.
type Solver struct {
	HFudge      float64 // horizontal margin around the five tab columns
	VFudge      float64 // vertical margin between stacked rows
	SpacerFudge float64 // adjustment applied before centring horizontally
	MinUnit     float64 // floor for Unit; must be > 0
}

// Default returns the solver tuned for a pixel surface.
func Default() Solver {
	return Solver{HFudge: 20, VFudge: 30, SpacerFudge: -15, MinUnit: 1}
}

// Solve computes the dimension set for a viewport of w x h. It is pure:
// identical inputs always yield identical results.
//
// Algorithm:
//   - unitW makes the stack exactly fill w: (w - HFudge) / 5
//   - unitH makes the stack exactly fill h: (h - VFudge) * 96 / 655
//   - the smaller wins and names the binding axis
//   - Unit is clamped to MinUnit (NaN and non-positive inputs clamp too)
//   - when width binds, the stack display grows by the vertical slack
func (s Solver) Solve(w, h float64) Dimensions {
	unitW := (w - s.HFudge) / tabsAcross
	unitH := (h - s.VFudge) * tabPoints / stackPoints

	unit, binding := unitW, AxisWidth
	// NaN compares false, so a NaN on either side leaves AxisWidth.
	if unitH < unitW {
		unit, binding = unitH, AxisHeight
	}

	minUnit := s.MinUnit
	if !(minUnit > 0) {
		minUnit = 1
	}
	if math.IsNaN(unit) || math.IsInf(unit, 0) || unit < minUnit {
		unit = minUnit
	}

	d := FromUnit(unit)
	d.Binding = binding

	if binding == AxisWidth {
		used := s.VFudge + unit*stackPoints/tabPoints
		if slack := h - used; slack > 0 && !math.IsInf(slack, 0) {
			d.StackHeight += slack
		}
	}

	spacer := (w + s.SpacerFudge - d.FullWidth) / 2
	if spacer > 0 && !math.IsInf(spacer, 0) {
		d.SpacerWidth = spacer
	}
	return d
}

// FromUnit derives the ratio-bound fields from unit alone. Slack fields
// (StackHeight growth, SpacerWidth) are left at their no-slack values.
func FromUnit(unit float64) Dimensions {
	button := unit * buttonPoints / tabPoints
	return Dimensions{
		Unit:             unit,
		ButtonHeight:     button,
		EntryHeight:      button,
		StackHeight:      unit,
		StatusHeight:     unit * statusPoints / tabPoints,
		FullWidth:        unit*tabsAcross - widthInset,
		DisclaimerHeight: unit,
	}
}

// TotalHeight returns the height the control stack occupies at this unit,
// including the vertical margin.
func (s Solver) TotalHeight(unit float64) float64 {
	return s.VFudge + unit*stackPoints/tabPoints
}

// Package grid describes the calculator's control pages: which pages exist,
// how a page's engine-supplied slots become a fixed 6x6 keypad, and the
// static relationships between pages (tab cycle, storage remap).
package grid

import "fmt"

// Page identifies one mutually exclusive view of the control grid.
type Page int

const (
	Numpad Page = iota
	FuncPad
	HypFuncPad
	ConvPad
	ConstPad
	OptPad // generic option request; always lands on OptPad1
	OptPad1
	OptPad2
	SIPad
	RomanUpperPad
	RomanLowerPad
	GreekUpperPad
	GreekLowerPad
)

var pageNames = [...]string{
	Numpad:        "numpad",
	FuncPad:       "funcpad",
	HypFuncPad:    "hypfuncpad",
	ConvPad:       "convpad",
	ConstPad:      "constpad",
	OptPad:        "optpad",
	OptPad1:       "optpad1",
	OptPad2:       "optpad2",
	SIPad:         "sipad",
	RomanUpperPad: "romanupperpad",
	RomanLowerPad: "romanlowerpad",
	GreekUpperPad: "greekupperpad",
	GreekLowerPad: "greeklowerpad",
}

// Pages lists every page in declaration order.
func Pages() []Page {
	out := make([]Page, len(pageNames))
	for i := range pageNames {
		out[i] = Page(i)
	}
	return out
}

// String returns the page's wire name, e.g. "numpad".
func (p Page) String() string {
	if p < 0 || int(p) >= len(pageNames) {
		return "unknown"
	}
	return pageNames[p]
}

// ParsePage is the inverse of String.
func ParsePage(name string) (Page, error) {
	for i, n := range pageNames {
		if n == name {
			return Page(i), nil
		}
	}
	return 0, fmt.Errorf("grid: unknown page %q", name)
}

// IsLetterPad reports whether p is one of the four storage-location pads.
func (p Page) IsLetterPad() bool {
	switch p {
	case RomanUpperPad, RomanLowerPad, GreekUpperPad, GreekLowerPad:
		return true
	}
	return false
}

// IsOptionPage reports whether p shows option entries instead of a keypad.
func (p Page) IsOptionPage() bool {
	return p == OptPad || p == OptPad1 || p == OptPad2
}

// storageRemap binds the logical tab pages to their storage pads. OptPad and
// OptPad1 both land on GreekLowerPad.
var storageRemap = map[Page]Page{
	FuncPad:  RomanUpperPad,
	ConvPad:  RomanLowerPad,
	ConstPad: GreekUpperPad,
	OptPad1:  GreekLowerPad,
	OptPad:   GreekLowerPad,
}

// StoragePage returns the letter pad bound to p while in storage mode.
// Pages without a binding are returned unchanged.
func StoragePage(p Page) Page {
	if lp, ok := storageRemap[p]; ok {
		return lp
	}
	return p
}

// Next returns the page the NextTab directive moves to from p, and false
// when NextTab from p means "cancel back to the numeric pad" (SI pad,
// option page 2).
func (p Page) Next() (Page, bool) {
	switch p {
	case Numpad:
		return FuncPad, true
	case FuncPad, HypFuncPad:
		return ConvPad, true
	case ConvPad:
		return ConstPad, true
	case ConstPad:
		return OptPad1, true
	case OptPad, OptPad1:
		return OptPad2, true
	case RomanUpperPad:
		return RomanLowerPad, true
	case RomanLowerPad:
		return GreekUpperPad, true
	case GreekUpperPad:
		return GreekLowerPad, true
	case GreekLowerPad:
		return RomanUpperPad, true
	default:
		return Numpad, false
	}
}

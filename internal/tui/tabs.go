package tui

import "github.com/LISSConsulting/LISSTech.RPNCalc/internal/grid"

// tabPages are the pages the five tabs request, left to right.
var tabPages = [tabCount]grid.Page{grid.Numpad, grid.FuncPad, grid.ConvPad, grid.ConstPad, grid.OptPad}

var (
	tabLabels     = []string{"123", "f(x)", "conv", "const", "opts"}
	storageLabels = []string{"123", "ABC", "abc", "ΑΒΓ", "αβγ"}
)

// tabLabelsFor returns the labels for the tab bar; in storage mode the
// tabs name the letter pads they lead to.
func tabLabelsFor(storage bool) []string {
	if storage {
		return storageLabels
	}
	return tabLabels
}

// activeTab returns the tab highlighted while page is showing, or -1 for
// pages no tab leads to.
func activeTab(page grid.Page) int {
	switch page {
	case grid.Numpad:
		return 0
	case grid.FuncPad, grid.HypFuncPad, grid.RomanUpperPad:
		return 1
	case grid.ConvPad, grid.RomanLowerPad:
		return 2
	case grid.ConstPad, grid.GreekUpperPad:
		return 3
	case grid.OptPad, grid.OptPad1, grid.OptPad2, grid.GreekLowerPad:
		return 4
	default:
		return -1
	}
}

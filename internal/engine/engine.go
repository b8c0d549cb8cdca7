// Package engine defines the narrow command/query interface between the
// presentation core and a computation engine, and ships Calculator, a
// reference implementation driven by embedded YAML tables.
package engine

import "github.com/LISSConsulting/LISSTech.RPNCalc/internal/grid"

// Engine is everything the presentation core needs from a calculator.
type Engine interface {
	Display() Display
	Status() Status
	Grid(page grid.Page) ([][]grid.Slot, bool)
	ShortcutKeys(command string) []string
	Options() []grid.OptionEntry
	Command(name string) ErrorCode
	HandleKey(token, modifier string, page grid.Page) KeyResult
	// IngestTable accepts an external rates table. An empty result means
	// the table was accepted; anything else is a message for the user.
	IngestTable(data []byte) string

	Store(slot string) ErrorCode
	Recall(slot string) ErrorCode
	SlotForKey(token string, page grid.Page) (string, bool)

	ToggleOption(key string) ErrorCode
	OptionValue(key string) string

	ConversionCategories() []string
	Units(category string) []string
	ConstantCategories() []string
	Constants(category string) []string
	Densities() []string

	CopyText() string
	PushText(s string) bool
}

// Display is the text the calculator shows.
type Display struct {
	Primary string   // entry line, or X when not entering
	Stack   []string // Y, Z, T, ... nearest first
	AltBase string   // X in the alternate base, empty when not shown
}

// Status is the mode line.
type Status struct {
	Exponent string
	Angle    string
	Base     string
}

// KeyResult is what HandleKey reports back.
type KeyResult struct {
	Directive Directive
	Err       ErrorCode
}

// Directive tells the dispatcher what to do after a key was handled.
type Directive int

const (
	NotHandled Directive = iota
	Handled
	Cancel
	NextTab
	MoreConversions
	ConstByName
	DensityByName
	SelectSI
	Store
	Recall
	CopyToClipboard
	PasteFromClipboard
	Quit
)

var directiveNames = [...]string{
	NotHandled:         "not-handled",
	Handled:            "handled",
	Cancel:             "cancel",
	NextTab:            "next-tab",
	MoreConversions:    "more-conversions",
	ConstByName:        "const-by-name",
	DensityByName:      "density-by-name",
	SelectSI:           "select-si",
	Store:              "store",
	Recall:             "recall",
	CopyToClipboard:    "copy",
	PasteFromClipboard: "paste",
	Quit:               "quit",
}

func (d Directive) String() string {
	if d < 0 || int(d) >= len(directiveNames) {
		return "unknown"
	}
	return directiveNames[d]
}

// extDirectives maps the EXT- commands of the key tables to directives.
var extDirectives = map[string]Directive{
	"EXT-Cancel":             Cancel,
	"EXT-NextTab":            NextTab,
	"EXT-MoreConversions":    MoreConversions,
	"EXT-ConstByName":        ConstByName,
	"EXT-DensityByName":      DensityByName,
	"EXT-Store":              Store,
	"EXT-Recall":             Recall,
	"EXT-SI":                 SelectSI,
	"EXT-CopyToClipboard":    CopyToClipboard,
	"EXT-PasteFromClipboard": PasteFromClipboard,
	"EXT-Quit":               Quit,
}

package engine

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/grid"
)

//go:embed data/*.yaml
var dataFS embed.FS

// binding is the command each modifier tag runs for one key token.
type binding struct {
	Plain     string `yaml:"plain"`
	Shift     string `yaml:"shift"`
	Ctrl      string `yaml:"ctrl"`
	Alt       string `yaml:"alt"`
	CtrlShift string `yaml:"ctrl_shift"`
	CtrlAlt   string `yaml:"ctrl_alt"`
	ShiftAlt  string `yaml:"shift_alt"`
}

// forModifier returns the command for a modifier tag, or "" when the tag
// is unbound.
func (b binding) forModifier(tag string) string {
	switch tag {
	case "plain":
		return b.Plain
	case "shift":
		return b.Shift
	case "ctrl":
		return b.Ctrl
	case "alt":
		return b.Alt
	case "ctrlShift":
		return b.CtrlShift
	case "ctrlAlt":
		return b.CtrlAlt
	case "shiftAlt":
		return b.ShiftAlt
	default:
		return ""
	}
}

// each calls fn with the display prefix and command of every bound tag.
func (b binding) each(fn func(prefix, cmd string)) {
	for _, p := range []struct{ prefix, cmd string }{
		{"", b.Plain},
		{"Shift+", b.Shift},
		{"Ctrl+", b.Ctrl},
		{"Alt+", b.Alt},
		{"Ctrl+Shift+", b.CtrlShift},
		{"Ctrl+Alt+", b.CtrlAlt},
		{"Alt+Shift+", b.ShiftAlt},
	} {
		if p.cmd != "" {
			fn(p.prefix, p.cmd)
		}
	}
}

type keymapFile struct {
	Keys   map[string]binding `yaml:"keys"`
	SIKeys map[string]binding `yaml:"si_keys"`
}

type hypOverride struct {
	Row  int       `yaml:"row"`
	Col  int       `yaml:"col"`
	Slot grid.Slot `yaml:"slot"`
}

type gridsFile struct {
	Numpad       [][]grid.Slot `yaml:"numpad"`
	Funcpad      [][]grid.Slot `yaml:"funcpad"`
	HypOverrides []hypOverride `yaml:"hyp_overrides"`
	Convpad      [][]grid.Slot `yaml:"convpad"`
	SIPad        [][]grid.Slot `yaml:"sipad"`
}

// Constant is a named physical constant.
type Constant struct {
	Name     string  `yaml:"name"`
	Symbol   string  `yaml:"symbol"`
	Value    float64 `yaml:"value"`
	Unit     string  `yaml:"unit"`
	Category string  `yaml:"category"`
}

// Density is a material density in kg/m³.
type Density struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

// Unit is one member of a conversion category.
type Unit struct {
	Name       string  `yaml:"name"`
	Factor     float64 `yaml:"factor"`
	Offset     float64 `yaml:"offset"`
	Reciprocal bool    `yaml:"reciprocal"`
}

// Category groups units that convert into one another.
type Category struct {
	Name  string `yaml:"category"`
	Units []Unit `yaml:"units"`
}

// tables is the parsed static data of the reference engine.
type tables struct {
	grids       gridsFile
	keys        map[string]binding
	siKeys      map[string]binding
	constants   []Constant
	densities   []Density
	conversions []Category
	options     []grid.OptionEntry
	rates       []byte
}

func loadTables() (*tables, error) {
	t := &tables{}
	var km keymapFile
	for _, f := range []struct {
		name string
		dst  any
	}{
		{"grids.yaml", &t.grids},
		{"keymap.yaml", &km},
		{"constants.yaml", &t.constants},
		{"densities.yaml", &t.densities},
		{"conversions.yaml", &t.conversions},
		{"options.yaml", &t.options},
	} {
		data, err := dataFS.ReadFile("data/" + f.name)
		if err != nil {
			return nil, fmt.Errorf("engine: read %s: %w", f.name, err)
		}
		if err := yaml.Unmarshal(data, f.dst); err != nil {
			return nil, fmt.Errorf("engine: parse %s: %w", f.name, err)
		}
	}
	t.keys, t.siKeys = km.Keys, km.SIKeys

	rates, err := dataFS.ReadFile("data/rates.yaml")
	if err != nil {
		return nil, fmt.Errorf("engine: read rates.yaml: %w", err)
	}
	t.rates = rates
	return t, nil
}

func copyRows(rows [][]grid.Slot) [][]grid.Slot {
	out := make([][]grid.Slot, len(rows))
	for i, r := range rows {
		out[i] = append([]grid.Slot(nil), r...)
	}
	return out
}

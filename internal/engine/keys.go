package engine

import (
	"strconv"
	"strings"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/grid"
)

// greekLetters is the Greek alphabet in pad order.
var greekLetters = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta",
	"Eta", "Theta", "Iota", "Kappa", "Lambda", "Mu",
	"Nu", "Xi", "Omicron", "Pi", "Rho", "Sigma",
	"Tau", "Upsilon", "Phi", "Chi", "Psi", "Omega",
}

var greekUpper = []rune("ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ")
var greekLower = []rune("αβγδεζηθικλμνξοπρστυφχψω")

// romanToGreek maps a typed Roman letter to the Greek register it selects.
// F and J have no Greek counterpart.
var romanToGreek = map[string]string{
	"A": "Alpha", "B": "Beta", "G": "Gamma", "D": "Delta", "E": "Epsilon", "Z": "Zeta",
	"H": "Eta", "Q": "Theta", "I": "Iota", "K": "Kappa", "L": "Lambda", "M": "Mu",
	"N": "Nu", "C": "Xi", "O": "Omicron", "P": "Pi", "R": "Rho", "S": "Sigma",
	"T": "Tau", "U": "Upsilon", "V": "Phi", "X": "Chi", "Y": "Psi", "W": "Omega",
}

func slotPrefix(page grid.Page) string {
	switch page {
	case grid.RomanUpperPad:
		return "StoreRomanUpper"
	case grid.RomanLowerPad:
		return "StoreRomanLower"
	case grid.GreekUpperPad:
		return "StoreGreekUpper"
	case grid.GreekLowerPad:
		return "StoreGreekLower"
	default:
		return ""
	}
}

// SlotForKey maps a letter typed on a letter pad to its register slot.
func (c *Calculator) SlotForKey(token string, page grid.Page) (string, bool) {
	prefix := slotPrefix(page)
	if prefix == "" || len(token) != 1 || token[0] < 'A' || token[0] > 'Z' {
		return "", false
	}
	if page == grid.GreekUpperPad || page == grid.GreekLowerPad {
		name, ok := romanToGreek[token]
		if !ok {
			return "", false
		}
		return prefix + name, true
	}
	return prefix + token, true
}

// letterPad generates a register page: the letters six to a row, then a
// Cancel slot in the bottom-right corner.
func (c *Calculator) letterPad(page grid.Page) [][]grid.Slot {
	prefix := slotPrefix(page)
	var slots []grid.Slot
	switch page {
	case grid.RomanUpperPad, grid.RomanLowerPad:
		for l := 'A'; l <= 'Z'; l++ {
			display := string(l)
			if page == grid.RomanLowerPad {
				display = strings.ToLower(display)
			}
			slots = append(slots, c.registerSlot(prefix+string(l), display))
		}
	default:
		glyphs := greekUpper
		if page == grid.GreekLowerPad {
			glyphs = greekLower
		}
		for i, name := range greekLetters {
			slots = append(slots, c.registerSlot(prefix+name, string(glyphs[i])))
		}
	}
	for len(slots) < 5*grid.Cols {
		slots = append(slots, grid.Nop)
	}
	var rows [][]grid.Slot
	for i := 0; i < len(slots); i += grid.Cols {
		rows = append(rows, slots[i:i+grid.Cols])
	}
	return append(rows, []grid.Slot{
		grid.Nop, grid.Nop, grid.Nop, grid.Nop,
		{Command: "CANCEL", Display: "Cancel", DoubleWidth: true},
	})
}

func (c *Calculator) registerSlot(name, display string) grid.Slot {
	help := "Store/Recall X in the selected register"
	if v, ok := c.registers[name]; ok {
		help += " (current value is " + strconv.FormatFloat(v, 'g', -1, 64) + ")"
	}
	return grid.Slot{Command: name, Display: display, Help: help + "."}
}

// HandleKey resolves a key against the key tables for the current page.
// Letter pads and the SI pad have their own small tables; everywhere else
// the main key map applies.
func (c *Calculator) HandleKey(token, modifier string, page grid.Page) KeyResult {
	switch {
	case page.IsLetterPad() || page == grid.SIPad:
		if token == "Esc" {
			return KeyResult{Directive: Cancel}
		}
		if (token == "Tab" && modifier == "plain") || (token == "T" && modifier == "shift") {
			return KeyResult{Directive: NextTab}
		}
		if page.IsLetterPad() {
			return KeyResult{Directive: NotHandled}
		}
		b, ok := c.t.siKeys[token]
		if !ok {
			return KeyResult{Directive: NotHandled}
		}
		return c.run(b.forModifier(modifier))
	}

	b, ok := c.t.keys[token]
	if !ok {
		return KeyResult{Directive: NotHandled}
	}
	return c.run(b.forModifier(modifier))
}

func (c *Calculator) run(cmd string) KeyResult {
	if cmd == "" {
		return KeyResult{Directive: NotHandled}
	}
	if d, ok := extDirectives[cmd]; ok {
		return KeyResult{Directive: d}
	}
	return KeyResult{Directive: Handled, Err: c.Command(cmd)}
}

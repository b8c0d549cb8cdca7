package engine

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/grid"
)

// Base is the alternate display base.
type Base int

const (
	Decimal Base = iota
	Hexadecimal
	Octal
	Binary
)

func (b Base) String() string {
	switch b {
	case Decimal:
		return "DEC"
	case Hexadecimal:
		return "HEX"
	case Octal:
		return "OCT"
	case Binary:
		return "BIN"
	default:
		return "unknown"
	}
}

// Calculator is the reference Engine: a float64 RPN stack with an entry
// buffer, store registers and table-driven keys, conversions and
// constants.
type Calculator struct {
	t   *tables
	ops map[string]opFunc

	st       stack
	entry    string // digits being typed; empty when not entering
	entering bool
	lastCmd  string

	registers map[string]float64

	radians    bool
	places     int
	thousands  bool
	base       Base
	windowSize string

	currency Category
}

var _ Engine = (*Calculator)(nil)

var (
	tablesOnce sync.Once
	sharedT    *tables
	tablesErr  error
)

// New returns a Calculator with the embedded tables and the fallback
// currency rates loaded.
func New() (*Calculator, error) {
	tablesOnce.Do(func() { sharedT, tablesErr = loadTables() })
	if tablesErr != nil {
		return nil, tablesErr
	}
	c := &Calculator{
		t:          sharedT,
		ops:        operations(),
		registers:  make(map[string]float64),
		places:     4,
		windowSize: "large",
	}
	if msg := c.IngestTable(sharedT.rates); msg != "" {
		return nil, fmt.Errorf("engine: fallback rates: %s", msg)
	}
	return c, nil
}

func (c *Calculator) completeEntry() {
	if !c.entering {
		return
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(c.entry, "e"), 64)
	if err != nil {
		v = 0
	}
	c.st.saveHistory()
	c.st.push(v)
	c.entry, c.entering = "", false
}

func (c *Calculator) digit(d string) {
	if !c.entering {
		c.entry, c.entering = "", true
	}
	c.entry += d
}

func (c *Calculator) dot() {
	if !c.entering {
		c.entry, c.entering = "0", true
	}
	if !strings.ContainsAny(c.entry, ".e") {
		if c.entry == "" || c.entry == "-" {
			c.entry += "0"
		}
		c.entry += "."
	}
}

func (c *Calculator) exponent() {
	if !c.entering {
		c.entry, c.entering = "1", true
	}
	if !strings.Contains(c.entry, "e") {
		if c.entry == "" || c.entry == "-" {
			c.entry += "1"
		}
		c.entry += "e"
	}
}

func (c *Calculator) invert() {
	if !c.entering {
		c.st.saveHistory()
		c.st.push(-c.st.pop())
		return
	}
	if i := strings.Index(c.entry, "e"); i >= 0 {
		if strings.HasPrefix(c.entry[i+1:], "-") {
			c.entry = c.entry[:i+1] + c.entry[i+2:]
		} else {
			c.entry = c.entry[:i+1] + "-" + c.entry[i+1:]
		}
		return
	}
	if strings.HasPrefix(c.entry, "-") {
		c.entry = c.entry[1:]
	} else {
		c.entry = "-" + c.entry
	}
}

func (c *Calculator) backspace() {
	if !c.entering {
		c.st.saveHistory()
		c.st.pop()
		return
	}
	if c.entry != "" {
		c.entry = c.entry[:len(c.entry)-1]
	}
	if c.entry == "" || c.entry == "-" {
		c.entry, c.entering = "", false
	}
}

// clear drops X, or the whole stack when pressed twice in a row.
func (c *Calculator) clear() {
	if c.entering {
		c.entry, c.entering = "", false
		return
	}
	c.st.saveHistory()
	if c.lastCmd == "clear" {
		c.st.clear()
		return
	}
	c.st.pop()
}

func (c *Calculator) enter() {
	if c.entering {
		c.completeEntry()
		return
	}
	c.st.saveHistory()
	c.st.push(c.st.peek())
}

// Command runs one named command.
func (c *Calculator) Command(name string) ErrorCode {
	ec := c.command(name)
	c.lastCmd = name
	return ec
}

func (c *Calculator) command(name string) ErrorCode {
	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		c.digit(name)
		return NoError
	}
	switch name {
	case "dot", ".":
		c.dot()
		return NoError
	case "exponent":
		c.exponent()
		return NoError
	case "invert":
		c.invert()
		return NoError
	case "backspace":
		c.backspace()
		return NoError
	case "clear":
		c.clear()
		return NoError
	case "enter":
		c.enter()
		return NoError
	case "undo":
		c.entry, c.entering = "", false
		c.st.undo()
		return NoError
	case "base":
		c.base = (c.base + 1) % 4
		return NoError
	case "NOP":
		return NoError
	case "EngL", "EngR", "ShowAll":
		return NotImplemented
	}

	switch {
	case strings.HasPrefix(name, "Const-"):
		return c.guarded(func() ErrorCode { return c.constant(name[len("Const-"):]) })
	case strings.HasPrefix(name, "Density-"):
		return c.guarded(func() ErrorCode { return c.density(name[len("Density-"):]) })
	case strings.HasPrefix(name, "SI-"):
		return c.guarded(func() ErrorCode { return c.siPrefix(name[len("SI-"):]) })
	case strings.HasPrefix(name, "Convert_"):
		parts := strings.Split(name, "_")
		return c.guarded(func() ErrorCode {
			if len(parts) != 4 {
				return UnknownConversion
			}
			return c.convert(parts[1], parts[2], parts[3])
		})
	}

	op, ok := c.ops[name]
	if !ok {
		return UnknownCommand
	}
	return c.guarded(func() ErrorCode { return op(c) })
}

// guarded completes entry, records undo history and runs fn. On failure
// the stack is restored so operands are not lost.
func (c *Calculator) guarded(fn func() ErrorCode) ErrorCode {
	c.completeEntry()
	before := c.st.snapshot()
	c.st.saveHistory()
	if ec := fn(); ec != NoError {
		c.st.restore(before)
		c.st.history = c.st.history[:len(c.st.history)-1]
		return ec
	}
	return NoError
}

func (c *Calculator) siPrefix(prefix string) ErrorCode {
	m, ok := siPrefixes[prefix]
	if !ok {
		return UnknownUnit
	}
	c.st.push(c.st.pop() * m)
	return NoError
}

func (c *Calculator) constant(name string) ErrorCode {
	for _, k := range c.t.constants {
		if k.Name == name || strings.ReplaceAll(k.Name, " ", "") == name {
			c.st.push(k.Value)
			return NoError
		}
	}
	return UnknownConstant
}

func (c *Calculator) density(name string) ErrorCode {
	for _, d := range c.t.densities {
		if d.Name == name {
			c.st.push(d.Value)
			return NoError
		}
	}
	return UnknownConstant
}

func (c *Calculator) toRadians(x float64) float64 {
	if c.radians {
		return x
	}
	return x * degToRad
}

func (c *Calculator) fromRadians(r float64) float64 {
	if c.radians {
		return r
	}
	return r / degToRad
}

const degToRad = 0.017453292519943295

// Store saves X (completing any entry) in a register slot.
func (c *Calculator) Store(slot string) ErrorCode {
	if !strings.HasPrefix(slot, "Store") {
		return UnknownCommand
	}
	c.completeEntry()
	c.registers[slot] = c.st.peek()
	return NoError
}

// Recall pushes a register's value, zero when the register is empty.
func (c *Calculator) Recall(slot string) ErrorCode {
	if !strings.HasPrefix(slot, "Store") {
		return UnknownCommand
	}
	c.completeEntry()
	c.st.saveHistory()
	c.st.push(c.registers[slot])
	return NoError
}

// CopyText returns X, or the entry being typed, at full precision.
func (c *Calculator) CopyText() string {
	if c.entering {
		return c.entry
	}
	return strconv.FormatFloat(c.st.peek(), 'g', -1, 64)
}

// PushText parses s as a number and pushes it. Thousands separators and
// spaces are ignored.
func (c *Calculator) PushText(s string) bool {
	s = strings.NewReplacer(",", "", " ", "", "\n", "", "\t", "").Replace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	c.completeEntry()
	c.st.saveHistory()
	c.st.push(v)
	return true
}

// Grid returns the rows of a keypad page. Option pages have no grid.
func (c *Calculator) Grid(page grid.Page) ([][]grid.Slot, bool) {
	switch page {
	case grid.Numpad:
		return copyRows(c.t.grids.Numpad), true
	case grid.FuncPad:
		return copyRows(c.t.grids.Funcpad), true
	case grid.HypFuncPad:
		rows := copyRows(c.t.grids.Funcpad)
		for _, o := range c.t.grids.HypOverrides {
			if o.Row < len(rows) && o.Col < len(rows[o.Row]) {
				rows[o.Row][o.Col] = o.Slot
			}
		}
		return rows, true
	case grid.ConvPad:
		return copyRows(c.t.grids.Convpad), true
	case grid.ConstPad:
		return c.constPad(), true
	case grid.SIPad:
		return copyRows(c.t.grids.SIPad), true
	case grid.RomanUpperPad, grid.RomanLowerPad, grid.GreekUpperPad, grid.GreekLowerPad:
		return c.letterPad(page), true
	}
	return nil, false
}

// constPad lays constants six to a row, pads to 32 slots and finishes
// with the two by-name pickers.
func (c *Calculator) constPad() [][]grid.Slot {
	var slots []grid.Slot
	for _, k := range c.t.constants {
		if len(slots) >= 32 {
			break
		}
		help := k.Name + ": " + strconv.FormatFloat(k.Value, 'g', 10, 64)
		if k.Unit != "" {
			help += " " + k.Unit
		}
		slots = append(slots, grid.Slot{Command: "Const-" + k.Name, Display: k.Symbol, Help: help})
	}
	for len(slots) < 32 {
		slots = append(slots, grid.Nop)
	}
	slots = append(slots,
		grid.Slot{Command: "DensityByName", Display: "Material Density", Help: "Material Densities in kg/m³", DoubleWidth: true},
		grid.Slot{Command: "ConstByName", Display: "Add By Name", Help: "Choose a constant by name.", DoubleWidth: true},
	)
	var rows [][]grid.Slot
	for i := 0; i < 30; i += grid.Cols {
		rows = append(rows, slots[i:i+grid.Cols])
	}
	return append(rows, slots[30:])
}

// ShortcutKeys lists the key combinations bound to a command, shortest
// first.
func (c *Calculator) ShortcutKeys(command string) []string {
	if command == "NOP" || command == "" {
		return nil
	}
	switch command {
	case "store":
		command = "Store"
	case "recall":
		command = "Recall"
	}
	var found []string
	for _, km := range []map[string]binding{c.t.keys, c.t.siKeys} {
		for token, b := range km {
			b.each(func(prefix, cmd string) {
				if cmd == command || cmd == "EXT-"+command {
					found = append(found, prefix+token)
				}
			})
		}
	}
	slices.SortFunc(found, func(a, b string) int {
		if n := cmp.Compare(len(a), len(b)); n != 0 {
			return n
		}
		return strings.Compare(a, b)
	})
	return slices.Compact(found)
}

// ConversionCategories returns the category names in table order, with
// Currency last.
func (c *Calculator) ConversionCategories() []string {
	out := make([]string, 0, len(c.t.conversions)+1)
	for _, cat := range c.t.conversions {
		out = append(out, cat.Name)
	}
	return append(out, c.currency.Name)
}

// Units returns the unit names of a category.
func (c *Calculator) Units(category string) []string {
	cat, ok := c.category(category)
	if !ok {
		return nil
	}
	out := make([]string, len(cat.Units))
	for i, u := range cat.Units {
		out[i] = u.Name
	}
	return out
}

// ConstantCategories returns constant categories in order of first use.
func (c *Calculator) ConstantCategories() []string {
	var out []string
	seen := map[string]bool{}
	for _, k := range c.t.constants {
		if !seen[k.Category] {
			seen[k.Category] = true
			out = append(out, k.Category)
		}
	}
	return out
}

// Constants returns the constant names in a category.
func (c *Calculator) Constants(category string) []string {
	var out []string
	for _, k := range c.t.constants {
		if k.Category == category {
			out = append(out, k.Name)
		}
	}
	return out
}

// Densities returns the material names.
func (c *Calculator) Densities() []string {
	out := make([]string, len(c.t.densities))
	for i, d := range c.t.densities {
		out[i] = d.Name
	}
	return out
}

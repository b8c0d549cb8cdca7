package grid

import "strings"

// Keypad topology.
const (
	Rows = 6
	Cols = 6
)

// Slot is one engine-supplied control on a page.
type Slot struct {
	Row         int    `yaml:"-"`
	Col         int    `yaml:"-"`
	Command     string `yaml:"name"`
	Display     string `yaml:"display"`
	Help        string `yaml:"help"`
	Hidden      bool   `yaml:"hidden"`
	DoubleWidth bool   `yaml:"double"`
}

// Nop is the placeholder slot used for empty positions.
var Nop = Slot{Command: "NOP", Hidden: true}

// Position addresses one keypad cell.
type Position struct {
	Row, Col int
}

// Cell is one rendered keypad position. Span is 1 for an ordinary cell, 2
// for the first cell of a double-width slot and 0 for the cell it covers.
type Cell struct {
	Slot
	Enabled bool
	Span    int
}

// Grid is a populated keypad for one page.
type Grid struct {
	Page     Page
	Cells    [Rows][Cols]Cell
	commands map[Position]string
}

// HintFunc returns the shortcut-key hints for a command name.
type HintFunc func(command string) []string

// Populate lays out engine rows onto the 6x6 keypad. A double-width slot
// consumes its own column and the next; the covered cell is blank, disabled
// and has no command, and later slots in the row shift right by one. Hidden
// slots are disabled. Slots that overflow the row are dropped.
func Populate(page Page, rows [][]Slot, hints HintFunc) *Grid {
	g := &Grid{Page: page, commands: make(map[Position]string)}
	for r := range g.Cells {
		for c := range g.Cells[r] {
			g.Cells[r][c] = Cell{Slot: Slot{Row: r, Col: c}, Span: 1}
		}
	}

	for r, row := range rows {
		if r >= Rows {
			break
		}
		increment := 0
		for c, slot := range row {
			col := c + increment
			if col >= Cols {
				break
			}
			slot.Row, slot.Col = r, col
			slot.Help = withHints(slot.Help, slot.Command, hints)
			cell := Cell{Slot: slot, Span: 1}

			switch {
			case slot.Hidden:
				cell.Enabled = false
			case slot.DoubleWidth:
				cell.Enabled = true
				increment++
				if col+1 < Cols {
					cell.Span = 2
					g.Cells[r][col+1] = Cell{Slot: Slot{Row: r, Col: col + 1}, Span: 0}
				}
			default:
				cell.Enabled = true
			}

			g.Cells[r][col] = cell
			if cell.Enabled {
				g.commands[Position{r, col}] = slot.Command
			}
		}
	}
	return g
}

// withHints appends " (X or Y)" to help when the command has shortcuts.
func withHints(help, command string, hints HintFunc) string {
	if hints == nil || help == "" {
		return help
	}
	keys := hints(command)
	if len(keys) == 0 {
		return help
	}
	return help + " (" + strings.Join(keys, " or ") + ")"
}

// Command returns the command bound to the cell at (row, col).
func (g *Grid) Command(row, col int) (string, bool) {
	cmd, ok := g.commands[Position{row, col}]
	return cmd, ok
}

// Commands returns a copy of the position → command map.
func (g *Grid) Commands() map[Position]string {
	out := make(map[Position]string, len(g.commands))
	for k, v := range g.commands {
		out[k] = v
	}
	return out
}

// Owner returns the position of the cell that visually covers (row, col):
// the cell itself, or the double-width slot to its left.
func (g *Grid) Owner(row, col int) Position {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return Position{row, col}
	}
	if g.Cells[row][col].Span == 0 && col > 0 && g.Cells[row][col-1].Span == 2 {
		return Position{row, col - 1}
	}
	return Position{row, col}
}

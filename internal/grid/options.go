package grid

// OptionEntry is engine-owned metadata for one user option.
type OptionEntry struct {
	Key               string `yaml:"key"`
	Page              int    `yaml:"page"` // 0 for option page 1, 1 for option page 2
	Row               int    `yaml:"row"`
	Col               int    `yaml:"col"` // 0 or 3
	Help              string `yaml:"help"`
	RequiresRestart   bool   `yaml:"restart"`
	HideOnThisSurface bool   `yaml:"hide"`
}

// OptionCols is the number of option columns on an option page.
const OptionCols = 2

// OptionPage is one option screen: up to Rows x OptionCols entries.
type OptionPage struct {
	Number int // 1 or 2
	Cells  [Rows][OptionCols]*OptionEntry
}

// LayoutOptions places the visible entries belonging to option page number
// (1 or 2). Engine column 3 is the right-hand column.
func LayoutOptions(entries []OptionEntry, number int) OptionPage {
	op := OptionPage{Number: number}
	for i := range entries {
		e := entries[i]
		if e.HideOnThisSurface || e.Page != number-1 {
			continue
		}
		col := e.Col
		if col == 3 {
			col = 1
		}
		if e.Row < 0 || e.Row >= Rows || col < 0 || col >= OptionCols {
			continue
		}
		op.Cells[e.Row][col] = &e
	}
	return op
}

// At returns the entry at (row, col), if any.
func (op OptionPage) At(row, col int) (OptionEntry, bool) {
	if row < 0 || row >= Rows || col < 0 || col >= OptionCols {
		return OptionEntry{}, false
	}
	if e := op.Cells[row][col]; e != nil {
		return *e, true
	}
	return OptionEntry{}, false
}

package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/grid"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/tui/components"
)

// The page toggle sits in the bottom right option cell.
const (
	ToggleRow = grid.Rows - 1
	ToggleCol = grid.OptionCols - 1
)

// ToggleLabel is the page toggle's caption on option page number.
func ToggleLabel(number int) string {
	if number == 2 {
		return "Back…"
	}
	return "More…"
}

// RenderOptions renders an option page as Rows x 2 entries inside a
// width x (Rows*cellH) block. value returns an option's current setting.
func RenderOptions(op grid.OptionPage, value func(key string) string, width, cellH int, styles KeypadStyles) string {
	colW := width / grid.OptionCols
	rows := make([]string, 0, grid.Rows)
	for r := 0; r < grid.Rows; r++ {
		cells := make([]string, 0, grid.OptionCols)
		for c := 0; c < grid.OptionCols; c++ {
			w := colW
			if c == grid.OptionCols-1 {
				w = width - colW*(grid.OptionCols-1)
			}
			text := ""
			if e, ok := op.At(r, c); ok {
				text = optionText(e.Key, value(e.Key), w-1, cellH)
			} else if r == ToggleRow && c == ToggleCol {
				text = ToggleLabel(op.Number)
			}
			cells = append(cells, styles.Option.Width(w).Height(cellH).MaxWidth(w).Render(text))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// optionText puts the value under the label when there is room for two
// lines, and after it otherwise.
func optionText(key, val string, w, cellH int) string {
	if cellH >= 2 {
		return strings.Join([]string{components.Fit(key, w), components.Fit("  "+val, w)}, "\n")
	}
	return components.Fit(key+": "+val, w)
}

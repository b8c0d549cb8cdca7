package panels

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/grid"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/tui/components"
)

// KeypadStyles are the styles for keypad buttons and option entries.
type KeypadStyles struct {
	Key    lipgloss.Style
	Blank  lipgloss.Style
	Option lipgloss.Style
}

// RenderKeypad renders a populated grid as Rows x Cols buttons of cellW x
// cellH terminal cells. Disabled cells are blank; a double-width slot spans
// its own cell and the covered one. Each button keeps one column of gap on
// its right.
func RenderKeypad(g *grid.Grid, cellW, cellH int, styles KeypadStyles) string {
	rows := make([]string, 0, grid.Rows)
	for r := 0; r < grid.Rows; r++ {
		cells := make([]string, 0, grid.Cols)
		for c := 0; c < grid.Cols; c++ {
			cell := g.Cells[r][c]
			if cell.Span == 0 {
				continue
			}
			w := cellW * cell.Span
			if !cell.Enabled {
				cells = append(cells, styles.Blank.Width(w).Height(cellH).Render(""))
				continue
			}
			cells = append(cells, styles.Key.
				Width(w-1).
				Height(cellH).
				MarginRight(1).
				Render(components.Fit(label(cell), w-1)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func label(cell grid.Cell) string {
	if cell.Display != "" {
		return cell.Display
	}
	return cell.Command
}

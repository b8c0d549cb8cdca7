package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/picker"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/tui/components"
)

// Picker renders the open picker as a framed list over the keypad region.
// Lists longer than the frame scroll with the mouse wheel.
type Picker struct {
	vp     viewport.Model
	title  string
	count  int
	width  int // region width
	height int // region height
	boxW   int // frame width, borders included
}

// NewPicker lays out v inside a w x h region.
func NewPicker(v picker.View, w, h int) Picker {
	lines := make([]string, len(v.Items))
	widest := runewidth.StringWidth(v.Title)
	for i, it := range v.Items {
		prefix := "    "
		if it.Shortcut != "" {
			prefix = fmt.Sprintf("(%s) ", it.Shortcut)
		}
		lines[i] = prefix + it.Label
		if lw := runewidth.StringWidth(lines[i]); lw > widest {
			widest = lw
		}
	}

	boxW := widest + 4 // borders and one column of padding each side
	if boxW > w {
		boxW = w
	}
	inner := boxW - 4
	for i := range lines {
		lines[i] = components.Fit(lines[i], inner)
	}

	listH := h - 3 // borders and title
	if listH < 1 {
		listH = 1
	}
	vp := viewport.New(inner, listH)
	vp.SetContent(strings.Join(lines, "\n"))

	return Picker{
		vp:     vp,
		title:  components.Fit(v.Title, inner),
		count:  len(v.Items),
		width:  w,
		height: h,
		boxW:   boxW,
	}
}

// Update handles mouse wheel scrolling.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return p, cmd
}

// View renders the frame centred at the top of the region.
func (p Picker) View(frame lipgloss.Style) string {
	body := lipgloss.NewStyle().Bold(true).Render(p.title) + "\n" + p.vp.View()
	box := frame.
		Width(p.boxW - 2).
		Height(p.height - 2).
		Padding(0, 1).
		Render(body)
	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Top, box)
}

// ItemAt maps a position relative to the region's top-left corner to an
// item index.
func (p Picker) ItemAt(x, y int) (int, bool) {
	left := (p.width - p.boxW) / 2
	if x <= left || x >= left+p.boxW-1 {
		return 0, false
	}
	row := y - 2 // top border and title
	if row < 0 || row >= p.vp.Height {
		return 0, false
	}
	i := p.vp.YOffset + row
	if i >= p.count {
		return 0, false
	}
	return i, true
}

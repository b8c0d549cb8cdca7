package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/grid"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/tui/components"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/tui/panels"
)

// MinSize is the smallest terminal the calculator fits in.
func MinSize() (width, height int) {
	return MinButtonWidth * grid.Cols, chromeRows + grid.Rows + 1
}

// View renders the calculator column: status, stack, entry, tabs, keypad
// and footer, centred horizontally.
func (m Model) View() string {
	if m.layout.TooSmall {
		w, h := MinSize()
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least %dx%d.", m.width, m.height, w, h)
		return tooSmallStyle.Width(m.width).Render(msg)
	}

	l := m.layout
	state := m.disp.State()
	st := m.eng.Status()

	status := panels.RenderStatus(panels.StatusProps{
		Exponent:  st.Exponent,
		Angle:     st.Angle,
		Base:      st.Base,
		Page:      m.disp.Screen().Page.String(),
		StoreMode: storeModeLabel(state.StoreMode),
		Hyp:       state.Hyp,
	}, l.Status.Width, m.theme.StatusStyle())

	column := lipgloss.JoinVertical(lipgloss.Left,
		status,
		m.renderStack(),
		m.renderEntry(),
		m.tabs.View(),
		m.renderKeypad(),
		m.renderFooter(),
	)
	return lipgloss.NewStyle().PaddingLeft(l.Keypad.X).Render(column)
}

func (m Model) renderStack() string {
	l := m.layout.Stack
	d := m.eng.Display()
	content := m.stack.View()
	if d.AltBase != "" && l.Height > 1 {
		alt := altBaseStyle.Width(l.Width).Align(lipgloss.Right).Render(components.Fit(d.AltBase, l.Width))
		content = lipgloss.JoinVertical(lipgloss.Left, content, alt)
	}
	return lipgloss.NewStyle().
		Width(l.Width).
		Height(l.Height).
		MaxHeight(l.Height).
		AlignVertical(lipgloss.Bottom).
		Render(content)
}

func (m Model) renderEntry() string {
	w := m.layout.Entry.Width
	return entryStyle.Width(w).Align(lipgloss.Right).Render(components.Fit(m.eng.Display().Primary, w))
}

func (m Model) renderKeypad() string {
	l := m.layout
	if m.pickerOpen {
		return m.picker.View(m.theme.PickerStyle())
	}
	screen := m.disp.Screen()
	if screen.OptionPage != 0 {
		op := grid.LayoutOptions(m.eng.Options(), screen.OptionPage)
		return panels.RenderOptions(op, m.eng.OptionValue, l.Keypad.Width, l.CellHeight, m.theme.KeypadStyles())
	}
	return panels.RenderKeypad(screen.Keypad, l.CellWidth, l.CellHeight, m.theme.KeypadStyles())
}

func (m Model) renderFooter() string {
	props := panels.FooterProps{Help: m.help.View(m.keys)}
	if text, ok := m.notices.Current(); ok {
		props.Notice = text
		props.Pending = m.notices.Len() - 1
	}
	return panels.RenderFooter(props, m.layout.Footer.Width)
}

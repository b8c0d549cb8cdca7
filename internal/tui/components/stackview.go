package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// StackView is the scrollable stack display. It wraps bubbles/viewport and
// stays pinned to the bottom, where the entries nearest X are, until the
// user scrolls away.
type StackView struct {
	vp     viewport.Model
	lines  []string // top to bottom
	follow bool
	width  int
	height int
}

// NewStackView creates a StackView with the given dimensions.
func NewStackView(w, h int) StackView {
	return StackView{
		vp:     viewport.New(w, h),
		follow: true,
		width:  w,
		height: h,
	}
}

// SetLines replaces the displayed lines, given top to bottom. Fewer lines
// than the view height are bottom-aligned. New content re-pins the view.
func (v StackView) SetLines(lines []string) StackView {
	v.lines = make([]string, len(lines))
	copy(v.lines, lines)
	v.follow = true
	v.refresh()
	return v
}

func (v *StackView) refresh() {
	content := v.lines
	if pad := v.height - len(content); pad > 0 {
		content = append(make([]string, pad), content...)
	}
	v.vp.SetContent(strings.Join(content, "\n"))
	if v.follow {
		v.vp.GotoBottom()
	}
}

// SetSize resizes the view.
func (v StackView) SetSize(w, h int) StackView {
	if h < 1 {
		h = 1
	}
	v.width = w
	v.height = h
	v.vp.Width = w
	v.vp.Height = h
	v.refresh()
	return v
}

// Following reports whether the view is pinned to the bottom.
func (v StackView) Following() bool {
	return v.follow
}

// PageUp scrolls toward the deeper stack entries.
func (v StackView) PageUp() StackView {
	v.vp.ViewUp()
	v.follow = v.vp.AtBottom()
	return v
}

// PageDown scrolls back toward X.
func (v StackView) PageDown() StackView {
	v.vp.ViewDown()
	v.follow = v.vp.AtBottom()
	return v
}

// Update handles bubbletea messages (mouse wheel).
func (v StackView) Update(msg tea.Msg) (StackView, tea.Cmd) {
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		v.follow = v.vp.AtBottom()
	}
	return v, cmd
}

// View renders the stack view content.
func (v StackView) View() string {
	return v.vp.View()
}

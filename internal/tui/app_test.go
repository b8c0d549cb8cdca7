package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/dispatch"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/engine"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/grid"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/nav"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/notice"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/watch"
)

type memClipboard struct{ text string }

func (c *memClipboard) ReadAll() (string, error)   { return c.text, nil }
func (c *memClipboard) WriteAll(text string) error { c.text = text; return nil }

type fakeWaiter struct{ calls int }

func (w *fakeWaiter) Wait() tea.Cmd {
	w.calls++
	return func() tea.Msg { return nil }
}

func newTestModel(t *testing.T, opts Options) (Model, *engine.Calculator) {
	t.Helper()
	eng, err := engine.New()
	if err != nil {
		t.Fatal(err)
	}
	disp := dispatch.New(eng, dispatch.Options{Clipboard: &memClipboard{}})
	m := New(eng, disp, opts)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model), eng
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// typeKeys sends each rune as a key press, with '\n' as Enter and '\t'
// as Tab.
func typeKeys(t *testing.T, m Model, s string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, r := range s {
		msg := runeKey(r)
		switch r {
		case '\n':
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case '\t':
			msg = tea.KeyMsg{Type: tea.KeyTab}
		}
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

func click(m Model, x, y int) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	return updated.(Model), cmd
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func hasQuit(cmd tea.Cmd) bool {
	for _, msg := range collect(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

// cellOf finds the keypad cell bound to command and returns a terminal
// position inside it.
func cellOf(t *testing.T, m Model, command string) (int, int) {
	t.Helper()
	screen := m.disp.Screen()
	if screen.Keypad == nil {
		t.Fatalf("no keypad on %s", screen.Page)
	}
	for pos, cmd := range screen.Keypad.Commands() {
		if cmd == command {
			l := m.layout
			return l.Keypad.X + pos.Col*l.CellWidth + 1, l.Keypad.Y + pos.Row*l.CellHeight
		}
	}
	t.Fatalf("%s has no %q key", screen.Page, command)
	return 0, 0
}

func TestNew_Defaults(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	if m.opts.CellAspect != DefaultCellAspect {
		t.Errorf("CellAspect: got %v, want %v", m.opts.CellAspect, DefaultCellAspect)
	}
	if m.opts.StackLines != 5 {
		t.Errorf("StackLines: got %d, want 5", m.opts.StackLines)
	}
	if m.opts.NoticeDuration <= 0 {
		t.Error("NoticeDuration should default to a positive duration")
	}
	if m.layout.TooSmall {
		t.Error("80x24 should not be TooSmall")
	}
	if m.tabs.Active() != 0 {
		t.Errorf("active tab: got %d, want 0", m.tabs.Active())
	}
}

func TestInit(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	if cmd := m.Init(); cmd != nil {
		t.Error("Init() with nothing to load should return nil")
	}

	w := &fakeWaiter{}
	m, _ = newTestModel(t, Options{RatesFile: "rates.yaml", Watcher: w})
	if cmd := m.Init(); cmd == nil {
		t.Error("Init() should read rates and start watching")
	}
	if w.calls != 1 {
		t.Errorf("Wait calls: got %d, want 1", w.calls)
	}
}

func TestUpdate_WindowSize_TooSmall(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 30, Height: 8})
	if cmd != nil {
		t.Error("WindowSizeMsg should return nil cmd")
	}
	m2 := updated.(Model)
	if !m2.layout.TooSmall {
		t.Fatal("30x8 should be TooSmall")
	}
	if view := m2.View(); !strings.Contains(view, "Terminal too small (30x8)") {
		t.Errorf("View() = %q, want the too-small message", view)
	}
	if _, cmd := click(m2, 1, 1); cmd != nil {
		t.Error("clicks should be ignored while too small")
	}
}

func TestUpdate_Arithmetic(t *testing.T) {
	m, eng := newTestModel(t, Options{})
	m, _ = typeKeys(t, m, "12\n3+")

	if got := eng.Display().Primary; got != "15.0000" {
		t.Errorf("X: got %q, want 15.0000", got)
	}
	if view := m.View(); !strings.Contains(view, "15.0000") {
		t.Errorf("View() should show the result: %q", view)
	}
}

func TestUpdate_StackShownDeepestFirst(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = typeKeys(t, m, "1\n2\n3\n")

	view := m.View()
	one := strings.Index(view, "1.0000")
	two := strings.Index(view, "2.0000")
	if one < 0 || two < 0 || one > two {
		t.Errorf("deeper entries should render above nearer ones: %q", view)
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	t.Run("esc through the engine", func(t *testing.T) {
		m, _ := newTestModel(t, Options{})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if !hasQuit(cmd) {
			t.Error("Esc should quit")
		}
	})
	t.Run("ctrl+q", func(t *testing.T) {
		m, _ := newTestModel(t, Options{})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
		if !hasQuit(cmd) {
			t.Error("ctrl+q should quit")
		}
	})
	t.Run("esc closes a picker first", func(t *testing.T) {
		m, _ := newTestModel(t, Options{})
		m, _ = typeKeys(t, m, "k")
		if !m.pickerOpen {
			t.Fatal("k should open the constant picker")
		}
		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if hasQuit(cmd) {
			t.Error("Esc with a picker open should not quit")
		}
		if updated.(Model).pickerOpen {
			t.Error("Esc should close the picker")
		}
	})
}

func TestUpdate_StoreAndRecallByKeyboard(t *testing.T) {
	m, eng := newTestModel(t, Options{})
	m, cmd := typeKeys(t, m, "42s")

	if got := m.disp.State().StoreMode; got != nav.StoreStore {
		t.Fatalf("store mode: got %v, want store", got)
	}
	if cmd == nil {
		t.Error("the notice should schedule its expiry")
	}
	view := m.View()
	if got := m.disp.Screen().Page; got != grid.RomanUpperPad {
		t.Errorf("page: got %v, want romanupperpad", got)
	}
	for _, want := range []string{dispatch.NoticeSelectLocation, "STO", "ABC"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m, _ = typeKeys(t, m, "a")
	m, _ = typeKeys(t, m, "0\nra")
	if got := m.disp.State().Current; got != grid.Numpad {
		t.Errorf("page: got %v, want numpad", got)
	}
	if got := eng.Display().Primary; got != "42.0000" {
		t.Errorf("recalled X: got %q, want 42.0000", got)
	}
}

func TestUpdate_NoticeExpiry(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = typeKeys(t, m, "s")

	if _, ok := m.notices.Current(); !ok {
		t.Fatal("expected a visible notice")
	}

	updated, _ := m.Update(notice.ExpiredMsg{Gen: m.notices.Gen() + 5})
	m = updated.(Model)
	if _, ok := m.notices.Current(); !ok {
		t.Error("a stale expiry must not drop the notice")
	}

	updated, _ = m.Update(notice.ExpiredMsg{Gen: m.notices.Gen()})
	m = updated.(Model)
	if _, ok := m.notices.Current(); ok {
		t.Error("the notice should have expired")
	}
	if strings.Contains(m.View(), dispatch.NoticeSelectLocation) {
		t.Error("the footer should be back to help")
	}
}

func TestUpdate_EngineErrorNotice(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = typeKeys(t, m, "1\n0/")
	if !strings.Contains(m.View(), "Divide by zero error") {
		t.Error("divide by zero should surface as a notice")
	}
}

func TestMouse_KeypadPress(t *testing.T) {
	m, eng := newTestModel(t, Options{})
	x, y := cellOf(t, m, "7")
	m, _ = click(m, x, y)
	x, y = cellOf(t, m, "enter")
	m, _ = click(m, x, y)

	if got := eng.Display().Primary; got != "7.0000" {
		t.Errorf("X: got %q, want 7.0000", got)
	}

	// Releases and right clicks do nothing.
	before := eng.Display()
	x, y = cellOf(t, m, "7")
	updated, _ := m.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	m = updated.(Model)
	_, _ = m.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	if got := eng.Display(); got.Primary != before.Primary {
		t.Errorf("display changed from %q to %q", before.Primary, got.Primary)
	}
}

func TestMouse_Tabs(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	l := m.layout
	tabW := l.Tabs.Width / tabCount

	m, _ = click(m, l.Tabs.X+tabW*1+1, l.Tabs.Y)
	if got := m.disp.Screen().Page; got != grid.FuncPad {
		t.Fatalf("page: got %v, want funcpad", got)
	}
	if m.tabs.Active() != 1 {
		t.Errorf("active tab: got %d, want 1", m.tabs.Active())
	}

	// A handled command returns to the numeric pad.
	x, y := cellOf(t, m, "sqrt")
	m, _ = click(m, x, y)
	if got := m.disp.Screen().Page; got != grid.Numpad {
		t.Errorf("page after sqrt: got %v, want numpad", got)
	}
}

func TestMouse_OptionPage(t *testing.T) {
	m, eng := newTestModel(t, Options{})
	l := m.layout
	tabW := l.Tabs.Width / tabCount

	m, _ = click(m, l.Tabs.X+tabW*4+1, l.Tabs.Y)
	if got := m.disp.Screen().OptionPage; got != 1 {
		t.Fatalf("option page: got %d, want 1", got)
	}
	if !strings.Contains(m.View(), "More…") {
		t.Error("option page one should offer More…")
	}

	// Degrees or Radians sits at row 4, left column.
	m, _ = click(m, l.Keypad.X+1, l.Keypad.Y+4*l.CellHeight)
	if got := eng.OptionValue(engine.OptAngle); got != "radians" {
		t.Errorf("angle: got %q, want radians", got)
	}
	if !strings.Contains(m.View(), "RAD") {
		t.Error("status bar should show RAD")
	}

	m, _ = click(m, l.Keypad.X+l.Keypad.Width-2, l.Keypad.Y+5*l.CellHeight)
	if got := m.disp.Screen().OptionPage; got != 2 {
		t.Fatalf("option page: got %d, want 2", got)
	}
	if !strings.Contains(m.View(), "Back…") {
		t.Error("option page two should offer Back…")
	}
}

func TestPicker_ConstantByKeyAndMouse(t *testing.T) {
	m, eng := newTestModel(t, Options{})
	m, _ = typeKeys(t, m, "k")
	if !m.pickerOpen {
		t.Fatal("k should open the constant picker")
	}
	if view := m.View(); !strings.Contains(view, "Constant Category") || !strings.Contains(view, "(A) ") {
		t.Errorf("View() should show the picker: %q", view)
	}

	// Click the first category.
	l := m.layout
	for x := l.Keypad.X; x < l.Keypad.X+l.Keypad.Width; x++ {
		if i, ok := m.picker.ItemAt(x-l.Keypad.X, 2); ok && i == 0 {
			m, _ = click(m, x, l.Keypad.Y+2)
			break
		}
	}
	if !m.pickerOpen || m.pickerKey != "Constant" {
		t.Fatalf("the category should chain into the constant picker, got %q", m.pickerKey)
	}

	m, _ = typeKeys(t, m, "a")
	if m.pickerOpen {
		t.Error("choosing a constant should close the picker")
	}
	if got := eng.Display().Primary; got == "0.0000" {
		t.Error("the constant should have been pushed")
	}
}

func TestPicker_RepeatedOpenKey(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = typeKeys(t, m, "kk")
	if !m.pickerOpen || m.pickerKey != "Constant Category" {
		t.Fatalf("picker: got %q open=%v, want Constant Category", m.pickerKey, m.pickerOpen)
	}
	m, _ = typeKeys(t, m, "s\t")
	if got := m.disp.Screen().Page; got != grid.Numpad {
		t.Errorf("page: got %v, want numpad under the picker", got)
	}
	if _, ok := m.notices.Current(); ok {
		t.Error("no notice should be raised under the picker")
	}
}

func TestPicker_ModalClicks(t *testing.T) {
	m, eng := newTestModel(t, Options{})
	m, _ = typeKeys(t, m, "k")
	before := eng.Display().Primary

	l := m.layout
	m, _ = click(m, l.Tabs.X+1, l.Tabs.Y)
	if !m.pickerOpen {
		t.Error("clicks outside the picker should not close it")
	}
	if got := eng.Display().Primary; got != before {
		t.Errorf("display changed to %q", got)
	}
}

func TestUpdate_Rates(t *testing.T) {
	valid := []byte("date: \"2024-06-01\"\nbase: GB Pounds\nrates:\n  US Dollars: 1.25\n")

	t.Run("accepted table", func(t *testing.T) {
		m, eng := newTestModel(t, Options{})
		updated, _ := m.Update(ratesReadMsg{path: "rates.yaml", data: valid})
		m = updated.(Model)
		if _, ok := m.notices.Current(); ok {
			t.Error("an accepted table should not raise a notice")
		}
		units := eng.Units(engine.CurrencyCategory)
		if len(units) != 2 || units[0] != "GB Pounds" {
			t.Errorf("currency units: got %v", units)
		}
	})

	t.Run("rejected table", func(t *testing.T) {
		m, _ := newTestModel(t, Options{})
		updated, _ := m.Update(ratesReadMsg{path: "rates.yaml", data: []byte("date: \"2024-06-01\"\nbase: GB Pounds\nrates: {}\n")})
		m = updated.(Model)
		if _, ok := m.notices.Current(); !ok {
			t.Error("a rejected table should raise a notice")
		}
	})

	t.Run("unreadable file", func(t *testing.T) {
		m, _ := newTestModel(t, Options{})
		updated, cmd := m.Update(ratesReadMsg{path: "rates.yaml", err: errUnreadable})
		m = updated.(Model)
		if text, _ := m.notices.Current(); text != NoticeRatesUnreadable {
			t.Errorf("notice: got %q, want %q", text, NoticeRatesUnreadable)
		}
		if cmd == nil {
			t.Error("the notice should schedule its expiry")
		}
	})

	t.Run("file change re-reads and re-arms", func(t *testing.T) {
		path := t.TempDir() + "/rates.yaml"
		w := &fakeWaiter{}
		m, _ := newTestModel(t, Options{RatesFile: path, Watcher: w})
		_, cmd := m.Update(watch.ChangedMsg{Path: path})
		if cmd == nil {
			t.Fatal("expected commands")
		}
		if w.calls != 1 {
			t.Errorf("Wait calls: got %d, want 1", w.calls)
		}
		var read bool
		for _, msg := range collect(cmd) {
			if r, ok := msg.(ratesReadMsg); ok {
				read = true
				if r.err == nil {
					t.Error("reading a missing file should fail")
				}
			}
		}
		if !read {
			t.Error("expected a ratesReadMsg")
		}
	})
}

var errUnreadable = &unreadableError{}

type unreadableError struct{}

func (*unreadableError) Error() string { return "permission denied" }

func TestUpdate_StackScroll(t *testing.T) {
	m, _ := newTestModel(t, Options{StackLines: 2})
	m, _ = typeKeys(t, m, "1\n2\n3\n4\n5\n")
	if !m.stack.Following() {
		t.Fatal("the stack should start pinned")
	}
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	m = updated.(Model)
	if m.stack.Following() {
		t.Error("pgup should scroll away from X")
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m = updated.(Model)
	if !m.stack.Following() {
		t.Error("pgdown should scroll back")
	}
}

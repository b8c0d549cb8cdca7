package tui

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/dispatch"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/engine"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/grid"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/keys"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/notice"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/tui/components"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/tui/panels"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/watch"
)

// NoticeRatesUnreadable is shown when the rates file cannot be read.
const NoticeRatesUnreadable = "Cannot read rates file"

// Waiter delivers file change notifications as bubbletea commands.
type Waiter interface {
	Wait() tea.Cmd
}

// Options configures the TUI. Zero fields get working defaults.
type Options struct {
	AccentColor    string
	CellAspect     float64
	StackLines     int
	NoticeDuration time.Duration
	RatesFile      string // read at start when set
	Watcher        Waiter // nil disables reloading RatesFile
	Logger         *slog.Logger
}

// Model is the root bubbletea model for the calculator TUI.
type Model struct {
	eng  engine.Engine
	disp *dispatch.Dispatcher
	opts Options

	// Layout and rendering
	layout Layout
	theme  Theme
	width  int
	height int

	// Regions
	stack      components.StackView
	tabs       components.TabBar
	picker     panels.Picker
	pickerOpen bool
	pickerKey  string // title of the picker the panel was built for
	help       help.Model
	keys       keyMap

	notices notice.Queue
	log     *slog.Logger
}

// New creates the TUI Model around a dispatcher driving eng.
func New(eng engine.Engine, disp *dispatch.Dispatcher, opts Options) Model {
	if !(opts.CellAspect > 0) {
		opts.CellAspect = DefaultCellAspect
	}
	if opts.StackLines < 1 {
		opts.StackLines = 5
	}
	if opts.NoticeDuration <= 0 {
		opts.NoticeDuration = 2 * time.Second
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	th := NewTheme(opts.AccentColor)
	m := Model{
		eng:    eng,
		disp:   disp,
		opts:   opts,
		theme:  th,
		width:  80,
		height: 24,
		stack:  components.NewStackView(1, 1),
		tabs:   components.NewTabBar(tabLabels).SetStyles(th.TabStyles()),
		help:   help.New(),
		keys:   defaultKeyMap(),
		log:    log,
	}
	return m.resize(80, 24).sync()
}

// Init returns the initial commands: the first rates read and the file
// watcher.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.opts.RatesFile != "" {
		cmds = append(cmds, readRates(m.opts.RatesFile))
	}
	if m.opts.Watcher != nil {
		cmds = append(cmds, m.opts.Watcher.Wait())
	}
	return tea.Batch(cmds...)
}

// readRates loads a rates file off the update loop.
func readRates(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return ratesReadMsg{path: path, data: data, err: err}
	}
}

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height).sync(), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case notice.ExpiredMsg:
		if m.notices.Expire(msg.Gen) {
			return m, m.notices.Schedule(m.opts.NoticeDuration)
		}
		return m, nil
	case watch.ChangedMsg:
		m.log.Debug("rates file changed", "path", msg.Path)
		var cmds []tea.Cmd
		if m.opts.RatesFile != "" {
			cmds = append(cmds, readRates(m.opts.RatesFile))
		}
		if m.opts.Watcher != nil {
			cmds = append(cmds, m.opts.Watcher.Wait())
		}
		return m, tea.Batch(cmds...)
	case ratesReadMsg:
		return m.handleRatesRead(msg)
	}
	return m, nil
}

func (m Model) resize(width, height int) Model {
	m.width = width
	m.height = height
	m.layout = Calculate(width, height, m.opts.CellAspect)
	m.tabs = m.tabs.SetWidth(m.layout.Tabs.Width)
	m.help.Width = m.layout.Footer.Width
	m.pickerKey = "" // rebuild for the new keypad size
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+q":
		return m, tea.Quit
	case "pgup":
		m.stack = m.stack.PageUp()
		return m, nil
	case "pgdown":
		m.stack = m.stack.PageDown()
		return m, nil
	}

	code, mods, ok := keys.FromKeyMsg(msg)
	if !ok {
		m.log.Debug("ignored key message", "key", msg.String(), "paste", msg.Paste)
		return m, nil
	}
	m.disp.OnRawInput(code, mods)
	return m.afterDispatch()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.layout.TooSmall {
		return m, nil
	}
	x, y := msg.X, msg.Y

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		switch {
		case m.pickerOpen && m.layout.Keypad.Contains(x, y):
			m.picker, cmd = m.picker.Update(msg)
		case m.layout.Stack.Contains(x, y):
			m.stack, cmd = m.stack.Update(msg)
		}
		return m, cmd
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
	default:
		return m, nil
	}

	// The picker is modal: only its items respond.
	if m.pickerOpen {
		if !m.layout.Keypad.Contains(x, y) {
			return m, nil
		}
		if i, ok := m.picker.ItemAt(x-m.layout.Keypad.X, y-m.layout.Keypad.Y); ok {
			m.disp.ActivatePicker(i)
			return m.afterDispatch()
		}
		return m, nil
	}

	if i, ok := m.layout.TabAt(x, y); ok {
		m.disp.SelectPage(tabPages[i])
		return m.afterDispatch()
	}

	screen := m.disp.Screen()
	if screen.OptionPage != 0 {
		r, c, ok := m.layout.OptionCell(x, y)
		if !ok {
			return m, nil
		}
		op := grid.LayoutOptions(m.eng.Options(), screen.OptionPage)
		if e, found := op.At(r, c); found {
			m.disp.ClickOption(e.Key)
		} else if r == panels.ToggleRow && c == panels.ToggleCol {
			m.disp.ToggleOptionPage()
		}
		return m.afterDispatch()
	}

	r, c, ok := m.layout.KeypadCell(x, y)
	if !ok || screen.Keypad == nil {
		return m, nil
	}
	pos := screen.Keypad.Owner(r, c)
	if cmd, found := screen.Keypad.Command(pos.Row, pos.Col); found {
		m.disp.Press(cmd)
		return m.afterDispatch()
	}
	return m, nil
}

func (m Model) handleRatesRead(msg ratesReadMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Warn("rates file unreadable", "path", msg.path, "error", msg.err)
		var cmd tea.Cmd
		if m.notices.Push(NoticeRatesUnreadable) {
			cmd = m.notices.Schedule(m.opts.NoticeDuration)
		}
		return m, cmd
	}
	m.disp.IngestTable(msg.data)
	return m.afterDispatch()
}

// afterDispatch re-reads everything the dispatcher may have changed and
// schedules the resulting notices.
func (m Model) afterDispatch() (tea.Model, tea.Cmd) {
	m = m.sync()
	var cmds []tea.Cmd
	for _, text := range m.disp.TakeNotices() {
		if m.notices.Push(text) {
			cmds = append(cmds, m.notices.Schedule(m.opts.NoticeDuration))
		}
	}
	if m.disp.Quit() {
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

// sync copies engine and navigation state into the region components.
func (m Model) sync() Model {
	if m.layout.TooSmall {
		return m
	}
	screen := m.disp.Screen()
	m.tabs = m.tabs.SetLabels(tabLabelsFor(screen.StorageIcons)).SetActive(activeTab(screen.Page))

	d := m.eng.Display()
	w := m.layout.Stack.Width
	lines := make([]string, len(d.Stack))
	for i, v := range d.Stack {
		// Stack is nearest first; the view runs deepest first.
		lines[len(d.Stack)-1-i] = stackStyle.Width(w).Align(lipgloss.Right).Render(components.Fit(v, w))
	}
	m.stack = m.stack.SetSize(w, m.stackViewHeight(d)).SetLines(lines)

	if v, ok := m.disp.Picker(); ok {
		if !m.pickerOpen || m.pickerKey != v.Title {
			m.picker = panels.NewPicker(v, m.layout.Keypad.Width, m.layout.Keypad.Height)
			m.pickerKey = v.Title
		}
		m.pickerOpen = true
	} else {
		m.pickerOpen = false
		m.pickerKey = ""
	}
	return m
}

// stackViewHeight is the number of stack rows shown: at most StackLines,
// leaving a row for the alternate-base line when it is present.
func (m Model) stackViewHeight(d engine.Display) int {
	h := m.layout.Stack.Height
	if d.AltBase != "" && h > 1 {
		h--
	}
	if h > m.opts.StackLines {
		h = m.opts.StackLines
	}
	return h
}

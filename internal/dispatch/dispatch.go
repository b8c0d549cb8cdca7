// Package dispatch is the top-level input coordinator. It receives resolved
// keys and keypad clicks, offers them to the open picker, forwards the rest
// to the engine and applies the returned directive to the navigation state.
package dispatch

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/engine"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/grid"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/keylog"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/keys"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/nav"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/picker"
)

// Notice texts raised by the dispatcher itself.
const (
	NoticeSelectLocation = "Please select location"
	NoticeRestart        = "Restart for changes to take effect"
	NoticeBadPaste       = "Cannot parse pasted value"
	NoticeNoClipboard    = "Clipboard unavailable"
)

// Options configures a Dispatcher. Zero fields get working defaults.
type Options struct {
	Clipboard Clipboard
	Logger    *slog.Logger
	KeyLog    keylog.Writer
	Now       func() time.Time
}

// Dispatcher owns the navigation state and the picker slot. It is not safe
// for concurrent use; the TUI calls it from Update only.
type Dispatcher struct {
	eng    engine.Engine
	nav    nav.Navigator
	state  nav.State
	screen nav.Screen
	picker picker.Host

	clip    Clipboard
	log     *slog.Logger
	keylog  keylog.Writer
	now     func() time.Time
	notices []string
	quit    bool
}

// New returns a Dispatcher showing the numeric pad.
func New(eng engine.Engine, opts Options) *Dispatcher {
	d := &Dispatcher{
		eng:    eng,
		nav:    nav.New(eng),
		state:  nav.Initial(),
		clip:   opts.Clipboard,
		log:    opts.Logger,
		keylog: opts.KeyLog,
		now:    opts.Now,
	}
	if d.clip == nil {
		d.clip = SystemClipboard{}
	}
	if d.log == nil {
		d.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.now == nil {
		d.now = time.Now
	}
	d.screen = d.nav.Render(d.state)
	return d
}

// State returns the navigation state.
func (d *Dispatcher) State() nav.State { return d.state }

// Screen returns what should be rendered.
func (d *Dispatcher) Screen() nav.Screen { return d.screen }

// Picker returns the open picker's view.
func (d *Dispatcher) Picker() (picker.View, bool) { return d.picker.Current() }

// Quit reports whether a Quit directive has been applied.
func (d *Dispatcher) Quit() bool { return d.quit }

// TakeNotices returns the notices raised since the last call.
func (d *Dispatcher) TakeNotices() []string {
	n := d.notices
	d.notices = nil
	return n
}

// Refresh re-renders the committed page, e.g. after an option changed the
// engine's grids.
func (d *Dispatcher) Refresh() {
	d.screen = d.nav.Render(d.state)
}

// OnRawInput resolves a raw key code and dispatches it. Unresolved codes
// are logged and dropped.
func (d *Dispatcher) OnRawInput(code int, mods keys.Modifiers) {
	k, err := keys.Resolve(code, mods)
	if err != nil {
		d.log.Debug("unresolved key", "code", code, "modifiers", mods.Tag(), "error", err)
		return
	}
	d.OnKey(k)
}

// OnKey dispatches a resolved key.
func (d *Dispatcher) OnKey(k keys.Key) {
	page := d.state.Current

	if d.picker.IsOpen() && d.picker.HandleKey(k.Token) {
		d.record(keylog.Entry{Token: k.Token, Modifier: k.Modifier, Page: page.String(), Directive: "picker"})
		return
	}

	if page.IsLetterPad() && k.Modifier == keys.Plain {
		if slot, ok := d.eng.SlotForKey(k.Token, page); ok {
			ec := d.consumeSlot(slot)
			d.record(keylog.Entry{Token: k.Token, Modifier: k.Modifier, Page: page.String(), Directive: "slot", Err: errName(ec)})
			return
		}
	}

	res := d.eng.HandleKey(k.Token, k.Modifier, page)
	d.log.Debug("key", "key", k.String(), "page", page, "directive", res.Directive, "error", res.Err)
	d.record(keylog.Entry{Token: k.Token, Modifier: k.Modifier, Page: page.String(), Directive: res.Directive.String(), Err: errName(res.Err)})
	d.apply(res.Directive)
	d.surface(res.Err, k.String())
}

func (d *Dispatcher) apply(dir engine.Directive) {
	if d.picker.IsOpen() && overlays(dir) {
		d.log.Debug("directive ignored under open picker", "directive", dir)
		return
	}
	switch dir {
	case engine.NotHandled:
	case engine.Handled:
		d.state, d.screen = d.nav.AfterHandled(d.state)
	case engine.Cancel:
		d.state, d.screen = d.nav.Cancel(d.state)
	case engine.NextTab:
		d.state, d.screen = d.nav.NextTab(d.state)
	case engine.MoreConversions:
		d.moreConversions()
	case engine.ConstByName:
		d.constByName()
	case engine.DensityByName:
		d.densityByName()
	case engine.SelectSI:
		d.selectSI()
	case engine.Store:
		d.enterStoreMode(nav.StoreStore)
	case engine.Recall:
		d.enterStoreMode(nav.StoreRecall)
	case engine.CopyToClipboard:
		d.copy()
	case engine.PasteFromClipboard:
		d.paste()
	case engine.Quit:
		d.quit = true
	default:
		d.log.Warn("unknown directive", "directive", dir)
	}
}

// Press handles a keypad click on the slot bound to command.
func (d *Dispatcher) Press(command string) {
	page := d.state.Current
	if d.picker.IsOpen() && overlayCommands[command] {
		d.log.Debug("press ignored under open picker", "command", command)
		return
	}
	handled := true
	var ec engine.ErrorCode

	switch command {
	case "SI":
		d.selectSI()
	case "hypmode":
		d.state, d.screen = d.nav.ToggleHyp(d.state)
	case "store":
		d.enterStoreMode(nav.StoreStore)
	case "recall":
		d.enterStoreMode(nav.StoreRecall)
	case "NOP":
	case "CANCEL":
		d.state, d.screen = d.nav.Cancel(d.state)
	case "MoreConversions":
		d.moreConversions()
	case "ConstByName":
		d.constByName()
	case "DensityByName":
		d.densityByName()
	default:
		handled = false
	}

	if !handled && strings.HasPrefix(command, "Store") {
		handled = true
		ec = d.consumeSlot(command)
	}

	if command != "store" && command != "recall" {
		d.state.StoreMode = nav.StoreNone
	}

	if !handled {
		d.state.Hyp = false
		ec = d.eng.Command(command)
		d.surface(ec, command)
		d.state, d.screen = d.nav.AfterHandled(d.state)
	}
	d.record(keylog.Entry{Command: command, Page: page.String(), Directive: "press", Err: errName(ec)})
}

// SelectPage handles a tab click.
func (d *Dispatcher) SelectPage(p grid.Page) {
	d.state, d.screen = d.nav.Select(d.state, p)
}

// ToggleOptionPage flips between the two option pages.
func (d *Dispatcher) ToggleOptionPage() {
	d.state, d.screen = d.nav.ToggleOptionPage(d.state)
}

// ClickOption advances an option through the engine.
func (d *Dispatcher) ClickOption(key string) {
	if ec := d.eng.ToggleOption(key); ec != engine.NoError {
		d.surface(ec, key)
		return
	}
	for _, o := range d.eng.Options() {
		if o.Key == key && o.RequiresRestart {
			d.notify(NoticeRestart)
		}
	}
	d.log.Info("option changed", "key", key, "value", d.eng.OptionValue(key))
}

// ActivatePicker selects the picker item at index, as a mouse click.
func (d *Dispatcher) ActivatePicker(index int) bool {
	return d.picker.Activate(index)
}

// CancelPicker closes the open picker without selecting.
func (d *Dispatcher) CancelPicker() { d.picker.Cancel() }

// IngestTable hands an external rates table to the engine. A rejection is
// surfaced as a notice and returned.
func (d *Dispatcher) IngestTable(data []byte) string {
	msg := d.eng.IngestTable(data)
	if msg != "" {
		d.log.Warn("rates table rejected", "reason", msg)
		d.notify(msg)
		return msg
	}
	d.log.Info("rates table ingested", "bytes", len(data))
	return ""
}

// overlays reports whether dir changes the page or opens a picker. Those
// directives are dropped while a picker is open; the picker keeps the
// screen until it is answered or cancelled.
func overlays(dir engine.Directive) bool {
	switch dir {
	case engine.NextTab, engine.MoreConversions, engine.ConstByName, engine.DensityByName,
		engine.SelectSI, engine.Store, engine.Recall:
		return true
	}
	return false
}

// overlayCommands are the keypad commands that overlays covers for clicks.
var overlayCommands = map[string]bool{
	"SI":              true,
	"store":           true,
	"recall":          true,
	"MoreConversions": true,
	"ConstByName":     true,
	"DensityByName":   true,
}

func (d *Dispatcher) selectSI() {
	d.state.StoreMode = nav.StoreNone
	d.state, d.screen = d.nav.Select(d.state, grid.SIPad)
}

func (d *Dispatcher) enterStoreMode(mode nav.StoreMode) {
	d.state, d.screen = d.nav.EnterStoreMode(d.state, mode)
	if d.screen.Page.IsLetterPad() {
		d.notify(NoticeSelectLocation)
	}
}

// consumeSlot issues the pending store or recall for slot and returns to
// the numeric pad.
func (d *Dispatcher) consumeSlot(slot string) engine.ErrorCode {
	var ec engine.ErrorCode
	switch d.state.StoreMode {
	case nav.StoreStore:
		ec = d.eng.Store(slot)
	case nav.StoreRecall:
		ec = d.eng.Recall(slot)
	}
	d.surface(ec, slot)
	d.state, d.screen = d.nav.ConsumeSlot(d.state)
	return ec
}

func (d *Dispatcher) moreConversions() {
	d.picker.Open(picker.Request{
		Title:   "Conversion Category",
		Options: d.eng.ConversionCategories(),
		OnSelect: func(category string) {
			units := d.eng.Units(category)
			d.picker.Open(picker.Request{
				Title:   "Convert from",
				Options: units,
				OnSelect: func(from string) {
					d.picker.Open(picker.Request{
						Title:   "Convert to",
						Options: units,
						OnSelect: func(to string) {
							d.Press("Convert_" + category + "_" + from + "_" + to)
						},
					})
				},
			})
		},
	})
}

func (d *Dispatcher) constByName() {
	d.picker.Open(picker.Request{
		Title:   "Constant Category",
		Options: d.eng.ConstantCategories(),
		OnSelect: func(category string) {
			d.picker.Open(picker.Request{
				Title:   "Constant",
				Options: d.eng.Constants(category),
				OnSelect: func(name string) {
					d.Press("Const-" + name)
				},
			})
		},
	})
}

func (d *Dispatcher) densityByName() {
	d.picker.Open(picker.Request{
		Title:   "Material",
		Options: d.eng.Densities(),
		OnSelect: func(name string) {
			d.Press("Density-" + name)
		},
	})
}

func (d *Dispatcher) copy() {
	if err := d.clip.WriteAll(d.eng.CopyText()); err != nil {
		d.log.Warn("clipboard write failed", "error", err)
		d.notify(NoticeNoClipboard)
	}
}

func (d *Dispatcher) paste() {
	text, err := d.clip.ReadAll()
	if err != nil {
		d.log.Warn("clipboard read failed", "error", err)
		d.notify(NoticeNoClipboard)
		return
	}
	if !d.eng.PushText(text) {
		d.notify(NoticeBadPaste)
	}
}

// surface raises the notice for an engine error. Errors never change the
// navigation state.
func (d *Dispatcher) surface(ec engine.ErrorCode, command string) {
	if ec == engine.NoError {
		return
	}
	d.log.Info("engine error", "command", command, "error", ec)
	d.notify(ec.Message(command))
}

func (d *Dispatcher) notify(text string) {
	d.notices = append(d.notices, text)
}

func (d *Dispatcher) record(e keylog.Entry) {
	if d.keylog == nil {
		return
	}
	e.Time = d.now()
	if err := d.keylog.Append(e); err != nil {
		d.log.Warn("key log append failed", "error", err)
	}
}

func errName(ec engine.ErrorCode) string {
	if ec == engine.NoError {
		return ""
	}
	return ec.String()
}

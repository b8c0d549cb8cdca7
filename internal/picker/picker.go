// Package picker implements the modal list chooser. At most one picker is
// open at a time; the first 26 options carry A–Z shortcuts.
package picker

// MaxShortcuts is the number of options that receive a letter shortcut.
const MaxShortcuts = 26

// Request describes a picker to open.
type Request struct {
	Title    string
	Options  []string
	OnSelect func(option string)
}

// Item is one rendered option.
type Item struct {
	Label    string
	Shortcut string // "A".."Z", empty past the 26th option
}

// View is the render-side snapshot of the open picker.
type View struct {
	Title string
	Items []Item
}

// Host holds the single open picker, if any.
type Host struct {
	open *Request
}

// Open shows req. Opening while another picker is open is a programming
// error and panics.
func (h *Host) Open(req Request) {
	if h.open != nil {
		panic("picker: already open")
	}
	h.open = &req
}

// IsOpen reports whether a picker is showing.
func (h *Host) IsOpen() bool { return h.open != nil }

// Current returns the open picker's view.
func (h *Host) Current() (View, bool) {
	if h.open == nil {
		return View{}, false
	}
	v := View{Title: h.open.Title, Items: make([]Item, len(h.open.Options))}
	for i, opt := range h.open.Options {
		v.Items[i] = Item{Label: opt, Shortcut: shortcut(i)}
	}
	return v, true
}

// HandleKey offers a key token to the open picker and reports whether it
// was consumed. Esc closes without a callback; a letter naming an item
// selects it. Anything else is left for the caller.
func (h *Host) HandleKey(token string) bool {
	if h.open == nil {
		return false
	}
	if token == "Esc" {
		h.Cancel()
		return true
	}
	if len(token) != 1 || token[0] < 'A' || token[0] > 'Z' {
		return false
	}
	return h.Activate(int(token[0] - 'A'))
}

// Activate selects the item at index. The picker is closed before the
// callback runs so the callback may open the next picker in a chain.
func (h *Host) Activate(index int) bool {
	if h.open == nil || index < 0 || index >= len(h.open.Options) {
		return false
	}
	req := *h.open
	h.open = nil
	if req.OnSelect != nil {
		req.OnSelect(req.Options[index])
	}
	return true
}

// Cancel closes the picker without a callback.
func (h *Host) Cancel() { h.open = nil }

func shortcut(i int) string {
	if i < 0 || i >= MaxShortcuts {
		return ""
	}
	return string(rune('A' + i))
}

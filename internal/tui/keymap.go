package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shown in the footer. Only Stack and Quit are
// handled by the TUI itself; the rest describe engine key table entries
// and reach the engine through the dispatcher.
type keyMap struct {
	Enter   key.Binding
	NextTab key.Binding
	Store   key.Binding
	Recall  key.Binding
	Copy    key.Binding
	Paste   key.Binding
	Stack   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "push")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pad")),
		Store:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "store")),
		Recall:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recall")),
		Copy:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^c", "copy")),
		Paste:   key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("^v", "paste")),
		Stack:   key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "stack")),
		Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+q"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.NextTab, k.Store, k.Recall, k.Copy, k.Paste, k.Stack, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.NextTab, k.Store, k.Recall},
		{k.Copy, k.Paste, k.Stack, k.Quit},
	}
}

// tuiKeys are handled before the dispatcher sees a key: ctrl+q always
// quits, pgup and pgdown scroll the stack.
var tuiKeys = map[string]bool{"ctrl+q": true, "pgup": true, "pgdown": true}

// IsTUIKey reports whether key is handled by the TUI rather than the engine.
func IsTUIKey(key string) bool {
	return tuiKeys[key]
}

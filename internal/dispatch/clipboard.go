package dispatch

import "github.com/atotto/clipboard"

// Clipboard is the system clipboard as seen by the Copy and Paste
// directives.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the host clipboard (pbcopy, xclip, wl-copy, ...).
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

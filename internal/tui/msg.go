package tui

// ratesReadMsg carries the contents of the rates file.
type ratesReadMsg struct {
	path string
	data []byte
	err  error
}

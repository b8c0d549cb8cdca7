// Package watch reports changes to a single file. The parent directory is
// watched so that editors which replace the file on save are still seen.
package watch

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// ChangedMsg is delivered to the TUI when the watched file has settled
// after a change.
type ChangedMsg struct {
	Path string
}

// Watcher watches one file.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	deb     *debouncer
	changed chan struct{}
	done    chan struct{}
	log     *slog.Logger
	once    sync.Once
}

// New starts watching path. debounce <= 0 uses DefaultDebounce. A nil
// logger discards.
func New(path string, debounce time.Duration, log *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch: add %q: %w", filepath.Dir(abs), err)
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	w := &Watcher{
		path:    abs,
		fs:      fw,
		deb:     newDebouncer(debounce),
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
		log:     log,
	}
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Changed delivers one value per settled change. Changes that arrive while
// a previous one is unread are merged.
func (w *Watcher) Changed() <-chan struct{} { return w.changed }

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.deb.trigger(w.signal)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watch error", "path", w.path, "error", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) signal() {
	select {
	case w.changed <- struct{}{}:
	default:
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		w.deb.cancel()
		err = w.fs.Close()
	})
	return err
}

// Wait returns a command that blocks until the next change and reports it
// as a ChangedMsg. Re-issue it after each message to keep watching. The
// command yields nil once the watcher is closed.
func (w *Watcher) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-w.changed:
			return ChangedMsg{Path: w.path}
		case <-w.done:
			return nil
		}
	}
}

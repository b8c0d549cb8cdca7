// Package notice is the transient message queue shown in the footer. Notices
// are shown one at a time in arrival order; each expires after a fixed
// duration via a generation-tagged tick so stale ticks are ignored.
package notice

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ExpiredMsg is delivered when the notice shown at generation Gen has been
// on screen for its full duration.
type ExpiredMsg struct {
	Gen int
}

// Queue is a FIFO of notice texts. The zero value is ready to use.
type Queue struct {
	items []string
	gen   int
}

// Push appends text. It reports whether text became the visible notice,
// in which case the caller should schedule its expiry.
func (q *Queue) Push(text string) bool {
	if text == "" {
		return false
	}
	q.items = append(q.items, text)
	return len(q.items) == 1
}

// Current returns the visible notice.
func (q *Queue) Current() (string, bool) {
	if len(q.items) == 0 {
		return "", false
	}
	return q.items[0], true
}

// Len returns the number of queued notices, the visible one included.
func (q *Queue) Len() int { return len(q.items) }

// Gen returns the generation of the visible notice.
func (q *Queue) Gen() int { return q.gen }

// Expire drops the visible notice if gen is current. It reports whether
// another notice is now visible and needs its own expiry scheduled.
func (q *Queue) Expire(gen int) bool {
	if gen != q.gen || len(q.items) == 0 {
		return false
	}
	q.items = q.items[1:]
	q.gen++
	return len(q.items) > 0
}

// Schedule returns a command that reports expiry of the visible notice
// after d.
func (q *Queue) Schedule(d time.Duration) tea.Cmd {
	gen := q.gen
	return tea.Tick(d, func(time.Time) tea.Msg { return ExpiredMsg{Gen: gen} })
}

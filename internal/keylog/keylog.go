// Package keylog records dispatched input to an append-only JSONL file and
// reads it back for summaries. One log file is created per rpncalc process.
package keylog

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Entry is one dispatched input.
type Entry struct {
	Time      time.Time `json:"time"`
	Token     string    `json:"token,omitempty"`
	Modifier  string    `json:"modifier,omitempty"`
	Command   string    `json:"command,omitempty"` // set for keypad clicks
	Page      string    `json:"page"`
	Directive string    `json:"directive"`
	Err       string    `json:"error,omitempty"`
}

// Writer persists entries.
type Writer interface {
	Append(e Entry) error
	Close() error
}

// JSONL is a Writer backed by an append-only JSONL file. The file is synced
// after every Append so a killed process loses at most the entry in flight.
type JSONL struct {
	file   *os.File
	mu     sync.Mutex
	path   string
	counts map[string]int // directive → entries appended this session
}

// NewJSONL creates the session log in dir, creating dir if needed. The file
// is named "<unix-timestamp>-<pid>.jsonl".
func NewJSONL(dir string) (*JSONL, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("keylog: mkdir %q: %w", dir, err)
	}
	name := fmt.Sprintf("%d-%d.jsonl", time.Now().Unix(), os.Getpid())
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("keylog: open %q: %w", path, err)
	}
	return &JSONL{file: f, path: path, counts: make(map[string]int)}, nil
}

// Path returns the log file path.
func (j *JSONL) Path() string { return j.path }

// Append writes e as one JSON line and syncs. Safe for concurrent use.
func (j *JSONL) Append(e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("keylog: marshal: %w", err)
	}
	data = append(data, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()
	if _, err := j.file.Write(data); err != nil {
		return fmt.Errorf("keylog: write: %w", err)
	}
	if err := j.file.Sync(); err != nil {
		return fmt.Errorf("keylog: sync: %w", err)
	}
	j.counts[e.Directive]++
	return nil
}

// Counts returns a copy of the per-directive counts for this session.
func (j *JSONL) Counts() map[string]int {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make(map[string]int, len(j.counts))
	for k, v := range j.counts {
		out[k] = v
	}
	return out
}

// Close closes the underlying file.
func (j *JSONL) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.file.Close()
}

// Read decodes every entry in r. Malformed lines are skipped and counted.
func Read(r io.Reader) (entries []Entry, skipped int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return entries, skipped, fmt.Errorf("keylog: read: %w", err)
	}
	return entries, skipped, nil
}

// ReadFile is Read over the file at path.
func ReadFile(path string) ([]Entry, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("keylog: open %q: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Count is one row of a summary.
type Count struct {
	Name  string
	Count int
}

// Summary aggregates a key log.
type Summary struct {
	Total      int
	First      time.Time
	Last       time.Time
	Directives []Count // most frequent first
	Errors     []Count // most frequent first
}

// Summarize aggregates entries.
func Summarize(entries []Entry) Summary {
	s := Summary{Total: len(entries)}
	directives := map[string]int{}
	errs := map[string]int{}
	for _, e := range entries {
		if s.First.IsZero() || e.Time.Before(s.First) {
			s.First = e.Time
		}
		if e.Time.After(s.Last) {
			s.Last = e.Time
		}
		directives[e.Directive]++
		if e.Err != "" {
			errs[e.Err]++
		}
	}
	s.Directives = ranked(directives)
	s.Errors = ranked(errs)
	return s
}

func ranked(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, v := range m {
		out = append(out, Count{Name: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// EnforceRetention removes the oldest log files in dir, keeping at most
// maxKeep. A maxKeep of 0 keeps everything. A missing dir is not an error.
func EnforceRetention(dir string, maxKeep int) error {
	if maxKeep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("keylog: read dir %q: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jsonl") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files) // timestamp-prefixed names sort chronologically
	for i := 0; i < len(files)-maxKeep; i++ {
		path := filepath.Join(dir, files[i])
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("keylog: remove %q: %w", path, err)
		}
	}
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/grid"
)

// shortcutSource is the slice of the engine the shortcut table reads.
type shortcutSource interface {
	Grid(page grid.Page) ([][]grid.Slot, bool)
	ShortcutKeys(command string) []string
}

// shortcut is one keypad command with its key bindings.
type shortcut struct {
	Command string
	Label   string
	Page    grid.Page
	Keys    []string
	Help    string
}

// shortcuts implements fuzzy.Source over command, label and help text.
type shortcuts []shortcut

func (s shortcuts) String(i int) string {
	return s[i].Command + " " + s[i].Label + " " + s[i].Help
}

func (s shortcuts) Len() int { return len(s) }

// shortcutTable lists every bound command on the keypad pages in page
// order, once each. Letter pads are skipped; their keys are the letters.
func shortcutTable(src shortcutSource) shortcuts {
	var out shortcuts
	seen := map[string]bool{}
	for _, page := range grid.Pages() {
		if page.IsLetterPad() || page.IsOptionPage() {
			continue
		}
		rows, ok := src.Grid(page)
		if !ok {
			continue
		}
		for _, row := range rows {
			for _, slot := range row {
				if slot.Hidden || slot.Command == "" || seen[slot.Command] {
					continue
				}
				keys := src.ShortcutKeys(slot.Command)
				if len(keys) == 0 {
					continue
				}
				seen[slot.Command] = true
				out = append(out, shortcut{
					Command: slot.Command,
					Label:   slot.Display,
					Page:    page,
					Keys:    keys,
					Help:    slot.Help,
				})
			}
		}
	}
	return out
}

// searchShortcuts returns the rows matching query, best match first. An
// empty query returns the table unchanged.
func searchShortcuts(table shortcuts, query string) shortcuts {
	if strings.TrimSpace(query) == "" {
		return table
	}
	matches := fuzzy.FindFrom(query, table)
	out := make(shortcuts, len(matches))
	for i, m := range matches {
		out[i] = table[m.Index]
	}
	return out
}

// formatShortcuts renders the rows as an aligned table.
func formatShortcuts(rows shortcuts, query string) string {
	if len(rows) == 0 {
		if query == "" {
			return "No shortcuts found.\n"
		}
		return fmt.Sprintf("No shortcuts match %q.\n", query)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "  %-16s %-10s %-10s %s\n", "KEYS", "LABEL", "PAGE", "COMMAND")
	for _, s := range rows {
		fmt.Fprintf(&b, "  %-16s %-10s %-10s %s\n", strings.Join(s.Keys, ", "), s.Label, s.Page, s.Command)
	}
	return b.String()
}

package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/engine"
	"github.com/LISSConsulting/LISSTech.RPNCalc/internal/keylog"
)

// formatScaffoldResult returns the output for `rpncalc init`.
func formatScaffoldResult(created []string) string {
	if len(created) == 0 {
		return "All files already exist — nothing to create.\n"
	}
	var b strings.Builder
	for _, path := range created {
		fmt.Fprintf(&b, "Created %s\n", path)
	}
	return b.String()
}

// formatRatesTable summarises a validated rates table.
func formatRatesTable(path string, t engine.RatesTable) string {
	names := make([]string, 0, len(t.Rates))
	for name := range t.Rates {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "Rates table %s\n", path)
	b.WriteString("──────────\n")
	fmt.Fprintf(&b, "  %-20s %s\n", "Date:", t.Date)
	fmt.Fprintf(&b, "  %-20s %s\n", "Base:", t.Base)
	fmt.Fprintf(&b, "  %-20s %d\n", "Currencies:", len(t.Rates))
	for _, name := range names {
		fmt.Fprintf(&b, "    %-18s %g\n", name, t.Rates[name])
	}
	return b.String()
}

// formatKeylogSummary returns the output for `rpncalc keylog summary`.
func formatKeylogSummary(s keylog.Summary, skipped int) string {
	if s.Total == 0 {
		return "Key log is empty.\n"
	}
	var b strings.Builder
	b.WriteString("Key Log\n")
	b.WriteString("───────\n")
	fmt.Fprintf(&b, "  %-20s %d\n", "Entries:", s.Total)
	if skipped > 0 {
		fmt.Fprintf(&b, "  %-20s %d\n", "Malformed lines:", skipped)
	}
	fmt.Fprintf(&b, "  %-20s %s\n", "First:", s.First.Format(time.RFC3339))
	fmt.Fprintf(&b, "  %-20s %s\n", "Duration:", s.Last.Sub(s.First).Round(time.Second))

	b.WriteString("\nDirectives\n")
	for _, c := range s.Directives {
		fmt.Fprintf(&b, "  %-20s %d\n", c.Name, c.Count)
	}
	if len(s.Errors) > 0 {
		b.WriteString("\nErrors\n")
		for _, c := range s.Errors {
			fmt.Fprintf(&b, "  %-20s %d\n", c.Name, c.Count)
		}
	}
	return b.String()
}

// Package tables reads the raw campus CSV exports into normalized domain
// records and writes the assignment and unchecked-room output tables. All
// scheduling decisions live in pkg/core; this package is pure file I/O.
package tables

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
)

// clockLayouts are the time-of-day formats seen across the campus exports.
// The 25Live schedule uses 12-hour clock strings, the shift sheet has been
// exported both as bare clock times and as full datetimes.
var clockLayouts = []string{
	"3:04 PM",
	"3:04PM",
	"15:04",
	"15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 3:04 PM",
}

// parseClock parses a time-of-day string and anchors it to a fixed
// reference date so intervals from different files compare correctly.
// The weekday is always carried separately.
func parseClock(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(2000, 1, 3, t.Hour(), t.Minute(), 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}

// header maps lowercased, trimmed column names to their positions.
type header map[string]int

func readHeader(rec []string) header {
	h := make(header, len(rec))
	for i, name := range rec {
		h[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return h
}

// get returns the trimmed cell for the first matching column name, or ""
// when none of the names exist in the header.
func (h header) get(rec []string, names ...string) string {
	for _, name := range names {
		if i, ok := h[name]; ok && i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
	}
	return ""
}

// has reports whether any of the column names exists.
func (h header) has(names ...string) bool {
	for _, name := range names {
		if _, ok := h[name]; ok {
			return true
		}
	}
	return false
}

// newReader builds a csv.Reader tolerant of ragged campus exports.
func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr
}

// Package dateutil provides issue-date parsing for quote documents.
package dateutil

import (
	"strings"
	"time"
)

// ISOLayout is the accepted client-supplied date format.
const ISOLayout = "2006-01-02"

// middayHour anchors parsed dates away from day boundaries so the rendered
// date is stable regardless of the host timezone.
const middayHour = 12

// ParseISO parses an ISO calendar date (YYYY-MM-DD) and fixes the result at
// midday UTC. Reports false for empty or malformed input.
func ParseISO(s string) (time.Time, bool) {
	t, err := time.Parse(ISOLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), middayHour, 0, 0, 0, time.UTC), true
}

// IssueDate returns the date printed on a quote: the client-supplied ISO date
// when present and well-formed, otherwise the current time from now. Malformed
// dates fall back silently rather than failing the export.
func IssueDate(clientDate string, now func() time.Time) time.Time {
	if t, ok := ParseISO(clientDate); ok {
		return t
	}
	return now()
}

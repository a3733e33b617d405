// Package dateutils interprets the date strings found in UK bank statement
// exports. Upstream data is UK-biased, so ambiguous day/month orderings are
// always read day-first: "01/02/2026" is 1 February 2026, never 2 January.
package dateutils

import (
	"strings"
	"time"
)

// batchLayouts are the fixed layouts tried against a whole column of dates.
// Day-first layouts come first; the US month-first layout is a last resort.
var batchLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"2006-01-02",
	"2 Jan 2006",
	"02/01/06",
	"01/02/2006",
}

// freeformLayouts are tried per element when no single fixed layout parses the
// whole batch. Day-first variants precede month-first ones.
var freeformLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"02/01/06",
	"2/1/2006",
	"01/02/2006",
}

// ParseBatch interprets a column of date strings. It commits to the first
// fixed layout that parses every element, so a statement never mixes formats
// row by row. If no single layout fits, each element falls back to free-form
// interpretation. Elements that still fail yield the zero time, which marks
// the row for removal downstream.
func ParseBatch(values []string) []time.Time {
	for _, layout := range batchLayouts {
		if parsed, ok := parseAll(values, layout); ok {
			return parsed
		}
	}

	parsed := make([]time.Time, len(values))
	for i, v := range values {
		parsed[i] = ParseFreeform(v)
	}
	return parsed
}

// parseAll parses every value with one layout, or reports that the layout
// does not fit the batch.
func parseAll(values []string, layout string) ([]time.Time, bool) {
	parsed := make([]time.Time, len(values))
	for i, v := range values {
		t, err := time.Parse(layout, Clean(v))
		if err != nil {
			return nil, false
		}
		parsed[i] = t
	}
	return parsed, true
}

// ParseFreeform interprets a single date string, preferring day-first
// readings. Returns the zero time when nothing fits.
func ParseFreeform(value string) time.Time {
	cleaned := Clean(value)
	if cleaned == "" {
		return time.Time{}
	}
	for _, layout := range freeformLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Clean trims whitespace and collapses internal runs of spaces.
func Clean(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseBatchCommitsToOneLayout(t *testing.T) {
	// A whole column in UK slash format parses with the day-first layout,
	// including the ambiguous "01/02/2026".
	dates := ParseBatch([]string{"15/03/2026", "01/02/2026", "28/12/2025"})

	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), dates[1])
	assert.Equal(t, time.Date(2025, time.December, 28, 0, 0, 0, 0, time.UTC), dates[2])
}

func TestParseBatchUSFormatAsLastResort(t *testing.T) {
	// "03/25/2026" cannot be day-first, so the whole batch falls through to
	// the month-first layout.
	dates := ParseBatch([]string{"03/25/2026", "01/02/2026"})

	assert.Equal(t, time.Date(2026, time.March, 25, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC), dates[1])
}

func TestParseBatchMixedFormatsFallBackPerElement(t *testing.T) {
	dates := ParseBatch([]string{"2026-03-15", "15/03/2026", "garbage"})

	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), dates[1])
	assert.True(t, dates[2].IsZero(), "unparseable element should yield the zero time")
}

func TestParseBatchEmpty(t *testing.T) {
	assert.Empty(t, ParseBatch(nil))
}

func TestParseFreeform(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Time
	}{
		{"UK slashes", "15/03/2026", time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"UK dashes", "15-03-2026", time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"UK dots", "15.03.2026", time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"ISO", "2026-03-15", time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"ISO with time", "2026-03-15 21:04:11", time.Date(2026, time.March, 15, 21, 4, 11, 0, time.UTC)},
		{"day month name", "15 Mar 2026", time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"full month name", "15 March 2026", time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"two digit year", "15/03/26", time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"ambiguous reads day first", "01/02/2026", time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{"unambiguous US", "03/25/2026", time.Date(2026, time.March, 25, 0, 0, 0, 0, time.UTC)},
		{"surrounding whitespace", "  15/03/2026  ", time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"empty", "", time.Time{}},
		{"garbage", "not a date", time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseFreeform(tc.value))
		})
	}
}

func TestClean(t *testing.T) {
	assert.Equal(t, "15 Mar 2026", Clean("  15   Mar\t2026 "))
	assert.Equal(t, "", Clean("   "))
}

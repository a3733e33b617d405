package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNormalizesHeaders(t *testing.T) {
	f := New([]string{" Date ", "Transaction Description", "AMOUNT"}, nil)

	assert.Equal(t, []string{"date", "transaction description", "amount"}, f.Headers())
	assert.True(t, f.HasColumn("date"))
	assert.True(t, f.HasColumn("transaction description"))
	assert.False(t, f.HasColumn("Transaction Description"))
}

func TestNewSquaresRaggedRows(t *testing.T) {
	f := New([]string{"a", "b", "c"}, [][]string{
		{"1"},
		{"1", "2", "3", "4"},
		{"1", "2", "3"},
	})

	assert.Equal(t, 3, f.Len())
	assert.Equal(t, "", f.Cell(0, "c"))
	assert.Equal(t, "3", f.Cell(1, "c"))
	assert.Equal(t, "3", f.Cell(2, "c"))
}

func TestDuplicateHeaderFirstOccurrenceWins(t *testing.T) {
	f := New([]string{"date", "amount", "date"}, [][]string{{"first", "x", "second"}})

	i, ok := f.Index("date")
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, "first", f.Cell(0, "date"))
}

func TestColumnAccess(t *testing.T) {
	f := New([]string{"date", "amount"}, [][]string{
		{"01/02/2026", " 45.30 "},
		{"02/02/2026", "12.00"},
	})

	col, ok := f.Column("amount")
	assert.True(t, ok)
	assert.Equal(t, []string{" 45.30 ", "12.00"}, col)

	_, ok = f.Column("missing")
	assert.False(t, ok)

	assert.Equal(t, "45.30", f.Cell(0, "amount"))
	assert.Equal(t, "45.30", f.CellAt(0, 1))
	assert.Equal(t, "", f.Cell(0, "missing"))
	assert.Equal(t, 2, f.Width())
}

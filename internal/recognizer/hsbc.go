package recognizer

import (
	"strings"

	"spendsight/statement-csv/internal/dateutils"
	"spendsight/statement-csv/internal/frame"
	"spendsight/statement-csv/internal/normalize"
)

// HSBC handles HSBC exports with separate debit and credit columns. Only the
// debit column is read.
type HSBC struct{}

// Name returns the dialect name.
func (HSBC) Name() string { return "hsbc" }

// Detect claims files with both debit and credit columns.
func (HSBC) Detect(f *frame.Frame) bool {
	return f.HasColumn("debit") && f.HasColumn("credit")
}

// Convert keeps rows with a positive debit amount. The description column
// falls back to the second column when not named.
func (HSBC) Convert(f *frame.Frame) []normalize.Row {
	dateCol := "date"
	if !f.HasColumn(dateCol) {
		for _, h := range f.Headers() {
			if strings.Contains(h, "date") {
				dateCol = h
				break
			}
		}
	}
	dateCells, ok := f.Column(dateCol)
	if !ok {
		return nil
	}
	dates := dateutils.ParseBatch(dateCells)

	descIdx := 1
	if i, ok := f.Index("description"); ok {
		descIdx = i
	} else if f.Width() < 2 {
		descIdx = 0
	}

	amountCells, _ := f.Column("debit")
	amounts := positiveOnly(parseAmounts(amountCells))

	rows := make([]normalize.Row, f.Len())
	for i := range rows {
		rows[i] = normalize.Row{
			Date:        dates[i],
			Description: f.CellAt(i, descIdx),
			Amount:      amounts[i],
		}
	}
	return rows
}

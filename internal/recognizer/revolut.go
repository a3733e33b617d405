package recognizer

import (
	"spendsight/statement-csv/internal/dateutils"
	"spendsight/statement-csv/internal/frame"
	"spendsight/statement-csv/internal/normalize"
)

// Revolut handles Revolut exports, identified by their completed/started date
// columns. Debits are negative amounts.
type Revolut struct{}

// Name returns the dialect name.
func (Revolut) Name() string { return "revolut" }

// Detect claims files with a completed date or started date column.
func (Revolut) Detect(f *frame.Frame) bool {
	return f.HasColumn("completed date") || f.HasColumn("started date")
}

// Convert keeps negatively-signed rows, preferring the completed date over
// the started date.
func (Revolut) Convert(f *frame.Frame) []normalize.Row {
	dateCol, _ := firstColumn(f, "completed date", "started date")
	dateCells, _ := f.Column(dateCol)
	dates := dateutils.ParseBatch(dateCells)

	amountCells, ok := f.Column("amount")
	if !ok {
		return nil
	}
	amounts := debitsOnly(parseAmounts(amountCells))

	rows := make([]normalize.Row, f.Len())
	for i := range rows {
		rows[i] = normalize.Row{
			Date:        dates[i],
			Description: f.Cell(i, "description"),
			Amount:      amounts[i],
		}
	}
	return rows
}

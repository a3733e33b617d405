package recognizer

import (
	"spendsight/statement-csv/internal/dateutils"
	"spendsight/statement-csv/internal/frame"
	"spendsight/statement-csv/internal/normalize"
)

// Monzo handles Monzo exports, identified by their Transaction ID column.
// Debits are negative amounts; credits and pot transfers are filtered out.
type Monzo struct{}

// Name returns the dialect name.
func (Monzo) Name() string { return "monzo" }

// Detect claims files with a transaction id column.
func (Monzo) Detect(f *frame.Frame) bool {
	return f.HasColumn("transaction id")
}

// Convert keeps negatively-signed rows, preferring the merchant name column
// over the free-text description.
func (Monzo) Convert(f *frame.Frame) []normalize.Row {
	dateCells, ok := f.Column("date")
	if !ok {
		return nil
	}
	dates := dateutils.ParseBatch(dateCells)

	descCol, _ := firstColumn(f, "name", "description")

	amountCells, ok := f.Column("amount")
	if !ok {
		return nil
	}
	amounts := debitsOnly(parseAmounts(amountCells))

	rows := make([]normalize.Row, f.Len())
	for i := range rows {
		rows[i] = normalize.Row{
			Date:        dates[i],
			Description: f.Cell(i, descCol),
			Amount:      amounts[i],
		}
	}
	return rows
}

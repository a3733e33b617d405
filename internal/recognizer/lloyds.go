package recognizer

import (
	"spendsight/statement-csv/internal/dateutils"
	"spendsight/statement-csv/internal/frame"
	"spendsight/statement-csv/internal/normalize"
)

// Lloyds handles Lloyds and Halifax exports, which split spend and income
// into separate debit and credit amount columns. Only the debit column is
// read; the credit column is ignored entirely.
type Lloyds struct{}

// Name returns the dialect name.
func (Lloyds) Name() string { return "lloyds" }

// Detect claims files with transaction description and debit amount columns.
func (Lloyds) Detect(f *frame.Frame) bool {
	return f.HasColumn("transaction description") && f.HasColumn("debit amount")
}

// Convert keeps rows with a positive debit amount.
func (Lloyds) Convert(f *frame.Frame) []normalize.Row {
	dateCol, ok := firstColumn(f, "transaction date", "date")
	if !ok {
		return nil
	}
	dateCells, _ := f.Column(dateCol)
	dates := dateutils.ParseBatch(dateCells)

	amountCells, _ := f.Column("debit amount")
	amounts := positiveOnly(parseAmounts(amountCells))

	rows := make([]normalize.Row, f.Len())
	for i := range rows {
		rows[i] = normalize.Row{
			Date:        dates[i],
			Description: f.Cell(i, "transaction description"),
			Amount:      amounts[i],
		}
	}
	return rows
}

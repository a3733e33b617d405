package recognizer

import (
	"strings"

	"spendsight/statement-csv/internal/dateutils"
	"spendsight/statement-csv/internal/frame"
	"spendsight/statement-csv/internal/normalize"
)

// AmexDetailed handles the richer Amex UK export that carries an explicit
// debit-or-credit flag per row. Rows flagged DBIT are kept; the amount sign
// is ignored in favour of the flag.
type AmexDetailed struct{}

// Name returns the dialect name.
func (AmexDetailed) Name() string { return "amex-detailed" }

// Detect claims files with billing amount, merchant and debit-or-credit columns.
func (AmexDetailed) Detect(f *frame.Frame) bool {
	return f.HasColumn("billing amount") &&
		f.HasColumn("merchant") &&
		f.HasColumn("debit or credit")
}

// Convert keeps debit-flagged rows, reading the merchant as the description
// and the billing amount as the spend.
func (AmexDetailed) Convert(f *frame.Frame) []normalize.Row {
	dateCol, ok := firstColumn(f, "transaction date", "posting date", "date")
	if !ok {
		return nil
	}

	var dateCells, amountCells []string
	var descriptions []string
	for i := 0; i < f.Len(); i++ {
		if strings.ToUpper(f.Cell(i, "debit or credit")) != "DBIT" {
			continue
		}
		dateCells = append(dateCells, f.Cell(i, dateCol))
		amountCells = append(amountCells, f.Cell(i, "billing amount"))
		descriptions = append(descriptions, f.Cell(i, "merchant"))
	}

	dates := dateutils.ParseBatch(dateCells)
	amounts := positiveOnly(parseAmounts(amountCells))

	rows := make([]normalize.Row, len(descriptions))
	for i := range rows {
		rows[i] = normalize.Row{
			Date:        dates[i],
			Description: descriptions[i],
			Amount:      amounts[i],
		}
	}
	return rows
}

// AmexSimple handles the plain Amex UK export: Date, Description, Amount with
// positive amounts meaning charges. Its signature overlaps the generic one,
// so it runs just before the fallback.
type AmexSimple struct{}

// Name returns the dialect name.
func (AmexSimple) Name() string { return "amex" }

// Detect claims narrow frames with amount and description columns.
func (AmexSimple) Detect(f *frame.Frame) bool {
	return f.HasColumn("amount") && f.HasColumn("description") && f.Width() <= 6
}

// Convert keeps positively-signed rows (charges); refunds are negative.
func (AmexSimple) Convert(f *frame.Frame) []normalize.Row {
	dateCells, ok := f.Column("date")
	if !ok {
		return nil
	}
	dates := dateutils.ParseBatch(dateCells)

	amountCells, _ := f.Column("amount")
	amounts := positiveOnly(parseAmounts(amountCells))

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

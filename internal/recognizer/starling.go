package recognizer

import (
	"strings"

	"spendsight/statement-csv/internal/dateutils"
	"spendsight/statement-csv/internal/frame"
	"spendsight/statement-csv/internal/normalize"
)

// Starling handles Starling Bank exports, identified by their counter party
// column. Debits are negative amounts; the description is the counterparty
// plus the payment reference.
type Starling struct{}

// Name returns the dialect name.
func (Starling) Name() string { return "starling" }

// Detect claims files with a counter party (or counterparty) column.
func (Starling) Detect(f *frame.Frame) bool {
	return f.HasColumn("counter party") || f.HasColumn("counterparty")
}

// Convert keeps negatively-signed rows, joining counterparty and reference
// into the description.
func (Starling) Convert(f *frame.Frame) []normalize.Row {
	dateCells, ok := f.Column("date")
	if !ok {
		return nil
	}
	dates := dateutils.ParseBatch(dateCells)

	cpCol, _ := firstColumn(f, "counter party", "counterparty")
	amountCol := starlingAmountColumn(f)

	amountCells, ok := f.Column(amountCol)
	if !ok {
		return nil
	}
	amounts := debitsOnly(parseAmounts(amountCells))

	rows := make([]normalize.Row, f.Len())
	for i := range rows {
		description := strings.TrimSpace(f.Cell(i, cpCol) + " " + f.Cell(i, "reference"))
		rows[i] = normalize.Row{
			Date:        dates[i],
			Description: description,
			Amount:      amounts[i],
		}
	}
	return rows
}

// starlingAmountColumn prefers the "Amount (GBP)" style column, then any
// amount column, then a literal "amount" header.
func starlingAmountColumn(f *frame.Frame) string {
	for _, h := range f.Headers() {
		if strings.Contains(h, "amount") && strings.Contains(h, "gbp") {
			return h
		}
	}
	for _, h := range f.Headers() {
		if strings.Contains(h, "amount") {
			return h
		}
	}
	return "amount"
}

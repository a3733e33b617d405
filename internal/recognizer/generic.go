package recognizer

import (
	"strings"

	"spendsight/statement-csv/internal/dateutils"
	"spendsight/statement-csv/internal/frame"
	"spendsight/statement-csv/internal/normalize"
)

// Generic is the best-effort fallback recognizer. It always claims, guessing
// the date, description and amount columns by name-keyword scan and falling
// back to positions (first = date, second = description, last = amount).
// The positional guess is documented best-effort behaviour, not a contract -
// exotic layouts can and will misfire.
type Generic struct{}

// Name returns the dialect name.
func (Generic) Name() string { return "generic" }

// Detect always claims.
func (Generic) Detect(f *frame.Frame) bool { return true }

// Convert takes the amount as an absolute value with no sign filtering, since
// the sign convention of an unknown export cannot be guessed.
func (Generic) Convert(f *frame.Frame) []normalize.Row {
	if f.Width() == 0 {
		return nil
	}

	dateIdx := pickColumn(f,
		[]string{"date", "transaction date", "trans date", "posted date", "value date"},
		[]string{"date"},
		0)
	descIdx := pickColumn(f,
		[]string{"description", "transaction description", "narrative", "details", "memo", "name", "payee", "merchant"},
		[]string{"desc", "narr", "detail", "memo"},
		min(1, f.Width()-1))
	amountIdx := pickColumn(f,
		[]string{"amount", "debit", "debit amount", "value", "transaction amount"},
		[]string{"amount", "debit", "value"},
		f.Width()-1)

	dates := dateutils.ParseBatch(f.ColumnAt(dateIdx))
	amounts := parseAmounts(f.ColumnAt(amountIdx))

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

// pickColumn selects a column by exact candidate name, then by substring
// keyword, then by position.
func pickColumn(f *frame.Frame, candidates, keywords []string, fallback int) int {
	for _, name := range candidates {
		if i, ok := f.Index(name); ok {
			return i
		}
	}
	for i, h := range f.Headers() {
		for _, kw := range keywords {
			if strings.Contains(h, kw) {
				return i
			}
		}
	}
	return fallback
}

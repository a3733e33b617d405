// Package recognizer implements the bank dialect detection chain. Each
// recognizer inspects the normalized header set of one statement file and
// either declines or converts the file into partially normalised rows using
// that bank's column semantics and sign convention.
package recognizer

import (
	"github.com/shopspring/decimal"

	"spendsight/statement-csv/internal/frame"
	"spendsight/statement-csv/internal/logging"
	"spendsight/statement-csv/internal/models"
	"spendsight/statement-csv/internal/normalize"
)

// Recognizer detects and converts one bank dialect. Detect is a pure check on
// the column signature; Convert emits rows with the dialect's sign filtering
// already applied. Declining is not an error.
type Recognizer interface {
	Name() string
	Detect(f *frame.Frame) bool
	Convert(f *frame.Frame) []normalize.Row
}

// Chain returns the recognizers in their fixed priority order: specialised
// dialects first, the always-claiming generic fallback last. The order is
// load-bearing - overlapping signatures (generic "amount"+"description" would
// shadow Amex) are resolved by trying specialised recognizers first.
func Chain() []Recognizer {
	return []Recognizer{
		AmexDetailed{},
		Monzo{},
		Starling{},
		Revolut{},
		Lloyds{},
		HSBC{},
		AmexSimple{},
		Generic{},
	}
}

// Run walks the chain and returns the canonical transactions of the first
// recognizer that both claims the schema and still has rows after
// normalisation. A recognizer that claims but yields nothing usable (for
// example an Amex export with no debit rows) is treated as a miss and
// detection continues. The generic fallback always claims, so its result -
// possibly empty - is final.
func Run(f *frame.Frame, sourceFile string, logger logging.Logger) ([]models.Transaction, string) {
	chain := Chain()
	for i, rec := range chain {
		if !rec.Detect(f) {
			continue
		}
		transactions := normalize.Apply(rec.Convert(f), sourceFile)
		if len(transactions) == 0 && i < len(chain)-1 {
			logger.WithFields(
				logging.Field{Key: "dialect", Value: rec.Name()},
				logging.Field{Key: "file", Value: sourceFile},
			).Debug("Dialect claimed schema but produced no rows, trying next")
			continue
		}
		logger.WithFields(
			logging.Field{Key: "dialect", Value: rec.Name()},
			logging.Field{Key: "file", Value: sourceFile},
			logging.Field{Key: "count", Value: len(transactions)},
		).Info("Statement dialect detected")
		return transactions, rec.Name()
	}
	// Unreachable: Generic always claims
	return nil, ""
}

// parseAmounts converts a raw amount column, marking unparseable cells
// invalid so the normalizer drops those rows.
func parseAmounts(cells []string) []decimal.NullDecimal {
	amounts := make([]decimal.NullDecimal, len(cells))
	for i, cell := range cells {
		if dec, ok := models.ParseAmount(cell); ok {
			amounts[i] = decimal.NullDecimal{Decimal: dec, Valid: true}
		}
	}
	return amounts
}

// debitsOnly keeps strictly negative amounts (the debit convention of Monzo,
// Starling and Revolut exports), invalidating everything else.
func debitsOnly(amounts []decimal.NullDecimal) []decimal.NullDecimal {
	for i, a := range amounts {
		if a.Valid && !a.Decimal.IsNegative() {
			amounts[i].Valid = false
		}
	}
	return amounts
}

// positiveOnly keeps strictly positive amounts, for dialects with a dedicated
// debit column or a positive-equals-charge convention.
func positiveOnly(amounts []decimal.NullDecimal) []decimal.NullDecimal {
	for i, a := range amounts {
		if a.Valid && !a.Decimal.IsPositive() {
			amounts[i].Valid = false
		}
	}
	return amounts
}

// firstColumn returns the first of the named columns present in the frame.
func firstColumn(f *frame.Frame, names ...string) (string, bool) {
	for _, name := range names {
		if f.HasColumn(name) {
			return name, true
		}
	}
	return "", false
}

// Package models defines the canonical data structures shared by the
// ingestion pipeline and the categorisation engine.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the canonical statement record every recognizer output is
// normalised into. Amount is always a positive magnitude representing money
// spent; credits and refunds never survive normalisation. The four fields are
// immutable once produced - callers may derive a category from Description
// but must not rewrite the record itself.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	SourceFile  string
}

// currencyGlyphs are stripped from raw amount strings before numeric parsing.
var currencyGlyphs = []string{"£", "€", "$", "GBP", "EUR", "USD"}

// ParseAmount converts a raw amount cell into a decimal. It strips whitespace,
// thousands separators and currency glyphs first, so "£1,234.56" parses to the
// same value as "1234.56". The second return value is false when the cell does
// not contain a number at all; such values are treated as missing and the row
// is dropped by the normalizer.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	amount := strings.TrimSpace(raw)
	if amount == "" {
		return decimal.Zero, false
	}

	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, ",", "")
	for _, glyph := range currencyGlyphs {
		amount = strings.ReplaceAll(amount, glyph, "")
	}

	// A trailing minus ("45.30-") appears in some exports
	if strings.HasSuffix(amount, "-") {
		amount = "-" + strings.TrimSuffix(amount, "-")
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, false
	}
	return dec, true
}

// NormalizeDescription trims surrounding whitespace from a raw description
// cell. Descriptions that come back empty are treated as missing.
func NormalizeDescription(raw string) string {
	return strings.TrimSpace(raw)
}

// NormalizeMerchantKey produces the lookup key used for merchant overrides:
// lowercased and trimmed, so "UBER *TRIP " and "uber *trip" share one entry.
func NormalizeMerchantKey(description string) string {
	return strings.ToLower(strings.TrimSpace(description))
}

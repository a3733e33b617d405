// Package normalize is the single enforcement point for the canonical
// Transaction invariants. Every recognizer output passes through Apply before
// anything downstream sees it.
package normalize

import (
	"time"

	"github.com/shopspring/decimal"

	"spendsight/statement-csv/internal/models"
)

// Row is a partially normalised record as emitted by a dialect recognizer:
// date, description and amount populated with bank-specific semantics already
// applied (sign filtering, column selection), but invariants not yet enforced.
type Row struct {
	Date        time.Time
	Description string
	Amount      decimal.NullDecimal
}

// Apply converts recognizer rows into canonical Transactions. Rows with a
// missing date, a missing or non-positive amount, or an empty description are
// dropped; surviving amounts are coerced to their absolute value and the
// source file name is attached.
func Apply(rows []Row, sourceFile string) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		if row.Date.IsZero() || !row.Amount.Valid {
			continue
		}
		amount := row.Amount.Decimal.Abs()
		if !amount.IsPositive() {
			continue
		}
		description := models.NormalizeDescription(row.Description)
		if description == "" {
			continue
		}
		transactions = append(transactions, models.Transaction{
			Date:        row.Date,
			Description: description,
			Amount:      amount,
			SourceFile:  sourceFile,
		})
	}
	return transactions
}

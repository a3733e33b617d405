// Package export writes the canonical transaction table to CSV for
// downstream consumers. The derived category column is produced through the
// caller-supplied lookup so the export always reflects current overrides.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"spendsight/statement-csv/internal/models"
)

// isoDate is the date layout used in exported files.
const isoDate = "2006-01-02"

// Row is the CSV shape of one exported transaction.
type Row struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Category    string `csv:"Category"`
	SourceFile  string `csv:"Source File"`
}

// Write streams transactions as CSV. The categorise function classifies each
// description; pass nil to omit categories.
func Write(w io.Writer, transactions []models.Transaction, categorise func(string) string) error {
	rows := make([]*Row, len(transactions))
	for i, tx := range transactions {
		row := &Row{
			Date:        tx.Date.Format(isoDate),
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
			SourceFile:  tx.SourceFile,
		}
		if categorise != nil {
			row.Category = categorise(tx.Description)
		}
		rows[i] = row
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("error writing transactions CSV: %w", err)
	}
	return nil
}

// WriteFile writes transactions to a CSV file, creating parent directories
// as needed.
func WriteFile(path string, transactions []models.Transaction, categorise func(string) string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(path) // #nosec G304 -- CLI tool writes user-chosen output paths
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Write(file, transactions, categorise)
}

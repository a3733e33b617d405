// Package ingest orchestrates the statement pipeline: raw file bytes are
// decoded, lightly cleaned up, run through the dialect recognizer chain and
// concatenated into one canonical transaction table.
package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"spendsight/statement-csv/internal/frame"
	"spendsight/statement-csv/internal/logging"
	"spendsight/statement-csv/internal/models"
	"spendsight/statement-csv/internal/recognizer"
)

// File is one uploaded statement: raw bytes plus the original file name. The
// extension selects the CSV-text or spreadsheet-binary decoding path.
type File struct {
	Name string
	Data []byte
}

// Pipeline turns uploaded statement files into canonical transactions.
type Pipeline struct {
	logger logging.Logger
}

// New creates an ingestion pipeline.
func New(logger logging.Logger) *Pipeline {
	return &Pipeline{logger: logger}
}

// ParseAll parses several statement files and concatenates the results.
// Files are independent: a file that fails to decode is reported in the
// returned error slice and never prevents its siblings from being parsed.
// An empty table is a valid result, not an error.
func (p *Pipeline) ParseAll(files []File) ([]models.Transaction, []error) {
	var transactions []models.Transaction
	var errs []error
	for _, file := range files {
		parsed, _, err := p.Parse(file)
		if err != nil {
			p.logger.WithError(err).WithField("file", file.Name).Warn("Skipping unparseable statement file")
			errs = append(errs, err)
			continue
		}
		transactions = append(transactions, parsed...)
	}
	return transactions, errs
}

// Parse parses one statement file and returns the canonical transactions plus
// the name of the dialect that claimed it.
func (p *Pipeline) Parse(file File) ([]models.Transaction, string, error) {
	f, err := p.readFrame(file)
	if err != nil {
		return nil, "", err
	}
	if f == nil || f.Width() == 0 {
		p.logger.WithField("file", file.Name).Info("Statement file has no tabular content")
		return nil, "", nil
	}

	transactions, dialect := recognizer.Run(f, file.Name, p.logger)
	return transactions, dialect, nil
}

// readFrame decodes the raw bytes into a header-normalized frame, choosing
// the spreadsheet or CSV path by file extension.
func (p *Pipeline) readFrame(file File) (*frame.Frame, error) {
	switch strings.ToLower(filepath.Ext(file.Name)) {
	case ".xlsx", ".xlsm", ".xls":
		return p.readSpreadsheet(file)
	default:
		return p.readCSV(file)
	}
}

// readCSV decodes text bytes and parses comma-separated records. Rows with
// structural problems are skipped rather than failing the file.
func (p *Pipeline) readCSV(file File) (*frame.Frame, error) {
	text := DecodeText(file.Data)
	text = stripPreamble(text)
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Bad line, skip it
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, nil
	}
	return frame.New(records[0], records[1:]), nil
}

// stripPreamble drops the leading junk lines some banks put above the header
// row, keeping everything from the first line that looks like a CSV record
// with at least three fields.
func stripPreamble(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		if strings.Count(line, ",") >= 2 {
			return strings.Join(lines[i:], "\n")
		}
	}
	return strings.Join(lines, "\n")
}

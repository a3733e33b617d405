package ingest

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"spendsight/statement-csv/internal/frame"
	"spendsight/statement-csv/internal/parsererror"
)

// readSpreadsheet reads the first sheet of a spreadsheet export. A malformed
// binary surfaces as a DecodeError for this file only.
func (p *Pipeline) readSpreadsheet(file File) (*frame.Frame, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	if err != nil {
		return nil, &parsererror.DecodeError{FileName: file.Name, Err: err}
	}
	defer func() {
		if err := wb.Close(); err != nil {
			p.logger.WithError(err).Warn("Failed to close spreadsheet")
		}
	}()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, &parsererror.DecodeError{FileName: file.Name, Err: fmt.Errorf("workbook has no sheets")}
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, &parsererror.ParseError{FileName: file.Name, Err: err}
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return frame.New(rows[0], rows[1:]), nil
}

// Package frame provides a header-normalized tabular view of one raw
// statement file. It is the shared input type for every dialect recognizer.
package frame

import "strings"

// Frame is a parsed statement file: one header row plus data rows. Headers
// are normalized (lowercased, trimmed) on construction so recognizers can
// match column signatures without caring about vendor capitalisation.
type Frame struct {
	headers []string
	index   map[string]int
	rows    [][]string
}

// New builds a Frame from a raw header row and data rows. Rows shorter than
// the header are padded with empty cells; longer rows are truncated.
func New(headers []string, rows [][]string) *Frame {
	normalized := make([]string, len(headers))
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
		// First occurrence wins for duplicate header names
		if _, seen := index[normalized[i]]; !seen {
			index[normalized[i]] = i
		}
	}

	squared := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) == len(headers) {
			squared[i] = row
			continue
		}
		cells := make([]string, len(headers))
		copy(cells, row)
		squared[i] = cells
	}

	return &Frame{headers: normalized, index: index, rows: squared}
}

// Headers returns the normalized header names in column order.
func (f *Frame) Headers() []string {
	return f.headers
}

// Len returns the number of data rows.
func (f *Frame) Len() int {
	return len(f.rows)
}

// Index returns the position of a normalized header name.
func (f *Frame) Index(name string) (int, bool) {
	i, ok := f.index[name]
	return i, ok
}

// HasColumn reports whether a normalized header name is present.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns all cells of the named column. The second return value is
// false when the column does not exist.
func (f *Frame) Column(name string) ([]string, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.ColumnAt(i), true
}

// ColumnAt returns all cells of the column at the given position.
func (f *Frame) ColumnAt(i int) []string {
	cells := make([]string, len(f.rows))
	for r, row := range f.rows {
		cells[r] = row[i]
	}
	return cells
}

// Cell returns the trimmed value at (row, named column); empty when absent.
func (f *Frame) Cell(row int, name string) string {
	i, ok := f.index[name]
	if !ok {
		return ""
	}
	return strings.TrimSpace(f.rows[row][i])
}

// CellAt returns the trimmed value at (row, column position).
func (f *Frame) CellAt(row, col int) string {
	return strings.TrimSpace(f.rows[row][col])
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return len(f.headers)
}

// Package parsererror defines the typed errors surfaced by the ingestion
// pipeline. Row-level problems are never errors - bad rows are dropped - so
// these cover per-file failures only.
package parsererror

import "fmt"

// DecodeError reports a file whose bytes could not be decoded at all, such as
// a malformed spreadsheet binary. It affects only the file it names; sibling
// files in a multi-file batch are unaffected.
type DecodeError struct {
	FileName string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s: %v", e.FileName, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ParseError reports a file whose tabular structure could not be read.
type ParseError struct {
	FileName string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s: %v", e.FileName, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

package table

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Load when the path does not resolve.
	// The underlying fs.ErrNotExist stays in the chain.
	ErrNotFound = errors.New("table: file not found")

	// ErrNoColumn is matched by every *KeyError.
	ErrNoColumn = errors.New("table: no such column")

	// ErrNotNumeric is matched by every *TypeError.
	ErrNotNumeric = errors.New("table: value is not numeric")

	// ErrEmpty is the cause of a ParseError for input without a header row.
	ErrEmpty = errors.New("table: no header row")

	// ErrDuplicateColumn is the cause of a ParseError for a header that
	// names the same column twice.
	ErrDuplicateColumn = errors.New("table: duplicate column name")
)

// ParseError reports input that is not valid delimited text.
type ParseError struct {
	Path string
	Line int // 1-based, 0 when unknown
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("table: parse %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("table: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// KeyError reports a column name absent from the table header.
type KeyError struct {
	Column  string
	Columns []string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("table: no column %q (have %q)", e.Column, e.Columns)
}

func (e *KeyError) Is(target error) bool { return target == ErrNoColumn }

// TypeError reports a cell that cannot be used as a number.
type TypeError struct {
	Column string
	Row    int // 0-based data row
	Value  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("table: column %q row %d: %q is not numeric", e.Column, e.Row, e.Value)
}

func (e *TypeError) Is(target error) bool { return target == ErrNotNumeric }

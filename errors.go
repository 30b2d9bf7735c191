// errors.go defines structured error types returned by the parsing entry
// points.
package sqlscope

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the SQL parsing functions.
var (
	// ErrNoStatements is returned when the input SQL contains no parseable
	// statements.
	ErrNoStatements = errors.New("no statements found")

	// ErrMultipleStatements is returned by ParseSQLStrict when input
	// contains more than one statement.
	ErrMultipleStatements = errors.New("multiple statements found")
)

// MultipleStatementsError indicates ParseSQLStrict received a
// multi-statement input.
type MultipleStatementsError struct {
	StatementCount int
}

// Error formats the strict-mode multi-statement validation failure.
func (e *MultipleStatementsError) Error() string {
	return fmt.Sprintf("%s: expected exactly 1 statement, got %d", ErrMultipleStatements, e.StatementCount)
}

// Unwrap returns the sentinel error for errors.Is compatibility.
func (e *MultipleStatementsError) Unwrap() error {
	return ErrMultipleStatements
}

// ParseError carries the SQL that failed to parse together with the
// parser's native error, which Unwrap surfaces unchanged.
type ParseError struct {
	SQL string
	Err error
}

// Error formats the parser failure.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Err)
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

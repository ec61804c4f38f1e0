package embedgo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is negative.
	ErrInvalidK = errors.New("k must not be negative")

	// ErrNoVectorElements is returned when the first record of a table has a
	// key but no vector values, so no dimension can be established.
	ErrNoVectorElements = errors.New("no vector elements found")
)

// FormatError reports a malformed line in an embedding table. Parsing stops
// at the first malformed line; no partial store is returned.
//
// The underlying reason can be accessed via errors.Unwrap.
type FormatError struct {
	Line  int // 1-based line number within the table
	cause error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("wrong format in line %d: %v", e.Line, e.cause)
}

func (e *FormatError) Unwrap() error { return e.cause }

// ErrInvalidValue indicates a vector element that cannot be parsed as a
// float32.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidValue struct {
	Index   int    // 1-based position among the vector elements of the line
	Literal string // the offending token
	cause   error
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("can't parse float #%d: %q", e.Index, e.Literal)
}

func (e *ErrInvalidValue) Unwrap() error { return e.cause }

// ErrDimensionMismatch indicates a record whose vector element count differs
// from the dimension established by the first record.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("number of vector elements (%d) differs from preceding lines (%d)", e.Actual, e.Expected)
}

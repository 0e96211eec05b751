package vif

import (
	"errors"
	"fmt"
)

// Sentinel errors. Provider failures are reported as *ComputationError
// wrapping one of these; errors.Is reaches through the wrapper.
var (
	// ErrEmptyInput is returned by DropHighest for an empty score set.
	ErrEmptyInput = errors.New("vif: empty input")

	// ErrNilTable indicates a nil table was passed to a provider.
	ErrNilTable = errors.New("vif: nil table")

	// ErrTooFewColumns indicates the augmented table has fewer than two columns.
	ErrTooFewColumns = errors.New("vif: at least two columns are required")

	// ErrTooFewRows indicates the table has fewer than two rows.
	ErrTooFewRows = errors.New("vif: at least two rows are required")

	// ErrNonFinite indicates NaN or ±Inf in the data.
	ErrNonFinite = errors.New("vif: non-finite value")

	// ErrConstantClash indicates an input column named frame.ConstName that
	// is not all ones, so it cannot serve as the intercept.
	ErrConstantClash = errors.New("vif: column \"const\" is not an intercept of ones")

	// ErrDuplicateName indicates two scores share a column name.
	ErrDuplicateName = errors.New("vif: duplicate score name")

	// ErrLengthMismatch indicates names and values of different lengths.
	ErrLengthMismatch = errors.New("vif: names and values differ in length")
)

// ComputationError reports that scores could not be computed for a table.
// Column is empty when the failure is not specific to one column.
type ComputationError struct {
	Op     string
	Column string
	Err    error
}

func (e *ComputationError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("vif: %s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("vif: %s %q: %v", e.Op, e.Column, e.Err)
}

func (e *ComputationError) Unwrap() error { return e.Err }

// computationErrorf builds a *ComputationError for op (and optionally column).
func computationErrorf(op, column string, err error) error {
	return &ComputationError{Op: op, Column: column, Err: err}
}

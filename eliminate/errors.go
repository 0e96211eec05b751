package eliminate

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTable indicates Eliminate was called without a table.
	ErrNilTable = errors.New("eliminate: nil table")

	// ErrInvalidThreshold indicates a NaN or negative threshold.
	ErrInvalidThreshold = errors.New("eliminate: threshold must be a non-negative number")

	// ErrUnknownProtected indicates a protected name absent from the table
	// (reported only with WithStrictProtected).
	ErrUnknownProtected = errors.New("eliminate: protected feature not in table")

	// ErrRoundLimit indicates the loop exceeded its round budget.
	ErrRoundLimit = errors.New("eliminate: round limit exceeded")

	// ErrNoFeaturesLeft indicates every feature was removed as infinite.
	ErrNoFeaturesLeft = errors.New("eliminate: no features left")
)

// ConfigurationError reports an invalid argument to Eliminate.
type ConfigurationError struct {
	Field string // "table", "threshold" or "protected"
	Value any
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("eliminate: invalid %s %v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Package vif computes variance inflation factors for the columns of a
// frame.Table and selects the worst offender among them.
//
// The score of column i is 1/(1−R²ᵢ), where R²ᵢ is the coefficient of
// determination of an ordinary least-squares regression of column i on every
// other column of the augmented table (the table plus a ones column named
// frame.ConstName). An exact linear dependency gives R² = 1 and a score of
// +Inf.
//
// Components:
//
//	Provider    - interface implemented by scoring back ends.
//	OLS         - built-in Provider on matrix.LeastSquares.
//	Scores      - ordered, read-only name → score mapping.
//	DropHighest - first-occurrence arg-max removal.
//
// Errors:
//
//	*ComputationError - Provider failure; wraps ErrNilTable, ErrTooFewColumns,
//	                    ErrTooFewRows or ErrNonFinite (errors.Is-able).
//	ErrEmptyInput     - DropHighest on an empty Scores.
package vif

// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors.
// Kernels return these sentinels wrapped with an operation tag
// ("LeastSquares: matrix: ..."); callers match them with errors.Is.
// No kernel panics on bad input.

package matrix

import "errors"

// Check order inside a kernel: nil -> shape/index -> NaN/Inf -> dimensions.

var (
	// ErrOutOfRange: a row or column index outside the shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch: operand lengths disagree, e.g. len(b) != Rows
	// in LeastSquares.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf: a non-finite value where the numeric policy or a kernel
	// requires finite data.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix: a nil matrix or vector argument.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions: a requested shape with no rows or no columns.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDataLength: a flat buffer that does not hold rows*cols values.
	ErrDataLength = errors.New("matrix: data length does not match shape")
)

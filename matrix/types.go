// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface accepted by the kernels.
// Kernels take a fast path when the dynamic type is *Dense and fall back to
// At otherwise, so any observations × columns store can be regressed.
package matrix

// Matrix is a mutable rows × columns block of float64 values.
type Matrix interface {
	// Rows is the number of observations.
	Rows() int

	// Cols is the number of columns.
	Cols() int

	// At reads (i, j); ErrOutOfRange outside the shape.
	At(i, j int) (float64, error)

	// Set writes (i, j); ErrOutOfRange outside the shape, ErrNaNInf when the
	// store rejects non-finite values.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}

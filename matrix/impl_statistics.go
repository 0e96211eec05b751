// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics needed by regression diagnostics:
//     column means, constant-column detection, and sums of squares.
//
// Exposed API:
//   - ColumnMeans(X)          -> means            // Σ_i X[i,j] / r
//   - ConstantColumns(X, eps) -> indices          // zero range, non-zero value
//   - SumSquares(x)           -> Σ x²             // uncentered
//   - CenteredSumSquares(x)   -> Σ (x − mean)²    // two-pass
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At and operate on row-major flat buffers.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColumnMeans     = "ColumnMeans"
	opConstantColumns = "ConstantColumns"
)

// ColumnMeans returns the per-column arithmetic mean.
// Implementation:
//   - Stage 1: Validate X (non-nil); zero rows yield zero means.
//   - Stage 2: Accumulate sums in a deterministic pass (Dense fast-path; At fallback).
//   - Stage 3: Divide by r.
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c) // always return correct length for callers
	if r == 0 || c == 0 {
		return means, nil
	}

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err := X.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opColumnMeans, err)
				}
				means[j] += v
			}
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// ConstantColumns returns the indices of columns whose values span a range
// of at most eps and are not all zero (an intercept-like column).
// Implementation:
//   - Stage 1: Validate X; zero rows yield no constant columns.
//   - Stage 2: Track per-column min/max and max |v| in one pass.
//   - Stage 3: Keep j when max−min ≤ eps and max|v| > 0.
//
// Behavior highlights:
//   - An all-zero column is NOT an intercept (it carries no level).
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ConstantColumns(X Matrix, eps float64) ([]int, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opConstantColumns, err)
	}
	r, c := X.Rows(), X.Cols()
	if r == 0 || c == 0 {
		return nil, nil
	}

	lo := make([]float64, c)
	hi := make([]float64, c)
	absMax := make([]float64, c)
	var i, j int
	var v float64
	var err error
	for j = 0; j < c; j++ {
		lo[j], hi[j] = math.Inf(1), math.Inf(-1)
	}
	d, fast := X.(*Dense)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if fast {
				v = d.data[i*c+j]
			} else if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opConstantColumns, err)
			}
			lo[j] = math.Min(lo[j], v)
			hi[j] = math.Max(hi[j], v)
			absMax[j] = math.Max(absMax[j], math.Abs(v))
		}
	}

	var out []int
	for j = 0; j < c; j++ {
		if hi[j]-lo[j] <= eps && absMax[j] > 0 {
			out = append(out, j)
		}
	}

	return out, nil
}

// SumSquares returns Σ x_i² (uncentered total sum of squares).
// Complexity: O(n).
func SumSquares(x []float64) float64 {
	acc := ZeroSum
	for _, v := range x {
		acc += v * v
	}

	return acc
}

// CenteredSumSquares returns Σ (x_i − mean)² computed in two passes.
// Empty input yields 0.
// Complexity: O(n).
func CenteredSumSquares(x []float64) float64 {
	if len(x) == 0 {
		return ZeroSum
	}
	mean := ZeroSum
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))

	acc := ZeroSum
	for _, v := range x {
		acc += (v - mean) * (v - mean)
	}

	return acc
}

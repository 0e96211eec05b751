// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the scoring
// layer: matrix-vector products and rank-revealing least squares.
// All functions perform strict fail-fast validation and return clear errors
// on nil operands, dimension mismatches and non-finite data.
//
// Notes:
//   - All kernels use central validators and wrap failures via matrixErrorf.
//   - Inputs are never mutated; kernels work on private copies.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for substitution and similar accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec       = "MatVec"
	opLeastSquares = "LeastSquares"
	opResiduals    = "Residuals"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// LSQ is the outcome of a least-squares solve.
//   - Coef holds one coefficient per column of A (dependent columns get 0).
//   - RSS is the residual sum of squares ‖b − A·Coef‖².
//   - Rank is the numerical column rank detected during factorization.
//   - Pivots lists column indices of A in factorization order; the first Rank
//     entries form the independent basis.
type LSQ struct {
	Coef   []float64
	RSS    float64
	Rank   int
	Pivots []int
}

// Residuals returns b − A·Coef using MatVec.
// Errors: the MatVec validation errors, ErrDimensionMismatch when len(b) != A.Rows().
// Complexity: O(r*c).
func (s *LSQ) Residuals(a Matrix, b []float64) ([]float64, error) {
	fit, err := MatVec(a, s.Coef)
	if err != nil {
		return nil, matrixErrorf(opResiduals, err)
	}
	if err = ValidateVecLen(b, len(fit)); err != nil {
		return nil, matrixErrorf(opResiduals, err)
	}
	res := make([]float64, len(b))
	for i := range b {
		res[i] = b[i] - fit[i]
	}

	return res, nil
}

// LeastSquares solves min‖b − A·x‖₂ with Householder QR and column pivoting.
// MAIN DESCRIPTION:
//   - Rank-revealing ordinary least squares for tall (or square, or wide) A.
//     Exactly collinear columns are detected and excluded from the basis, so
//     rank-deficient regressor sets still yield the minimal residual.
//
// Implementation:
//   - Stage 1: Validate A (non-nil, finite), b (len == rows, finite).
//   - Stage 2: Copy A into a work buffer, record original column norms.
//   - Stage 3: For k = 0..min(r,c)-1 pick the remaining column with the largest
//     norm relative to its original norm; stop when that ratio ≤ rankTol.
//     Apply the Householder reflector to the work buffer and to b.
//   - Stage 4: Back-substitute R₁₁·z = (Qᵀb)[0:rank]; scatter z through Pivots.
//   - Stage 5: RSS = ‖(Qᵀb)[rank:]‖².
//
// Behavior highlights:
//   - Scale-invariant rank decisions (ratios, not absolute norms), so a
//     feature measured in millions and one measured in thousandths are treated alike.
//   - All-zero columns are always dependent.
//
// Inputs:
//   - a: r×c design matrix.
//   - b: length-r response.
//   - opts: WithRankTolerance to tune the dependency cutoff.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (all wrapped with opLeastSquares).
//
// Determinism:
//   - Fixed visitation order; ties in pivot choice keep the lower column index.
//
// Complexity:
//   - Time O(r*c²), Space O(r*c).
//
// AI-Hints:
//   - RSS comes from the tail of Qᵀb; call Residuals only when the vector itself is needed.
func LeastSquares(a Matrix, b []float64, opts ...Option) (*LSQ, error) {
	// Stage 1: validation.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	if err := ValidateFinite(a); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	if err := ValidateFiniteVec(b); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	o := gatherOptions(opts...)

	// Stage 2: private work copies.
	r, c := a.Rows(), a.Cols()
	w := make([]float64, r*c)
	if d, ok := a.(*Dense); ok {
		copy(w, d.data)
	} else {
		var i, j int
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err := a.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opLeastSquares, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				w[i*c+j] = v
			}
		}
	}
	y := make([]float64, r)
	copy(y, b)

	perm := make([]int, c)
	orig := make([]float64, c)
	var i, j, k int
	var acc float64
	for j = 0; j < c; j++ {
		perm[j] = j
		acc = NormZero
		for i = 0; i < r; i++ {
			acc += w[i*c+j] * w[i*c+j]
		}
		orig[j] = math.Sqrt(acc)
	}

	// Stage 3: pivoted Householder sweeps.
	v := make([]float64, r)
	steps := r
	if c < steps {
		steps = c
	}
	rank := 0
	var best int
	var rem, rel, bestRel, norm, alpha, beta, tau, s float64
	for k = 0; k < steps; k++ {
		best, bestRel = -1, 0
		for j = k; j < c; j++ {
			if orig[j] == NormZero {
				continue // zero column: always dependent
			}
			acc = NormZero
			for i = k; i < r; i++ {
				acc += w[i*c+j] * w[i*c+j]
			}
			rem = math.Sqrt(acc)
			rel = rem / orig[j]
			if rel > bestRel {
				best, bestRel = j, rel
			}
		}
		if best < 0 || bestRel <= o.rankTol {
			break // every remaining column lies in the span of the basis
		}
		if best != k {
			for i = 0; i < r; i++ {
				w[i*c+k], w[i*c+best] = w[i*c+best], w[i*c+k]
			}
			perm[k], perm[best] = perm[best], perm[k]
			orig[k], orig[best] = orig[best], orig[k]
		}

		norm = NormZero
		for i = k; i < r; i++ {
			norm += w[i*c+k] * w[i*c+k]
		}
		norm = math.Sqrt(norm)
		alpha = -math.Copysign(norm, w[k*c+k])

		for i = 0; i < k; i++ {
			v[i] = 0
		}
		for i = k; i < r; i++ {
			v[i] = w[i*c+k]
		}
		v[k] -= alpha

		beta = NormZero
		for i = k; i < r; i++ {
			beta += v[i] * v[i]
		}
		if beta == NormZero {
			rank = k + 1 // column already reduced; reflector is the identity
			continue
		}
		tau = 2.0 / beta

		for j = k; j < c; j++ {
			s = ZeroSum
			for i = k; i < r; i++ {
				s += v[i] * w[i*c+j]
			}
			for i = k; i < r; i++ {
				w[i*c+j] -= tau * v[i] * s
			}
		}
		s = ZeroSum
		for i = k; i < r; i++ {
			s += v[i] * y[i]
		}
		for i = k; i < r; i++ {
			y[i] -= tau * v[i] * s
		}
		rank = k + 1
	}

	// Stage 4: back substitution on the leading rank×rank triangle.
	z := make([]float64, rank)
	for i = rank - 1; i >= 0; i-- {
		s = y[i]
		for j = i + 1; j < rank; j++ {
			s -= w[i*c+j] * z[j]
		}
		z[i] = s / w[i*c+i]
	}
	coef := make([]float64, c)
	for j = 0; j < rank; j++ {
		coef[perm[j]] = z[j]
	}

	// Stage 5: residual sum of squares from the orthogonal complement.
	rss := ZeroSum
	for i = rank; i < r; i++ {
		rss += y[i] * y[i]
	}

	return &LSQ{Coef: coef, RSS: rss, Rank: rank, Pivots: perm}, nil
}

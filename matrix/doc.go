// Package matrix offers the dense numeric core used by vifprune.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set, an optional
//     finite-only numeric policy, and copy-based column/submatrix extraction.
//   - LeastSquares, a rank-revealing Householder QR solver with column pivoting,
//     used to regress one feature on the others.
//   - Column statistics (means, constant-column detection, sums of squares)
//     needed to turn a regression into a coefficient of determination.
//
// Every kernel validates its inputs and returns sentinel errors (see errors.go)
// wrapped with an operation tag; match them with errors.Is.
package matrix

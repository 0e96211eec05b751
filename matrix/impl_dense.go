// SPDX-License-Identifier: MIT

// Package matrix - Dense, the row-major design matrix.
//
// Purpose:
//   - Hold an observations × features block in one flat buffer (offset i*cols + j).
//   - Split it column-wise the way a regression needs it: one column as the
//     response, every other column as regressors (Regressors, SelectCols).
//   - Report bad coordinates as errors; no accessor panics on user input.
//
// AI-Hints:
//   - Tables of raw observations are built with WithNoValidateNaNInf() and
//     checked once with ValidateFinite before a batch of regressions.
//   - SelectCols and Regressors copy; the source is never aliased.
//
// Complexity quicksheet:
//   - NewDense/NewDenseFrom/Clone: O(r*c); At/Set: O(1); Col: O(r);
//     SelectCols: O(r*k); Regressors: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxCol        = "Col"
	ctxSelectCols = "SelectCols"
	ctxRegressors = "Regressors"
	ctxFrom       = "NewDenseFrom"
)

// denseErrorf tags err with the Dense method and the offending coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major float64 matrix: r observations by c columns.
type Dense struct {
	r, c           int
	data           []float64 // len == r*c
	validateNaNInf bool      // Set and NewDenseFrom reject NaN/±Inf when true
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense returns an r×c zero matrix whose numeric policy is resolved from opts.
//
// Errors: ErrInvalidDimensions when rows or cols is not positive.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: o.validateNaNInf}, nil
}

// NewDenseFrom copies a row-major buffer into a new rows×cols matrix.
// With the finite-only policy on, the first NaN/±Inf is reported with its
// coordinates.
//
// Errors: ErrInvalidDimensions, ErrDataLength, ErrNaNInf.
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s: got %d values for %dx%d: %w", ctxFrom, len(data), rows, cols, ErrDataLength)
	}
	if m.validateNaNInf {
		for k, v := range data {
			if isNonFinite(v) {
				return nil, denseErrorf(ctxFrom, k/cols, k%cols, ErrNaNInf)
			}
		}
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the number of observations.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows, Cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// ValidatesNaNInf reports whether the finite-only policy is on.
func (m *Dense) ValidatesNaNInf() bool { return m.validateNaNInf }

func (m *Dense) offset(row, col int) (int, bool) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, false
	}

	return row*m.c + col, true
}

// At returns m(row, col). Errors: ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, ok := m.offset(row, col)
	if !ok {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[off], nil
}

// Set writes m(row, col) = v.
// Errors: ErrOutOfRange; ErrNaNInf when the finite-only policy is on.
func (m *Dense) Set(row, col int, v float64) error {
	off, ok := m.offset(row, col)
	if !ok {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy carrying the same policy.
func (m *Dense) Clone() Matrix {
	return &Dense{r: m.r, c: m.c, data: append([]float64(nil), m.data...), validateNaNInf: m.validateNaNInf}
}

// Col returns a copy of column j. Errors: ErrOutOfRange.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := range out {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// RawRow returns a copy of row i; i must be in [0, Rows).
func (m *Dense) RawRow(i int) []float64 {
	return append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...)
}

// SelectCols returns a new matrix made of the listed columns, in the order
// given, over all rows. Repeated indices are allowed. The policy is kept.
//
// Errors: ErrInvalidDimensions for an empty list, ErrOutOfRange.
func (m *Dense) SelectCols(cols []int) (*Dense, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("Dense.%s: %w", ctxSelectCols, ErrInvalidDimensions)
	}
	for _, j := range cols {
		if j < 0 || j >= m.c {
			return nil, denseErrorf(ctxSelectCols, 0, j, ErrOutOfRange)
		}
	}
	k := len(cols)
	out := &Dense{r: m.r, c: k, data: make([]float64, m.r*k), validateNaNInf: m.validateNaNInf}
	for i := 0; i < m.r; i++ {
		src, dst := m.data[i*m.c:(i+1)*m.c], out.data[i*k:(i+1)*k]
		for p, j := range cols {
			dst[p] = src[j]
		}
	}

	return out, nil
}

// Regressors splits off column j: it returns the matrix of every other
// column (order kept) and a copy of column j.
//
// Errors: ErrOutOfRange; ErrInvalidDimensions when m has a single column.
func (m *Dense) Regressors(j int) (*Dense, []float64, error) {
	if j < 0 || j >= m.c {
		return nil, nil, denseErrorf(ctxRegressors, 0, j, ErrOutOfRange)
	}
	if m.c < 2 {
		return nil, nil, fmt.Errorf("Dense.%s: one column: %w", ctxRegressors, ErrInvalidDimensions)
	}
	rest := make([]int, 0, m.c-1)
	for k := 0; k < m.c; k++ {
		if k != j {
			rest = append(rest, k)
		}
	}
	X, err := m.SelectCols(rest)
	if err != nil {
		return nil, nil, err
	}
	y, err := m.Col(j)
	if err != nil {
		return nil, nil, err
	}

	return X, y, nil
}

// String renders one bracketed row per line, for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(fmt.Sprintf("%g", v))
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// Do calls f for every element in row-major order and stops when f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	for k, v := range m.data {
		if !f(k/m.c, k%m.c, v) {
			return
		}
	}
}

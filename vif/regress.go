package vif

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vifprune/frame"
	"github.com/katalvlaran/vifprune/matrix"
)

// Operation tags carried by ComputationError.Op.
const (
	OpValidate = "validate"
	OpRegress  = "regress"
)

// Prepare checks t and returns its augmented form (t plus the const column).
// Providers call it before scoring so that all of them reject the same inputs.
//
// A column already named frame.ConstName is taken as the intercept only when
// it holds nothing but ones.
//
// Errors (*ComputationError, Op = OpValidate): ErrNilTable, ErrConstantClash,
// ErrTooFewColumns, ErrTooFewRows, ErrNonFinite (Column names the first
// offending column).
func Prepare(t *frame.Table) (*frame.Table, error) {
	if t == nil {
		return nil, computationErrorf(OpValidate, "", ErrNilTable)
	}
	if t.HasConstant() {
		if ok, row := t.ConstantIsOnes(); !ok {
			return nil, computationErrorf(OpValidate, frame.ConstName, fmt.Errorf("%w: row %d", ErrConstantClash, row))
		}
	}
	aug := t.WithConstant()
	if aug.NumCols() < 2 {
		return nil, computationErrorf(OpValidate, "", fmt.Errorf("%w: have %d", ErrTooFewColumns, aug.NumCols()))
	}
	if aug.NumRows() < 2 {
		return nil, computationErrorf(OpValidate, "", fmt.Errorf("%w: have %d", ErrTooFewRows, aug.NumRows()))
	}
	for _, name := range aug.Names() {
		col, err := aug.Column(name)
		if err != nil {
			return nil, computationErrorf(OpValidate, name, err)
		}
		if err = matrix.ValidateFiniteVec(col); err != nil {
			return nil, computationErrorf(OpValidate, name, fmt.Errorf("%w: %w", ErrNonFinite, err))
		}
	}

	return aug, nil
}

// Inflation turns a regression of y into a variance inflation factor.
//
// tss is the centred total sum of squares of y when centred is set (the
// regressors span a constant), the uncentred Σy² otherwise; the score is
// tss/rss = 1/(1−R²). A fit is exact, and the score +Inf, when:
//   - y is all zeros;
//   - centred and y is constant (tss ≤ tol²·Σy²);
//   - rss ≤ tol²·tss.
func Inflation(y []float64, rss float64, centred bool, tol float64) float64 {
	scale := matrix.SumSquares(y)
	if scale == 0 {
		return math.Inf(1)
	}
	tss := scale
	cut := tol * tol
	if centred {
		tss = matrix.CenteredSumSquares(y)
		if tss <= cut*scale {
			return math.Inf(1)
		}
	}
	if rss <= cut*tss {
		return math.Inf(1)
	}

	return tss / rss
}

// EachColumn calls fn(j) for j in [0, n) on at most parallelism goroutines
// and waits for all of them. The returned error is the one of the lowest j,
// so the outcome does not depend on scheduling.
func EachColumn(n, parallelism int, fn func(j int) error) error {
	errs := make([]error, n)
	if parallelism <= 1 || n <= 1 {
		for j := 0; j < n; j++ {
			errs[j] = fn(j)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(parallelism)
		for j := 0; j < n; j++ {
			j := j
			g.Go(func() error {
				errs[j] = fn(j)
				return errs[j]
			})
		}
		_ = g.Wait() // errors are read back in index order below
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

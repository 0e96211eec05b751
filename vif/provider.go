package vif

import (
	"fmt"

	"github.com/katalvlaran/vifprune/frame"
	"github.com/katalvlaran/vifprune/matrix"
)

// Provider computes one score per column of the augmented table.
//
// Score receives a feature table (with or without the const column) and
// returns the augmented table it scored together with the scores, in the
// augmented table's column order. Failures are *ComputationError.
type Provider interface {
	Score(t *frame.Table) (*frame.Table, Scores, error)
}

// OLS is the built-in Provider. Each column is regressed on all the others
// with rank-revealing Householder least squares.
type OLS struct {
	opts Options
}

var _ Provider = (*OLS)(nil)

// NewOLS returns an OLS provider configured by opts.
func NewOLS(opts ...Option) *OLS {
	return &OLS{opts: GatherOptions(opts...)}
}

// Options returns the resolved configuration.
func (p *OLS) Options() Options { return p.opts }

// Score implements Provider.
//
// For column i with regressors X₋ᵢ (all other columns):
//   - R² is centred when X₋ᵢ holds a constant column (zero range, non-zero
//     level) or spans the ones vector; otherwise it is uncentred. The const
//     column therefore gets a meaningful score of its own.
//   - the score is 1/(1−R²), +Inf for an exact fit (see Inflation).
//
// Complexity: O(c · r·c²) for r rows and c augmented columns.
func (p *OLS) Score(t *frame.Table) (*frame.Table, Scores, error) {
	aug, err := Prepare(t)
	if err != nil {
		return nil, Scores{}, err
	}
	X := aug.Dense()
	r, c := X.Shape()
	names := aug.Names()

	constant, err := matrix.ConstantColumns(X, 0)
	if err != nil {
		return nil, Scores{}, computationErrorf(OpRegress, "", err)
	}
	isConst := make([]bool, c)
	for _, j := range constant {
		isConst[j] = true
	}
	ones := make([]float64, r)
	for i := range ones {
		ones[i] = 1
	}
	lsqOpts := []matrix.Option{matrix.WithRankTolerance(p.opts.rankTol)}

	values := make([]float64, c)
	err = EachColumn(c, p.opts.parallelism, func(j int) error {
		Xo, y, err := X.Regressors(j)
		if err != nil {
			return computationErrorf(OpRegress, names[j], err)
		}

		centred := false
		for k := range isConst {
			if k != j && isConst[k] {
				centred = true
				break
			}
		}
		if !centred {
			fit, err := matrix.LeastSquares(Xo, ones, lsqOpts...)
			if err != nil {
				return computationErrorf(OpRegress, names[j], fmt.Errorf("constant probe: %w", err))
			}
			centred = fit.RSS <= p.opts.tol*p.opts.tol*float64(r)
		}

		fit, err := matrix.LeastSquares(Xo, y, lsqOpts...)
		if err != nil {
			return computationErrorf(OpRegress, names[j], err)
		}
		values[j] = Inflation(y, fit.RSS, centred, p.opts.tol)

		return nil
	})
	if err != nil {
		return nil, Scores{}, err
	}

	s, err := NewScores(names, values)
	if err != nil {
		return nil, Scores{}, computationErrorf(OpRegress, "", err)
	}

	return aug, s, nil
}

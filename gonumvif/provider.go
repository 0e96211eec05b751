package gonumvif

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vifprune/frame"
	"github.com/katalvlaran/vifprune/matrix"
	"github.com/katalvlaran/vifprune/vif"
)

var (
	// ErrFactorize indicates the SVD of a regressor block did not converge.
	ErrFactorize = errors.New("gonumvif: SVD factorization failed")

	// ErrShape indicates names and matrix columns disagree.
	ErrShape = errors.New("gonumvif: shape mismatch")

	// ErrNotFitted indicates Transform before Fit.
	ErrNotFitted = errors.New("gonumvif: transformer is not fitted")
)

// Provider is a vif.Provider backed by gonum's SVD least squares.
// It honours the vif options (tolerance, rank tolerance, parallelism); the
// rank tolerance is applied to singular values relative to the largest one.
type Provider struct {
	opts vif.Options
}

var _ vif.Provider = (*Provider)(nil)

// New returns a gonum-backed provider.
func New(opts ...vif.Option) *Provider {
	return &Provider{opts: vif.GatherOptions(opts...)}
}

// Score implements vif.Provider with the same R² rules as vif.OLS.
func (p *Provider) Score(t *frame.Table) (*frame.Table, vif.Scores, error) {
	aug, err := vif.Prepare(t)
	if err != nil {
		return nil, vif.Scores{}, err
	}
	X := ToMat(aug)
	r, c := X.Dims()
	names := aug.Names()

	constant, err := matrix.ConstantColumns(aug.Dense(), 0)
	if err != nil {
		return nil, vif.Scores{}, &vif.ComputationError{Op: vif.OpRegress, Err: err}
	}
	isConst := make([]bool, c)
	for _, j := range constant {
		isConst[j] = true
	}
	ones := make([]float64, r)
	for i := range ones {
		ones[i] = 1
	}
	tol, rcond := p.opts.Tolerance(), p.opts.RankTolerance()

	values := make([]float64, c)
	err = vif.EachColumn(c, p.opts.Parallelism(), func(j int) error {
		Xo := mat.NewDense(r, c-1, nil)
		centred := false
		k := 0
		for col := 0; col < c; col++ {
			if col == j {
				continue
			}
			Xo.SetCol(k, mat.Col(nil, col, X))
			centred = centred || isConst[col]
			k++
		}
		y := mat.Col(nil, j, X)

		if !centred {
			rss, err := leastSquaresRSS(Xo, ones, rcond)
			if err != nil {
				return &vif.ComputationError{Op: vif.OpRegress, Column: names[j], Err: fmt.Errorf("constant probe: %w", err)}
			}
			centred = rss <= tol*tol*float64(r)
		}
		rss, err := leastSquaresRSS(Xo, y, rcond)
		if err != nil {
			return &vif.ComputationError{Op: vif.OpRegress, Column: names[j], Err: err}
		}
		values[j] = vif.Inflation(y, rss, centred, tol)

		return nil
	})
	if err != nil {
		return nil, vif.Scores{}, err
	}

	s, err := vif.NewScores(names, values)
	if err != nil {
		return nil, vif.Scores{}, &vif.ComputationError{Op: vif.OpRegress, Err: err}
	}

	return aug, s, nil
}

// leastSquaresRSS returns min‖b − A·x‖² using a rank-truncated SVD of A with
// unit-norm columns. Singular values below rcond·σmax are discarded.
func leastSquaresRSS(a *mat.Dense, b []float64, rcond float64) (float64, error) {
	r, c := a.Dims()
	scaled := mat.DenseCopyOf(a)
	for j := 0; j < c; j++ {
		col := mat.Col(nil, j, scaled)
		norm := 0.0
		for _, v := range col {
			norm += v * v
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for i := range col {
			col[i] /= norm
		}
		scaled.SetCol(j, col)
	}

	var svd mat.SVD
	if !svd.Factorize(scaled, mat.SVDThin) {
		return 0, ErrFactorize
	}
	rank := svd.Rank(rcond)
	if rank == 0 {
		return matrix.SumSquares(b), nil
	}

	var x mat.VecDense
	svd.SolveVecTo(&x, mat.NewVecDense(r, append([]float64(nil), b...)), rank)
	var fit mat.VecDense
	fit.MulVec(scaled, &x)

	rss := 0.0
	for i, v := range b {
		d := v - fit.AtVec(i)
		rss += d * d
	}

	return rss, nil
}

package gonumvif

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vifprune/eliminate"
)

// Transformer learns which columns survive elimination (Fit) and keeps only
// those columns in later matrices (Transform).
type Transformer struct {
	names     []string
	protected []string
	threshold float64
	opts      []eliminate.Option

	kept   []int
	result *eliminate.Result
}

// NewTransformer configures elimination over matrices whose columns are
// named by names. Unless opts carry eliminate.WithProvider, scores come from
// this package's Provider.
func NewTransformer(names []string, threshold float64, protected []string, opts ...eliminate.Option) *Transformer {
	all := append([]eliminate.Option{eliminate.WithProvider(New())}, opts...)

	return &Transformer{
		names:     append([]string(nil), names...),
		protected: append([]string(nil), protected...),
		threshold: threshold,
		opts:      all,
	}
}

// Fit runs elimination on X and remembers the surviving columns.
func (tr *Transformer) Fit(X mat.Matrix) error {
	tbl, err := FromMat(tr.names, X)
	if err != nil {
		return err
	}
	res, err := eliminate.Eliminate(tbl, tr.protected, tr.threshold, tr.opts...)
	if err != nil {
		return err
	}
	kept := make([]int, 0, res.Table.NumCols())
	for _, n := range res.Table.Names() {
		j, _ := tbl.Index(n)
		kept = append(kept, j)
	}
	tr.kept, tr.result = kept, res

	return nil
}

// Transform returns the fitted columns of X, in input order.
func (tr *Transformer) Transform(X mat.Matrix) (mat.Matrix, error) {
	if tr.result == nil {
		return nil, ErrNotFitted
	}
	r, c := X.Dims()
	if c != len(tr.names) {
		return nil, fmt.Errorf("gonumvif: transform %d columns, fitted on %d: %w", c, len(tr.names), ErrShape)
	}
	out := mat.NewDense(r, len(tr.kept), nil)
	for k, j := range tr.kept {
		out.SetCol(k, mat.Col(nil, j, X))
	}

	return out, nil
}

// FitTransform is Fit followed by Transform on the same matrix.
func (tr *Transformer) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := tr.Fit(X); err != nil {
		return nil, err
	}

	return tr.Transform(X)
}

// Kept returns the surviving column names after Fit.
func (tr *Transformer) Kept() []string {
	if tr.result == nil {
		return nil
	}

	return tr.result.Table.Names()
}

// Result returns the full elimination outcome of the last Fit.
func (tr *Transformer) Result() *eliminate.Result { return tr.result }

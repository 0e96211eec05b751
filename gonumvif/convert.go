package gonumvif

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vifprune/frame"
)

// FromMat builds a frame.Table from the columns of m, named by names.
func FromMat(names []string, m mat.Matrix) (*frame.Table, error) {
	if m == nil {
		return nil, fmt.Errorf("gonumvif: nil matrix: %w", frame.ErrNoColumns)
	}
	_, c := m.Dims()
	if len(names) != c {
		return nil, fmt.Errorf("gonumvif: %d names for %d columns: %w", len(names), c, ErrShape)
	}
	cols := make([][]float64, c)
	for j := range cols {
		cols[j] = mat.Col(nil, j, m)
	}

	return frame.New(names, cols)
}

// ToMat copies t into a new rows × columns *mat.Dense.
func ToMat(t *frame.Table) *mat.Dense {
	r, c := t.NumRows(), t.NumCols()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		data = append(data, t.Row(i)...)
	}

	return mat.NewDense(r, c, data)
}

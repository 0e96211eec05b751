package gonumvif_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vifprune/eliminate"
	"github.com/katalvlaran/vifprune/frame"
	"github.com/katalvlaran/vifprune/gonumvif"
	"github.com/katalvlaran/vifprune/vif"
)

func TestConvert_RoundTrip(t *testing.T) {
	t.Parallel()

	m := mat.NewDense(3, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
	})
	tbl, err := gonumvif.FromMat([]string{"a", "b"}, m)
	require.NoError(t, err)
	b, _ := tbl.Column("b")
	assert.Equal(t, []float64{10, 20, 30}, b)

	back := gonumvif.ToMat(tbl)
	assert.True(t, mat.Equal(m, back))

	_, err = gonumvif.FromMat([]string{"a"}, m)
	assert.ErrorIs(t, err, gonumvif.ErrShape)
	_, err = gonumvif.FromMat([]string{"a", "a"}, m)
	assert.ErrorIs(t, err, frame.ErrDuplicateColumn)
}

func TestProvider_KnownScores(t *testing.T) {
	t.Parallel()

	tbl, err := frame.New([]string{"x1", "x2"}, [][]float64{
		{1, 2, 3, 4, 5},
		{2, 1, 4, 3, 5},
	})
	require.NoError(t, err)

	aug, s, err := gonumvif.New().Score(tbl)
	require.NoError(t, err)
	assert.Equal(t, []string{frame.ConstName, "x1", "x2"}, aug.Names())

	x1, _ := s.Get("x1")
	c, _ := s.Get(frame.ConstName)
	assert.InDelta(t, 25.0/9.0, x1, 1e-8)
	assert.InDelta(t, 6.0, c, 1e-8)
}

func TestProvider_ExactCollinearity(t *testing.T) {
	t.Parallel()

	tbl, err := frame.New([]string{"A", "B", "C"}, [][]float64{
		{1, 2, 3, 4, 5, 6},
		{1, -1, -1, 1, 1, -1},
		{2, 4, 6, 8, 10, 12},
	})
	require.NoError(t, err)

	_, s, err := gonumvif.New().Score(tbl)
	require.NoError(t, err)
	a, _ := s.Get("A")
	b, _ := s.Get("B")
	c, _ := s.Get("C")
	assert.True(t, math.IsInf(a, 1))
	assert.True(t, math.IsInf(c, 1))
	assert.False(t, math.IsInf(b, 0))
}

func TestProvider_MatchesOLS(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	names := []string{"a", "b", "c", "d", "e"}
	cols := make([][]float64, len(names))
	for j := range cols {
		cols[j] = make([]float64, 50)
		for i := range cols[j] {
			cols[j][i] = rng.NormFloat64()*float64(j+1) + float64(j)
		}
	}
	for i := range cols[4] {
		cols[4][i] = cols[0][i] - 0.5*cols[2][i] + 0.3*cols[4][i]
	}
	tbl, err := frame.New(names, cols)
	require.NoError(t, err)

	_, want, err := vif.NewOLS().Score(tbl)
	require.NoError(t, err)
	_, got, err := gonumvif.New(vif.WithParallelism(3)).Score(tbl)
	require.NoError(t, err)

	require.Equal(t, want.Names(), got.Names())
	for i, w := range want.Values() {
		assert.InEpsilon(t, w, got.Values()[i], 1e-8, want.Names()[i])
	}
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := gonumvif.New().Score(nil)
	assert.ErrorIs(t, err, vif.ErrNilTable)

	bad, err := frame.New([]string{"a", "b"}, [][]float64{{1, 2, 3}, {1, math.NaN(), 2}})
	require.NoError(t, err)
	_, _, err = gonumvif.New().Score(bad)
	assert.ErrorIs(t, err, vif.ErrNonFinite)

	clash, err := frame.New([]string{"x", frame.ConstName}, [][]float64{{1, 2, 3}, {4, -1, 7}})
	require.NoError(t, err)
	_, _, err = gonumvif.New().Score(clash)
	assert.ErrorIs(t, err, vif.ErrConstantClash)
}

func TestTransformer(t *testing.T) {
	t.Parallel()

	X := mat.NewDense(6, 3, []float64{
		1, 1, 2,
		2, -1, 4,
		3, -1, 6,
		4, 1, 8,
		5, 1, 10,
		6, -1, 12,
	})
	tr := gonumvif.NewTransformer([]string{"A", "B", "C"}, eliminate.DefaultThreshold, nil)

	_, err := tr.Transform(X)
	assert.ErrorIs(t, err, gonumvif.ErrNotFitted)
	assert.Nil(t, tr.Kept())

	out, err := tr.FitTransform(X)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, tr.Kept())
	assert.Equal(t, []string{"A"}, tr.Result().DroppedNames())

	r, c := out.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, []float64{1, -1, -1, 1, 1, -1}, mat.Col(nil, 0, out))
	assert.Equal(t, []float64{2, 4, 6, 8, 10, 12}, mat.Col(nil, 1, out))

	// New rows with the same layout keep the same columns.
	next := mat.NewDense(2, 3, []float64{7, 1, 14, 8, -1, 16})
	out, err = tr.Transform(next)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 14}, mat.Row(nil, 0, out))

	_, err = tr.Transform(mat.NewDense(2, 2, nil))
	assert.ErrorIs(t, err, gonumvif.ErrShape)
}

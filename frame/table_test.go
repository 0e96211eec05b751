package frame_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vifprune/frame"
)

// abc builds a 3×3 table a, b, c over four rows.
func abc(t *testing.T) *frame.Table {
	t.Helper()
	tbl, err := frame.New([]string{"a", "b", "c"}, [][]float64{
		{1, 2, 3, 4},
		{10, 20, 30, 40},
		{-1, 0, 1, 0},
	})
	require.NoError(t, err)

	return tbl
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		names   []string
		columns [][]float64
		want    error
	}{
		{"no columns", nil, nil, frame.ErrNoColumns},
		{"no rows", []string{"a"}, [][]float64{{}}, frame.ErrNoRows},
		{"count mismatch", []string{"a", "b"}, [][]float64{{1}}, frame.ErrRaggedColumns},
		{"ragged", []string{"a", "b"}, [][]float64{{1, 2}, {1}}, frame.ErrRaggedColumns},
		{"empty name", []string{"a", ""}, [][]float64{{1}, {2}}, frame.ErrEmptyName},
		{"duplicate", []string{"a", "a"}, [][]float64{{1}, {2}}, frame.ErrDuplicateColumn},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := frame.New(tc.names, tc.columns)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromRows_MatchesNew(t *testing.T) {
	t.Parallel()

	byRows, err := frame.FromRows([]string{"a", "b", "c"}, [][]float64{
		{1, 10, -1},
		{2, 20, 0},
		{3, 30, 1},
		{4, 40, 0},
	})
	require.NoError(t, err)
	assert.True(t, byRows.Equal(abc(t)))

	_, err = frame.FromRows([]string{"a", "b"}, [][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, frame.ErrRaggedColumns)
	_, err = frame.FromRows([]string{"a"}, nil)
	assert.ErrorIs(t, err, frame.ErrNoRows)
}

func TestFromDense_RoundTrip(t *testing.T) {
	t.Parallel()

	src := abc(t)
	back, err := frame.FromDense(src.Names(), src.Dense())
	require.NoError(t, err)
	assert.True(t, back.Equal(src))

	_, err = frame.FromDense([]string{"a"}, src.Dense())
	assert.ErrorIs(t, err, frame.ErrRaggedColumns)
	_, err = frame.FromDense([]string{"a"}, nil)
	assert.ErrorIs(t, err, frame.ErrNoColumns)
}

func TestTable_Accessors(t *testing.T) {
	t.Parallel()

	tbl := abc(t)
	assert.Equal(t, []string{"a", "b", "c"}, tbl.Names())
	assert.Equal(t, 4, tbl.NumRows())
	assert.Equal(t, 3, tbl.NumCols())
	assert.True(t, tbl.Has("b"))
	assert.False(t, tbl.Has("z"))

	j, ok := tbl.Index("c")
	assert.True(t, ok)
	assert.Equal(t, 2, j)

	col, err := tbl.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30, 40}, col)
	assert.Equal(t, []float64{3, 30, 1}, tbl.Row(2))

	_, err = tbl.Column("z")
	assert.ErrorIs(t, err, frame.ErrUnknownColumn)

	// Returned slices are copies.
	names := tbl.Names()
	names[0] = "mutated"
	col[0] = -99
	assert.Equal(t, "a", tbl.Names()[0])
	again, _ := tbl.Column("b")
	assert.Equal(t, 10.0, again[0])
}

func TestTable_DropIsCopyOnWrite(t *testing.T) {
	t.Parallel()

	tbl := abc(t)
	before := tbl.String()

	dropped, err := tbl.Drop("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, dropped.Names())

	a, _ := dropped.Column("a")
	c, _ := dropped.Column("c")
	assert.Equal(t, []float64{1, 2, 3, 4}, a)
	assert.Equal(t, []float64{-1, 0, 1, 0}, c)

	// The source snapshot is untouched.
	assert.Equal(t, before, tbl.String())
	assert.True(t, tbl.Has("b"))

	_, err = tbl.Drop("z")
	assert.ErrorIs(t, err, frame.ErrUnknownColumn)

	single, err := frame.New([]string{"only"}, [][]float64{{1, 2}})
	require.NoError(t, err)
	_, err = single.Drop("only")
	assert.ErrorIs(t, err, frame.ErrNoColumns)
}

func TestTable_Select(t *testing.T) {
	t.Parallel()

	tbl := abc(t)
	sel, err := tbl.Select([]string{"c", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, sel.Names())
	assert.Equal(t, []float64{-1, 1}, sel.Row(0))

	_, err = tbl.Select(nil)
	assert.ErrorIs(t, err, frame.ErrNoColumns)
	_, err = tbl.Select([]string{"a", "a"})
	assert.ErrorIs(t, err, frame.ErrDuplicateColumn)
	_, err = tbl.Select([]string{"nope"})
	assert.ErrorIs(t, err, frame.ErrUnknownColumn)
}

func TestTable_Constant(t *testing.T) {
	t.Parallel()

	tbl := abc(t)
	assert.False(t, tbl.HasConstant())

	aug := tbl.WithConstant()
	assert.Equal(t, []string{frame.ConstName, "a", "b", "c"}, aug.Names())
	ones, err := aug.Column(frame.ConstName)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1}, ones)
	a, err := aug.Column("a")
	require.NoError(t, err)
	first, err := tbl.Column("a")
	require.NoError(t, err)
	assert.Equal(t, first, a)
	ok, row := aug.ConstantIsOnes()
	assert.True(t, ok)
	assert.Equal(t, -1, row)

	// Idempotent: an augmented table is returned as-is.
	assert.Same(t, aug, aug.WithConstant())

	plain, err := aug.WithoutConstant()
	require.NoError(t, err)
	assert.True(t, plain.Equal(tbl))

	same, err := tbl.WithoutConstant()
	require.NoError(t, err)
	assert.Same(t, tbl, same)
}

func TestTable_ConstantIsOnes(t *testing.T) {
	t.Parallel()

	ok, row := abc(t).ConstantIsOnes()
	assert.False(t, ok)
	assert.Equal(t, -1, row)

	user, err := frame.New([]string{"x", frame.ConstName}, [][]float64{{1, 2, 3}, {1, 1, 4}})
	require.NoError(t, err)
	ok, row = user.ConstantIsOnes()
	assert.False(t, ok)
	assert.Equal(t, 2, row)

	// An existing const column is never replaced, whatever its values.
	assert.Same(t, user, user.WithConstant())
}

func TestTable_KeepsNonFinite(t *testing.T) {
	t.Parallel()

	tbl, err := frame.New([]string{"x"}, [][]float64{{1, math.NaN(), math.Inf(1)}})
	require.NoError(t, err)
	col, _ := tbl.Column("x")
	assert.True(t, math.IsNaN(col[1]))
	assert.True(t, math.IsInf(col[2], 1))
}

func TestTable_Equal(t *testing.T) {
	t.Parallel()

	a, b := abc(t), abc(t)
	assert.True(t, a.Equal(b))

	other, err := frame.New([]string{"a", "b", "c"}, [][]float64{
		{1, 2, 3, 4},
		{10, 20, 30, 41},
		{-1, 0, 1, 0},
	})
	require.NoError(t, err)
	assert.False(t, a.Equal(other))

	renamed, err := frame.New([]string{"a", "b", "d"}, [][]float64{
		{1, 2, 3, 4},
		{10, 20, 30, 40},
		{-1, 0, 1, 0},
	})
	require.NoError(t, err)
	assert.False(t, a.Equal(renamed))
	assert.False(t, a.Equal(nil))
}

package vif_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vifprune/vif"
)

func mustScores(t testing.TB, names []string, values ...float64) vif.Scores {
	t.Helper()
	s, err := vif.NewScores(names, values)
	require.NoError(t, err)

	return s
}

func TestNewScores_Validation(t *testing.T) {
	t.Parallel()

	_, err := vif.NewScores([]string{"a"}, nil)
	assert.ErrorIs(t, err, vif.ErrLengthMismatch)
	_, err = vif.NewScores([]string{"a", "a"}, []float64{1, 2})
	assert.ErrorIs(t, err, vif.ErrDuplicateName)

	var zero vif.Scores
	assert.Equal(t, 0, zero.Len())
	assert.Empty(t, zero.Map())
}

func TestScores_ReadOnlyViews(t *testing.T) {
	t.Parallel()

	names := []string{"a", "b", "c"}
	s := mustScores(t, names, 1.23456, math.Inf(1), 7.5)
	names[0] = "mutated"
	assert.Equal(t, []string{"a", "b", "c"}, s.Names())

	v, ok := s.Get("b")
	assert.True(t, ok)
	assert.True(t, math.IsInf(v, 1))
	_, ok = s.Get("z")
	assert.False(t, ok)
	assert.True(t, s.Has("c"))

	n, val := s.At(2)
	assert.Equal(t, "c", n)
	assert.Equal(t, 7.5, val)

	finite := s.Filter(func(_ string, v float64) bool { return !math.IsInf(v, 0) })
	assert.Equal(t, []string{"a", "c"}, finite.Names())
	assert.Equal(t, 3, s.Len())

	assert.Equal(t, []string{"a", "c"}, s.Without("b").Names())
	assert.Equal(t, []string{"a", "b", "c"}, s.Without("z").Names())

	r := s.Round(3)
	assert.Equal(t, []float64{1.235, math.Inf(1), 7.5}, r.Values())
	assert.Equal(t, 1.23456, s.Values()[0])

	assert.Equal(t, map[string]float64{"a": 1.23456, "b": math.Inf(1), "c": 7.5}, s.Map())
	assert.Equal(t, "{a=1.23456 b=+Inf c=7.5}", s.String())
}

func TestScores_EachStopsEarly(t *testing.T) {
	t.Parallel()

	s := mustScores(t, []string{"a", "b", "c"}, 1, 2, 3)
	var visited []string
	s.Each(func(name string, _ float64) bool {
		visited = append(visited, name)
		return name != "b"
	})
	assert.Equal(t, []string{"a", "b"}, visited)
}

package vif

import (
	"fmt"
	"math"
	"strings"
)

// Scores is an ordered, read-only mapping from column name to score.
// Iteration order is the column order of the table the scores were computed
// over. Every derived view (Filter, Round, Without) is a fresh value.
//
// The zero value is an empty Scores.
type Scores struct {
	names  []string
	values []float64
}

// NewScores pairs names with values, keeping the given order. Inputs are copied.
//
// Errors: ErrLengthMismatch, ErrDuplicateName.
func NewScores(names []string, values []float64) (Scores, error) {
	if len(names) != len(values) {
		return Scores{}, fmt.Errorf("vif: %d names, %d values: %w", len(names), len(values), ErrLengthMismatch)
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			return Scores{}, fmt.Errorf("vif: score %q: %w", n, ErrDuplicateName)
		}
		seen[n] = struct{}{}
	}

	return Scores{
		names:  append([]string(nil), names...),
		values: append([]float64(nil), values...),
	}, nil
}

// Len returns the number of entries.
func (s Scores) Len() int { return len(s.names) }

// Names returns a copy of the names in order.
func (s Scores) Names() []string { return append([]string(nil), s.names...) }

// Values returns a copy of the scores in order.
func (s Scores) Values() []float64 { return append([]float64(nil), s.values...) }

// At returns the i-th entry. i must be in [0, Len).
func (s Scores) At(i int) (string, float64) { return s.names[i], s.values[i] }

// Get returns the score for name.
func (s Scores) Get(name string) (float64, bool) {
	for i, n := range s.names {
		if n == name {
			return s.values[i], true
		}
	}

	return 0, false
}

// Has reports whether name has a score.
func (s Scores) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Each calls fn for every entry in order until fn returns false.
func (s Scores) Each(fn func(name string, score float64) bool) {
	for i, n := range s.names {
		if !fn(n, s.values[i]) {
			return
		}
	}
}

// Filter returns the entries for which keep returns true, order preserved.
func (s Scores) Filter(keep func(name string, score float64) bool) Scores {
	out := Scores{}
	for i, n := range s.names {
		if keep(n, s.values[i]) {
			out.names = append(out.names, n)
			out.values = append(out.values, s.values[i])
		}
	}

	return out
}

// Without returns the entries except name.
func (s Scores) Without(name string) Scores {
	return s.Filter(func(n string, _ float64) bool { return n != name })
}

// Round returns the scores rounded half away from zero to places decimals.
// Infinite and NaN scores are kept as they are.
func (s Scores) Round(places int) Scores {
	p := math.Pow(10, float64(places))
	out := Scores{names: s.Names(), values: make([]float64, len(s.values))}
	for i, v := range s.values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			out.values[i] = v
			continue
		}
		out.values[i] = math.Round(v*p) / p
	}

	return out
}

// Map returns the scores as a Go map (order is lost).
func (s Scores) Map() map[string]float64 {
	m := make(map[string]float64, len(s.names))
	for i, n := range s.names {
		m[n] = s.values[i]
	}

	return m
}

// String renders "name=score" pairs in order.
func (s Scores) String() string {
	parts := make([]string, len(s.names))
	for i, n := range s.names {
		parts[i] = fmt.Sprintf("%s=%g", n, s.values[i])
	}

	return "{" + strings.Join(parts, " ") + "}"
}

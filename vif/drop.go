package vif

import "math"

// DropHighest removes the entry with the largest score and returns the
// remaining scores together with the removed name.
//
// Selection is a single left-to-right scan with a strict ">" comparison, so
// among equal maxima the first one in iteration order wins. +Inf is larger
// than every finite score. NaN entries are skipped; when every entry is NaN
// the first entry is selected.
//
// Errors: ErrEmptyInput when s is empty.
//
// Complexity: O(n).
func DropHighest(s Scores) (Scores, string, error) {
	if s.Len() == 0 {
		return Scores{}, "", ErrEmptyInput
	}
	best := -1
	for i, v := range s.values {
		if math.IsNaN(v) {
			continue
		}
		if best < 0 || v > s.values[best] {
			best = i
		}
	}
	if best < 0 {
		best = 0
	}
	name := s.names[best]

	out := Scores{
		names:  make([]string, 0, s.Len()-1),
		values: make([]float64, 0, s.Len()-1),
	}
	for i := range s.names {
		if i != best {
			out.names = append(out.names, s.names[i])
			out.values = append(out.values, s.values[i])
		}
	}

	return out, name, nil
}

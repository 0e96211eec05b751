// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vifprune/matrix"
)

// randomDesign builds an r×c design with a fixed seed for reproducible benchmarks.
func randomDesign(b *testing.B, r, c int) (*matrix.Dense, []float64) {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	A, err := matrix.NewDenseFrom(r, c, data)
	if err != nil {
		b.Fatal(err)
	}
	y := make([]float64, r)
	for i := range y {
		y[i] = rng.NormFloat64()
	}

	return A, y
}

func BenchmarkLeastSquares_500x20(b *testing.B) {
	A, y := randomDesign(b, 500, 20)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.LeastSquares(A, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatVec_500x20(b *testing.B) {
	A, _ := randomDesign(b, 500, 20)
	x := make([]float64, 20)
	for i := range x {
		x[i] = float64(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.MatVec(A, x); err != nil {
			b.Fatal(err)
		}
	}
}

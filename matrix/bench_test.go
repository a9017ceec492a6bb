// Package matrix_test provides benchmarks for the scalar kernels,
// using deterministic random operands.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fanmul/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Mat3
	sinkF float64
)

func BenchmarkDot(b *testing.B) {
	b.ReportAllocs()
	m := randMat3(rand.New(rand.NewSource(1)))
	r, c := m.Row(0), m.Col(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = matrix.Dot(r, c)
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	rng := rand.New(rand.NewSource(4242))
	x, y := randMat3(rng), randMat3(rng)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = matrix.Mul(x, y)
	}
}

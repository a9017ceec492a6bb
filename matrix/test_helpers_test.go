// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.
//   • Keep all data finite so numeric-policy checks never interfere.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fanmul/matrix"
)

// sampleA and sampleB are the demo operands used throughout the package docs.
var (
	sampleA = matrix.Mat3{
		{1.4, 2.4, 3.1},
		{1.2, 4.9, 3.0},
		{0.1, 0.4, 3.7},
	}
	sampleB = matrix.Mat3{
		{2.3, 1.0, 4.2},
		{1.7, 4.6, 0.4},
		{6.2, 0.5, 1.0},
	}
	// sampleAB is sampleA × sampleB accumulated in ascending k order.
	sampleAB = matrix.Mat3{
		{26.520000000000003, 13.99, 9.94},
		{29.69, 25.24, 10.0},
		{23.85, 3.79, 4.28},
	}
)

// randMat3 FILLS a Mat3 with uniform values in [-50, 50) from a seeded source.
func randMat3(rng *rand.Rand) matrix.Mat3 {
	var m matrix.Mat3
	for i := 0; i < matrix.Size; i++ {
		for j := 0; j < matrix.Size; j++ {
			m[i][j] = rng.Float64()*100 - 50
		}
	}

	return m
}

// requireBitwiseEqual fails unless every cell of got has the same IEEE-754
// bit pattern as the matching cell of want.
func requireBitwiseEqual(t testing.TB, want, got matrix.Mat3) {
	t.Helper()
	for i := 0; i < matrix.Size; i++ {
		for j := 0; j < matrix.Size; j++ {
			if math.Float64bits(want[i][j]) != math.Float64bits(got[i][j]) {
				t.Fatalf("cell (%d,%d): want %v (%#x), got %v (%#x)",
					i, j, want[i][j], math.Float64bits(want[i][j]), got[i][j], math.Float64bits(got[i][j]))
			}
		}
	}
}

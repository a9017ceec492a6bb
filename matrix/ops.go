// SPDX-License-Identifier: MIT
// Package matrix: scalar kernels and the sequential reference multiply.
//
// Purpose:
//   - Provide Dot, the unit of work every concurrent cell task executes.
//   - Provide Mul, the single-threaded oracle the parallel engine is checked against.
//
// Notes:
//   - Each product is converted with float64(...) before it is summed. A conversion
//     rounds to float64, which forbids the compiler from emitting a fused
//     multiply-add; without it arm64/ppc64le/s390x could produce different bits.

package matrix

import "fmt"

// zeroSum is the initial accumulator of every dot product. Starting from +0
// turns an all -0 sum into +0, the same way for Dot and Mul.
const zeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAt             = "At"
	opRowAt          = "RowAt"
	opColAt          = "ColAt"
	opValidateFinite = "ValidateFinite"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dot computes the scalar product a.X*b.X + a.Y*b.Y + a.Z*b.Z.
// Implementation:
//   - Stage 1: round each of the three products to float64.
//   - Stage 2: sum left to right onto a +0 accumulator (x, then y, then z).
//
// Behavior highlights:
//   - Pure and total: no side effects, no failure modes. NaN/Inf propagate per IEEE-754.
//
// Determinism:
//   - Fixed summation order and no FMA fusion give identical bits on every platform.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - The cost is a handful of flops; dispatch overhead dominates any concurrent
//     use, so coarsen granularity rather than split further.
func Dot(a, b Vec3) float64 {
	return zeroSum + float64(a.X*b.X) + float64(a.Y*b.Y) + float64(a.Z*b.Z)
}

// Mul performs the reference matrix multiplication C = A × B on one goroutine.
// Implementation:
//   - Stage 1: for each row i and column j, start an explicit accumulator at +0.
//   - Stage 2: accumulate A[i][k]*B[k][j] for k = 0, 1, 2 in ascending order.
//
// Behavior highlights:
//   - Inputs are values; nothing the caller holds is mutated.
//   - No zero-skipping: every term is added, so signed zeros and NaN behave
//     exactly like Dot on the same row and column.
//
// Determinism:
//   - Fixed i→j→k loop order. Floating-point addition is not associative, so the
//     ascending k order is part of the contract.
//
// Complexity:
//   - Time O(27) multiplies, Space O(1) beyond the returned value.
func Mul(a, b Mat3) Mat3 {
	var (
		res     Mat3
		i, j, k int
		current float64
	)
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			current = zeroSum
			for k = 0; k < Size; k++ {
				current += float64(a[i][k] * b[k][j]) // accumulate product
			}
			res[i][j] = current
		}
	}

	return res
}

// MulVec computes y = m × v, each component being Dot(m.Row(i), v).
// Complexity: O(1).
func MulVec(m Mat3, v Vec3) Vec3 {
	return Vec3{
		X: Dot(m.Row(0), v),
		Y: Dot(m.Row(1), v),
		Z: Dot(m.Row(2), v),
	}
}

// Transpose returns mᵀ. The input is a copy and is never mutated.
func Transpose(m Mat3) Mat3 {
	var i, j int
	var t Mat3
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			t[j][i] = m[i][j]
		}
	}

	return t
}

// SPDX-License-Identifier: MIT

// Package matrix: value types.
// This file contains ONLY the Vec3/Mat3 types and their accessors.
// Builders live in builder.go, kernels in ops.go, checks in validators.go.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Size is the fixed dimension of every vector and matrix in this package.
const Size = 3

// Vec3 is a three-component vector. It is immutable by convention: no method
// mutates the receiver, and passing it around always copies.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 returns the vector (x, y, z).
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Mat3 is a 3×3 grid addressed as m[row][col].
// Being an array, a Mat3 is copied on assignment and on every call, so two
// goroutines holding the "same" Mat3 never share storage.
//
// Complexity notes: every method is O(1).
type Mat3 [Size][Size]float64

// FromRows assembles a matrix from three row vectors.
func FromRows(r0, r1, r2 Vec3) Mat3 {
	return Mat3{
		{r0.X, r0.Y, r0.Z},
		{r1.X, r1.Y, r1.Z},
		{r2.X, r2.Y, r2.Z},
	}
}

// Row returns row i as an independent Vec3 copy.
// i must be in [0,3); like any array index, anything else panics.
// Use RowAt for caller-supplied indices.
func (m Mat3) Row(i int) Vec3 {
	return Vec3{X: m[i][0], Y: m[i][1], Z: m[i][2]}
}

// Col returns column j as an independent Vec3 copy.
// j must be in [0,3); use ColAt for caller-supplied indices.
func (m Mat3) Col(j int) Vec3 {
	return Vec3{X: m[0][j], Y: m[1][j], Z: m[2][j]}
}

// RowAt is the checked form of Row.
// Returns ErrOutOfRange if i is outside [0,3).
func (m Mat3) RowAt(i int) (Vec3, error) {
	if err := ValidateIndex(i, 0); err != nil {
		return Vec3{}, matrixErrorf(opRowAt, err)
	}

	return m.Row(i), nil
}

// ColAt is the checked form of Col.
// Returns ErrOutOfRange if j is outside [0,3).
func (m Mat3) ColAt(j int) (Vec3, error) {
	if err := ValidateIndex(0, j); err != nil {
		return Vec3{}, matrixErrorf(opColAt, err)
	}

	return m.Col(j), nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via ValidateIndex.
// Stage 2 (Execute): read from the grid.
// Returns ErrOutOfRange if row or col is outside [0,3).
// Complexity: O(1).
func (m Mat3) At(row, col int) (float64, error) {
	if err := ValidateIndex(row, col); err != nil {
		return 0, matrixErrorf(opAt, err)
	}

	return m[row][col], nil
}

// Equal reports whether every cell of m equals the matching cell of b.
// Comparison is by ==, so NaN never equals anything and -0 equals +0.
func (m Mat3) Equal(b Mat3) bool {
	return m == b
}

// AllClose reports whether |m[i][j]-b[i][j]| ≤ eps for every cell.
// A negative or NaN eps never matches.
func (m Mat3) AllClose(b Mat3, eps float64) bool {
	if !(eps >= 0) {
		return false
	}
	var i, j int
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			if math.Abs(m[i][j]-b[i][j]) > eps {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer, one bracketed row per line.
func (m Mat3) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < Size; i++ {
		sb.WriteByte('[')
		for j = 0; j < Size; j++ {
			sb.WriteString(fmt.Sprintf("%g", m[i][j]))
			if j < Size-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// SPDX-License-Identifier: MIT

package matrix

import "math"

// Zero returns the all-zero matrix. It equals the zero value Mat3{}.
func Zero() Mat3 {
	return Diag(0)
}

// Identity returns the 3×3 identity matrix.
func Identity() Mat3 {
	return Diag(1)
}

// Diag returns a matrix with v on the main diagonal and zeros elsewhere.
func Diag(v float64) Mat3 {
	return Scale(v, v, v)
}

// Scale returns the scaling matrix diag(sx, sy, sz).
func Scale(sx, sy, sz float64) Mat3 {
	return Mat3{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, sz},
	}
}

// RotateX returns the right-handed rotation by angle radians about the X axis.
//
// Complexity: O(1); one Sincos evaluation.
func RotateX(angle float64) Mat3 {
	s, c := math.Sincos(angle)

	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotateY returns the right-handed rotation by angle radians about the Y axis.
func RotateY(angle float64) Mat3 {
	s, c := math.Sincos(angle)

	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotateZ returns the right-handed rotation by angle radians about the Z axis.
func RotateZ(angle float64) Mat3 {
	s, c := math.Sincos(angle)

	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for index and numeric checks.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// IsNonFinite reports whether x is NaN or ±Inf.
func IsNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// ValidateIndex ensures 0 ≤ row < 3 and 0 ≤ col < 3.
// Returns ErrOutOfRange otherwise.
// Complexity: O(1).
func ValidateIndex(row, col int) error {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return nil
}

// ValidateFinite ensures every cell of m is finite.
//
// Inputs: Mat3 value.
// Returns ErrNaNInf naming the first offending cell in i→j order.
// Complexity: O(9).
// AI-Hints: Run on both operands before fanning out so a bad input fails
// fast instead of producing nine NaN cells.
func ValidateFinite(m Mat3) error {
	var i, j int
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			if IsNonFinite(m[i][j]) {
				return matrixErrorf(opValidateFinite, fmt.Errorf("(%d,%d)=%g: %w", i, j, m[i][j], ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateFiniteVec ensures every component of v is finite.
func ValidateFiniteVec(v Vec3) error {
	if IsNonFinite(v.X) || IsNonFinite(v.Y) || IsNonFinite(v.Z) {
		return matrixErrorf(opValidateFinite, fmt.Errorf("%v: %w", v, ErrNaNInf))
	}

	return nil
}

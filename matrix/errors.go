// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Callers match these via errors.Is; call sites wrap them with an operation
// tag through matrixErrorf.

package matrix

import "errors"

var (
	// ErrOutOfRange indicates that a row or column index is outside [0,3).
	// Public indexers (At/RowAt/ColAt) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (ValidateFinite).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

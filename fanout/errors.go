// SPDX-License-Identifier: MIT

package fanout

import (
	"errors"
	"fmt"
)

// Sentinel errors for fan-out execution.
var (
	// ErrCellFailed is returned when one or more cell tasks failed. The
	// concrete error is a *CellError naming the first failing cell.
	ErrCellFailed = errors.New("fanout: cell computation failed")

	// ErrTimeout is returned when the WithTimeout deadline (or a deadline on
	// the caller's context) expires before every cell is accounted for.
	ErrTimeout = errors.New("fanout: timed out waiting for cell results")

	// ErrDuplicateCell is returned when a cell is written twice. It signals a
	// broken task plan and is never expected in practice.
	ErrDuplicateCell = errors.New("fanout: cell written more than once")

	// ErrMissingCell is returned when aggregation finished without every cell
	// having been written.
	ErrMissingCell = errors.New("fanout: cell never written")

	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fanout: invalid option supplied")

	// ErrUnknownStrategy is returned when parsing an unrecognized strategy name.
	ErrUnknownStrategy = errors.New("fanout: unknown strategy")

	// ErrUnknownGranularity is returned when parsing an unrecognized granularity name.
	ErrUnknownGranularity = errors.New("fanout: unknown granularity")
)

// CellError reports the failure of the task computing cell (Row, Col).
// errors.Is(err, ErrCellFailed) holds for every *CellError, and Unwrap exposes
// the underlying cause.
type CellError struct {
	Row, Col int
	Cause    error
}

// Error implements error.
func (e *CellError) Error() string {
	return fmt.Sprintf("%v at (%d,%d): %v", ErrCellFailed, e.Row, e.Col, e.Cause)
}

// Is makes errors.Is(err, ErrCellFailed) succeed.
func (e *CellError) Is(target error) bool {
	return target == ErrCellFailed
}

// Unwrap returns the cause.
func (e *CellError) Unwrap() error {
	return e.Cause
}

// Operation tags used when wrapping errors at the package boundary.
const (
	opMultiply = "Multiply"
	opBatch    = "MultiplyBatch"
)

// fanoutErrorf wraps err with an operation tag. Use only when err != nil.
func fanoutErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

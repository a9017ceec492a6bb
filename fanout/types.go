// SPDX-License-Identifier: MIT

// Package fanout: domain types shared by both aggregation strategies.
package fanout

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fanmul/matrix"
)

// cellCount is the number of output cells every multiply must account for.
const cellCount = matrix.Size * matrix.Size

// CellResult is the unit a cell task hands to the aggregator: the value of
// output cell (Row, Col). Row and Col are in [0,3) and every (Row, Col) pair
// is produced by exactly one task exactly once.
type CellResult struct {
	Row, Col int
	Value    float64
}

// Kernel computes one output cell from a row of the left operand and a
// column of the right operand. matrix.Dot is the default.
type Kernel func(row, col matrix.Vec3) float64

// Pair is one A × B input to MultiplyBatch.
type Pair struct {
	A, B matrix.Mat3
}

// Strategy selects how cell results are aggregated.
type Strategy int

const (
	// Channel aggregates by message passing: tasks send CellResults, the
	// caller drains them and is the only writer of the result grid.
	Channel Strategy = iota

	// Locked aggregates through one shared grid under a single coarse mutex;
	// tasks write their own cells and signal completion separately.
	Locked
)

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case Channel:
		return "channel"
	case Locked:
		return "locked"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "channel" or "locked" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "channel":
		return Channel, nil
	case "locked":
		return Locked, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Granularity selects how much work one task carries.
type Granularity int

const (
	// PerCell dispatches nine tasks, one Dot each.
	PerCell Granularity = iota

	// PerRow dispatches three tasks, each computing the three cells of one row.
	PerRow
)

// String returns the lower-case granularity name.
func (g Granularity) String() string {
	switch g {
	case PerCell:
		return "cell"
	case PerRow:
		return "row"
	default:
		return fmt.Sprintf("Granularity(%d)", int(g))
	}
}

// ParseGranularity maps "cell" or "row" (case-insensitive) to a Granularity.
func ParseGranularity(name string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cell":
		return PerCell, nil
	case "row":
		return PerRow, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGranularity, name)
	}
}

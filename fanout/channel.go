// SPDX-License-Identifier: MIT

package fanout

import (
	"context"

	"github.com/katalvlaran/fanmul/matrix"
)

// outcome is one message on the Channel strategy's results channel: either a
// finished cell or the error that stopped a task.
type outcome struct {
	cell CellResult
	err  error
}

// multiplyChannel aggregates by message passing.
// Implementation:
//   - Stage 1: allocate a results channel with one slot per cell. A task sends
//     at most one message per cell it carries, so no send can ever block, even
//     after the caller has stopped listening.
//   - Stage 2: dispatch every task; each sends CellResults, or one error.
//   - Stage 3: counted blocking receive of exactly nine results. Only this
//     goroutine touches the grid, so the grid needs no lock.
//
// Behavior highlights:
//   - Arrival order is irrelevant: each message carries its own coordinate.
//   - The first error aborts aggregation; the partial grid is dropped.
//
// Complexity:
//   - Time O(9) receives after dispatch, Space O(9) channel slots.
func (e *Engine) multiplyChannel(ctx context.Context, tasks []task) (matrix.Mat3, error) {
	results := make(chan outcome, cellCount)

	e.dispatch(ctx, tasks, func(t task) {
		err := t.run(e.opts.kernel, func(c CellResult) error {
			results <- outcome{cell: c}
			return nil
		})
		if err != nil {
			results <- outcome{err: err}
		}
	})

	grid := newCellGrid(e.opts.onCellWrite)
	for received := 0; received < cellCount; received++ {
		select {
		case out := <-results:
			if out.err != nil {
				return matrix.Mat3{}, out.err
			}
			if err := grid.put(out.cell); err != nil {
				return matrix.Mat3{}, err
			}
		case <-ctx.Done():
			return matrix.Mat3{}, contextErr(ctx)
		}
	}

	return grid.result()
}

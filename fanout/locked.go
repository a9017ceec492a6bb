// SPDX-License-Identifier: MIT

package fanout

import (
	"context"

	"github.com/katalvlaran/fanmul/matrix"
)

// multiplyLocked aggregates through shared state.
// Implementation:
//   - Stage 1: allocate one grid behind one mutex, and a done channel with one
//     slot per task so completion signals never block.
//   - Stage 2: dispatch every task. A task evaluates the kernel outside the
//     lock, then locks, writes its single cell, and unlocks, once per cell it
//     carries; finally it sends its error (nil on success) on done.
//   - Stage 3: counted blocking receive of one signal per task, then read the
//     grid under the lock.
//
// Behavior highlights:
//   - Only the cell assignment is serialized; the dot products run in parallel.
//   - Each done receive happens-after that task's unlock, so every write is
//     visible before the grid is read.
//   - The first error aborts aggregation; the shared grid is abandoned, never
//     returned.
//
// Complexity:
//   - Time O(tasks) receives after dispatch, nine lock acquisitions in total.
func (e *Engine) multiplyLocked(ctx context.Context, tasks []task) (matrix.Mat3, error) {
	shared := &lockedGrid{grid: newCellGrid(e.opts.onCellWrite)}
	done := make(chan error, len(tasks))

	e.dispatch(ctx, tasks, func(t task) {
		done <- t.run(e.opts.kernel, shared.put)
	})

	for signaled := 0; signaled < len(tasks); signaled++ {
		select {
		case err := <-done:
			if err != nil {
				return matrix.Mat3{}, err
			}
		case <-ctx.Done():
			return matrix.Mat3{}, contextErr(ctx)
		}
	}

	return shared.result()
}

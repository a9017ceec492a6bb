// SPDX-License-Identifier: MIT

package fanout

import (
	"fmt"

	"github.com/katalvlaran/fanmul/matrix"
)

// task is one unit of fan-out work: one row of the left operand paired with
// one (PerCell) or three (PerRow) columns of the right operand. All fields are
// values, so a task owns an independent snapshot of its inputs.
type task struct {
	row  int
	lhs  matrix.Vec3
	n    int // number of columns carried, 1 or 3
	cols [matrix.Size]int
	rhs  [matrix.Size]matrix.Vec3
}

// plan splits A × B into tasks. The union of (row, cols[k]) over all tasks
// is exactly the nine output cells, each appearing once.
func plan(a, b matrix.Mat3, g Granularity) []task {
	var i, j int
	if g == PerRow {
		tasks := make([]task, 0, matrix.Size)
		for i = 0; i < matrix.Size; i++ {
			t := task{row: i, lhs: a.Row(i), n: matrix.Size}
			for j = 0; j < matrix.Size; j++ {
				t.cols[j] = j
				t.rhs[j] = b.Col(j)
			}
			tasks = append(tasks, t)
		}

		return tasks
	}

	tasks := make([]task, 0, cellCount)
	for i = 0; i < matrix.Size; i++ {
		for j = 0; j < matrix.Size; j++ {
			t := task{row: i, lhs: a.Row(i), n: 1}
			t.cols[0] = j
			t.rhs[0] = b.Col(j)
			tasks = append(tasks, t)
		}
	}

	return tasks
}

// run evaluates each cell of t in column order and hands it to emit.
// It stops at the first emit error and returns it.
// A panic in kernel or emit is recovered and returned as a *CellError for the
// cell being processed; later cells of t are not evaluated.
func (t task) run(kernel Kernel, emit func(CellResult) error) (err error) {
	col := t.cols[0]
	defer func() {
		if r := recover(); r != nil {
			err = &CellError{Row: t.row, Col: col, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	var k int
	for k = 0; k < t.n; k++ {
		col = t.cols[k]
		if err = emit(CellResult{Row: t.row, Col: col, Value: kernel(t.lhs, t.rhs[k])}); err != nil {
			return err
		}
	}

	return nil
}

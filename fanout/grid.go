// SPDX-License-Identifier: MIT

package fanout

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/fanmul/matrix"
)

// cellGrid is the result matrix under construction plus the bookkeeping that
// proves each cell was written exactly once. It is not safe for concurrent
// use; Locked wraps it in lockedGrid.
type cellGrid struct {
	cells   matrix.Mat3
	written [matrix.Size][matrix.Size]bool
	count   int
	onWrite func(row, col int)
}

func newCellGrid(onWrite func(row, col int)) *cellGrid {
	if onWrite == nil {
		onWrite = func(int, int) {}
	}

	return &cellGrid{onWrite: onWrite}
}

// put stores c.Value at (c.Row, c.Col).
// Returns matrix.ErrOutOfRange for a bad coordinate and ErrDuplicateCell if
// the cell already holds a result; the grid is unchanged in both cases.
func (g *cellGrid) put(c CellResult) error {
	if err := matrix.ValidateIndex(c.Row, c.Col); err != nil {
		return err
	}
	if g.written[c.Row][c.Col] {
		return fmt.Errorf("(%d,%d): %w", c.Row, c.Col, ErrDuplicateCell)
	}

	g.cells[c.Row][c.Col] = c.Value
	g.written[c.Row][c.Col] = true
	g.count++

	return g.notify(c.Row, c.Col)
}

// notify runs the write hook, turning a panic into a *CellError so that a
// faulty hook fails the multiply instead of the aggregating goroutine.
func (g *cellGrid) notify(row, col int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &CellError{Row: row, Col: col, Cause: fmt.Errorf("write hook panic: %v", r)}
		}
	}()
	g.onWrite(row, col)

	return nil
}

// complete reports whether all nine cells have been written.
func (g *cellGrid) complete() bool {
	return g.count == cellCount
}

// result hands back the finished matrix, or ErrMissingCell naming the first
// unwritten cell in i→j order. A partial grid never leaves this function.
func (g *cellGrid) result() (matrix.Mat3, error) {
	if g.complete() {
		return g.cells, nil
	}

	var i, j int
	for i = 0; i < matrix.Size; i++ {
		for j = 0; j < matrix.Size; j++ {
			if !g.written[i][j] {
				return matrix.Mat3{}, fmt.Errorf("(%d,%d): %w", i, j, ErrMissingCell)
			}
		}
	}

	return matrix.Mat3{}, ErrMissingCell // unreachable while count tracks written
}

// lockedGrid shares one cellGrid between concurrent writers under a single
// coarse mutex covering the whole matrix.
type lockedGrid struct {
	mu   sync.Mutex
	grid *cellGrid
}

// put acquires the lock for exactly one cell write. The deferred unlock
// releases it on every exit path.
func (l *lockedGrid) put(c CellResult) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.grid.put(c)
}

func (l *lockedGrid) result() (matrix.Mat3, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.grid.result()
}

// Package fanout multiplies two matrix.Mat3 values by fanning the work out to
// independent cell tasks and fanning the results back in.
//
// What
//
//   - Split A × B into nine cell tasks (or three row tasks with PerRow); each
//     task captures value copies of one row of A and the column(s) of B it
//     needs and evaluates matrix.Dot.
//   - Aggregate the results with one of two interchangeable strategies:
//   - Channel: every task sends a CellResult on a buffered channel and the
//     caller drains exactly nine messages. The result grid is touched only by
//     the caller, so it needs no lock.
//   - Locked: every task writes its own cell into one shared grid guarded by a
//     single coarse mutex, then signals completion on a done channel that the
//     caller counts.
//   - Dispatch tasks on a fresh goroutine each (default) or on a persistent,
//     bounded Pool shared across calls.
//
// Why
//
//   - The arithmetic is trivial; the point is the fan-out/fan-in contract:
//     every cell written exactly once, no partial result ever observable, and
//     output independent of scheduling.
//
// Determinism
//
//	Each cell is one Dot of three terms with a fixed x, y, z order, so the
//	output is bit-identical to matrix.Mul whatever order tasks finish in.
//
// Failure
//
//	A panicking task is recovered inside the task and reported through the
//	same channel a success would have used, so the caller never waits for a
//	signal that cannot arrive. The multiply then returns ErrCellFailed and the
//	zero Mat3. Context cancellation and WithTimeout stop the wait early with
//	ctx.Err() or ErrTimeout. Abandoned tasks finish into buffered channels and
//	exit on their own.
//
// Complexity
//
//   - Work: 27 multiplies. Span: one Dot plus dispatch and one mutex or channel
//     hop per cell.
//
// Example
//
//	eng, err := fanout.New(fanout.WithStrategy(fanout.Locked))
//	if err != nil { ... }
//	c, err := eng.Multiply(ctx, a, b)
package fanout

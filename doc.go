// Package fanmul multiplies 3×3 matrices by fan-out/fan-in: every output
// cell is an independent dot-product task, the tasks run concurrently, and
// their results are gathered back into one deterministic matrix.
//
// What is in the box?
//
//	matrix/     Vec3 and Mat3 value types, builders (identity, scale,
//	            rotations), the Dot kernel and the sequential Mul oracle
//	fanout/     the concurrent Engine with two aggregation strategies
//	            (Channel, Locked), per-cell or per-row tasks, a reusable
//	            worker Pool, deadlines, batch multiply and tracing
//	cmd/fanmul  demo command, configured from FANMUL_* env vars and flags
//
// Guarantees:
//
//   - Each of the nine cells is written exactly once per multiply.
//   - Concurrent output is bit-identical to matrix.Mul for the same inputs,
//     whatever the completion order of the tasks.
//   - A failed or timed-out multiply returns an error and the zero matrix,
//     never a partially written one.
//
// Quick example:
//
//	res, err := fanout.Multiply(ctx, matrix.Identity(), m,
//		fanout.WithStrategy(fanout.Locked))
//
//	go get github.com/katalvlaran/fanmul
package fanmul

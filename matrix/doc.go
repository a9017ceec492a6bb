// Package matrix provides the fixed-size value types and the scalar kernels
// that the concurrent multiply engine is built on.
//
// What:
//
//   - Vec3 and Mat3 value types. Both copy on assignment and on call, so a
//     row or column handed to a goroutine is an independent snapshot.
//   - Named builders (Zero, Identity, Diag, Scale, RotateX/Y/Z).
//   - Dot, the per-cell kernel dispatched by package fanout.
//   - Mul, the single-threaded triple-loop reference multiply, plus MulVec
//     and Transpose.
//
// Determinism:
//
//	Dot sums x, y, z in that order and Mul accumulates k = 0, 1, 2 in
//	ascending order. Every product is rounded to float64 before it is added,
//	so no platform may fuse the multiply-add and results are bit-reproducible.
//
// Complexity:
//
//	Every operation is O(1): the shape is fixed at 3×3 by the type itself,
//	so dimension mismatches cannot occur.
package matrix

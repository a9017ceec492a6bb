// SPDX-License-Identifier: MIT

package fanout

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fanmul/matrix"
)

// MultiplyBatch multiplies every pair concurrently, each through Multiply.
// Implementation:
//   - Stage 1: one errgroup goroutine per pair, at most limit running at once
//     (limit <= 0 means no limit).
//   - Stage 2: each goroutine writes only its own slot of the output slice.
//   - Stage 3: Wait; the first failure cancels the group context so pairs not
//     yet finished abort early.
//
// Returns:
//   - []matrix.Mat3 index-aligned with pairs, or nil and the first error
//     (tagged with the failing pair index). An empty batch yields an empty slice.
//
// Complexity:
//   - Time O(len(pairs) / limit) Multiply latencies, Space O(len(pairs)).
func (e *Engine) MultiplyBatch(ctx context.Context, pairs []Pair, limit int) ([]matrix.Mat3, error) {
	ctx, span := e.tracer.Start(ctx, spanBatch, trace.WithAttributes(
		attribute.Int(attrBatchSize, len(pairs)),
		attribute.Int(attrBatchLimit, limit),
	))
	defer span.End()

	out := make([]matrix.Mat3, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, p := range pairs {
		g.Go(func() error {
			m, err := e.Multiply(gctx, p.A, p.B)
			if err != nil {
				return fmt.Errorf("pair %d: %w", i, err)
			}
			out[i] = m

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		err = fanoutErrorf(opBatch, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return out, nil
}

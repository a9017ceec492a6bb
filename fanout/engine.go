// SPDX-License-Identifier: MIT

package fanout

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/fanmul/matrix"
)

// instrumentationName identifies this package's tracer.
const instrumentationName = "github.com/katalvlaran/fanmul/fanout"

// Span and attribute names.
const (
	spanMultiply    = "fanout.Multiply"
	spanBatch       = "fanout.MultiplyBatch"
	attrStrategy    = "fanout.strategy"
	attrGranularity = "fanout.granularity"
	attrTasks       = "fanout.tasks"
	attrPooled      = "fanout.pooled"
	attrBatchSize   = "fanout.batch.size"
	attrBatchLimit  = "fanout.batch.limit"
)

// Engine multiplies Mat3 values by fan-out/fan-in. An Engine is immutable
// after New and safe for concurrent use; concurrent Multiply calls share
// nothing but the optional Pool.
type Engine struct {
	opts   Options
	tracer trace.Tracer
}

// New builds an Engine from opts.
// Returns ErrOptionViolation (wrapping the specific cause) for invalid options.
func New(opts ...Option) (*Engine, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	tp := o.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Engine{opts: o, tracer: tp.Tracer(instrumentationName)}, nil
}

// Strategy returns the configured aggregation strategy.
func (e *Engine) Strategy() Strategy { return e.opts.strategy }

// Granularity returns the configured task granularity.
func (e *Engine) Granularity() Granularity { return e.opts.granularity }

// Multiply computes A × B concurrently, cell (i,j) being
// matrix.Dot(a.Row(i), b.Col(j)).
// Implementation:
//   - Stage 1: validate operands (unless WithNoValidateFinite) and the context.
//   - Stage 2: derive a cancelable context, bounded by WithTimeout if set.
//   - Stage 3: plan tasks, dispatch them, and aggregate with the configured strategy.
//
// Behavior highlights:
//   - Returns either the complete product or the zero Mat3 with an error,
//     never a partially written matrix.
//   - Output is bit-identical to matrix.Mul for the same inputs.
//
// Errors:
//   - matrix.ErrNaNInf      (non-finite operand under validation).
//   - ErrCellFailed         (a task panicked; the error is a *CellError).
//   - ErrTimeout            (deadline expired while waiting).
//   - context.Canceled      (caller canceled ctx).
//
// Complexity:
//   - Work O(27) flops plus one dispatch per task.
func (e *Engine) Multiply(ctx context.Context, a, b matrix.Mat3) (matrix.Mat3, error) {
	tasks := taskCount(e.opts.granularity)
	ctx, span := e.tracer.Start(ctx, spanMultiply, trace.WithAttributes(
		attribute.String(attrStrategy, e.opts.strategy.String()),
		attribute.String(attrGranularity, e.opts.granularity.String()),
		attribute.Int(attrTasks, tasks),
		attribute.Bool(attrPooled, e.opts.pool != nil),
	))
	defer span.End()

	res, err := e.multiply(ctx, a, b)
	if err != nil {
		err = fanoutErrorf(opMultiply, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return matrix.Mat3{}, err
	}

	return res, nil
}

func (e *Engine) multiply(ctx context.Context, a, b matrix.Mat3) (matrix.Mat3, error) {
	if e.opts.validateFinite {
		if err := matrix.ValidateFinite(a); err != nil {
			return matrix.Mat3{}, fmt.Errorf("lhs: %w", err)
		}
		if err := matrix.ValidateFinite(b); err != nil {
			return matrix.Mat3{}, fmt.Errorf("rhs: %w", err)
		}
	}

	var cancel context.CancelFunc
	if e.opts.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, e.opts.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	// Cancel on every return: stops pool submission of undispatched tasks.
	defer cancel()

	if ctx.Err() != nil {
		return matrix.Mat3{}, contextErr(ctx)
	}

	tasks := plan(a, b, e.opts.granularity)
	if e.opts.strategy == Locked {
		return e.multiplyLocked(ctx, tasks)
	}

	return e.multiplyChannel(ctx, tasks)
}

// dispatch starts run(t) for every task: on a new goroutine each, or through
// the Pool. Pool submission happens on a separate goroutine so a saturated
// pool never keeps the caller from observing ctx; it stops at the first
// rejected submission, which only happens once ctx is done.
func (e *Engine) dispatch(ctx context.Context, tasks []task, run func(task)) {
	if e.opts.pool == nil {
		for _, t := range tasks {
			go run(t)
		}
		return
	}

	pool := e.opts.pool
	go func() {
		for _, t := range tasks {
			if err := pool.Submit(ctx, func() { run(t) }); err != nil {
				return
			}
		}
	}()
}

// contextErr maps a done context to the error Multiply reports.
func contextErr(ctx context.Context) error {
	err := context.Cause(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	return err
}

// taskCount returns how many tasks plan produces for g.
func taskCount(g Granularity) int {
	if g == PerRow {
		return matrix.Size
	}

	return cellCount
}

// Multiply is a convenience for New(opts...) followed by Multiply.
func Multiply(ctx context.Context, a, b matrix.Mat3, opts ...Option) (matrix.Mat3, error) {
	e, err := New(opts...)
	if err != nil {
		return matrix.Mat3{}, err
	}

	return e.Multiply(ctx, a, b)
}

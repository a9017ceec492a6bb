// SPDX-License-Identifier: MIT

// Package fanout: functional configuration for Engine.
// Invalid values are recorded while options are applied and surfaced by New
// as ErrOptionViolation; options themselves never panic.
package fanout

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/fanmul/matrix"
)

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultStrategy aggregates by message passing.
	DefaultStrategy = Channel

	// DefaultGranularity dispatches one task per output cell.
	DefaultGranularity = PerCell

	// DefaultTimeout of zero means no deadline beyond the caller's context.
	DefaultTimeout = time.Duration(0)

	// DefaultValidateFinite rejects NaN/±Inf operands before dispatch.
	DefaultValidateFinite = true
)

// Option configures an Engine via functional arguments.
type Option func(*Options)

// Options holds the effective Engine configuration.
type Options struct {
	strategy       Strategy
	granularity    Granularity
	pool           *Pool
	timeout        time.Duration
	validateFinite bool
	kernel         Kernel

	// onCellWrite is called once per cell as it lands in the result grid.
	// Calls are serialized: on the aggregating goroutine for Channel and
	// inside the grid lock for Locked.
	onCellWrite func(row, col int)

	tracerProvider trace.TracerProvider

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Channel strategy, PerCell granularity
//   - goroutine-per-task dispatch (no Pool)
//   - no deadline
//   - finite-value validation on
//   - matrix.Dot kernel and a no-op write hook
//   - the global OpenTelemetry tracer provider (resolved by New).
func DefaultOptions() Options {
	return Options{
		strategy:       DefaultStrategy,
		granularity:    DefaultGranularity,
		timeout:        DefaultTimeout,
		validateFinite: DefaultValidateFinite,
		kernel:         matrix.Dot,
		onCellWrite:    func(int, int) {},
	}
}

// WithStrategy selects the aggregation strategy.
// Unknown values → ErrOptionViolation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Channel, Locked:
			o.strategy = s
		default:
			o.err = fmt.Errorf("%w: %w: %v", ErrOptionViolation, ErrUnknownStrategy, s)
		}
	}
}

// WithGranularity selects per-cell or per-row tasks.
// Unknown values → ErrOptionViolation.
func WithGranularity(g Granularity) Option {
	return func(o *Options) {
		switch g {
		case PerCell, PerRow:
			o.granularity = g
		default:
			o.err = fmt.Errorf("%w: %w: %v", ErrOptionViolation, ErrUnknownGranularity, g)
		}
	}
}

// WithPool dispatches tasks to p instead of spawning a goroutine per task.
// The Engine does not own p; the caller closes it. A nil p restores the default.
func WithPool(p *Pool) Option {
	return func(o *Options) { o.pool = p }
}

// WithTimeout bounds each Multiply call.
//
//	d > 0: abandon the wait after d and return ErrTimeout
//	d == 0: no deadline beyond the caller's context
//	d < 0: invalid option → ErrOptionViolation
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: timeout cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.timeout = d
	}
}

// WithValidateFinite rejects operands containing NaN or ±Inf with
// matrix.ErrNaNInf before any task is dispatched. This is the default.
func WithValidateFinite() Option {
	return func(o *Options) { o.validateFinite = true }
}

// WithNoValidateFinite lets NaN and ±Inf flow through the kernel per IEEE-754.
func WithNoValidateFinite() Option {
	return func(o *Options) { o.validateFinite = false }
}

// WithKernel replaces matrix.Dot as the per-cell computation.
// A nil fn is ignored.
func WithKernel(fn Kernel) Option {
	return func(o *Options) {
		if fn != nil {
			o.kernel = fn
		}
	}
}

// WithOnCellWrite registers a callback run once per written cell.
// fn must not block; it runs on the aggregation path.
func WithOnCellWrite(fn func(row, col int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onCellWrite = fn
		}
	}
}

// WithTracerProvider sets the provider used for Multiply spans.
// A nil tp keeps the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.tracerProvider = tp
		}
	}
}

// gatherOptions applies opts over DefaultOptions and returns the first
// recorded violation.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil {
			return Options{}, o.err
		}
	}

	return o, nil
}

// Package fanmul parses the fanmul command configuration and runs the demo.
package fanmul

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/katalvlaran/fanmul/fanout"
	"github.com/katalvlaran/fanmul/internal/config"
	"github.com/katalvlaran/fanmul/internal/telemetry"
	"github.com/katalvlaran/fanmul/matrix"
)

// ServiceName identifies the command in telemetry.
const ServiceName = "fanmul"

const defaultOTelShutdownTimeout = 5 * time.Second

// Config holds fanmul command configuration.
type Config struct {
	Strategy    string        `env:"FANMUL_STRATEGY" envDefault:"channel"`
	Granularity string        `env:"FANMUL_GRANULARITY" envDefault:"cell"`
	Workers     int           `env:"FANMUL_WORKERS" envDefault:"0"`
	Timeout     time.Duration `env:"FANMUL_TIMEOUT" envDefault:"0s"`
	Repeat      int           `env:"FANMUL_REPEAT" envDefault:"1"`
}

// ParseConfig parses environment and flags into Config. Flags win over env.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "Aggregation strategy: channel or locked")
	fs.StringVar(&cfg.Granularity, "granularity", cfg.Granularity, "Task granularity: cell or row")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Pool workers; 0 starts one goroutine per task")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Deadline per multiply; 0 disables it")
	fs.IntVar(&cfg.Repeat, "repeat", cfg.Repeat, "Number of times the product is recomputed and checked")
	if err := config.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Repeat < 1 {
		return Config{}, fmt.Errorf("repeat must be at least 1, got %d", cfg.Repeat)
	}
	if cfg.Workers < 0 {
		return Config{}, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	return cfg, nil
}

// Run configures telemetry and runs the demo, writing results to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	shutdown, err := telemetry.Setup(ctx, ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultOTelShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", ServiceName, err)
		}
	}()

	eng, closeEngine, err := newEngine(cfg)
	if err != nil {
		return err
	}
	defer closeEngine()

	return demo(ctx, eng, cfg.Repeat, out)
}

// newEngine builds the engine cfg describes. The returned func releases the
// pool, if one was started.
func newEngine(cfg Config) (*fanout.Engine, func(), error) {
	strategy, err := fanout.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, nil, err
	}
	granularity, err := fanout.ParseGranularity(cfg.Granularity)
	if err != nil {
		return nil, nil, err
	}

	opts := []fanout.Option{
		fanout.WithStrategy(strategy),
		fanout.WithGranularity(granularity),
		fanout.WithTimeout(cfg.Timeout),
	}
	release := func() {}
	if cfg.Workers > 0 {
		pool := fanout.NewPool(cfg.Workers)
		opts = append(opts, fanout.WithPool(pool))
		release = pool.Close
	}

	eng, err := fanout.New(opts...)
	if err != nil {
		release()
		return nil, nil, err
	}
	return eng, release, nil
}

// Demo operands.
var (
	demoA = matrix.Mat3{
		{1.4, 2.4, 3.1},
		{1.2, 4.9, 3.0},
		{0.1, 0.4, 3.7},
	}
	demoB = matrix.Mat3{
		{2.3, 1.0, 4.2},
		{1.7, 4.6, 0.4},
		{6.2, 0.5, 1.0},
	}
	demoVec   = matrix.NewVec3(2.0, 1.3, 3.2)
	demoDotL  = matrix.NewVec3(1.4, 1.2, 4.3)
	demoDotR  = matrix.NewVec3(0.5, 0.3, 2.7)
	demoPoint = matrix.NewVec3(1.4, 3.7, 0.9)
)

// errMismatch reports a concurrent product differing from the sequential one.
var errMismatch = errors.New("concurrent product differs from sequential product")

func demo(ctx context.Context, eng *fanout.Engine, repeat int, out io.Writer) error {
	want := matrix.Mul(demoA, demoB)

	var product matrix.Mat3
	var err error
	for n := 0; n < repeat; n++ {
		product, err = eng.Multiply(ctx, demoA, demoB)
		if err != nil {
			return fmt.Errorf("multiply %d: %w", n, err)
		}
		if !product.Equal(want) {
			return fmt.Errorf("multiply %d: %w", n, errMismatch)
		}
	}

	model, err := eng.Multiply(ctx, matrix.Scale(2.0, 1.0, 3.7), matrix.RotateY(32))
	if err != nil {
		return fmt.Errorf("model matrix: %w", err)
	}

	fmt.Fprintf(out, "the dot product is %g\n", matrix.Dot(demoDotL, demoDotR))
	fmt.Fprintf(out, "the matrix-vector product is %v\n", matrix.MulVec(demoA, demoVec))
	fmt.Fprintf(out, "the matrix-matrix product (%s/%s, %d runs) is:\n%v", eng.Strategy(), eng.Granularity(), repeat, product)
	fmt.Fprintf(out, "our point in space %v\n", demoPoint)
	fmt.Fprintf(out, "is now %v\n", matrix.MulVec(model, demoPoint))

	return nil
}

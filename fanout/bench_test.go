package fanout_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/fanmul/fanout"
	"github.com/katalvlaran/fanmul/matrix"
)

var benchSink matrix.Mat3

func BenchmarkMultiply(b *testing.B) {
	ctx := context.Background()
	for _, c := range configs {
		b.Run(c.name, func(b *testing.B) {
			e := mustEngine(b, c)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				benchSink, _ = e.Multiply(ctx, sampleA, sampleB)
			}
		})
	}
}

func BenchmarkMultiply_Pool(b *testing.B) {
	ctx := context.Background()
	pool := fanout.NewPool(0)
	defer pool.Close()

	for _, c := range configs {
		b.Run(c.name, func(b *testing.B) {
			e := mustEngine(b, c, fanout.WithPool(pool))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				benchSink, _ = e.Multiply(ctx, sampleA, sampleB)
			}
		})
	}
}

func BenchmarkSequentialMul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = matrix.Mul(sampleA, sampleB)
	}
}

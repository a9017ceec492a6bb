// SPDX-License-Identifier: MIT
// Package fanout_test contains test helpers
//
// Purpose:
//   • Enumerate every strategy × granularity configuration once.
//   • Provide deterministic operands and a bitwise matrix comparison.

package fanout_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fanmul/fanout"
	"github.com/katalvlaran/fanmul/matrix"
)

// config is one engine configuration under test.
type config struct {
	name        string
	strategy    fanout.Strategy
	granularity fanout.Granularity
}

// configs lists every strategy × granularity pair.
var configs = []config{
	{"channel/cell", fanout.Channel, fanout.PerCell},
	{"channel/row", fanout.Channel, fanout.PerRow},
	{"locked/cell", fanout.Locked, fanout.PerCell},
	{"locked/row", fanout.Locked, fanout.PerRow},
}

// opts returns the options selecting c, followed by extra.
func (c config) opts(extra ...fanout.Option) []fanout.Option {
	return append([]fanout.Option{
		fanout.WithStrategy(c.strategy),
		fanout.WithGranularity(c.granularity),
	}, extra...)
}

// mustEngine BUILDS an engine for c or fails the test.
func mustEngine(t testing.TB, c config, extra ...fanout.Option) *fanout.Engine {
	t.Helper()
	e, err := fanout.New(c.opts(extra...)...)
	require.NoError(t, err)

	return e
}

var (
	sampleA = matrix.Mat3{
		{1.4, 2.4, 3.1},
		{1.2, 4.9, 3.0},
		{0.1, 0.4, 3.7},
	}
	sampleB = matrix.Mat3{
		{2.3, 1.0, 4.2},
		{1.7, 4.6, 0.4},
		{6.2, 0.5, 1.0},
	}
)

// randMat3 FILLS a Mat3 with uniform values in [-50, 50).
func randMat3(rng *rand.Rand) matrix.Mat3 {
	var m matrix.Mat3
	for i := 0; i < matrix.Size; i++ {
		for j := 0; j < matrix.Size; j++ {
			m[i][j] = rng.Float64()*100 - 50
		}
	}

	return m
}

// requireBitwiseEqual fails unless every cell has identical IEEE-754 bits.
func requireBitwiseEqual(t testing.TB, want, got matrix.Mat3) {
	t.Helper()
	for i := 0; i < matrix.Size; i++ {
		for j := 0; j < matrix.Size; j++ {
			require.Equal(t, math.Float64bits(want[i][j]), math.Float64bits(got[i][j]),
				"cell (%d,%d): want %v, got %v", i, j, want[i][j], got[i][j])
		}
	}
}

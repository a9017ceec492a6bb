package fanout_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fanmul/fanout"
	"github.com/katalvlaran/fanmul/matrix"
)

func TestMultiplyBatch_MatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pairs := make([]fanout.Pair, 64)
	for n := range pairs {
		pairs[n] = fanout.Pair{A: randMat3(rng), B: randMat3(rng)}
	}

	for _, c := range configs {
		e := mustEngine(t, c)
		for _, limit := range []int{0, 1, 4} {
			got, err := e.MultiplyBatch(context.Background(), pairs, limit)
			require.NoError(t, err, "%s limit=%d", c.name, limit)
			require.Len(t, got, len(pairs))
			for n, p := range pairs {
				requireBitwiseEqual(t, matrix.Mul(p.A, p.B), got[n])
			}
		}
	}
}

func TestMultiplyBatch_Empty(t *testing.T) {
	e, err := fanout.New()
	require.NoError(t, err)

	got, err := e.MultiplyBatch(context.Background(), nil, 2)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestMultiplyBatch_FailingPair(t *testing.T) {
	bad := sampleB
	bad[1][0] = math.Inf(-1)
	pairs := []fanout.Pair{
		{A: sampleA, B: sampleB},
		{A: sampleA, B: bad},
		{A: sampleB, B: sampleA},
	}

	e, err := fanout.New()
	require.NoError(t, err)
	got, err := e.MultiplyBatch(context.Background(), pairs, 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "pair 1")
	require.Nil(t, got)
}

package fanout_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/fanmul/fanout"
)

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, fanout.Option) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	return rec, fanout.WithTracerProvider(tp)
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}

	return attribute.Value{}, false
}

func TestMultiply_Span(t *testing.T) {
	rec, withTP := newRecorder(t)
	e := mustEngine(t, configs[3], withTP)

	_, err := e.Multiply(context.Background(), sampleA, sampleB)
	require.NoError(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	require.Equal(t, "fanout.Multiply", span.Name())
	require.Equal(t, codes.Unset, span.Status().Code)

	v, ok := attrValue(span.Attributes(), "fanout.strategy")
	require.True(t, ok)
	require.Equal(t, "locked", v.AsString())
	v, ok = attrValue(span.Attributes(), "fanout.granularity")
	require.True(t, ok)
	require.Equal(t, "row", v.AsString())
	v, ok = attrValue(span.Attributes(), "fanout.tasks")
	require.True(t, ok)
	require.Equal(t, int64(3), v.AsInt64())
}

func TestMultiply_SpanRecordsError(t *testing.T) {
	rec, withTP := newRecorder(t)
	bad := sampleA
	bad[0][0] = math.NaN()

	_, err := fanout.Multiply(context.Background(), bad, sampleB, withTP)
	require.Error(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, codes.Error, spans[0].Status().Code)
	require.NotEmpty(t, spans[0].Events(), "error event recorded")
}

func TestMultiplyBatch_SpanParentsMultiplies(t *testing.T) {
	rec, withTP := newRecorder(t)
	e, err := fanout.New(withTP)
	require.NoError(t, err)

	pairs := []fanout.Pair{{A: sampleA, B: sampleB}, {A: sampleB, B: sampleA}}
	_, err = e.MultiplyBatch(context.Background(), pairs, 1)
	require.NoError(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 3)

	var batchID string
	for _, s := range spans {
		if s.Name() == "fanout.MultiplyBatch" {
			batchID = s.SpanContext().SpanID().String()
			v, ok := attrValue(s.Attributes(), "fanout.batch.size")
			require.True(t, ok)
			require.Equal(t, int64(2), v.AsInt64())
		}
	}
	require.NotEmpty(t, batchID)
	for _, s := range spans {
		if s.Name() == "fanout.Multiply" {
			require.Equal(t, batchID, s.Parent().SpanID().String())
		}
	}
}

package trace_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"jsbind/internal/trace"
)

func TestOTelTracerMirrorsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	t.Cleanup(func() {
		assert.NoError(t, tp.Shutdown(context.Background()), "TracerProvider shutdown")
	})

	tr := trace.NewOTelTracerWith(context.Background(), tp.Tracer(trace.InstrumentationName), trace.LevelDetail)
	root := trace.Begin(tr, trace.ScopeDriver, "check", 0)
	file := trace.Begin(tr, trace.ScopeModule, "file:a.js", root.ID())
	file.WithExtra("scopes", "3").End("")
	// node scope is above detail and must not produce a span
	trace.Begin(tr, trace.ScopeNode, "node", file.ID()).End("")
	root.End("ok")
	require.NoError(t, tr.Close())

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "file:a.js", spans[0].Name)
	assert.Equal(t, "check", spans[1].Name)
	assert.Equal(t, spans[1].SpanContext.SpanID(), spans[0].Parent.SpanID())

	var found bool
	for _, kv := range spans[0].Attributes {
		if string(kv.Key) == "jsbind.scopes" {
			found = kv.Value.AsString() == "3"
		}
	}
	assert.True(t, found, "extra attributes carried onto the otel span")
}

func TestOTelTracerCloseEndsOpenSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	tr := trace.NewOTelTracerWith(context.Background(), tp.Tracer("test"), trace.LevelPhase)
	trace.Begin(tr, trace.ScopePass, "semantic", 0)
	assert.Empty(t, exporter.GetSpans())
	require.NoError(t, tr.Close())
	assert.Len(t, exporter.GetSpans(), 1)
}

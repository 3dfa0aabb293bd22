package trace

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// InstrumentationName names the otel tracer jsbind spans are created on.
const InstrumentationName = "jsbind"

type otelSpan struct {
	ctx  context.Context
	span oteltrace.Span
}

// OTelTracer mirrors span begin/end events onto OpenTelemetry spans.
// Parent links follow Event.ParentID; points and heartbeats become span events.
type OTelTracer struct {
	mu     sync.Mutex
	base   context.Context
	tracer oteltrace.Tracer
	level  Level
	open   map[uint64]otelSpan
}

// NewOTelTracer bridges onto the global TracerProvider. Spans without a known
// parent are started from ctx.
func NewOTelTracer(ctx context.Context, level Level) *OTelTracer {
	return NewOTelTracerWith(ctx, otel.GetTracerProvider().Tracer(InstrumentationName), level)
}

// NewOTelTracerWith bridges onto an explicit tracer.
func NewOTelTracerWith(ctx context.Context, tracer oteltrace.Tracer, level Level) *OTelTracer {
	if ctx == nil {
		ctx = context.Background()
	}
	return &OTelTracer{
		base:   ctx,
		tracer: tracer,
		level:  level,
		open:   make(map[uint64]otelSpan),
	}
}

// Emit starts, ends or annotates the otel span for ev.
func (t *OTelTracer) Emit(ev *Event) {
	if ev == nil || (!t.level.ShouldEmit(ev.Scope) && ev.Kind != KindHeartbeat) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	switch ev.Kind {
	case KindSpanBegin:
		parent := t.base
		if p, ok := t.open[ev.ParentID]; ok {
			parent = p.ctx
		}
		ctx, span := t.tracer.Start(parent, ev.Name,
			oteltrace.WithTimestamp(ev.Time),
			oteltrace.WithAttributes(
				attribute.String("jsbind.scope", ev.Scope.String()),
				attribute.Int64("jsbind.gid", int64(ev.GID)), //nolint:gosec
			))
		t.open[ev.SpanID] = otelSpan{ctx: ctx, span: span}
	case KindSpanEnd:
		s, ok := t.open[ev.SpanID]
		if !ok {
			return
		}
		delete(t.open, ev.SpanID)
		s.span.SetAttributes(extraAttributes(ev)...)
		s.span.End(oteltrace.WithTimestamp(ev.Time))
	default:
		s, ok := t.open[ev.ParentID]
		if !ok {
			return
		}
		s.span.AddEvent(ev.Name, oteltrace.WithTimestamp(ev.Time), oteltrace.WithAttributes(extraAttributes(ev)...))
	}
}

func extraAttributes(ev *Event) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(ev.Extra)+1)
	if ev.Detail != "" {
		attrs = append(attrs, attribute.String("jsbind.detail", ev.Detail))
	}
	for k, v := range ev.Extra {
		attrs = append(attrs, attribute.String("jsbind."+k, v))
	}
	return attrs
}

// Flush ends nothing; spans still open stay open.
func (t *OTelTracer) Flush() error { return nil }

// Close ends every span that never saw its end event.
func (t *OTelTracer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, s := range t.open {
		s.span.End()
		delete(t.open, id)
	}
	return nil
}

// Level returns the configured level.
func (t *OTelTracer) Level() Level { return t.level }

// Enabled returns true if tracing is active.
func (t *OTelTracer) Enabled() bool { return t.level > LevelOff }

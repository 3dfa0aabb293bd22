// Package trace records where jsbind spends its time.
//
// Spans mark the driver run, each analyzed file and the passes inside it
// (decode, semantic, module record, early errors). Events go to a stream,
// to an in-memory ring kept for crash dumps, or to OpenTelemetry.
//
//	jsbind check --trace=- --trace-level=detail src/
//
// Levels gate scopes: phase shows driver and pass boundaries, detail adds
// per-file spans, debug shows everything.
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "semantic", parentID)
//	defer span.End("")
package trace

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"jsbind/internal/trace"
)

func addTraceFlags(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both|otel)")
	pf.Int("trace-ring-size", 4096, "ring buffer capacity for --trace-mode ring|both")
	pf.Duration("trace-heartbeat", 0, "emit a heartbeat event at this interval (0 = off)")
}

// setupTracing inspects trace-related flags and initializes the tracer.
// It returns a cleanup function and an error if initialization fails.
func setupTracing(cmd *cobra.Command) (func(), error) {
	flags := cmd.Flags()

	traceOutput, err := flags.GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}
	heartbeatInterval, err := flags.GetDuration("trace-heartbeat")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-heartbeat flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}
	ctx := ctxOrBackground(cmd)
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(ctx, trace.Nop))
		return func() {}, nil
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace mode: %w", err)
	}

	var shutdownOTel func(context.Context) error
	if mode == trace.ModeOTel {
		shutdownOTel, err = installSpanPrinter(traceOutput)
		if err != nil {
			return nil, err
		}
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: traceOutput,
		RingSize:   ringSize,
		Heartbeat:  heartbeatInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx = trace.WithTracer(ctx, tracer)
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)

	var heartbeat *trace.Heartbeat
	if heartbeatInterval > 0 {
		heartbeat = trace.StartHeartbeat(tracer, heartbeatInterval)
	}
	crashRing = trace.RingOf(tracer)

	errOut := cmd.ErrOrStderr()
	cleanup := func() {
		// heartbeat первым, иначе он пишет в закрытый tracer
		heartbeat.Stop()
		crashRing = nil
		if mode == trace.ModeRing {
			// у ring нет своего вывода: отдаём буфер при выходе
			if err := dumpRing(tracer, traceOutput, errOut); err != nil {
				fmt.Fprintf(errOut, "trace: dump error: %v\n", err)
			}
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(errOut, "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(errOut, "trace: close error: %v\n", err)
		}
		if shutdownOTel != nil {
			if err := shutdownOTel(context.Background()); err != nil {
				fmt.Fprintf(errOut, "trace: otel shutdown error: %v\n", err)
			}
		}
	}
	return cleanup, nil
}

// crashRing is the ring of the active tracer, dumped by main when a command
// panics.
var crashRing *trace.RingTracer

func dumpRing(tracer trace.Tracer, path string, errOut io.Writer) error {
	ring := trace.RingOf(tracer)
	if ring == nil {
		return nil
	}
	if path == "" || path == "-" {
		return ring.Dump(errOut, trace.FormatText)
	}
	f, err := os.Create(path) // #nosec G304 -- path comes from the command line
	if err != nil {
		return err
	}
	format := trace.FormatText
	if strings.HasSuffix(path, ".ndjson") {
		format = trace.FormatNDJSON
	}
	if err := ring.Dump(f, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// dumpCrashRing writes the last trace events to w after a panic.
func dumpCrashRing(w io.Writer) {
	if crashRing == nil {
		return
	}
	fmt.Fprintf(w, "jsbind: last %d trace events (%d dropped):\n", crashRing.Len(), crashRing.Dropped())
	_ = crashRing.Dump(w, trace.FormatText)
}

// installSpanPrinter registers a global TracerProvider whose finished spans
// are printed one per line to path (stderr for "" or "-").
func installSpanPrinter(path string) (func(context.Context) error, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer
	if path != "" && path != "-" {
		f, err := os.Create(path) // #nosec G304 -- path comes from the command line
		if err != nil {
			return nil, fmt.Errorf("failed to open trace output: %w", err)
		}
		w, closer = f, f
	}
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(&spanPrinter{w: w}))
	otel.SetTracerProvider(provider)
	return func(ctx context.Context) error {
		err := provider.Shutdown(ctx)
		if closer != nil {
			if cerr := closer.Close(); err == nil {
				err = cerr
			}
		}
		return err
	}, nil
}

// spanPrinter is a sdktrace.SpanExporter writing a text line per span.
type spanPrinter struct {
	mu sync.Mutex
	w  io.Writer
}

func (p *spanPrinter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range spans {
		sc := s.SpanContext()
		parent := "-"
		if s.Parent().IsValid() {
			parent = s.Parent().SpanID().String()
		}
		line := fmt.Sprintf("otel %s span=%s parent=%s %.3fms", s.Name(), sc.SpanID(), parent,
			float64(s.EndTime().Sub(s.StartTime()))/float64(time.Millisecond))
		for _, kv := range s.Attributes() {
			line += fmt.Sprintf(" %s=%s", kv.Key, kv.Value.Emit())
		}
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
	}
	return nil
}

func (p *spanPrinter) Shutdown(context.Context) error { return nil }

package trace

import (
	"io"
	"sync"
)

// StreamTracer writes every event to w as it arrives. Write errors are
// ignored: tracing never fails an analysis run.
type StreamTracer struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	format Format
	count  int
	closed bool
}

// NewStreamTracer writes the chrome array header right away.
func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	t := &StreamTracer{w: w, level: level, format: format}
	if format == FormatChrome {
		t.write("{\"traceEvents\":[\n")
	}
	return t
}

func (t *StreamTracer) write(s string) {
	_, _ = io.WriteString(t.w, s) //nolint:errcheck
}

func (t *StreamTracer) Emit(ev *Event) {
	if ev.Kind != KindHeartbeat && !t.level.ShouldEmit(ev.Scope) {
		return
	}
	ev.Seq = NextSeq()
	data := FormatEvent(ev, t.format)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	if t.format == FormatChrome && t.count > 0 {
		t.write(",\n")
	}
	t.count++
	_, _ = t.w.Write(data) //nolint:errcheck
}

// Count returns how many events were written.
func (t *StreamTracer) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Flush calls Flush on w when it has one (bufio.Writer and the like).
func (t *StreamTracer) Flush() error {
	if f, ok := t.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close terminates the chrome array, flushes and closes w when it is an
// io.Closer. Events emitted after Close are dropped.
func (t *StreamTracer) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	if t.format == FormatChrome {
		t.write("\n]}\n")
	}
	t.mu.Unlock()

	if err := t.Flush(); err != nil {
		return err
	}
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (t *StreamTracer) Level() Level  { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }

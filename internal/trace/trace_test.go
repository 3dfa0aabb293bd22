package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingTracerWrapsInOrder(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d"} {
		r.Emit(&Event{Kind: KindPoint, Scope: ScopePass, Name: name})
	}
	var names []string
	for _, ev := range r.Snapshot() {
		names = append(names, ev.Name)
	}
	assert.Equal(t, []string{"b", "c", "d"}, names)
}

func TestLevelFiltersScopes(t *testing.T) {
	r := NewRingTracer(8, LevelPhase)
	Begin(r, ScopeModule, "file:a.js", 0).End("")
	Begin(r, ScopePass, "semantic", 0).End("")
	snap := r.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "semantic", snap[0].Name)
	assert.Equal(t, KindSpanEnd, snap[1].Kind)
}

func TestStreamTracerChromeIsValidJSON(t *testing.T) {
	var buf bytes.Buffer
	st := NewStreamTracer(&buf, LevelDebug, FormatChrome)
	span := Begin(st, ScopePass, "semantic", 0)
	span.WithExtra("symbols", "4").End("done")
	require.NoError(t, st.Close())

	var doc struct {
		TraceEvents []map[string]any `json:"traceEvents"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.TraceEvents, 2)
	assert.Equal(t, "B", doc.TraceEvents[0]["ph"])
	assert.Equal(t, "E", doc.TraceEvents[1]["ph"])
}

func TestFormatTextSortsExtra(t *testing.T) {
	line := string(FormatEvent(&Event{
		Kind:  KindSpanEnd,
		Name:  "file:a.js",
		Extra: map[string]string{"z": "1", "a": "2"},
	}, FormatText))
	assert.True(t, strings.HasSuffix(line, "← file:a.js {a=2, z=1}\n"), line)
}

func TestNewAndParseMode(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	require.NoError(t, err)
	assert.False(t, tr.Enabled())

	_, err = ParseMode("disk")
	assert.Error(t, err)
	m, err := ParseMode("otel")
	require.NoError(t, err)
	assert.Equal(t, ModeOTel, m)
}

func TestStartNestsThroughContext(t *testing.T) {
	r := NewRingTracer(16, LevelDebug)
	ctx := WithTracer(context.Background(), r)

	outer, ctx := Start(ctx, ScopeDriver, "analyze")
	inner, _ := Start(ctx, ScopeModule, "file")
	Point(r, ScopeModule, "cache_hit", inner.Anchor(), "a.js.json")
	inner.End("cached")
	outer.End("")

	snap := r.Snapshot()
	require.Len(t, snap, 5)
	assert.Equal(t, outer.ID(), snap[1].ParentID)
	assert.Equal(t, KindPoint, snap[2].Kind)
	assert.Equal(t, inner.ID(), snap[2].ParentID)
}

func TestFilteredSpanAnchorsToParent(t *testing.T) {
	r := NewRingTracer(16, LevelPhase)
	run := Begin(r, ScopeDriver, "analyze", 0)
	file := Begin(r, ScopeModule, "file", run.ID())
	assert.Zero(t, file.ID())
	assert.Equal(t, run.ID(), file.Anchor())

	pass := Begin(r, ScopePass, "semantic", file.Anchor())
	assert.Equal(t, run.ID(), pass.Parent())
	pass.End("")
	file.End("")
	run.End("")
	assert.Equal(t, 4, r.Len())
}

func TestSpanEndsOnce(t *testing.T) {
	r := NewRingTracer(8, LevelDebug)
	before := OpenSpans()
	s := Begin(r, ScopePass, "decode", 0).WithCount("nodes", 12)
	assert.Equal(t, before+1, OpenSpans())
	s.End("")
	s.End("again")
	assert.Equal(t, before, OpenSpans())
	snap := r.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "12", snap[1].Extra["nodes"])
}

func TestRingDropsOldest(t *testing.T) {
	r := NewRingTracer(2, LevelDebug)
	for range 5 {
		r.Emit(&Event{Kind: KindPoint, Scope: ScopeNode})
	}
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, uint64(3), r.Dropped())

	var buf bytes.Buffer
	require.NoError(t, r.Dump(&buf, FormatNDJSON))
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}

func TestRingOf(t *testing.T) {
	ring := NewRingTracer(4, LevelPhase)
	multi := NewMultiTracer(LevelPhase, NewStreamTracer(&bytes.Buffer{}, LevelPhase, FormatText), ring, nil, Nop)
	assert.Len(t, multi.Tracers(), 2)
	assert.Same(t, ring, RingOf(multi))
	assert.Nil(t, RingOf(Nop))
}

type failingTracer struct {
	nop
	err error
}

func (f failingTracer) Level() Level  { return LevelPhase }
func (f failingTracer) Enabled() bool { return true }
func (f failingTracer) Close() error  { return f.err }

func TestMultiTracerJoinsCloseErrors(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")
	multi := NewMultiTracer(LevelPhase, failingTracer{err: errA}, failingTracer{err: errB})
	err := multi.Close()
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestParseLevelIgnoresCase(t *testing.T) {
	l, err := ParseLevel("Detail")
	require.NoError(t, err)
	assert.Equal(t, LevelDetail, l)
	assert.Equal(t, "detail", l.String())

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
	assert.False(t, LevelError.ShouldEmit(ScopeDriver))
	assert.True(t, LevelDebug.ShouldEmit(ScopeNode))
}

func TestHeartbeatReportsOpenSpans(t *testing.T) {
	r := NewRingTracer(64, LevelPhase)
	span := Begin(r, ScopePass, "semantic", 0)
	h := StartHeartbeat(r, time.Millisecond)
	require.Eventually(t, func() bool {
		for _, ev := range r.Snapshot() {
			if ev.Kind == KindHeartbeat {
				return true
			}
		}
		return false
	}, time.Second, time.Millisecond)
	h.Stop()
	h.Stop()
	span.End("")

	for _, ev := range r.Snapshot() {
		if ev.Kind == KindHeartbeat {
			assert.Contains(t, ev.Detail, "open=")
			break
		}
	}
	assert.Nil(t, StartHeartbeat(Nop, time.Second))
}

func TestStreamTracerDropsAfterClose(t *testing.T) {
	var buf bytes.Buffer
	st := NewStreamTracer(&buf, LevelPhase, FormatText)
	Begin(st, ScopePass, "decode", 0).End("")
	require.NoError(t, st.Close())
	Begin(st, ScopePass, "late", 0).End("")
	assert.Equal(t, 2, st.Count())
	assert.NotContains(t, buf.String(), "late")
}

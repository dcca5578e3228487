package trace

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"
)

var (
	seq     atomic.Uint64
	spanIDs atomic.Uint64
)

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 { return seq.Add(1) }

// NextSpanID returns a unique span ID.
func NextSpanID() uint64 { return spanIDs.Add(1) }

// goroutineID reads N from the "goroutine N [running]:" header that
// runtime.Stack writes first.
func goroutineID() uint64 {
	var buf [64]byte
	b, ok := bytes.CutPrefix(buf[:runtime.Stack(buf[:], false)], []byte("goroutine "))
	if !ok {
		return 0
	}
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	gid, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return gid
}

func emit(t Tracer, ev Event) {
	ev.Time = time.Now()
	ev.Seq = NextSeq()
	t.Emit(&ev)
}

// Span is one timed step of a command: a phase, a grammar file, a snapshot.
// A span the level filters out records nothing itself but still forwards
// Fail, so errors under it reach LevelError traces.
type Span struct {
	tracer   Tracer
	head     Event
	recorded bool
	started  time.Time
	extra    map[string]string
}

// Begin starts a span under parent (0 for a root span) and emits its begin
// event.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if t == nil {
		t = Nop
	}
	s := &Span{
		tracer: t,
		head:   Event{Scope: scope, ParentID: parent, Name: name},
	}
	if !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return s
	}
	s.recorded = true
	s.started = time.Now()
	s.head.SpanID = NextSpanID()
	s.head.GID = goroutineID()

	ev := s.head
	ev.Kind = KindSpanBegin
	emit(t, ev)
	return s
}

// End emits the end event with detail and the collected extras and returns
// the span's duration.
func (s *Span) End(detail string) time.Duration {
	if s == nil || !s.recorded {
		return 0
	}
	dur := time.Since(s.started)
	ev := s.head
	ev.Kind = KindSpanEnd
	ev.Detail = detail
	ev.Extra = s.extra
	emit(s.tracer, ev)
	return dur
}

// WithExtra attaches key=value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || !s.recorded {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string)
	}
	s.extra[key] = value
	return s
}

// ID returns the span ID, 0 when nothing was recorded.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.head.SpanID
}

// parent is the span points inside s hang under.
func (s *Span) parent() uint64 {
	if s.recorded {
		return s.head.SpanID
	}
	return s.head.ParentID
}

// Point records an instant event inside the span, for example the token
// count of a loaded grammar.
func (s *Span) Point(scope Scope, name, detail string) {
	if s == nil || !s.tracer.Enabled() || !s.tracer.Level().ShouldEmit(scope) {
		return
	}
	emit(s.tracer, Event{
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: s.parent(),
		GID:      goroutineID(),
		Name:     name,
		Detail:   detail,
	})
}

// Fail records err as an error point inside the span. Error points are kept
// at every level but LevelOff.
func (s *Span) Fail(name string, err error) {
	if s == nil || err == nil || !s.tracer.Enabled() {
		return
	}
	emit(s.tracer, Event{
		Kind:     KindPoint,
		Scope:    s.head.Scope,
		Error:    true,
		ParentID: s.parent(),
		GID:      goroutineID(),
		Name:     name,
		Detail:   err.Error(),
	})
}

package trace

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"
)

var seq, spanIDs atomic.Uint64

// NextSeq returns the next event sequence number, starting at 1.
func NextSeq() uint64 { return seq.Add(1) }

// NextSpanID returns a fresh span ID, never 0.
func NextSpanID() uint64 { return spanIDs.Add(1) }

// goroutineID reads the current goroutine number from the first line of
// runtime.Stack. Returns 0 if the header cannot be parsed.
func goroutineID() uint64 {
	var buf [64]byte
	head := buf[:runtime.Stack(buf[:], false)]
	head, ok := bytes.CutPrefix(head, []byte("goroutine "))
	if !ok {
		return 0
	}
	num, _, _ := bytes.Cut(head, []byte(" "))
	gid, err := strconv.ParseUint(string(num), 10, 64)
	if err != nil {
		return 0
	}
	return gid
}

// Span is an operation in flight. A Span from a disabled tracer, or one whose
// scope the level filters out, is inert: every method is a no-op and ID is 0.
type Span struct {
	tracer  Tracer
	ev      Event // begin event, reused as the template for End
	started time.Time
}

var inert = &Span{tracer: Nop}

// Begin emits a begin event for name under parent (0 for a root span).
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return inert
	}
	now := time.Now()
	s := &Span{
		tracer:  t,
		started: now,
		ev: Event{
			Time:     now,
			Seq:      NextSeq(),
			Kind:     KindSpanBegin,
			Scope:    scope,
			SpanID:   NextSpanID(),
			ParentID: parent,
			GID:      goroutineID(),
			Name:     name,
		},
	}
	begin := s.ev
	t.Emit(&begin)
	return s
}

func (s *Span) live() bool {
	return s != nil && s.tracer != nil && s.tracer.Enabled() && s.ev.SpanID != 0
}

// End emits the end event with detail and any extras, and reports how long
// the span ran.
func (s *Span) End(detail string) time.Duration {
	if !s.live() {
		return 0
	}
	end := s.ev
	end.Time = time.Now()
	end.Seq = NextSeq()
	end.Kind = KindSpanEnd
	end.Detail = detail
	s.tracer.Emit(&end)
	return end.Time.Sub(s.started)
}

// WithExtra attaches key=value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if !s.live() {
		return s
	}
	if s.ev.Extra == nil {
		s.ev.Extra = make(map[string]string, 1)
	}
	s.ev.Extra[key] = value
	return s
}

// ID is the span ID to pass as parent to nested spans.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.ev.SpanID
}

// Point emits a single instant event under parent.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if t == nil || !t.Enabled() {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Seq:      NextSeq(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parent,
		GID:      goroutineID(),
		Name:     name,
		Detail:   detail,
	})
}

package trace

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"
)

var spanIDs atomic.Uint64

// goroutineID parses the "goroutine N [" header of the current stack.
func goroutineID() uint64 {
	var buf [64]byte
	line := buf[:runtime.Stack(buf[:], false)]
	line, ok := bytes.CutPrefix(line, []byte("goroutine "))
	if !ok {
		return 0
	}
	if i := bytes.IndexByte(line, ' '); i >= 0 {
		line = line[:i]
	}
	id, err := strconv.ParseUint(string(line), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Span is an open begin event waiting for its end. A span whose scope is
// filtered out is inert: every method is safe and does nothing.
type Span struct {
	t      Tracer
	id     uint64
	parent uint64
	gid    uint64
	scope  Scope
	name   string
	start  time.Time
	args   map[string]string
}

func recording(t Tracer, scope Scope) bool {
	return t != nil && t.Level().Allows(scope)
}

// Begin opens a span under parent (0 for a root) and emits its begin event.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !recording(t, scope) {
		return &Span{}
	}
	s := &Span{
		t:      t,
		id:     spanIDs.Add(1),
		parent: parent,
		gid:    goroutineID(),
		scope:  scope,
		name:   name,
		start:  time.Now(),
	}
	t.Emit(s.event(KindSpanBegin, s.start, ""))
	return s
}

func (s *Span) event(kind Kind, at time.Time, detail string) *Event {
	return &Event{
		Time:     at,
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		GID:      s.gid,
		Name:     s.name,
		Detail:   detail,
	}
}

// WithExtra attaches an argument reported with the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.t == nil {
		return s
	}
	if s.args == nil {
		s.args = map[string]string{}
	}
	s.args[key] = value
	return s
}

// End emits the end event and returns how long the span was open.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.t == nil {
		return 0
	}
	now := time.Now()
	ev := s.event(KindSpanEnd, now, detail)
	ev.Args = s.args
	s.t.Emit(ev)
	return now.Sub(s.start)
}

// ID is what children pass as their parent; 0 for an inert span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Point emits an instant event under parent.
func Point(t Tracer, scope Scope, name string, parent uint64, detail string) {
	if !recording(t, scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parent,
		GID:      goroutineID(),
		Name:     name,
		Detail:   detail,
	})
}

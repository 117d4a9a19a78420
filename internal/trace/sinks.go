package trace

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"
)

var seq atomic.Uint64

// admit stamps ev with the next sequence number when lvl records it.
func admit(lvl Level, ev *Event) bool {
	if ev.Kind != KindHeartbeat && !lvl.Allows(ev.Scope) {
		return false
	}
	ev.Seq = seq.Add(1)
	return true
}

// Stream writes each event to w as soon as it is emitted.
type Stream struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	format Format
	n      int
}

// NewStream starts a stream. Chrome output gets its array opener here and
// its closer in Close.
func NewStream(w io.Writer, level Level, format Format) *Stream {
	if format == FormatChrome {
		_, _ = io.WriteString(w, "{\"traceEvents\":[\n")
	}
	return &Stream{w: w, level: level, format: format}
}

func (s *Stream) Emit(ev *Event) {
	if !admit(s.level, ev) {
		return
	}
	data := FormatEvent(ev, s.format)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.format == FormatChrome && s.n > 0 {
		_, _ = io.WriteString(s.w, ",\n")
	}
	s.n++
	_, _ = s.w.Write(data)
}

func (s *Stream) Level() Level { return s.level }

// Close terminates Chrome output, then flushes and closes w when it
// supports either.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.format == FormatChrome {
		_, _ = io.WriteString(s.w, "\n]}\n")
	}
	var errs []error
	if f, ok := s.w.(interface{ Flush() error }); ok {
		errs = append(errs, f.Flush())
	}
	if c, ok := s.w.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Ring keeps the most recent events for a post-mortem dump.
type Ring struct {
	mu     sync.Mutex
	buf    []Event
	next   int
	filled bool
	level  Level
}

const defaultRingSize = 4096

// NewRing holds up to size events; size <= 0 picks a default.
func NewRing(size int, level Level) *Ring {
	if size <= 0 {
		size = defaultRingSize
	}
	return &Ring{buf: make([]Event, size), level: level}
}

func (r *Ring) Emit(ev *Event) {
	if !admit(r.level, ev) {
		return
	}
	r.mu.Lock()
	r.buf[r.next] = *ev
	r.next++
	if r.next == len(r.buf) {
		r.next = 0
		r.filled = true
	}
	r.mu.Unlock()
}

func (r *Ring) Level() Level { return r.level }
func (r *Ring) Close() error { return nil }

// Snapshot copies the held events, oldest first.
func (r *Ring) Snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.filled {
		return append([]Event(nil), r.buf[:r.next]...)
	}
	out := make([]Event, 0, len(r.buf))
	out = append(out, r.buf[r.next:]...)
	return append(out, r.buf[:r.next]...)
}

// Dump writes the snapshot to w.
func (r *Ring) Dump(w io.Writer, format Format) error {
	for _, ev := range r.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

// tee hands every event to each of its tracers.
type tee struct {
	level Level
	to    []Tracer
}

// Tee combines tracers under one level.
func Tee(level Level, to ...Tracer) Tracer {
	return &tee{level: level, to: to}
}

func (t *tee) Emit(ev *Event) {
	for _, tr := range t.to {
		cp := *ev
		tr.Emit(&cp)
	}
}

func (t *tee) Level() Level { return t.level }

func (t *tee) Close() error {
	var errs []error
	for _, tr := range t.to {
		errs = append(errs, tr.Close())
	}
	return errors.Join(errs...)
}

// FindRing digs the ring buffer out of t, if it has one.
func FindRing(t Tracer) *Ring {
	switch t := t.(type) {
	case *Ring:
		return t
	case *tee:
		for _, inner := range t.to {
			if r := FindRing(inner); r != nil {
				return r
			}
		}
	case *beating:
		return FindRing(t.Tracer)
	}
	return nil
}

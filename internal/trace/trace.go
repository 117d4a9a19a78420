// Package trace records spans around lunar's work (commands, pipeline
// passes, single files and parser recovery) so that a slow or stuck input
// can be pinned down after the fact.
//
//	lunar check --trace=trace.ndjson --trace-level=detail src/
//
// A tracer is carried in the context:
//
//	ctx = trace.WithTracer(ctx, t)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
//
// Events are written as they happen (ModeStream), kept in a bounded
// in-memory ring that is dumped when lunar panics (ModeRing), or both.
package trace

import (
	"fmt"
	"strings"
	"time"
)

// Tracer receives events. Implementations must be safe for concurrent use.
type Tracer interface {
	Emit(ev *Event)
	Level() Level
	// Close flushes pending output and releases the sink.
	Close() error
}

// Nop discards everything.
var Nop Tracer = off{}

type off struct{}

func (off) Emit(*Event)  {}
func (off) Level() Level { return LevelOff }
func (off) Close() error { return nil }

// Level selects which scopes are recorded.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // nothing is recorded; the ring is still dumped on panic
	LevelPhase        // commands and passes
	LevelDetail       // plus individual files
	LevelDebug        // plus parser recovery
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("level(%d)", l)
}

// ParseLevel reads a --trace-level value, ignoring case.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("unknown trace level %q (want %s)", s, strings.Join(levelNames[:], "|"))
}

// Allows reports whether events of the given scope are recorded at l.
// Each level above LevelError admits one more scope.
func (l Level) Allows(s Scope) bool {
	return l >= LevelPhase && Scope(l) >= s
}

// Kind distinguishes span boundaries from instant events.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
	KindHeartbeat
)

var kindNames = [...]string{"", "begin", "end", "point", "heartbeat"}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event, coarsest first.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // a CLI command or LSP request
	ScopePass                    // discover, lex, parse, print, check
	ScopeFile                    // one source file
	ScopeNode                    // parser recovery points
)

var scopeNames = [...]string{"", "driver", "pass", "file", "node"}

func (s Scope) String() string {
	if s > 0 && int(s) < len(scopeNames) {
		return scopeNames[s]
	}
	return "unknown"
}

// Event is one record. Seq is assigned by the sink that stores it.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64
	GID      uint64
	Name     string
	Detail   string
	Args     map[string]string
}

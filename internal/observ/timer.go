// Package observ measures how long the stages of a lunar run take.
package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

type span struct {
	name  string
	start time.Time
	dur   time.Duration
	note  string
	open  bool
}

// Timer records named stages. Workers running in parallel may share one
// Timer; stages with the same name are merged in its Report.
type Timer struct {
	mu    sync.Mutex
	spans []span
}

func NewTimer() *Timer { return &Timer{} }

// Begin opens a stage and returns a handle for End. A nil Timer hands out
// -1 and ignores it.
func (t *Timer) Begin(name string) int {
	if t == nil {
		return -1
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.spans = append(t.spans, span{name: name, start: time.Now(), open: true})
	return len(t.spans) - 1
}

// End closes the stage opened by Begin, attaching an optional note.
func (t *Timer) End(idx int, note string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx < 0 || idx >= len(t.spans) || !t.spans[idx].open {
		return
	}
	s := &t.spans[idx]
	s.dur, s.note, s.open = time.Since(s.start), note, false
}

// Measure times fn; its return value becomes the note.
func (t *Timer) Measure(name string, fn func() string) {
	idx := t.Begin(name)
	t.End(idx, fn())
}

// PhaseReport is every closed stage of one name. DurationMS is their sum,
// which exceeds wall time when they ran in parallel.
type PhaseReport struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report lists phases in the order they first started. TotalMS is wall
// time from the first start to the last finish.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func ms(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }

func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	var r Report
	var first, last time.Time
	pos := map[string]int{}
	for _, s := range t.spans {
		if s.open {
			continue
		}
		if first.IsZero() || s.start.Before(first) {
			first = s.start
		}
		if end := s.start.Add(s.dur); end.After(last) {
			last = end
		}
		i, ok := pos[s.name]
		if !ok {
			i = len(r.Phases)
			pos[s.name] = i
			r.Phases = append(r.Phases, PhaseReport{Name: s.name})
		}
		p := &r.Phases[i]
		p.Count++
		p.DurationMS += ms(s.dur)
		if s.note != "" && !strings.Contains(p.Note, s.note) {
			if p.Note != "" {
				p.Note += "; "
			}
			p.Note += s.note
		}
	}
	if !first.IsZero() {
		r.TotalMS = ms(last.Sub(first))
	}
	return r
}

// Summary renders the report as an aligned table for stderr.
func (t *Timer) Summary() string {
	r := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range r.Phases {
		name := p.Name
		if p.Count > 1 {
			name = fmt.Sprintf("%s x%d", p.Name, p.Count)
		}
		fmt.Fprintf(&sb, "  %-20s %9.2f ms", name, p.DurationMS)
		if p.Note != "" {
			sb.WriteString("  // " + p.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-20s %9.2f ms\n", "wall", r.TotalMS)
	return sb.String()
}

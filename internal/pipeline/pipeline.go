// Package pipeline carries per-file progress from the driver's workers to
// whatever is watching a run: the terminal progress view, tests, or
// nothing at all.
package pipeline

import (
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Stage is the step a file is in.
type Stage string

const (
	StageDiscover Stage = "discover"
	StageLoad     Stage = "load"
	StageTokenize Stage = "tokenize"
	StageParse    Stage = "parse"
	StageDetect   Stage = "detect"
	StageCheck    Stage = "check"
)

// Status is where a file stands within its stage. Done, Cached and Error
// are final.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
	StatusCached  Status = "cached" // result served from the parse cache
)

// Event reports progress for a file, or for the whole run when File is empty.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes events. The driver calls it from worker
// goroutines, so implementations must be safe for concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// Emit sends an event to sink; a nil sink drops it.
func Emit(sink ProgressSink, file string, stage Stage, status Status, err error, elapsed time.Duration) {
	if sink != nil {
		sink.OnEvent(Event{File: file, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
	}
}

// EmitQueued announces every file before work starts.
func EmitQueued(sink ProgressSink, files []string) {
	for _, f := range files {
		Emit(sink, f, StageLoad, StatusQueued, nil, 0)
	}
}

// ChannelSink forwards events into Ch, blocking while it is full.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch != nil {
		s.Ch <- evt
	}
}

// MultiSink hands each event to every non-nil sink in order.
type MultiSink []ProgressSink

func (m MultiSink) OnEvent(evt Event) {
	for _, s := range m {
		if s != nil {
			s.OnEvent(evt)
		}
	}
}

// Recorder keeps every event and the summed Elapsed of each stage.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	totals map[Stage]time.Duration
}

func (r *Recorder) OnEvent(evt Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	if evt.Elapsed > 0 {
		if r.totals == nil {
			r.totals = map[Stage]time.Duration{}
		}
		r.totals[evt.Stage] += evt.Elapsed
	}
}

// Events returns a copy of what was recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Total is the summed Elapsed of stage.
func (r *Recorder) Total(stage Stage) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.totals[stage]
}

// DisplayName is the key progress views use for file: slash-separated and
// relative to baseDir when file lies beneath it.
func DisplayName(file, baseDir string) string {
	p := filepath.Clean(file)
	if strings.TrimSpace(baseDir) == "" {
		return filepath.ToSlash(p)
	}
	absBase, err1 := filepath.Abs(baseDir)
	absFile, err2 := filepath.Abs(p)
	if err1 == nil && err2 == nil {
		rel, err := filepath.Rel(absBase, absFile)
		if err == nil && rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			p = rel
		}
	}
	return filepath.ToSlash(p)
}

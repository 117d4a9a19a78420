package pipeline

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		file, base, want string
	}{
		{"/proj/src/../src/a.lua", "/proj", "src/a.lua"},
		{"/elsewhere/c.lua", "/proj", "/elsewhere/c.lua"},
		{"/proj/..hidden/x.lua", "/proj", "..hidden/x.lua"},
		{"/proj", "/proj", "/proj"},
		{"rel/b.lua", "", "rel/b.lua"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.file, tt.base); got != tt.want {
			t.Errorf("DisplayName(%q, %q) = %q, want %q", tt.file, tt.base, got, tt.want)
		}
	}
}

func TestRecorderAndMultiSink(t *testing.T) {
	rec := &Recorder{}
	var mu sync.Mutex
	count := 0
	sink := MultiSink{rec, nil, countSink(func() {
		mu.Lock()
		count++
		mu.Unlock()
	})}

	EmitQueued(sink, []string{"a.lua", "b.lua"})
	var wg sync.WaitGroup
	for _, f := range []string{"a.lua", "b.lua"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Emit(sink, f, StageParse, StatusDone, nil, 5*time.Millisecond)
		}()
	}
	wg.Wait()
	Emit(sink, "b.lua", StageCheck, StatusError, errors.New("boom"), 0)
	Emit(nil, "ignored", StageParse, StatusDone, nil, 0)

	if got := len(rec.Events()); got != 5 {
		t.Fatalf("recorded %d events, want 5", got)
	}
	if count != 5 {
		t.Fatalf("func sink saw %d events", count)
	}
	if rec.Total(StageParse) != 10*time.Millisecond {
		t.Fatalf("parse total = %v", rec.Total(StageParse))
	}
}

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{File: "x.lua", Stage: StageLoad, Status: StatusWorking})
	ev := <-ch
	if ev.File != "x.lua" || ev.Status != StatusWorking {
		t.Fatalf("unexpected event %+v", ev)
	}
	ChannelSink{}.OnEvent(Event{})
}

type countSink func()

func (f countSink) OnEvent(Event) { f() }

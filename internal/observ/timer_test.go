package observ

import (
	"strings"
	"sync"
	"testing"
)

func TestTimerConcurrentPhases(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Measure("parse", func() string {
				if i == 0 {
					return "first"
				}
				return ""
			})
		}()
	}
	wg.Wait()

	tm.Measure("print", func() string { return "" })
	open := tm.Begin("unfinished")

	report := tm.Report()
	if len(report.Phases) != 2 || report.Phases[0].Name != "parse" || report.Phases[0].Count != 8 {
		t.Fatalf("unexpected phases: %+v", report.Phases)
	}
	if report.Phases[0].Note != "first" {
		t.Fatalf("note = %q", report.Phases[0].Note)
	}
	tm.End(open, "")
	tm.End(open, "again")
	if n := len(tm.Report().Phases); n != 3 {
		t.Fatalf("closed phases = %d, want 3", n)
	}
	summary := tm.Summary()
	if !strings.Contains(summary, "parse x8") || !strings.Contains(summary, "// first") || !strings.Contains(summary, "wall") {
		t.Fatalf("unexpected summary:\n%s", summary)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Fatalf("nil timer reported phases")
	}
}

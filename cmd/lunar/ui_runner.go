package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lunar/internal/driver"
	"lunar/internal/pipeline"
	"lunar/internal/ui"
)

type checkOutcome struct {
	result *driver.CheckResult
	err    error
}

// runCheckWithUI runs driver.Check while a progress view consumes its
// events. The view quits once the run closes the event channel.
func runCheckWithUI(ctx context.Context, title string, files []string, opts driver.CheckOptions) (*driver.CheckResult, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	names := make(map[string]string, len(files))
	display := make([]string, len(files))
	for i, f := range files {
		display[i] = pipeline.DisplayName(f, opts.BaseDir)
		names[f] = display[i]
	}

	go func() {
		runOpts := opts
		runOpts.Sink = pipeline.MultiSink{opts.Sink, displaySink{ch: events, names: names}}
		res, err := driver.Check(ctx, files, runOpts)
		outcomeCh <- checkOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, display, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// the view may quit early; keep the run from blocking on a full channel
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}

// displaySink renames events to the paths shown in the progress view.
type displaySink struct {
	ch    chan<- pipeline.Event
	names map[string]string
}

func (s displaySink) OnEvent(evt pipeline.Event) {
	if name, ok := s.names[evt.File]; ok {
		evt.File = name
	}
	pipeline.ChannelSink{Ch: s.ch}.OnEvent(evt)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lunar/internal/trace"
)

// activeTracer is what dumpTraceOnPanic looks in for a ring buffer.
var activeTracer = trace.Nop

// setupTracing builds the tracer the --trace* flags describe and stores it
// in the command's context. Naming an output without a level records
// phases; naming one in ring mode also streams to it.
func setupTracing(cmd *cobra.Command) (func(), error) {
	flags := cmd.Root().PersistentFlags()
	output, _ := flags.GetString("trace")
	levelName, _ := flags.GetString("trace-level")
	modeName, _ := flags.GetString("trace-mode")
	ringSize, _ := flags.GetInt("trace-ring-size")
	heartbeat, _ := flags.GetDuration("trace-heartbeat")

	level, err := trace.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	if level == trace.LevelOff && output != "" {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}
	mode, err := trace.ParseMode(modeName)
	if err != nil {
		return nil, err
	}
	if output != "" && mode == trace.ModeRing {
		mode = trace.ModeBoth
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: output,
		RingSize:   ringSize,
		Heartbeat:  heartbeat,
	})
	if err != nil {
		return nil, err
	}
	activeTracer = tracer
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	return func() {
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "lunar: trace: %v\n", err)
		}
		activeTracer = trace.Nop
	}, nil
}

// dumpTraceOnPanic prints the ring buffer's events, if any, and panics on.
func dumpTraceOnPanic() {
	r := recover()
	if r == nil {
		return
	}
	if ring := trace.FindRing(activeTracer); ring != nil {
		fmt.Fprintln(os.Stderr, "--- last trace events ---")
		_ = ring.Dump(os.Stderr, trace.FormatText)
	}
	panic(r)
}

package driver

import (
	"lunar/internal/dialect"
	"lunar/internal/observ"
	"lunar/internal/trace"
)

// DefaultMaxDiagnostics caps a per-file bag when Options leaves it unset.
const DefaultMaxDiagnostics = 100

// Options configures single-file runs.
type Options struct {
	Version        dialect.Version
	MaxDiagnostics int
	// RoundTrip re-prints an error-free tree and reports any byte that changed.
	RoundTrip bool
	// Detect collects dialect evidence and classifies the file.
	Detect bool

	Tracer trace.Tracer
	Timer  *observ.Timer
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

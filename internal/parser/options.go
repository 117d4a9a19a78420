package parser

import (
	"lunar/internal/dialect"
	"lunar/internal/trace"
)

type Options struct {
	// Version selects the grammar. The zero value is Lua 5.1; use
	// dialect.All to accept every supported construct.
	Version dialect.Version
	// Evidence, when set, collects hints about dialect-specific constructs.
	Evidence *dialect.Evidence
	// Tracer receives a span per parse. Nil disables tracing.
	Tracer trace.Tracer
}

// DefaultOptions accepts every dialect.
func DefaultOptions() Options {
	return Options{Version: dialect.All}
}

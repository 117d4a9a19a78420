package lexer

import (
	"lunar/internal/dialect"
)

// Options tunes a Lexer.
type Options struct {
	// Version selects keywords and dialect-only token forms. Zero is Lua 5.1.
	Version dialect.Version
	// Evidence, when set, receives hints for dialect-specific tokens.
	Evidence *dialect.Evidence
}

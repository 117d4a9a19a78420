// Package diag defines the diagnostic model shared by the lexer, parser,
// dialect classifier and project loader.
//
// A Diagnostic carries a Severity, a stable numeric Code (see codes.go), a
// short message, the primary source.Span and optional Notes. Codes are
// grouped by range: LEX 1xxx, SYN 2xxx, DIA 3xxx, IO 4xxx, PRJ 5xxx and
// OBS 6xxx. Their textual IDs are part of the CLI and LSP output and must
// not be renumbered.
//
// Producers emit through a Reporter. A *Bag is the usual one and supports
// sorting, deduplication and filtering afterwards; Dedup drops repeats on
// the way in, and Build assembles a diagnostic with notes before sending it.
//
// Rendering lives in internal/diagfmt. This package does no IO.
package diag

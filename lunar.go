// Package lunar parses Lua 5.1 through 5.4 and Luau into lossless syntax
// trees. Every byte of the input, comments and whitespace included, is kept
// on the tokens, so Print reproduces the source exactly.
//
//	tree, err := lunar.Parse(src, lunar.WithVersion(lunar.Lua54))
//	if err != nil {
//		return err
//	}
//	fmt.Print(lunar.Print(tree))
package lunar

import (
	"lunar/internal/ast"
	"lunar/internal/dialect"
	"lunar/internal/parser"
	"lunar/internal/trace"
)

type (
	// Ast is a parsed file.
	Ast = ast.Ast
	// Error is a lexing or parsing problem with its source range.
	Error = parser.Error
	// Version is a set of enabled dialect features.
	Version = dialect.Version
	// Evidence collects dialect-specific constructs seen while parsing.
	Evidence = dialect.Evidence
	// Classification names the dialects consistent with some Evidence.
	Classification = dialect.Classification
)

// Dialects accepted by WithVersion.
const (
	Lua51 = dialect.Lua51
	Lua52 = dialect.Lua52
	Lua53 = dialect.Lua53
	Lua54 = dialect.Lua54
	Luau  = dialect.Luau
	All   = dialect.All
)

// ErrDiagnostics matches, via errors.Is, every error returned by Parse.
var ErrDiagnostics = parser.ErrDiagnostics

// Option adjusts how a source is parsed.
type Option func(*parser.Options)

// WithVersion restricts the grammar to one dialect. The default is All.
func WithVersion(v Version) Option {
	return func(o *parser.Options) { o.Version = v }
}

// WithEvidence records dialect hints into e while parsing.
func WithEvidence(e *Evidence) Option {
	return func(o *parser.Options) { o.Evidence = e }
}

// WithTracer sends parse spans to t.
func WithTracer(t trace.Tracer) Option {
	return func(o *parser.Options) { o.Tracer = t }
}

// ParseVersion accepts "lua51" ... "lua54", "luau", "all" or a "+"-joined
// combination.
func ParseVersion(name string) (Version, error) {
	return dialect.Parse(name)
}

// NewEvidence returns an empty evidence collector for WithEvidence.
func NewEvidence() *Evidence {
	return dialect.NewEvidence()
}

func options(opts []Option) parser.Options {
	o := parser.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Parse returns the tree for src, or an error listing every problem.
func Parse(src string, opts ...Option) (*Ast, error) {
	return parser.Parse(src, options(opts))
}

// ParseFallible always returns a tree. When errors are present the tree
// holds placeholder tokens where recovery filled gaps.
func ParseFallible(src string, opts ...Option) (*Ast, []Error) {
	return parser.ParseFallible(src, options(opts))
}

// Print reproduces the source text of tree.
func Print(tree *Ast) string {
	if tree == nil {
		return ""
	}
	return ast.Print(tree)
}

// Classify reports the smallest dialect that accepts the constructs
// recorded in e.
func Classify(e *Evidence) Classification {
	return dialect.Classifier{}.Classify(e)
}

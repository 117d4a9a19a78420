package token

import (
	"strings"

	"lunar/internal/source"
)

// Reference is a meaningful token with the trivia attached to it.
// Concatenating Leading, Token and Trailing of every reference of a tree
// in document order yields the original source.
type Reference struct {
	Leading  []Token
	Token    Token
	Trailing []Token
}

// NewReference wraps tok with the given trivia.
func NewReference(leading []Token, tok Token, trailing []Token) *Reference {
	return &Reference{Leading: leading, Token: tok, Trailing: trailing}
}

// Synthetic builds a placeholder reference for a symbol the parser had to
// invent. It has no trivia and a degenerate range at the zero position.
func Synthetic(s Symbol) *Reference {
	return &Reference{Token: Token{Type: NewSymbol(s)}}
}

// SyntheticIdentifier builds a placeholder identifier with no trivia.
func SyntheticIdentifier(name string) *Reference {
	return &Reference{Token: Token{Type: NewIdentifier(name)}}
}

func (r *Reference) Start() source.Position { return r.Token.Start }
func (r *Reference) End() source.Position   { return r.Token.End }

// Is reports whether the underlying token is the symbol s.
func (r *Reference) Is(s Symbol) bool {
	return r != nil && r.Token.Is(s)
}

// WithToken returns a copy of r carrying tok; trivia slices are shared.
func (r *Reference) WithToken(tok Token) *Reference {
	return &Reference{Leading: r.Leading, Token: tok, Trailing: r.Trailing}
}

// WithTrivia returns a copy of r with replaced trivia.
func (r *Reference) WithTrivia(leading, trailing []Token) *Reference {
	return &Reference{Leading: leading, Token: r.Token, Trailing: trailing}
}

// String prints leading trivia, the token and trailing trivia.
func (r *Reference) String() string {
	var sb strings.Builder
	r.AppendTo(&sb)
	return sb.String()
}

// AppendTo appends the printed reference to sb.
func (r *Reference) AppendTo(sb *strings.Builder) {
	for _, t := range r.Leading {
		sb.WriteString(t.String())
	}
	sb.WriteString(r.Token.String())
	for _, t := range r.Trailing {
		sb.WriteString(t.String())
	}
}

// Similar compares token types only, ignoring positions and trivia.
func (r *Reference) Similar(other *Reference) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Token.Type == other.Token.Type
}

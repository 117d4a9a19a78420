package token

import (
	"strings"

	"lunar/internal/source"
)

// Type is the payload of a token. Which fields are meaningful depends on Kind:
//   - Text: identifier name, number text, comment body, string/segment
//     content, whitespace characters or the shebang line
//   - Symbol: for KindSymbol
//   - Depth: count of `=` in long brackets (comments and bracket strings)
//   - Quote: for KindStringLiteral
//   - Interp: for KindInterpolatedString
//   - Unterminated: a quoted string or closing string segment cut off by a
//     line break, printed without its closing quote
type Type struct {
	Kind         Kind
	Text         string
	Symbol       Symbol
	Depth        int
	Quote        QuoteType
	Interp       InterpolatedKind
	Unterminated bool
}

// Token is a lexed token together with its source range.
type Token struct {
	Type
	Start source.Position
	End   source.Position
}

// NewSymbol builds a symbol token type.
func NewSymbol(s Symbol) Type {
	return Type{Kind: KindSymbol, Symbol: s}
}

// NewIdentifier builds an identifier token type.
func NewIdentifier(name string) Type {
	return Type{Kind: KindIdentifier, Text: name}
}

// NewWhitespace builds a whitespace token type.
func NewWhitespace(chars string) Type {
	return Type{Kind: KindWhitespace, Text: chars}
}

// IsTrivia reports whether the token is whitespace, a comment or a shebang.
func (t Type) IsTrivia() bool { return t.Kind.IsTrivia() }

// Is reports whether t is the symbol s.
func (t Type) Is(s Symbol) bool {
	return t.Kind == KindSymbol && t.Symbol == s
}

// String renders the token exactly as it appears in source.
func (t Type) String() string {
	switch t.Kind {
	case KindEof:
		return ""
	case KindSymbol:
		return t.Symbol.String()
	case KindMultiLineComment:
		eq := strings.Repeat("=", t.Depth)
		return "--[" + eq + "[" + t.Text + "]" + eq + "]"
	case KindSingleLineComment:
		return "--" + t.Text
	case KindStringLiteral:
		switch t.Quote {
		case QuoteBrackets:
			eq := strings.Repeat("=", t.Depth)
			return "[" + eq + "[" + t.Text + "]" + eq + "]"
		case QuoteDouble:
			return `"` + t.Text + t.closing(`"`)
		default:
			return "'" + t.Text + t.closing("'")
		}
	case KindInterpolatedString:
		switch t.Interp {
		case InterpBegin:
			return "`" + t.Text + "{"
		case InterpMiddle:
			return "}" + t.Text + "{"
		case InterpEnd:
			return "}" + t.Text + t.closing("`")
		default:
			return "`" + t.Text + t.closing("`")
		}
	default:
		return t.Text
	}
}

func (t Type) closing(quote string) string {
	if t.Unterminated {
		return ""
	}
	return quote
}

func (t Token) String() string { return t.Type.String() }

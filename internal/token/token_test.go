package token

import (
	"strings"
	"testing"

	"lunar/internal/dialect"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"symbol", NewSymbol(TwoDots), ".."},
		{"keyword", NewSymbol(ElseIf), "elseif"},
		{"line comment", Type{Kind: KindSingleLineComment, Text: " hi"}, "-- hi"},
		{"long comment", Type{Kind: KindMultiLineComment, Text: "c", Depth: 2}, "--[==[c]==]"},
		{"bracket string", Type{Kind: KindStringLiteral, Text: "s", Depth: 1, Quote: QuoteBrackets}, "[=[s]=]"},
		{"double string", Type{Kind: KindStringLiteral, Text: `a\"b`, Quote: QuoteDouble}, `"a\"b"`},
		{"single string", Type{Kind: KindStringLiteral, Text: "s", Quote: QuoteSingle}, "'s'"},
		{"interp begin", Type{Kind: KindInterpolatedString, Text: "a", Interp: InterpBegin}, "`a{"},
		{"interp middle", Type{Kind: KindInterpolatedString, Text: "b", Interp: InterpMiddle}, "}b{"},
		{"interp end", Type{Kind: KindInterpolatedString, Text: "c", Interp: InterpEnd}, "}c`"},
		{"interp simple", Type{Kind: KindInterpolatedString, Text: "d", Interp: InterpSimple}, "`d`"},
		{"unterminated double", Type{Kind: KindStringLiteral, Text: "abc", Quote: QuoteDouble, Unterminated: true}, `"abc`},
		{"unterminated single", Type{Kind: KindStringLiteral, Text: "", Quote: QuoteSingle, Unterminated: true}, "'"},
		{"unterminated interp", Type{Kind: KindInterpolatedString, Text: "e", Interp: InterpEnd, Unterminated: true}, "}e"},
		{"eof", Type{Kind: KindEof}, ""},
		{"whitespace", NewWhitespace("\t\n"), "\t\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookupKeywordGating(t *testing.T) {
	if _, ok := LookupKeyword("goto", dialect.Lua51); ok {
		t.Fatalf("goto must be an identifier in lua51")
	}
	if s, ok := LookupKeyword("goto", dialect.Lua52); !ok || s != Goto {
		t.Fatalf("goto must be a keyword in lua52")
	}
	if _, ok := LookupKeyword("goto", dialect.Luau); ok {
		t.Fatalf("goto must be an identifier in luau")
	}
	if _, ok := LookupKeyword("Local", dialect.All); ok {
		t.Fatalf("keywords are case sensitive")
	}
	if _, ok := LookupKeyword("continue", dialect.All); ok {
		t.Fatalf("continue is contextual, never a keyword")
	}
}

func TestSymbolTableComplete(t *testing.T) {
	for s := Symbol(1); s < symbolCount; s++ {
		text := s.String()
		if text == "" || text == "<none>" {
			t.Fatalf("symbol %d has no spelling", s)
		}
		got, ok := LookupSymbol(text)
		if !ok || got != s {
			t.Fatalf("LookupSymbol(%q) = %d, %v; want %d", text, got, ok, s)
		}
	}
	if DoubleSlash.EnabledIn(dialect.Lua51) || !DoubleSlash.EnabledIn(dialect.Luau) {
		t.Fatalf("`//` gate mismatch")
	}
	if Tilde.EnabledIn(dialect.Luau) || !Tilde.EnabledIn(dialect.Lua53) {
		t.Fatalf("`~` gate mismatch")
	}
}

func TestReference(t *testing.T) {
	ref := NewReference(
		[]Token{{Type: NewWhitespace(" ")}},
		Token{Type: NewSymbol(Equal)},
		[]Token{{Type: NewWhitespace(" ")}, {Type: Type{Kind: KindSingleLineComment, Text: "x"}}},
	)
	if got := ref.String(); got != " = --x" {
		t.Fatalf("String() = %q", got)
	}
	if !ref.Similar(Synthetic(Equal)) {
		t.Fatalf("references with equal types must be similar")
	}
	if ref.Similar(Synthetic(TwoEqual)) {
		t.Fatalf("different symbols must not be similar")
	}
	syn := Synthetic(End)
	if !syn.Start().IsZero() || syn.End() != syn.Start() {
		t.Fatalf("synthetic token must have a degenerate zero range")
	}
	if !syn.Is(End) || syn.Is(Do) {
		t.Fatalf("Is mismatch")
	}
}

func TestReferenceAppendTo(t *testing.T) {
	ref := NewReference(
		[]Token{{Type: NewWhitespace(" ")}},
		Token{Type: NewIdentifier("x")},
		[]Token{{Type: Type{Kind: KindSingleLineComment, Text: " c"}}},
	)
	var sb strings.Builder
	sb.WriteString("local")
	ref.AppendTo(&sb)
	ref.AppendTo(&sb)
	if got, want := sb.String(), "local x-- c x-- c"; got != want {
		t.Fatalf("AppendTo wrote %q, want %q", got, want)
	}
	if ref.String() != " x-- c" {
		t.Fatalf("String() = %q", ref.String())
	}
}

package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"lunar/internal/dialect"
	"lunar/internal/lexer"
	"lunar/internal/token"
)

func collect(t *testing.T, src string, v dialect.Version) ([]token.Token, []*lexer.Error) {
	t.Helper()
	res := lexer.NewLazy(src, lexer.Options{Version: v}).Collect()
	return res.Value, res.Errors
}

func describe(tokens []token.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, fmt.Sprintf("%s(%q)", tok.Kind, tok.String()))
	}
	return strings.Join(parts, " ")
}

func TestSingleToken(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
		text string
	}{
		{"hello___", token.KindIdentifier, "hello___"},
		{"index", token.KindIdentifier, "index"},
		{"local", token.KindSymbol, ""},
		{"213", token.KindNumber, "213"},
		{"123.45", token.KindNumber, "123.45"},
		{".5", token.KindNumber, ".5"},
		{"1e-10", token.KindNumber, "1e-10"},
		{"0xFF", token.KindNumber, "0xFF"},
		{"0x1p4", token.KindNumber, "0x1p4"},
		{"0x.8P-1", token.KindNumber, "0x.8P-1"},
		{"-- hello world", token.KindSingleLineComment, " hello world"},
		{"--", token.KindSingleLineComment, ""},
		{"--[[ hello ]]", token.KindMultiLineComment, " hello "},
		{"--[=[ a ]] b ]=]", token.KindMultiLineComment, " a ]] b "},
		{`"hello"`, token.KindStringLiteral, "hello"},
		{`'it\'s'`, token.KindStringLiteral, `it\'s`},
		{"\"a\\\nb\"", token.KindStringLiteral, "a\\\nb"},
		{"'a \\z\n   b'", token.KindStringLiteral, "a \\z\n   b"},
		{"[[long]]", token.KindStringLiteral, "long"},
		{"[==[x]=]y]==]", token.KindStringLiteral, "x]=]y"},
		{"#!/usr/bin/env lua\n", token.KindShebang, "#!/usr/bin/env lua\n"},
		{"\t  \n\t", token.KindWhitespace, "\t  \n"},
		{"\n\thello", token.KindWhitespace, "\n"},
		{"\r\nx", token.KindWhitespace, "\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens, errs := collect(t, tt.src, dialect.All)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			first := tokens[0]
			if first.Kind != tt.kind {
				t.Fatalf("kind = %s, want %s (%s)", first.Kind, tt.kind, describe(tokens))
			}
			if tt.kind != token.KindSymbol && first.Text != tt.text {
				t.Fatalf("text = %q, want %q", first.Text, tt.text)
			}
		})
	}
}

func TestLongestMatch(t *testing.T) {
	tests := []struct {
		src  string
		want []token.Symbol
	}{
		{"<=", []token.Symbol{token.LessThanEqual}},
		{"...", []token.Symbol{token.Ellipsis}},
		{"..=", []token.Symbol{token.TwoDotsEqual}},
		{"//=", []token.Symbol{token.DoubleSlashEqual}},
		{"~=~", []token.Symbol{token.TildeEqual, token.Tilde}},
		{"::>>", []token.Symbol{token.TwoColons, token.DoubleGreaterThan}},
		{"[=x", []token.Symbol{token.LeftBracket, token.Equal}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens, errs := collect(t, tt.src, dialect.All)
			var got []token.Symbol
			for _, tok := range tokens {
				if tok.Kind == token.KindSymbol {
					got = append(got, tok.Symbol)
				}
			}
			if len(errs) != 0 || fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Fatalf("symbols = %v, want %v (errors %v)", got, tt.want, errs)
			}
		})
	}
}

func TestKeywordGating(t *testing.T) {
	tokens, _ := collect(t, "goto", dialect.Lua51)
	if tokens[0].Kind != token.KindIdentifier {
		t.Fatalf("goto under lua51 = %s, want identifier", tokens[0].Kind)
	}
	tokens, _ = collect(t, "goto", dialect.Lua52)
	if !tokens[0].Is(token.Goto) {
		t.Fatalf("goto under lua52 must be a keyword")
	}
	_, errs := collect(t, "`x`", dialect.Lua54)
	if len(errs) == 0 || errs[0].Kind != lexer.UnexpectedToken {
		t.Fatalf("backtick outside luau must be unexpected, got %v", errs)
	}
}

func TestLuauNumbers(t *testing.T) {
	tokens, errs := collect(t, "0b1010_1010 1_000", dialect.Luau)
	if len(errs) != 0 {
		t.Fatalf("errors: %v", errs)
	}
	if tokens[0].Text != "0b1010_1010" || tokens[2].Text != "1_000" {
		t.Fatalf("tokens = %s", describe(tokens))
	}
}

func TestInvalidNumberRecovered(t *testing.T) {
	lx := lexer.New("3x = 1", lexer.Options{Version: dialect.All})
	cur := lx.Current()
	if cur.Kind != lexer.Recovered {
		t.Fatalf("kind = %s, want Recovered", cur.Kind)
	}
	if cur.Value.Token.Text != "3x" || cur.Errors[0].Kind != lexer.InvalidNumber {
		t.Fatalf("token %q errors %v", cur.Value.Token.Text, cur.Errors)
	}
}

func TestFatalErrors(t *testing.T) {
	tests := []struct {
		src  string
		kind lexer.ErrorKind
	}{
		{"--[[ never closed", lexer.UnclosedComment},
		{`"never closed`, lexer.UnclosedString},
		{"[[never closed", lexer.UnclosedString},
		{"@", lexer.UnexpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, errs := collect(t, tt.src, dialect.All)
			if len(errs) != 1 || errs[0].Kind != tt.kind {
				t.Fatalf("errors = %v, want one %s", errs, tt.kind)
			}
		})
	}
}

func TestUnexpectedCharacterAdvancesOneRune(t *testing.T) {
	lx := lexer.New("é", lexer.Options{})
	cur := lx.Current()
	if cur.Kind != lexer.Fatal || cur.Errors[0].Char != 'é' {
		t.Fatalf("current = %+v", cur)
	}
	if msg := cur.Errors[0].Message(); msg != "unexpected character é" {
		t.Fatalf("message = %q", msg)
	}
	if next := lx.Peek(); next == nil || next.Value.Token.Kind != token.KindEof {
		t.Fatalf("expected Eof after the bad character")
	}
}

func TestStringBrokenByNewlineIsRecovered(t *testing.T) {
	lx := lexer.New("x = 'abc\nprint(1)", lexer.Options{})
	lx.Consume()
	lx.Consume()
	cur := lx.Current()
	if cur.Kind != lexer.Recovered || cur.Value.Token.Text != "abc" {
		t.Fatalf("current = %+v", cur)
	}
	if cur.Errors[0].Kind != lexer.UnclosedString {
		t.Fatalf("error = %v", cur.Errors[0])
	}
}

func TestBrokenStringPrintsAsWritten(t *testing.T) {
	inputs := []string{
		"x = \"abc\nb",
		"x = 'abc\r\nprint(1)",
		"s = '\n",
		"s = `a{b}c\nd = 1",
	}
	for _, src := range inputs {
		t.Run(src, func(t *testing.T) {
			tokens, errs := collect(t, src, dialect.All)
			if len(errs) != 1 || errs[0].Kind != lexer.UnclosedString {
				t.Fatalf("errors = %v", errs)
			}
			var sb strings.Builder
			for _, tok := range tokens {
				sb.WriteString(tok.String())
			}
			if sb.String() != src {
				t.Fatalf("round trip mismatch:\n got %q\nwant %q", sb.String(), src)
			}
		})
	}
}

func TestTriviaAttachment(t *testing.T) {
	lx := lexer.New("-- head\nlocal x = 1 -- tail\n\nprint(x)", lexer.Options{})

	local := lx.Consume().Value
	if len(local.Leading) != 2 || local.Leading[0].Kind != token.KindSingleLineComment {
		t.Fatalf("local leading = %s", describe(local.Leading))
	}
	if len(local.Trailing) != 1 || local.Trailing[0].Text != " " {
		t.Fatalf("local trailing = %s", describe(local.Trailing))
	}
	lx.Consume() // x
	lx.Consume() // =
	one := lx.Consume().Value
	if got := describe(one.Trailing); got != `Whitespace(" ") SingleLineComment("-- tail") Whitespace("\n")` {
		t.Fatalf("trailing of 1 = %s", got)
	}
	call := lx.Consume().Value
	if len(call.Leading) != 1 || call.Leading[0].Text != "\n" {
		t.Fatalf("print leading = %s", describe(call.Leading))
	}
}

func TestFatalKeepsPendingTrivia(t *testing.T) {
	lx := lexer.New("  @ x", lexer.Options{})
	if lx.Current().Kind != lexer.Fatal {
		t.Fatalf("expected fatal slot first")
	}
	x := lx.Peek().Value
	if got := describe(x.Leading); got != `Whitespace("  ") Whitespace(" ")` {
		t.Fatalf("leading of x = %s", got)
	}
}

func TestInterpolatedStrings(t *testing.T) {
	tokens, errs := collect(t, "`a{b}c{ {1} }d` `plain`", dialect.Luau)
	if len(errs) != 0 {
		t.Fatalf("errors: %v", errs)
	}
	var segs []string
	for _, tok := range tokens {
		if tok.Kind == token.KindInterpolatedString {
			segs = append(segs, tok.Interp.String()+":"+tok.String())
		}
	}
	want := "Begin:`a{ Middle:}c{ End:}d` Simple:`plain`"
	if got := strings.Join(segs, " "); got != want {
		t.Fatalf("segments = %s, want %s", got, want)
	}
}

func TestPositions(t *testing.T) {
	tokens, _ := collect(t, "a\n  bc", dialect.All)
	bc := tokens[3]
	if bc.Start.Line != 2 || bc.Start.Character != 3 || bc.Start.Bytes != 4 {
		t.Fatalf("bc start = %+v", bc.Start)
	}
	if bc.End.Bytes != 6 || bc.End.Character != 5 {
		t.Fatalf("bc end = %+v", bc.End)
	}
	eof := tokens[len(tokens)-1]
	if eof.Kind != token.KindEof || eof.Start != eof.End {
		t.Fatalf("eof = %+v", eof)
	}
}

func TestCollectRoundTrip(t *testing.T) {
	inputs := []string{
		"local x <const> = 5 // 2\r\n",
		"#!/bin/lua\nprint('hi') --[==[ block ]==]\n",
		"\uFEFFreturn [[\nlong\n]]",
		"a = `x{y}z` .. b",
		"t = {a=1;b=2,[3]=4}\n\n\n",
		"x = 0x1p-2 + 1e5 - .5\tend\f\v",
	}
	for _, src := range inputs {
		tokens, errs := collect(t, src, dialect.All)
		if len(errs) != 0 {
			t.Fatalf("%q: errors %v", src, errs)
		}
		var sb strings.Builder
		for _, tok := range tokens {
			sb.WriteString(tok.String())
		}
		if sb.String() != src {
			t.Fatalf("round trip mismatch:\n got %q\nwant %q", sb.String(), src)
		}
	}
}

func TestEvidence(t *testing.T) {
	ev := dialect.NewEvidence()
	lexer.NewLazy("goto x; a = b // c", lexer.Options{Version: dialect.All, Evidence: ev}).Collect()
	if got := (dialect.Classifier{}).Classify(ev).Minimal; got != dialect.Lua53 {
		t.Fatalf("classified as %s, want lua53", got)
	}
}

func TestLazySymbol(t *testing.T) {
	ok := []struct {
		src, sym string
	}{
		{" = ", "="},
		{"if ", "if"},
		{"\nend", "end"},
		{" then\n", "then"},
	}
	for _, tt := range ok {
		ref, err := lexer.Symbol(tt.src, dialect.All)
		if err != nil {
			t.Fatalf("Symbol(%q): %v", tt.src, err)
		}
		if ref.Token.String() != tt.sym || ref.String() != tt.src {
			t.Fatalf("Symbol(%q) = %q / %q", tt.src, ref.Token.String(), ref.String())
		}
	}

	bad := []struct {
		src  string
		kind lexer.ErrorKind
	}{
		{"x", lexer.InvalidSymbol},
		{"", lexer.InvalidSymbol},
		{"= =", lexer.UnexpectedToken},
		{"= x", lexer.UnexpectedToken},
		{"@", lexer.UnexpectedToken},
	}
	for _, tt := range bad {
		_, err := lexer.Symbol(tt.src, dialect.All)
		lerr, isLex := err.(*lexer.Error)
		if !isLex || lerr.Kind != tt.kind {
			t.Fatalf("Symbol(%q) error = %v, want %s", tt.src, err, tt.kind)
		}
	}
}

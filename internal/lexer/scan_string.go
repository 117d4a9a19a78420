package lexer

import (
	"strings"

	"lunar/internal/dialect"
	"lunar/internal/source"
	"lunar/internal/token"
)

// scanQuotedString reads a '...' or "..." literal. Escapes are consumed
// but not decoded; `\z` also swallows the whitespace after it. An unescaped
// line break ends the literal early and is reported as UnclosedString with
// the partial token kept.
func (lx *Lexer) scanQuotedString() TokenResult {
	start := lx.cursor.Position()
	quote, _ := lx.cursor.Next()
	qt := token.QuoteDouble
	if quote == '\'' {
		qt = token.QuoteSingle
	}
	mark := lx.cursor.Mark()

	for {
		r, ok := lx.cursor.Current()
		switch {
		case !ok:
			return fatal[token.Token](lx.errorFrom(UnclosedString, start))
		case r == quote:
			text := lx.cursor.TextFrom(mark)
			lx.cursor.Next()
			return lx.emit(token.Type{Kind: token.KindStringLiteral, Text: text, Quote: qt}, start, nil)
		case r == '\\':
			lx.scanEscape()
		case r == '\n' || r == '\r':
			text := lx.cursor.TextFrom(mark)
			err := lx.errorFrom(UnclosedString, start)
			typ := token.Type{Kind: token.KindStringLiteral, Text: text, Quote: qt, Unterminated: true}
			return lx.emit(typ, start, []*Error{err})
		default:
			lx.cursor.Next()
		}
	}
}

// scanEscape consumes a backslash and the character it escapes.
func (lx *Lexer) scanEscape() {
	lx.cursor.Next()
	r, ok := lx.cursor.Next()
	if !ok {
		return
	}
	switch r {
	case 'z':
		lx.eatWhile(isSpace)
	case '\r':
		lx.cursor.Consume('\n')
	}
}

// readLongBracket reads the `=` run and second `[` of an opening long
// bracket. The cursor must be on the first `[`. On failure the cursor is restored.
func (lx *Lexer) readLongBracket() (int, bool) {
	mark := lx.cursor.Mark()
	lx.cursor.Next()
	depth := lx.eatWhile(func(r rune) bool { return r == '=' })
	if !lx.cursor.Consume('[') {
		lx.cursor.Reset(mark)
		return 0, false
	}
	return depth, true
}

// readLongBody reads up to and including the closing bracket of the given
// depth and returns the content in between.
func (lx *Lexer) readLongBody(depth int) (string, bool) {
	mark := lx.cursor.Mark()
	closing := "]" + strings.Repeat("=", depth) + "]"
	for {
		if lx.cursor.HasPrefix(closing) {
			text := lx.cursor.TextFrom(mark)
			for range closing {
				lx.cursor.Next()
			}
			return text, true
		}
		if _, ok := lx.cursor.Next(); !ok {
			return lx.cursor.TextFrom(mark), false
		}
	}
}

// scanLongString reads [[...]] and [=[...]=]. It returns false, leaving the
// cursor untouched, when the `[` does not open a long bracket.
func (lx *Lexer) scanLongString() (TokenResult, bool) {
	start := lx.cursor.Position()
	depth, ok := lx.readLongBracket()
	if !ok {
		return TokenResult{}, false
	}
	text, closed := lx.readLongBody(depth)
	if !closed {
		return fatal[token.Token](lx.errorFrom(UnclosedString, start)), true
	}
	typ := token.Type{Kind: token.KindStringLiteral, Text: text, Depth: depth, Quote: token.QuoteBrackets}
	return lx.emit(typ, start, nil), true
}

// scanInterpolatedStart reads a segment opened by a backtick.
func (lx *Lexer) scanInterpolatedStart() TokenResult {
	start := lx.cursor.Position()
	dialect.RecordSymbol(lx.opts.Evidence, "`", start)
	lx.cursor.Next()
	return lx.scanInterpolatedSegment(start, token.InterpSimple, token.InterpBegin)
}

// scanInterpolatedContinue reads a segment opened by the `}` closing an expression.
func (lx *Lexer) scanInterpolatedContinue() TokenResult {
	start := lx.cursor.Position()
	lx.braces = lx.braces[:len(lx.braces)-1]
	lx.cursor.Next()
	return lx.scanInterpolatedSegment(start, token.InterpEnd, token.InterpMiddle)
}

func (lx *Lexer) scanInterpolatedSegment(start source.Position, closed, open token.InterpolatedKind) TokenResult {
	mark := lx.cursor.Mark()
	segment := func(kind token.InterpolatedKind, text string, errs []*Error) TokenResult {
		typ := token.Type{Kind: token.KindInterpolatedString, Text: text, Interp: kind, Unterminated: len(errs) > 0}
		return lx.emit(typ, start, errs)
	}
	for {
		r, ok := lx.cursor.Current()
		switch {
		case !ok:
			return fatal[token.Token](lx.errorFrom(UnclosedString, start))
		case r == '`':
			text := lx.cursor.TextFrom(mark)
			lx.cursor.Next()
			return segment(closed, text, nil)
		case r == '{':
			text := lx.cursor.TextFrom(mark)
			lx.cursor.Next()
			lx.braces = append(lx.braces, 0)
			return segment(open, text, nil)
		case r == '\\':
			lx.scanEscape()
		case r == '\n' || r == '\r':
			text := lx.cursor.TextFrom(mark)
			return segment(closed, text, []*Error{lx.errorFrom(UnclosedString, start)})
		default:
			lx.cursor.Next()
		}
	}
}

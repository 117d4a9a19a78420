package lexer

import (
	"strings"

	"lunar/internal/token"
)

// scanWhitespace reads blanks up to and including the first line break.
// A line break on its own is a whole token.
func (lx *Lexer) scanWhitespace() TokenResult {
	start := lx.cursor.Position()
	mark := lx.cursor.Mark()
loop:
	for {
		r, ok := lx.cursor.Current()
		if !ok {
			break
		}
		switch r {
		case ' ', '\t', '\f', '\v':
			lx.cursor.Next()
		case '\r':
			lx.cursor.Next()
			if lx.cursor.Consume('\n') {
				break loop
			}
		case '\n':
			lx.cursor.Next()
			break loop
		default:
			break loop
		}
	}
	return lx.emit(token.NewWhitespace(lx.cursor.TextFrom(mark)), start, nil)
}

// scanComment reads `--` comments. A long bracket right after the dashes
// opens a multi-line comment that must close at the same depth.
func (lx *Lexer) scanComment() TokenResult {
	start := lx.cursor.Position()
	lx.cursor.Next()
	lx.cursor.Next()

	if r, _ := lx.cursor.Current(); r == '[' {
		if depth, ok := lx.readLongBracket(); ok {
			text, closed := lx.readLongBody(depth)
			if !closed {
				return fatal[token.Token](lx.errorFrom(UnclosedComment, start))
			}
			return lx.emit(token.Type{Kind: token.KindMultiLineComment, Text: text, Depth: depth}, start, nil)
		}
	}

	mark := lx.cursor.Mark()
	lx.skipToLineEnd()
	return lx.emit(token.Type{Kind: token.KindSingleLineComment, Text: lx.cursor.TextFrom(mark)}, start, nil)
}

// skipToLineEnd stops before "\n" or "\r\n".
func (lx *Lexer) skipToLineEnd() {
	for {
		r, ok := lx.cursor.Current()
		if !ok || r == '\n' {
			return
		}
		if r == '\r' {
			if n, _ := lx.cursor.Peek(); n == '\n' {
				return
			}
		}
		lx.cursor.Next()
	}
}

// scanShebang reads a `#!` line at the start of input, line break included.
func (lx *Lexer) scanShebang() TokenResult {
	start := lx.cursor.Position()
	mark := lx.cursor.Mark()
	lx.skipToLineEnd()
	if !lx.cursor.Consume('\n') {
		if lx.cursor.Consume('\r') {
			lx.cursor.Consume('\n')
		}
	}
	return lx.emit(token.Type{Kind: token.KindShebang, Text: lx.cursor.TextFrom(mark)}, start, nil)
}

// readTrailingTrivia collects the trivia after a token on the same line,
// stopping after the whitespace that ends the line. Anything that is not
// trivia, or a comment that fails to lex, is left for the next token.
func (lx *Lexer) readTrailingTrivia() []token.Token {
	var trailing []token.Token
	for {
		r, ok := lx.cursor.Current()
		if !ok {
			return trailing
		}
		next, _ := lx.cursor.Peek()
		if !isSpace(r) && (r != '-' || next != '-') {
			return trailing
		}
		mark := lx.cursor.Mark()
		res, _ := lx.ProcessNext()
		if res.Kind != Ok || !res.Value.IsTrivia() {
			lx.cursor.Reset(mark)
			return trailing
		}
		trailing = append(trailing, res.Value)
		if res.Value.Kind == token.KindWhitespace && strings.Contains(res.Value.Text, "\n") {
			return trailing
		}
	}
}

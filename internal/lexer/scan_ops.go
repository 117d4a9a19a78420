package lexer

import (
	"lunar/internal/dialect"
	"lunar/internal/token"
)

// longestSymbol is the length of the longest punctuation spelling.
const longestSymbol = 3

// scanSymbol matches punctuation greedily, longest spelling first. The
// match is made against every dialect; whether the parser accepts the
// symbol is decided there.
func (lx *Lexer) scanSymbol() TokenResult {
	start := lx.cursor.Position()
	ahead := lx.cursor.remaining(longestSymbol)
	for n := len(ahead); n > 0; n-- {
		sym, ok := token.LookupPunct(ahead[:n])
		if !ok {
			continue
		}
		for range n {
			lx.cursor.Next()
		}
		lx.trackBrace(sym)
		dialect.RecordSymbol(lx.opts.Evidence, ahead[:n], start)
		return lx.emit(token.NewSymbol(sym), start, nil)
	}

	r, _ := lx.cursor.Next()
	err := lx.errorFrom(UnexpectedToken, start)
	err.Char = r
	return fatal[token.Token](err)
}

// trackBrace keeps brace depth inside interpolated string expressions so a
// `}` closing a table is not taken for the end of the expression.
func (lx *Lexer) trackBrace(sym token.Symbol) {
	if len(lx.braces) == 0 {
		return
	}
	top := len(lx.braces) - 1
	switch sym {
	case token.LeftBrace:
		lx.braces[top]++
	case token.RightBrace:
		if lx.braces[top] > 0 {
			lx.braces[top]--
		}
	}
}

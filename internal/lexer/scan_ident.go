package lexer

import (
	"lunar/internal/dialect"
	"lunar/internal/token"
)

// scanIdentifier reads [A-Za-z_][A-Za-z0-9_]*. Names that are keywords
// enabled in the active version become symbols; anything else, including
// keywords of other dialects, stays an identifier.
func (lx *Lexer) scanIdentifier() TokenResult {
	start := lx.cursor.Position()
	mark := lx.cursor.Mark()
	lx.eatWhile(isIdentContinue)
	text := lx.cursor.TextFrom(mark)

	if sym, ok := token.LookupKeyword(text, lx.opts.Version); ok {
		dialect.RecordSymbol(lx.opts.Evidence, text, start)
		return lx.emit(token.NewSymbol(sym), start, nil)
	}
	return lx.emit(token.NewIdentifier(text), start, nil)
}

package lexer

import (
	"lunar/internal/token"
)

// scanNumber reads decimal, hexadecimal (with Lua 5.2 hex floats) and, for
// Luau, binary literals with `_` separators. A number immediately followed by
// identifier characters is kept whole and reported as InvalidNumber.
func (lx *Lexer) scanNumber() TokenResult {
	start := lx.cursor.Position()
	mark := lx.cursor.Mark()
	luau := lx.opts.Version.HasLuau()
	valid := true

	digits := func(pred func(rune) bool) int {
		return lx.eatWhile(func(r rune) bool { return pred(r) || (luau && r == '_') })
	}

	r, _ := lx.cursor.Current()
	next, _ := lx.cursor.Peek()
	switch {
	case r == '0' && (next == 'x' || next == 'X'):
		lx.cursor.Next()
		lx.cursor.Next()
		n := digits(isHex)
		if lx.fractionAhead() {
			lx.cursor.Next()
			n += digits(isHex)
		}
		if n == 0 {
			valid = false
		}
		if c, _ := lx.cursor.Current(); c == 'p' || c == 'P' {
			valid = lx.scanExponent() && valid
		}
	case luau && r == '0' && (next == 'b' || next == 'B'):
		lx.cursor.Next()
		lx.cursor.Next()
		if digits(func(r rune) bool { return r == '0' || r == '1' }) == 0 {
			valid = false
		}
	default:
		digits(isDigit)
		if lx.fractionAhead() {
			lx.cursor.Next()
			digits(isDigit)
		}
		if c, _ := lx.cursor.Current(); c == 'e' || c == 'E' {
			valid = lx.scanExponent() && valid
		}
	}

	if lx.eatWhile(isIdentContinue) > 0 {
		valid = false
	}

	typ := token.Type{Kind: token.KindNumber, Text: lx.cursor.TextFrom(mark)}
	if !valid {
		return lx.emit(typ, start, []*Error{lx.errorFrom(InvalidNumber, start)})
	}
	return lx.emit(typ, start, nil)
}

// fractionAhead reports a `.` that belongs to the number rather than a `..`.
func (lx *Lexer) fractionAhead() bool {
	c, _ := lx.cursor.Current()
	if c != '.' {
		return false
	}
	n, _ := lx.cursor.Peek()
	return n != '.'
}

// scanExponent consumes e/E/p/P, an optional sign and the digits.
func (lx *Lexer) scanExponent() bool {
	lx.cursor.Next()
	if !lx.cursor.Consume('+') {
		lx.cursor.Consume('-')
	}
	return lx.eatWhile(isDigit) > 0
}

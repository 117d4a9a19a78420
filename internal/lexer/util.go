package lexer

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHex(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// isSpace covers the characters a whitespace token may hold.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\f', '\v', '\r', '\n':
		return true
	default:
		return false
	}
}

// eatWhile consumes characters while pred holds.
func (lx *Lexer) eatWhile(pred func(rune) bool) int {
	n := 0
	for {
		r, ok := lx.cursor.Current()
		if !ok || !pred(r) {
			return n
		}
		lx.cursor.Next()
		n++
	}
}

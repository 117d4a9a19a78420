package lexer

import (
	"fmt"

	"lunar/internal/dialect"
	"lunar/internal/token"
)

// Symbol builds a single token reference from a fragment such as " = " or
// "\nend": leading whitespace, exactly one symbol, trailing whitespace and
// nothing else. It is how default tokens for hand-built trees are made.
func Symbol(text string, version dialect.Version) (*token.Reference, error) {
	lx := NewLazy(text, Options{Version: version})
	invalid := func() error {
		return &Error{Kind: InvalidSymbol, Symbol: text}
	}

	var leading, trailing []token.Token
	var sym *token.Token
	for {
		res, ok := lx.ProcessNext()
		if !ok {
			return nil, invalid()
		}
		if res.Kind != Ok {
			return nil, res.Errors[0]
		}
		tok := res.Value
		switch {
		case tok.Kind == token.KindEof:
			if sym == nil {
				return nil, invalid()
			}
			return token.NewReference(leading, *sym, trailing), nil
		case tok.Kind == token.KindWhitespace:
			if sym == nil {
				leading = append(leading, tok)
			} else {
				trailing = append(trailing, tok)
			}
		case tok.Kind == token.KindSymbol && sym == nil:
			sym = &tok
		case sym != nil && len(tok.String()) > 0:
			r := []rune(tok.String())[0]
			return nil, &Error{Kind: UnexpectedToken, Char: r, Start: tok.Start, End: tok.End}
		default:
			return nil, invalid()
		}
	}
}

// MustSymbol is Symbol for fragments known to be valid.
func MustSymbol(text string, version dialect.Version) *token.Reference {
	ref, err := Symbol(text, version)
	if err != nil {
		panic(fmt.Sprintf("lexer.MustSymbol(%q): %v", text, err))
	}
	return ref
}

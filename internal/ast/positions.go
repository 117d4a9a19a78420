package ast

import (
	"unicode/utf8"

	"lunar/internal/source"
	"lunar/internal/token"
)

// UpdatePositions returns a copy of a whose token positions are recomputed
// from the printed text, starting at source.StartPosition. Hand-built or
// edited trees come out with positions that match Print(a).
func UpdatePositions(a *Ast) *Ast {
	return Rewrite(&positioner{pos: source.StartPosition}, a)
}

type positioner struct {
	BaseVisitorMut
	pos source.Position
}

func (p *positioner) VisitToken(t token.Token) token.Token {
	t.Start = p.pos
	text := t.String()
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		p.pos = p.pos.Advance(r, size)
		text = text[size:]
	}
	t.End = p.pos
	return t
}

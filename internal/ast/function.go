package ast

import "lunar/internal/token"

// FunctionBody is `(params) block end`. Parameters are names, with an
// optional trailing `...`.
type FunctionBody struct {
	Parens ContainedSpan
	Params Punctuated[*token.Reference]
	Block  *Block
	End    *token.Reference
}

// FunctionName is `a.b.c` with an optional `:method`.
type FunctionName struct {
	Names  Punctuated[*token.Reference]
	Colon  *token.Reference
	Method *token.Reference
}

func (b *FunctionBody) items() []item {
	var l itemList
	l.span(b.Parens)
	b.Params.appendItems(&l)
	l.close(b.Parens)
	l.add(b.Block)
	l.tok(b.End)
	return l
}

func (n *FunctionName) items() []item {
	var l itemList
	n.Names.appendItems(&l)
	l.tok(n.Colon)
	l.tok(n.Method)
	return l
}

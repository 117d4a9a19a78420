package ast

import "lunar/internal/token"

// IfExpression is the Luau `if c then a elseif d then b else e` expression.
type IfExpression struct {
	If       *token.Reference
	Cond     Expression
	Then     *token.Reference
	ThenExpr Expression
	ElseIfs  []*ElseIfExpression
	Else     *token.Reference
	ElseExpr Expression
}

// ElseIfExpression is one `elseif c then e` arm of an IfExpression.
type ElseIfExpression struct {
	ElseIf *token.Reference
	Cond   Expression
	Then   *token.Reference
	Expr   Expression
}

// InterpolatedSegment is a literal piece followed by the expression it opens.
type InterpolatedSegment struct {
	Literal *token.Reference
	Expr    Expression
}

// InterpolatedString is a Luau backtick string. Last is the closing
// segment, or the whole literal when there are no expressions.
type InterpolatedString struct {
	Segments []InterpolatedSegment
	Last     *token.Reference
}

func (e *IfExpression) items() []item {
	var l itemList
	l.tok(e.If)
	l.add(e.Cond)
	l.tok(e.Then)
	l.add(e.ThenExpr)
	for _, ei := range e.ElseIfs {
		l.add(ei)
	}
	l.tok(e.Else)
	l.add(e.ElseExpr)
	return l
}

func (e *ElseIfExpression) items() []item {
	var l itemList
	l.tok(e.ElseIf)
	l.add(e.Cond)
	l.tok(e.Then)
	l.add(e.Expr)
	return l
}

func (e *InterpolatedString) items() []item {
	l := make(itemList, 0, 2*len(e.Segments)+1)
	for _, s := range e.Segments {
		l.tok(s.Literal)
		l.add(s.Expr)
	}
	l.tok(e.Last)
	return l
}

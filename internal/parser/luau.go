package parser

import (
	"lunar/internal/ast"
	"lunar/internal/dialect"
	"lunar/internal/token"
)

// parseIfExpression parses `if c then a {elseif c then b} else d`.
func (p *parser) parseIfExpression() *ast.IfExpression {
	e := &ast.IfExpression{If: p.take()}
	p.feature(dialect.FlagLuau, "if expression", e.If)
	e.Cond = p.requireExpr("expected condition after `if`")
	e.Then = p.expect(token.Then, "expected `then` after condition")
	e.ThenExpr = p.requireExpr("expected expression after `then`")
	for p.is(token.ElseIf) {
		arm := &ast.ElseIfExpression{ElseIf: p.take()}
		arm.Cond = p.requireExpr("expected condition after `elseif`")
		arm.Then = p.expect(token.Then, "expected `then` after condition")
		arm.Expr = p.requireExpr("expected expression after `then`")
		e.ElseIfs = append(e.ElseIfs, arm)
	}
	e.Else = p.expectClose(token.Else, "expected `else` to end if expression", e.If)
	e.ElseExpr = p.requireExpr("expected expression after `else`")
	return e
}

// parseInterpolatedString assembles the segments the lexer produced for a
// backtick string with the expressions between them.
func (p *parser) parseInterpolatedString() *ast.InterpolatedString {
	first := p.take()
	s := &ast.InterpolatedString{}
	if first.Token.Interp == token.InterpSimple {
		s.Last = first
		return s
	}
	lit := first
	for {
		expr := p.requireExpr("expected expression in interpolated string")
		s.Segments = append(s.Segments, ast.InterpolatedSegment{Literal: lit, Expr: expr})
		cur := p.current()
		if cur == nil || cur.Token.Kind != token.KindInterpolatedString ||
			(cur.Token.Interp != token.InterpMiddle && cur.Token.Interp != token.InterpEnd) {
			p.errorHere(UnclosedConstruct, "expected `}` to close interpolated expression")
			return s
		}
		next := p.take()
		if next.Token.Interp == token.InterpEnd {
			s.Last = next
			return s
		}
		lit = next
	}
}

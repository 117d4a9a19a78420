package parser

import (
	"lunar/internal/ast"
	"lunar/internal/token"
)

// parseFunctionBody parses `(params) block end`. fn is the `function`
// keyword, used to anchor a missing `end`.
func (p *parser) parseFunctionBody(fn *token.Reference) *ast.FunctionBody {
	body := &ast.FunctionBody{}
	open := p.expect(token.LeftParen, "expected `(` to start parameter list")
	body.Parens = ast.NewContainedSpan(open, nil)
	body.Params = p.parseParams()
	body.Parens.Close = p.expect(token.RightParen, "expected `)` to close parameter list")
	body.Block = p.parseBlock()
	body.End = p.expectClose(token.End, "expected `end` to close function body", fn)
	return body
}

// parseParams parses names optionally ending in `...`.
func (p *parser) parseParams() ast.Punctuated[*token.Reference] {
	b := ast.NewPunctuatedBuilder[*token.Reference]()
	for {
		var param *token.Reference
		switch {
		case p.is(token.Ellipsis):
			return b.Finish(p.take())
		case p.isKind(token.KindIdentifier):
			param = p.take()
		default:
			if b.Len() > 0 {
				p.errorHere(ExpectedName, "expected parameter after `,`")
			}
			return b.Build()
		}
		comma := p.consumeIf(token.Comma)
		if comma == nil {
			return b.Finish(param)
		}
		b.Push(param, comma)
	}
}

// parseFunctionName parses `a.b.c[:m]`.
func (p *parser) parseFunctionName() *ast.FunctionName {
	n := &ast.FunctionName{}
	first := p.requireIdentifier("expected function name")
	if first == nil {
		return n
	}
	b := ast.NewPunctuatedBuilder[*token.Reference]()
	name := first
	for {
		dot := p.consumeIf(token.Dot)
		if dot == nil {
			n.Names = b.Finish(name)
			break
		}
		b.Push(name, dot)
		if name = p.requireIdentifier("expected name after `.`"); name == nil {
			n.Names = b.Build()
			break
		}
	}
	if colon := p.consumeIf(token.Colon); colon != nil {
		n.Colon = colon
		n.Method = p.requireIdentifier("expected method name after `:`")
	}
	return n
}

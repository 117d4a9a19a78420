package parser

import (
	"lunar/internal/ast"
	"lunar/internal/token"
)

// parsePrefixChain parses `prefix {suffix}` where prefix is a name or a
// parenthesized expression.
func (p *parser) parsePrefixChain() (ast.Prefix, []ast.Suffix, bool) {
	var prefix ast.Prefix
	switch {
	case p.isKind(token.KindIdentifier):
		prefix = &ast.Name{Token: p.take()}
	case p.is(token.LeftParen):
		open := p.take()
		paren := &ast.Parentheses{Parens: ast.NewContainedSpan(open, nil)}
		paren.Expr = p.requireExpr("expected expression after `(`")
		paren.Parens.Close = p.expectClose(token.RightParen, "expected `)` to close parentheses", open)
		prefix = paren
	default:
		return nil, nil, false
	}

	var suffixes []ast.Suffix
	for {
		s, ok := p.parseSuffix()
		if !ok {
			return prefix, suffixes, true
		}
		suffixes = append(suffixes, s)
	}
}

func (p *parser) parseSuffix() (ast.Suffix, bool) {
	switch {
	case p.is(token.Dot):
		s := &ast.IndexDot{Dot: p.take()}
		s.Name = p.requireIdentifier("expected name after `.`")
		return s, true
	case p.is(token.LeftBracket):
		open := p.take()
		s := &ast.IndexBrackets{Brackets: ast.NewContainedSpan(open, nil)}
		s.Expr = p.requireExpr("expected expression after `[`")
		s.Brackets.Close = p.expectClose(token.RightBracket, "expected `]` to close index", open)
		return s, true
	case p.is(token.Colon):
		s := &ast.MethodCall{Colon: p.take()}
		s.Name = p.requireIdentifier("expected method name after `:`")
		args, ok := p.parseArgs()
		if !ok {
			p.errorHere(ExpectedToken, "expected arguments after method name")
			args = &ast.ParenthesesArgs{Parens: ast.NewContainedSpan(token.Synthetic(token.LeftParen), token.Synthetic(token.RightParen))}
		}
		s.Args = args
		return s, true
	}
	if args, ok := p.parseArgs(); ok {
		return &ast.AnonymousCall{Args: args}, true
	}
	return nil, false
}

func (p *parser) parseArgs() (ast.FunctionArgs, bool) {
	switch {
	case p.is(token.LeftParen):
		open := p.take()
		a := &ast.ParenthesesArgs{Parens: ast.NewContainedSpan(open, nil)}
		a.Args, _ = parseList(p, p.parseExpr, "expected argument after `,`")
		a.Parens.Close = p.expectClose(token.RightParen, "expected `)` to close function call", open)
		return a, true
	case p.isKind(token.KindStringLiteral):
		return &ast.StringLiteral{Token: p.take()}, true
	case p.is(token.LeftBrace):
		return p.parseTableConstructor(), true
	}
	return nil, false
}

func (p *parser) parseTableConstructor() *ast.TableConstructor {
	open := p.take()
	t := &ast.TableConstructor{Braces: ast.NewContainedSpan(open, nil)}
	b := ast.NewPunctuatedBuilder[ast.Field]()
	closed := false
	for !p.is(token.RightBrace) {
		field, ok := p.parseField()
		if !ok {
			break
		}
		sep := p.consumeIf(token.Comma)
		if sep == nil {
			sep = p.consumeIf(token.Semicolon)
		}
		if sep == nil {
			t.Fields = b.Finish(field)
			closed = true
			break
		}
		b.Push(field, sep)
	}
	if !closed {
		t.Fields = b.Build()
	}
	t.Braces.Close = p.expectClose(token.RightBrace, "expected `}` to close table", open)
	return t
}

func (p *parser) parseField() (ast.Field, bool) {
	switch {
	case p.is(token.LeftBracket):
		open := p.take()
		f := &ast.ExpressionKeyField{Brackets: ast.NewContainedSpan(open, nil)}
		f.Key = p.requireExpr("expected key expression after `[`")
		f.Brackets.Close = p.expectClose(token.RightBracket, "expected `]` after key", open)
		f.Equal = p.expect(token.Equal, "expected `=` after key")
		f.Value = p.requireExpr("expected value after `=`")
		return f, true
	case p.isKind(token.KindIdentifier) && p.peekIs(token.Equal):
		f := &ast.NameKeyField{Key: p.take(), Equal: p.take()}
		f.Value = p.requireExpr("expected value after `=`")
		return f, true
	}
	value, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.NoKeyField{Value: value}, true
}

func (p *parser) peekIs(s token.Symbol) bool {
	next := p.peek()
	return next != nil && next.Is(s)
}

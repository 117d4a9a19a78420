package parser

import (
	"lunar/internal/ast"
	"lunar/internal/dialect"
	"lunar/internal/token"
)

// parseStmt parses one statement. It returns false without consuming
// anything when the current token cannot start a statement.
func (p *parser) parseStmt() (ast.Stmt, bool) {
	cur := p.current()
	if cur == nil {
		return nil, false
	}
	if cur.Token.Kind == token.KindIdentifier {
		if p.atContinue() {
			return nil, false
		}
		return p.parseExprStmt()
	}
	if cur.Token.Kind != token.KindSymbol || !cur.Token.Symbol.EnabledIn(p.version) {
		return nil, false
	}
	switch cur.Token.Symbol {
	case token.Local:
		return p.parseLocal(), true
	case token.For:
		return p.parseFor(), true
	case token.If:
		return p.parseIf(), true
	case token.While:
		return p.parseWhile(), true
	case token.Repeat:
		return p.parseRepeat(), true
	case token.Do:
		return p.parseDo(), true
	case token.Function:
		return p.parseFunctionDeclaration(), true
	case token.Goto:
		return p.parseGoto(), true
	case token.TwoColons:
		return p.parseLabel(), true
	case token.LeftParen:
		return p.parseExprStmt()
	}
	return nil, false
}

func (p *parser) parseLocal() ast.Stmt {
	local := p.take()
	if p.is(token.Function) {
		fn := &ast.LocalFunction{Local: local, Function: p.take()}
		fn.Name = p.requireIdentifier("expected name after `local function`")
		fn.Body = p.parseFunctionBody(fn.Function)
		return fn
	}

	s := &ast.LocalAssignment{Local: local}
	first := p.requireIdentifier("expected name after `local`")
	if first == nil {
		return s
	}
	var attrs []*ast.Attribute
	anyAttr := false
	b := ast.NewPunctuatedBuilder[*token.Reference]()
	name := first
	for {
		attr := p.parseAttribute()
		attrs = append(attrs, attr)
		anyAttr = anyAttr || attr != nil
		comma := p.consumeIf(token.Comma)
		if comma == nil {
			s.Names = b.Finish(name)
			break
		}
		b.Push(name, comma)
		name = p.requireIdentifier("expected name after `,`")
		if name == nil {
			s.Names = b.Build()
			break
		}
	}
	if anyAttr {
		s.Attributes = attrs
	}

	if eq := p.consumeIf(token.Equal); eq != nil {
		s.Equal = eq
		exprs, ok := parseList(p, p.parseExpr, "expected expression after `,`")
		if !ok {
			p.errorHere(ExpectedExpression, "expected expression after `=`")
		}
		s.Exprs = exprs
	}
	return s
}

// parseAttribute parses a Lua 5.4 `<const>` or `<close>`.
func (p *parser) parseAttribute() *ast.Attribute {
	if !p.version.HasLua54() || !p.is(token.LessThan) {
		return nil
	}
	open := p.take()
	attr := &ast.Attribute{Brackets: ast.NewContainedSpan(open, nil)}
	attr.Name = p.requireIdentifier("expected attribute name after `<`")
	if attr.Name != nil && attr.Name.Token.Text != "const" && attr.Name.Token.Text != "close" {
		p.errorAt(attr.Name, UnknownAttribute, "unknown attribute, expected `const` or `close`")
	}
	attr.Brackets.Close = p.expectClose(token.GreaterThan, "expected `>` to close attribute", open)
	p.feature(dialect.FlagLua54, "local variable attribute", open)
	return attr
}

func (p *parser) parseFor() ast.Stmt {
	forTok := p.take()
	first := p.requireIdentifier("expected name after `for`")
	if first != nil && p.is(token.Equal) {
		return p.parseNumericFor(forTok, first)
	}
	return p.parseGenericFor(forTok, first)
}

func (p *parser) parseNumericFor(forTok, index *token.Reference) *ast.NumericFor {
	s := &ast.NumericFor{For: forTok, Index: index, Equal: p.take()}
	s.Start = p.requireExpr("expected start expression after `=`")
	s.StartComma = p.expect(token.Comma, "expected `,` after start expression")
	s.Limit = p.requireExpr("expected limit expression after `,`")
	if comma := p.consumeIf(token.Comma); comma != nil {
		s.StepComma = comma
		s.Step = p.requireExpr("expected step expression after `,`")
	}
	s.Do = p.expect(token.Do, "expected `do` after numeric for")
	s.Block = p.parseBlock()
	s.End = p.expectClose(token.End, "expected `end` to close numeric for", forTok)
	return s
}

func (p *parser) parseGenericFor(forTok, first *token.Reference) *ast.GenericFor {
	s := &ast.GenericFor{For: forTok}
	if first != nil {
		b := ast.NewPunctuatedBuilder[*token.Reference]()
		name := first
		for {
			comma := p.consumeIf(token.Comma)
			if comma == nil {
				s.Names = b.Finish(name)
				break
			}
			b.Push(name, comma)
			if name = p.requireIdentifier("expected name after `,`"); name == nil {
				s.Names = b.Build()
				break
			}
		}
	}
	s.In = p.expect(token.In, "expected `in` after names in for loop")
	exprs, ok := parseList(p, p.parseExpr, "expected expression after `,`")
	if !ok {
		p.errorHere(ExpectedExpression, "expected expression after `in`")
	}
	s.Exprs = exprs
	s.Do = p.expect(token.Do, "expected `do` after generic for")
	s.Block = p.parseBlock()
	s.End = p.expectClose(token.End, "expected `end` to close generic for", forTok)
	return s
}

func (p *parser) parseIf() *ast.If {
	s := &ast.If{If: p.take()}
	s.Cond = p.requireExpr("expected condition after `if`")
	s.Then = p.expect(token.Then, "expected `then` after condition")
	s.Block = p.parseBlock()
	for p.is(token.ElseIf) {
		e := &ast.ElseIf{ElseIf: p.take()}
		e.Cond = p.requireExpr("expected condition after `elseif`")
		e.Then = p.expect(token.Then, "expected `then` after condition")
		e.Block = p.parseBlock()
		s.ElseIfs = append(s.ElseIfs, e)
	}
	if els := p.consumeIf(token.Else); els != nil {
		s.Else = els
		s.ElseBlock = p.parseBlock()
	}
	s.End = p.expectClose(token.End, "expected `end` to close `if` block", s.If)
	return s
}

func (p *parser) parseWhile() *ast.While {
	s := &ast.While{While: p.take()}
	s.Cond = p.requireExpr("expected condition after `while`")
	s.Do = p.expect(token.Do, "expected `do` after condition")
	s.Block = p.parseBlock()
	s.End = p.expectClose(token.End, "expected `end` to close `while` loop", s.While)
	return s
}

func (p *parser) parseRepeat() *ast.Repeat {
	s := &ast.Repeat{Repeat: p.take()}
	s.Block = p.parseBlock()
	s.Until = p.expectClose(token.Until, "expected `until` to close `repeat` loop", s.Repeat)
	s.Cond = p.requireExpr("expected condition after `until`")
	return s
}

func (p *parser) parseDo() *ast.Do {
	s := &ast.Do{Do: p.take()}
	s.Block = p.parseBlock()
	s.End = p.expectClose(token.End, "expected `end` to close `do` block", s.Do)
	return s
}

func (p *parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	s := &ast.FunctionDeclaration{Function: p.take()}
	s.Name = p.parseFunctionName()
	s.Body = p.parseFunctionBody(s.Function)
	return s
}

func (p *parser) parseGoto() *ast.Goto {
	s := &ast.Goto{Goto: p.take()}
	s.Label = p.requireIdentifier("expected label name after `goto`")
	return s
}

func (p *parser) parseLabel() *ast.Label {
	s := &ast.Label{LeftColons: p.take()}
	s.Name = p.requireIdentifier("expected label name after `::`")
	s.RightColons = p.expectClose(token.TwoColons, "expected `::` to close label", s.LeftColons)
	return s
}

// parseExprStmt parses a function call or an assignment, both of which
// start with a prefix expression.
func (p *parser) parseExprStmt() (ast.Stmt, bool) {
	prefix, suffixes, ok := p.parsePrefixChain()
	if !ok {
		return nil, false
	}
	if len(suffixes) > 0 && ast.IsCall(suffixes[len(suffixes)-1]) && !p.is(token.Equal) && !p.is(token.Comma) {
		return &ast.FunctionCall{Prefix: prefix, Suffixes: suffixes}, true
	}

	first := p.toVar(prefix, suffixes)
	b := ast.NewPunctuatedBuilder[ast.Var]()
	v := first
	s := &ast.Assignment{}
	for {
		comma := p.consumeIf(token.Comma)
		if comma == nil {
			s.Vars = b.Finish(v)
			break
		}
		b.Push(v, comma)
		pre, suf, ok := p.parsePrefixChain()
		if !ok {
			p.errorHere(ExpectedName, "expected variable after `,`")
			s.Vars = b.Build()
			break
		}
		v = p.toVar(pre, suf)
	}

	if p.isCompoundAssignment() {
		p.errorHere(UnsupportedConstruct, "compound assignment is not supported")
	}
	s.Equal = p.expect(token.Equal, "expected `=` after variable list")
	exprs, ok := parseList(p, p.parseExpr, "expected expression after `,`")
	if !ok {
		p.errorHere(ExpectedExpression, "expected expression after `=`")
	}
	s.Exprs = exprs
	return s, true
}

// toVar turns a prefix chain into an assignment target. Chains that cannot
// be assigned to are reported and kept as a VarExpression so that no
// token is lost.
func (p *parser) toVar(prefix ast.Prefix, suffixes []ast.Suffix) ast.Var {
	if len(suffixes) == 0 {
		if name, ok := prefix.(*ast.Name); ok {
			return name
		}
		p.errorAt(ast.FirstToken(prefix), InvalidAssignment, "cannot assign to a parenthesized expression")
		return &ast.VarExpression{Prefix: prefix}
	}
	if ast.IsCall(suffixes[len(suffixes)-1]) {
		p.errorAt(ast.FirstToken(prefix), InvalidAssignment, "cannot assign to a function call")
	}
	return &ast.VarExpression{Prefix: prefix, Suffixes: suffixes}
}

func (p *parser) isCompoundAssignment() bool {
	cur := p.current()
	if cur == nil || cur.Token.Kind != token.KindSymbol {
		return false
	}
	switch cur.Token.Symbol {
	case token.PlusEqual, token.MinusEqual, token.StarEqual, token.SlashEqual,
		token.DoubleSlashEqual, token.PercentEqual, token.CaretEqual, token.TwoDotsEqual:
		return true
	}
	return false
}

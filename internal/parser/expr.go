package parser

import (
	"lunar/internal/ast"
	"lunar/internal/dialect"
	"lunar/internal/token"
)

// binaryGates narrows the lexical gate of symbols that other dialects use
// for something else; Luau only has `&` and `|` in type positions.
var binaryGates = map[token.Symbol]dialect.Version{
	token.Ampersand: dialect.FlagLua53,
	token.Pipe:      dialect.FlagLua53,
}

func (p *parser) binaryOperator() (token.Symbol, int, bool) {
	cur := p.current()
	if cur == nil || cur.Token.Kind != token.KindSymbol {
		return 0, 0, false
	}
	sym := cur.Token.Symbol
	prec, ok := ast.BinaryPrecedence(sym)
	if !ok {
		return 0, 0, false
	}
	gate, narrowed := binaryGates[sym]
	if !narrowed {
		gate = sym.Gate()
	}
	if !p.version.Enables(gate) {
		return 0, 0, false
	}
	return sym, prec, true
}

func (p *parser) atUnaryOperator() bool {
	cur := p.current()
	return cur != nil && cur.Token.Kind == token.KindSymbol &&
		ast.IsUnaryOperator(cur.Token.Symbol) && cur.Token.Symbol.EnabledIn(p.version)
}

// parseExpr parses an expression, returning false without consuming
// anything when none starts here.
func (p *parser) parseExpr() (ast.Expression, bool) {
	return p.parseSubExpr(0)
}

// requireExpr parses an expression or records message and leaves a hole.
func (p *parser) requireExpr(message string) ast.Expression {
	e, ok := p.parseExpr()
	if !ok {
		p.errorHere(ExpectedExpression, message)
		return nil
	}
	return e
}

// parseSubExpr is precedence climbing: it folds every binary operator whose
// precedence is at least min. Right associative operators parse their
// right side at their own level, the rest one above.
func (p *parser) parseSubExpr(min int) (ast.Expression, bool) {
	var lhs ast.Expression
	if p.atUnaryOperator() {
		op := &ast.UnOp{Token: p.take()}
		operand, ok := p.parseSubExpr(ast.PrecUnary)
		if !ok {
			p.errorHere(ExpectedExpression, "expected expression after unary operator")
		}
		lhs = &ast.UnaryOperator{Op: op, Operand: operand}
	} else {
		simple, ok := p.parseSimpleExpr()
		if !ok {
			return nil, false
		}
		lhs = simple
	}

	for {
		sym, prec, ok := p.binaryOperator()
		if !ok || prec < min {
			return lhs, true
		}
		op := &ast.BinOp{Token: p.take()}
		next := prec + 1
		if ast.IsRightAssociative(sym) {
			next = prec
		}
		rhs, ok := p.parseSubExpr(next)
		if !ok {
			p.errorHere(ExpectedExpression, "expected expression after binary operator")
		}
		lhs = &ast.BinaryOperator{Lhs: lhs, Op: op, Rhs: rhs}
	}
}

func (p *parser) parseSimpleExpr() (ast.Expression, bool) {
	cur := p.current()
	if cur == nil {
		return nil, false
	}
	switch cur.Token.Kind {
	case token.KindNumber:
		return &ast.NumberLiteral{Token: p.take()}, true
	case token.KindStringLiteral:
		return &ast.StringLiteral{Token: p.take()}, true
	case token.KindInterpolatedString:
		return p.parseInterpolatedString(), true
	case token.KindIdentifier:
		return p.parsePrefixExpr()
	case token.KindSymbol:
	default:
		return nil, false
	}

	switch sym := cur.Token.Symbol; {
	case !sym.EnabledIn(p.version):
		return nil, false
	case sym == token.Nil, sym == token.True, sym == token.False, sym == token.Ellipsis:
		return &ast.SymbolLiteral{Token: p.take()}, true
	case sym == token.Function:
		fn := &ast.AnonymousFunction{Function: p.take()}
		fn.Body = p.parseFunctionBody(fn.Function)
		return fn, true
	case sym == token.LeftBrace:
		return p.parseTableConstructor(), true
	case sym == token.LeftParen:
		return p.parsePrefixExpr()
	case sym == token.If && p.version.HasLuau():
		return p.parseIfExpression(), true
	}
	return nil, false
}

// parsePrefixExpr parses a name or parenthesized expression with its
// suffixes and classifies the chain.
func (p *parser) parsePrefixExpr() (ast.Expression, bool) {
	prefix, suffixes, ok := p.parsePrefixChain()
	if !ok {
		return nil, false
	}
	switch {
	case len(suffixes) == 0:
		return prefix.(ast.Expression), true
	case ast.IsCall(suffixes[len(suffixes)-1]):
		return &ast.FunctionCall{Prefix: prefix, Suffixes: suffixes}, true
	default:
		return &ast.VarExpression{Prefix: prefix, Suffixes: suffixes}, true
	}
}

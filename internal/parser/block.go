package parser

import (
	"lunar/internal/ast"
	"lunar/internal/dialect"
	"lunar/internal/token"
)

// parseBlock parses statements until none can start, then an optional
// last statement. Unreadable slots between statements are skipped. From
// Lua 5.2 on a lone `;` is an empty statement.
func (p *parser) parseBlock() *ast.Block {
	b := &ast.Block{}
	for {
		if p.atFatal() {
			p.consume()
			continue
		}
		if p.version.HasLua52() && p.is(token.Semicolon) {
			semi := p.take()
			p.feature(dialect.FlagLua52, "empty statement `;`", semi)
			b.Stmts = append(b.Stmts, ast.StmtEntry{Semicolon: semi})
			continue
		}
		stmt, ok := p.parseStmt()
		if !ok {
			break
		}
		b.Stmts = append(b.Stmts, ast.StmtEntry{Stmt: stmt, Semicolon: p.consumeIf(token.Semicolon)})
	}
	if last, ok := p.parseLastStmt(); ok {
		b.Last = &ast.LastStmtEntry{Stmt: last, Semicolon: p.consumeIf(token.Semicolon)}
	}
	return b
}

func (p *parser) parseLastStmt() (ast.LastStmt, bool) {
	switch {
	case p.is(token.Return):
		ret := &ast.Return{Return: p.take()}
		ret.Returns, _ = parseList(p, p.parseExpr, "expected expression after `,`")
		return ret, true
	case p.is(token.Break):
		return &ast.Break{Token: p.take()}, true
	case p.atContinue():
		tok := p.take()
		p.feature(dialect.FlagLuau, "`continue` statement", tok)
		return &ast.Continue{Token: tok}, true
	}
	return nil, false
}

// atContinue reports a Luau `continue`. The word is not reserved, so it
// only counts when what follows cannot continue an expression statement.
func (p *parser) atContinue() bool {
	cur := p.current()
	if !p.version.HasLuau() || cur == nil || cur.Token.Kind != token.KindIdentifier || cur.Token.Text != "continue" {
		return false
	}
	next := p.peek()
	if next == nil {
		return true
	}
	switch next.Token.Kind {
	case token.KindStringLiteral:
		return false
	case token.KindSymbol:
		switch next.Token.Symbol {
		case token.LeftParen, token.LeftBracket, token.LeftBrace, token.Dot, token.Colon,
			token.Comma, token.Equal, token.PlusEqual, token.MinusEqual, token.StarEqual,
			token.SlashEqual, token.DoubleSlashEqual, token.PercentEqual, token.CaretEqual,
			token.TwoDotsEqual:
			return false
		}
	}
	return true
}

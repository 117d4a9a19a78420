package ast

import "lunar/internal/token"

// Rewrite runs v over a and returns the rebuilt tree. Nodes and tokens are
// visited in document order.
func Rewrite(v VisitorMut, a *Ast) *Ast {
	return rewriter{v: v}.ast(a)
}

type rewriter struct {
	v VisitorMut
}

func (rw rewriter) token(t token.Token) token.Token {
	t = rw.v.VisitToken(t)
	switch t.Kind {
	case token.KindIdentifier:
		return rw.v.VisitIdentifier(t)
	case token.KindMultiLineComment:
		return rw.v.VisitMultiLineComment(t)
	case token.KindNumber:
		return rw.v.VisitNumber(t)
	case token.KindShebang:
		return rw.v.VisitShebang(t)
	case token.KindSingleLineComment:
		return rw.v.VisitSingleLineComment(t)
	case token.KindStringLiteral:
		return rw.v.VisitStringLiteralToken(t)
	case token.KindSymbol:
		return rw.v.VisitSymbol(t)
	case token.KindWhitespace:
		return rw.v.VisitWhitespace(t)
	case token.KindEof:
		return rw.v.VisitEof(t)
	case token.KindInterpolatedString:
		return rw.v.VisitInterpolatedStringToken(t)
	}
	return t
}

func (rw rewriter) trivia(ts []token.Token) []token.Token {
	if ts == nil {
		return nil
	}
	out := make([]token.Token, len(ts))
	for i, t := range ts {
		out[i] = rw.token(t)
	}
	return out
}

func (rw rewriter) ref(r *token.Reference) *token.Reference {
	if r == nil {
		return nil
	}
	leading := rw.trivia(r.Leading)
	tok := rw.token(r.Token)
	return &token.Reference{Leading: leading, Token: tok, Trailing: rw.trivia(r.Trailing)}
}

func (rw rewriter) span(c ContainedSpan) ContainedSpan {
	return ContainedSpan{Open: rw.ref(c.Open), Close: c.Close}
}

func (rw rewriter) closeSpan(c ContainedSpan) ContainedSpan {
	c.Close = rw.ref(c.Close)
	return c
}

func (rw rewriter) exprs(p Punctuated[Expression]) Punctuated[Expression] {
	return MapPunctuated(p, rw.expr, rw.ref)
}

func (rw rewriter) names(p Punctuated[*token.Reference]) Punctuated[*token.Reference] {
	return MapPunctuated(p, rw.ref, rw.ref)
}

func (rw rewriter) ast(a *Ast) *Ast {
	a = rw.v.VisitAst(a)
	out := &Ast{Block: rw.block(a.Block), Eof: rw.ref(a.Eof)}
	return rw.v.VisitAstEnd(out)
}

func (rw rewriter) block(b *Block) *Block {
	if b == nil {
		return nil
	}
	b = rw.v.VisitBlock(b)
	out := &Block{Stmts: make([]StmtEntry, 0, len(b.Stmts))}
	for _, e := range b.Stmts {
		s := rw.stmt(e.Stmt)
		out.Stmts = append(out.Stmts, StmtEntry{Stmt: s, Semicolon: rw.ref(e.Semicolon)})
	}
	if b.Last != nil {
		s := rw.lastStmt(b.Last.Stmt)
		out.Last = &LastStmtEntry{Stmt: s, Semicolon: rw.ref(b.Last.Semicolon)}
	}
	return rw.v.VisitBlockEnd(out)
}

func (rw rewriter) stmt(s Stmt) Stmt {
	switch s := s.(type) {
	case *Assignment:
		return rw.assignment(s)
	case *LocalAssignment:
		return rw.localAssignment(s)
	case *Do:
		return rw.do(s)
	case *While:
		return rw.while(s)
	case *Repeat:
		return rw.repeat(s)
	case *If:
		return rw.ifStmt(s)
	case *NumericFor:
		return rw.numericFor(s)
	case *GenericFor:
		return rw.genericFor(s)
	case *FunctionDeclaration:
		return rw.functionDeclaration(s)
	case *LocalFunction:
		return rw.localFunction(s)
	case *FunctionCall:
		return rw.functionCall(s)
	case *Goto:
		return rw.gotoStmt(s)
	case *Label:
		return rw.label(s)
	}
	return s
}

func (rw rewriter) lastStmt(s LastStmt) LastStmt {
	switch s := s.(type) {
	case *Return:
		s = rw.v.VisitReturn(s)
		out := &Return{Return: rw.ref(s.Return)}
		out.Returns = rw.exprs(s.Returns)
		return rw.v.VisitReturnEnd(out)
	case *Break:
		s = rw.v.VisitBreak(s)
		return rw.v.VisitBreakEnd(&Break{Token: rw.ref(s.Token)})
	case *Continue:
		s = rw.v.VisitContinue(s)
		return rw.v.VisitContinueEnd(&Continue{Token: rw.ref(s.Token)})
	}
	return s
}

func (rw rewriter) assignment(s *Assignment) *Assignment {
	s = rw.v.VisitAssignment(s)
	out := &Assignment{Vars: MapPunctuated(s.Vars, rw.variable, rw.ref)}
	out.Equal = rw.ref(s.Equal)
	out.Exprs = rw.exprs(s.Exprs)
	return rw.v.VisitAssignmentEnd(out)
}

func (rw rewriter) localAssignment(s *LocalAssignment) *LocalAssignment {
	s = rw.v.VisitLocalAssignment(s)
	out := &LocalAssignment{Local: rw.ref(s.Local)}
	out.Names.pairs = make([]Pair[*token.Reference], 0, len(s.Names.pairs))
	if len(s.Attributes) > 0 {
		out.Attributes = make([]*Attribute, len(s.Attributes))
	}
	for i, pair := range s.Names.pairs {
		name := rw.ref(pair.value)
		if i < len(s.Attributes) && s.Attributes[i] != nil {
			out.Attributes[i] = rw.attribute(s.Attributes[i])
		}
		out.Names.pairs = append(out.Names.pairs, Pair[*token.Reference]{value: name, punct: rw.ref(pair.punct)})
	}
	out.Equal = rw.ref(s.Equal)
	out.Exprs = rw.exprs(s.Exprs)
	return rw.v.VisitLocalAssignmentEnd(out)
}

func (rw rewriter) attribute(a *Attribute) *Attribute {
	a = rw.v.VisitAttribute(a)
	out := &Attribute{Brackets: rw.span(a.Brackets)}
	out.Name = rw.ref(a.Name)
	out.Brackets = rw.closeSpan(out.Brackets)
	return rw.v.VisitAttributeEnd(out)
}

func (rw rewriter) do(s *Do) *Do {
	s = rw.v.VisitDo(s)
	out := &Do{Do: rw.ref(s.Do)}
	out.Block = rw.block(s.Block)
	out.End = rw.ref(s.End)
	return rw.v.VisitDoEnd(out)
}

func (rw rewriter) while(s *While) *While {
	s = rw.v.VisitWhile(s)
	out := &While{While: rw.ref(s.While)}
	out.Cond = rw.expr(s.Cond)
	out.Do = rw.ref(s.Do)
	out.Block = rw.block(s.Block)
	out.End = rw.ref(s.End)
	return rw.v.VisitWhileEnd(out)
}

func (rw rewriter) repeat(s *Repeat) *Repeat {
	s = rw.v.VisitRepeat(s)
	out := &Repeat{Repeat: rw.ref(s.Repeat)}
	out.Block = rw.block(s.Block)
	out.Until = rw.ref(s.Until)
	out.Cond = rw.expr(s.Cond)
	return rw.v.VisitRepeatEnd(out)
}

func (rw rewriter) ifStmt(s *If) *If {
	s = rw.v.VisitIf(s)
	out := &If{If: rw.ref(s.If)}
	out.Cond = rw.expr(s.Cond)
	out.Then = rw.ref(s.Then)
	out.Block = rw.block(s.Block)
	for _, e := range s.ElseIfs {
		out.ElseIfs = append(out.ElseIfs, rw.elseIf(e))
	}
	out.Else = rw.ref(s.Else)
	out.ElseBlock = rw.block(s.ElseBlock)
	out.End = rw.ref(s.End)
	return rw.v.VisitIfEnd(out)
}

func (rw rewriter) elseIf(e *ElseIf) *ElseIf {
	e = rw.v.VisitElseIf(e)
	out := &ElseIf{ElseIf: rw.ref(e.ElseIf)}
	out.Cond = rw.expr(e.Cond)
	out.Then = rw.ref(e.Then)
	out.Block = rw.block(e.Block)
	return rw.v.VisitElseIfEnd(out)
}

func (rw rewriter) numericFor(s *NumericFor) *NumericFor {
	s = rw.v.VisitNumericFor(s)
	out := &NumericFor{For: rw.ref(s.For)}
	out.Index = rw.ref(s.Index)
	out.Equal = rw.ref(s.Equal)
	out.Start = rw.expr(s.Start)
	out.StartComma = rw.ref(s.StartComma)
	out.Limit = rw.expr(s.Limit)
	out.StepComma = rw.ref(s.StepComma)
	out.Step = rw.expr(s.Step)
	out.Do = rw.ref(s.Do)
	out.Block = rw.block(s.Block)
	out.End = rw.ref(s.End)
	return rw.v.VisitNumericForEnd(out)
}

func (rw rewriter) genericFor(s *GenericFor) *GenericFor {
	s = rw.v.VisitGenericFor(s)
	out := &GenericFor{For: rw.ref(s.For)}
	out.Names = rw.names(s.Names)
	out.In = rw.ref(s.In)
	out.Exprs = rw.exprs(s.Exprs)
	out.Do = rw.ref(s.Do)
	out.Block = rw.block(s.Block)
	out.End = rw.ref(s.End)
	return rw.v.VisitGenericForEnd(out)
}

func (rw rewriter) functionDeclaration(s *FunctionDeclaration) *FunctionDeclaration {
	s = rw.v.VisitFunctionDeclaration(s)
	out := &FunctionDeclaration{Function: rw.ref(s.Function)}
	out.Name = rw.functionName(s.Name)
	out.Body = rw.functionBody(s.Body)
	return rw.v.VisitFunctionDeclarationEnd(out)
}

func (rw rewriter) localFunction(s *LocalFunction) *LocalFunction {
	s = rw.v.VisitLocalFunction(s)
	out := &LocalFunction{Local: rw.ref(s.Local)}
	out.Function = rw.ref(s.Function)
	out.Name = rw.ref(s.Name)
	out.Body = rw.functionBody(s.Body)
	return rw.v.VisitLocalFunctionEnd(out)
}

func (rw rewriter) gotoStmt(s *Goto) *Goto {
	s = rw.v.VisitGoto(s)
	out := &Goto{Goto: rw.ref(s.Goto)}
	out.Label = rw.ref(s.Label)
	return rw.v.VisitGotoEnd(out)
}

func (rw rewriter) label(s *Label) *Label {
	s = rw.v.VisitLabel(s)
	out := &Label{LeftColons: rw.ref(s.LeftColons)}
	out.Name = rw.ref(s.Name)
	out.RightColons = rw.ref(s.RightColons)
	return rw.v.VisitLabelEnd(out)
}

func (rw rewriter) functionBody(b *FunctionBody) *FunctionBody {
	if b == nil {
		return nil
	}
	b = rw.v.VisitFunctionBody(b)
	out := &FunctionBody{Parens: rw.span(b.Parens)}
	out.Params = rw.names(b.Params)
	out.Parens = rw.closeSpan(out.Parens)
	out.Block = rw.block(b.Block)
	out.End = rw.ref(b.End)
	return rw.v.VisitFunctionBodyEnd(out)
}

func (rw rewriter) functionName(n *FunctionName) *FunctionName {
	if n == nil {
		return nil
	}
	n = rw.v.VisitFunctionName(n)
	out := &FunctionName{Names: rw.names(n.Names)}
	out.Colon = rw.ref(n.Colon)
	out.Method = rw.ref(n.Method)
	return rw.v.VisitFunctionNameEnd(out)
}

func (rw rewriter) expr(e Expression) Expression {
	switch e := e.(type) {
	case *BinaryOperator:
		e = rw.v.VisitBinaryOperator(e)
		out := &BinaryOperator{Lhs: rw.expr(e.Lhs)}
		out.Op = rw.binOp(e.Op)
		out.Rhs = rw.expr(e.Rhs)
		return rw.v.VisitBinaryOperatorEnd(out)
	case *UnaryOperator:
		e = rw.v.VisitUnaryOperator(e)
		out := &UnaryOperator{Op: rw.unOp(e.Op)}
		out.Operand = rw.expr(e.Operand)
		return rw.v.VisitUnaryOperatorEnd(out)
	case *Parentheses:
		return rw.parentheses(e)
	case *AnonymousFunction:
		e = rw.v.VisitAnonymousFunction(e)
		out := &AnonymousFunction{Function: rw.ref(e.Function)}
		out.Body = rw.functionBody(e.Body)
		return rw.v.VisitAnonymousFunctionEnd(out)
	case *NumberLiteral:
		e = rw.v.VisitNumberLiteral(e)
		return rw.v.VisitNumberLiteralEnd(&NumberLiteral{Token: rw.ref(e.Token)})
	case *StringLiteral:
		return rw.stringLiteral(e)
	case *SymbolLiteral:
		e = rw.v.VisitSymbolLiteral(e)
		return rw.v.VisitSymbolLiteralEnd(&SymbolLiteral{Token: rw.ref(e.Token)})
	case *Name:
		return rw.name(e)
	case *VarExpression:
		return rw.varExpression(e)
	case *FunctionCall:
		return rw.functionCall(e)
	case *TableConstructor:
		return rw.table(e)
	case *IfExpression:
		return rw.ifExpression(e)
	case *InterpolatedString:
		return rw.interpolated(e)
	}
	return e
}

func (rw rewriter) binOp(o *BinOp) *BinOp {
	o = rw.v.VisitBinOp(o)
	return rw.v.VisitBinOpEnd(&BinOp{Token: rw.ref(o.Token)})
}

func (rw rewriter) unOp(o *UnOp) *UnOp {
	o = rw.v.VisitUnOp(o)
	return rw.v.VisitUnOpEnd(&UnOp{Token: rw.ref(o.Token)})
}

func (rw rewriter) parentheses(e *Parentheses) *Parentheses {
	e = rw.v.VisitParentheses(e)
	out := &Parentheses{Parens: rw.span(e.Parens)}
	out.Expr = rw.expr(e.Expr)
	out.Parens = rw.closeSpan(out.Parens)
	return rw.v.VisitParenthesesEnd(out)
}

func (rw rewriter) stringLiteral(e *StringLiteral) *StringLiteral {
	e = rw.v.VisitStringLiteral(e)
	return rw.v.VisitStringLiteralEnd(&StringLiteral{Token: rw.ref(e.Token)})
}

func (rw rewriter) name(e *Name) *Name {
	e = rw.v.VisitName(e)
	return rw.v.VisitNameEnd(&Name{Token: rw.ref(e.Token)})
}

func (rw rewriter) prefix(p Prefix) Prefix {
	switch p := p.(type) {
	case *Name:
		return rw.name(p)
	case *Parentheses:
		return rw.parentheses(p)
	}
	return p
}

func (rw rewriter) suffixes(ss []Suffix) []Suffix {
	out := make([]Suffix, 0, len(ss))
	for _, s := range ss {
		out = append(out, rw.suffix(s))
	}
	return out
}

func (rw rewriter) suffix(s Suffix) Suffix {
	switch s := s.(type) {
	case *AnonymousCall:
		s = rw.v.VisitAnonymousCall(s)
		return rw.v.VisitAnonymousCallEnd(&AnonymousCall{Args: rw.args(s.Args)})
	case *MethodCall:
		s = rw.v.VisitMethodCall(s)
		out := &MethodCall{Colon: rw.ref(s.Colon)}
		out.Name = rw.ref(s.Name)
		out.Args = rw.args(s.Args)
		return rw.v.VisitMethodCallEnd(out)
	case *IndexBrackets:
		s = rw.v.VisitIndexBrackets(s)
		out := &IndexBrackets{Brackets: rw.span(s.Brackets)}
		out.Expr = rw.expr(s.Expr)
		out.Brackets = rw.closeSpan(out.Brackets)
		return rw.v.VisitIndexBracketsEnd(out)
	case *IndexDot:
		s = rw.v.VisitIndexDot(s)
		out := &IndexDot{Dot: rw.ref(s.Dot)}
		out.Name = rw.ref(s.Name)
		return rw.v.VisitIndexDotEnd(out)
	}
	return s
}

func (rw rewriter) args(a FunctionArgs) FunctionArgs {
	switch a := a.(type) {
	case *ParenthesesArgs:
		a = rw.v.VisitParenthesesArgs(a)
		out := &ParenthesesArgs{Parens: rw.span(a.Parens)}
		out.Args = rw.exprs(a.Args)
		out.Parens = rw.closeSpan(out.Parens)
		return rw.v.VisitParenthesesArgsEnd(out)
	case *StringLiteral:
		return rw.stringLiteral(a)
	case *TableConstructor:
		return rw.table(a)
	}
	return a
}

func (rw rewriter) variable(v Var) Var {
	switch v := v.(type) {
	case *Name:
		return rw.name(v)
	case *VarExpression:
		return rw.varExpression(v)
	}
	return v
}

func (rw rewriter) varExpression(e *VarExpression) *VarExpression {
	e = rw.v.VisitVarExpression(e)
	out := &VarExpression{Prefix: rw.prefix(e.Prefix)}
	out.Suffixes = rw.suffixes(e.Suffixes)
	return rw.v.VisitVarExpressionEnd(out)
}

func (rw rewriter) functionCall(e *FunctionCall) *FunctionCall {
	e = rw.v.VisitFunctionCall(e)
	out := &FunctionCall{Prefix: rw.prefix(e.Prefix)}
	out.Suffixes = rw.suffixes(e.Suffixes)
	return rw.v.VisitFunctionCallEnd(out)
}

func (rw rewriter) table(t *TableConstructor) *TableConstructor {
	t = rw.v.VisitTableConstructor(t)
	out := &TableConstructor{Braces: rw.span(t.Braces)}
	out.Fields = MapPunctuated(t.Fields, rw.field, rw.ref)
	out.Braces = rw.closeSpan(out.Braces)
	return rw.v.VisitTableConstructorEnd(out)
}

func (rw rewriter) field(f Field) Field {
	switch f := f.(type) {
	case *ExpressionKeyField:
		f = rw.v.VisitExpressionKeyField(f)
		out := &ExpressionKeyField{Brackets: rw.span(f.Brackets)}
		out.Key = rw.expr(f.Key)
		out.Brackets = rw.closeSpan(out.Brackets)
		out.Equal = rw.ref(f.Equal)
		out.Value = rw.expr(f.Value)
		return rw.v.VisitExpressionKeyFieldEnd(out)
	case *NameKeyField:
		f = rw.v.VisitNameKeyField(f)
		out := &NameKeyField{Key: rw.ref(f.Key)}
		out.Equal = rw.ref(f.Equal)
		out.Value = rw.expr(f.Value)
		return rw.v.VisitNameKeyFieldEnd(out)
	case *NoKeyField:
		f = rw.v.VisitNoKeyField(f)
		return rw.v.VisitNoKeyFieldEnd(&NoKeyField{Value: rw.expr(f.Value)})
	}
	return f
}

func (rw rewriter) ifExpression(e *IfExpression) *IfExpression {
	e = rw.v.VisitIfExpression(e)
	out := &IfExpression{If: rw.ref(e.If)}
	out.Cond = rw.expr(e.Cond)
	out.Then = rw.ref(e.Then)
	out.ThenExpr = rw.expr(e.ThenExpr)
	for _, ei := range e.ElseIfs {
		ei = rw.v.VisitElseIfExpression(ei)
		arm := &ElseIfExpression{ElseIf: rw.ref(ei.ElseIf)}
		arm.Cond = rw.expr(ei.Cond)
		arm.Then = rw.ref(ei.Then)
		arm.Expr = rw.expr(ei.Expr)
		out.ElseIfs = append(out.ElseIfs, rw.v.VisitElseIfExpressionEnd(arm))
	}
	out.Else = rw.ref(e.Else)
	out.ElseExpr = rw.expr(e.ElseExpr)
	return rw.v.VisitIfExpressionEnd(out)
}

func (rw rewriter) interpolated(e *InterpolatedString) *InterpolatedString {
	e = rw.v.VisitInterpolatedString(e)
	out := &InterpolatedString{Segments: make([]InterpolatedSegment, 0, len(e.Segments))}
	for _, s := range e.Segments {
		lit := rw.ref(s.Literal)
		out.Segments = append(out.Segments, InterpolatedSegment{Literal: lit, Expr: rw.expr(s.Expr)})
	}
	out.Last = rw.ref(e.Last)
	return rw.v.VisitInterpolatedStringEnd(out)
}

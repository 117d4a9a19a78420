package ast

import (
	"lunar/internal/dialect"
	"lunar/internal/lexer"
	"lunar/internal/token"
)

// Default tokens for hand-built trees are lexed lazily from fragments so
// that printing a freshly constructed node gives readable Lua.

func sym(text string) *token.Reference {
	return lexer.MustSymbol(text, dialect.All)
}

func comma() *token.Reference { return sym(", ") }

// NewIdentifier returns a bare identifier reference.
func NewIdentifier(name string) *token.Reference {
	return token.SyntheticIdentifier(name)
}

// NewName returns a name expression.
func NewName(name string) *Name {
	return &Name{Token: NewIdentifier(name)}
}

// NewNumber returns a number literal written exactly as text.
func NewNumber(text string) *NumberLiteral {
	return &NumberLiteral{Token: token.NewReference(nil, token.Token{Type: token.Type{Kind: token.KindNumber, Text: text}}, nil)}
}

// NewString returns a double quoted string literal. text must already be
// escaped.
func NewString(text string) *StringLiteral {
	tt := token.Type{Kind: token.KindStringLiteral, Text: text, Quote: token.QuoteDouble}
	return &StringLiteral{Token: token.NewReference(nil, token.Token{Type: tt}, nil)}
}

// NewSymbolLiteral returns `true`, `false`, `nil` or `...`.
func NewSymbolLiteral(s token.Symbol) *SymbolLiteral {
	return &SymbolLiteral{Token: token.Synthetic(s)}
}

// NewBlock returns a block holding stmts, each without a semicolon.
func NewBlock(stmts ...Stmt) *Block {
	b := &Block{}
	for _, s := range stmts {
		b.Stmts = append(b.Stmts, StmtEntry{Stmt: s})
	}
	return b
}

// WithLast returns a copy of b ending in last.
func (b *Block) WithLast(last LastStmt) *Block {
	out := &Block{Stmts: b.Stmts}
	if last != nil {
		out.Last = &LastStmtEntry{Stmt: last}
	}
	return out
}

// NewAst wraps a block with an end-of-file token.
func NewAst(b *Block) *Ast {
	return &Ast{Block: b, Eof: token.NewReference(nil, token.Token{Type: token.Type{Kind: token.KindEof}}, nil)}
}

// NewReturn returns `return exprs`.
func NewReturn(exprs ...Expression) *Return {
	if len(exprs) == 0 {
		return &Return{Return: sym("return")}
	}
	return &Return{Return: sym("return "), Returns: PunctuatedOf(comma, exprs...)}
}

// NewBreak returns `break`.
func NewBreak() *Break { return &Break{Token: sym("break")} }

// NewContinue returns the Luau `continue`.
func NewContinue() *Continue { return &Continue{Token: NewIdentifier("continue")} }

// NewAssignment returns `vars = exprs`.
func NewAssignment(vars []Var, exprs []Expression) *Assignment {
	return &Assignment{
		Vars:  PunctuatedOf(comma, vars...),
		Equal: sym(" = "),
		Exprs: PunctuatedOf(comma, exprs...),
	}
}

// NewLocalAssignment returns `local names`. Use WithExprs to add values.
func NewLocalAssignment(names ...string) *LocalAssignment {
	refs := make([]*token.Reference, len(names))
	for i, n := range names {
		refs[i] = NewIdentifier(n)
	}
	return &LocalAssignment{Local: sym("local "), Names: PunctuatedOf(comma, refs...)}
}

// WithExprs returns a copy of s assigning exprs. An empty list removes the
// `=` as well.
func (s *LocalAssignment) WithExprs(exprs ...Expression) *LocalAssignment {
	out := *s
	if len(exprs) == 0 {
		out.Equal, out.Exprs = nil, Punctuated[Expression]{}
		return &out
	}
	out.Equal = sym(" = ")
	out.Exprs = PunctuatedOf(comma, exprs...)
	return &out
}

// NewAttribute returns a Lua 5.4 `<name>` attribute.
func NewAttribute(name string) *Attribute {
	return &Attribute{
		Brackets: NewContainedSpan(sym(" <"), sym(">")),
		Name:     NewIdentifier(name),
	}
}

// NewDo returns `do block end`.
func NewDo(b *Block) *Do {
	return &Do{Do: sym("do"), Block: b, End: sym("\nend")}
}

// NewWhile returns `while cond do block end`.
func NewWhile(cond Expression, b *Block) *While {
	return &While{While: sym("while "), Cond: cond, Do: sym(" do"), Block: b, End: sym("\nend")}
}

// NewRepeat returns `repeat block until cond`.
func NewRepeat(b *Block, cond Expression) *Repeat {
	return &Repeat{Repeat: sym("repeat"), Block: b, Until: sym("\nuntil "), Cond: cond}
}

// NewIf returns `if cond then block end`.
func NewIf(cond Expression, b *Block) *If {
	return &If{If: sym("if "), Cond: cond, Then: sym(" then"), Block: b, End: sym("\nend")}
}

// WithElseIf returns a copy of s with one more elseif branch.
func (s *If) WithElseIf(cond Expression, b *Block) *If {
	out := *s
	out.ElseIfs = append(append([]*ElseIf(nil), s.ElseIfs...), &ElseIf{
		ElseIf: sym("\nelseif "),
		Cond:   cond,
		Then:   sym(" then"),
		Block:  b,
	})
	return &out
}

// WithElse returns a copy of s with an else branch.
func (s *If) WithElse(b *Block) *If {
	out := *s
	out.Else = sym("\nelse")
	out.ElseBlock = b
	return &out
}

// NewNumericFor returns `for index = start, limit do block end`.
func NewNumericFor(index string, start, limit Expression, b *Block) *NumericFor {
	return &NumericFor{
		For:        sym("for "),
		Index:      NewIdentifier(index),
		Equal:      sym(" = "),
		Start:      start,
		StartComma: comma(),
		Limit:      limit,
		Do:         sym(" do"),
		Block:      b,
		End:        sym("\nend"),
	}
}

// WithStep returns a copy of s with an explicit step.
func (s *NumericFor) WithStep(step Expression) *NumericFor {
	out := *s
	out.Step = step
	out.StepComma = nil
	if step != nil {
		out.StepComma = comma()
	}
	return &out
}

// NewGenericFor returns `for names in exprs do block end`.
func NewGenericFor(names []string, exprs []Expression, b *Block) *GenericFor {
	refs := make([]*token.Reference, len(names))
	for i, n := range names {
		refs[i] = NewIdentifier(n)
	}
	return &GenericFor{
		For:   sym("for "),
		Names: PunctuatedOf(comma, refs...),
		In:    sym(" in "),
		Exprs: PunctuatedOf(comma, exprs...),
		Do:    sym(" do"),
		Block: b,
		End:   sym("\nend"),
	}
}

// NewFunctionBody returns `(params) block end`.
func NewFunctionBody(params []string, b *Block) *FunctionBody {
	refs := make([]*token.Reference, len(params))
	for i, p := range params {
		if p == "..." {
			refs[i] = token.Synthetic(token.Ellipsis)
			continue
		}
		refs[i] = NewIdentifier(p)
	}
	return &FunctionBody{
		Parens: NewContainedSpan(sym("("), sym(")")),
		Params: PunctuatedOf(comma, refs...),
		Block:  b,
		End:    sym("\nend"),
	}
}

// NewFunctionName returns `a.b.c`.
func NewFunctionName(names ...string) *FunctionName {
	refs := make([]*token.Reference, len(names))
	for i, n := range names {
		refs[i] = NewIdentifier(n)
	}
	return &FunctionName{Names: PunctuatedOf(func() *token.Reference { return sym(".") }, refs...)}
}

// WithMethod returns a copy of n ending in `:method`.
func (n *FunctionName) WithMethod(method string) *FunctionName {
	out := *n
	out.Colon = sym(":")
	out.Method = NewIdentifier(method)
	return &out
}

// NewFunctionDeclaration returns `function name body`.
func NewFunctionDeclaration(name *FunctionName, body *FunctionBody) *FunctionDeclaration {
	return &FunctionDeclaration{Function: sym("function "), Name: name, Body: body}
}

// NewLocalFunction returns `local function name body`.
func NewLocalFunction(name string, body *FunctionBody) *LocalFunction {
	return &LocalFunction{Local: sym("local "), Function: sym("function "), Name: NewIdentifier(name), Body: body}
}

// NewAnonymousFunction returns `function body`.
func NewAnonymousFunction(body *FunctionBody) *AnonymousFunction {
	return &AnonymousFunction{Function: sym("function"), Body: body}
}

// NewGoto returns `goto label`.
func NewGoto(label string) *Goto {
	return &Goto{Goto: sym("goto "), Label: NewIdentifier(label)}
}

// NewLabel returns `::name::`.
func NewLabel(name string) *Label {
	return &Label{LeftColons: sym("::"), Name: NewIdentifier(name), RightColons: sym("::")}
}

// NewBinaryOperator returns `lhs op rhs` with spaces around op.
func NewBinaryOperator(lhs Expression, op token.Symbol, rhs Expression) *BinaryOperator {
	return &BinaryOperator{Lhs: lhs, Op: &BinOp{Token: sym(" " + op.String() + " ")}, Rhs: rhs}
}

// NewUnaryOperator returns `op operand`; `not` gets a trailing space.
func NewUnaryOperator(op token.Symbol, operand Expression) *UnaryOperator {
	text := op.String()
	if op == token.Not {
		text += " "
	}
	return &UnaryOperator{Op: &UnOp{Token: sym(text)}, Operand: operand}
}

// NewParentheses returns `(expr)`.
func NewParentheses(e Expression) *Parentheses {
	return &Parentheses{Parens: NewContainedSpan(sym("("), sym(")")), Expr: e}
}

// NewParenthesesArgs returns `(args)`.
func NewParenthesesArgs(args ...Expression) *ParenthesesArgs {
	return &ParenthesesArgs{Parens: NewContainedSpan(sym("("), sym(")")), Args: PunctuatedOf(comma, args...)}
}

// NewCall returns `prefix(args)`.
func NewCall(prefix Prefix, args ...Expression) *FunctionCall {
	return &FunctionCall{Prefix: prefix, Suffixes: []Suffix{&AnonymousCall{Args: NewParenthesesArgs(args...)}}}
}

// NewMethodCall returns `:name(args)`.
func NewMethodCall(name string, args ...Expression) *MethodCall {
	return &MethodCall{Colon: sym(":"), Name: NewIdentifier(name), Args: NewParenthesesArgs(args...)}
}

// NewIndexDot returns `.name`.
func NewIndexDot(name string) *IndexDot {
	return &IndexDot{Dot: sym("."), Name: NewIdentifier(name)}
}

// NewIndexBrackets returns `[expr]`.
func NewIndexBrackets(e Expression) *IndexBrackets {
	return &IndexBrackets{Brackets: NewContainedSpan(sym("["), sym("]")), Expr: e}
}

// NewTableConstructor returns `{fields}`.
func NewTableConstructor(fields ...Field) *TableConstructor {
	return &TableConstructor{Braces: NewContainedSpan(sym("{"), sym("}")), Fields: PunctuatedOf(comma, fields...)}
}

// NewNameKeyField returns `key = value`.
func NewNameKeyField(key string, value Expression) *NameKeyField {
	return &NameKeyField{Key: NewIdentifier(key), Equal: sym(" = "), Value: value}
}

// NewExpressionKeyField returns `[key] = value`.
func NewExpressionKeyField(key, value Expression) *ExpressionKeyField {
	return &ExpressionKeyField{Brackets: NewContainedSpan(sym("["), sym("]")), Key: key, Equal: sym(" = "), Value: value}
}

// NewNoKeyField returns a positional field.
func NewNoKeyField(value Expression) *NoKeyField {
	return &NoKeyField{Value: value}
}

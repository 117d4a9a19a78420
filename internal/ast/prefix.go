package ast

import "lunar/internal/token"

// Prefix starts a call or index chain: a *Name or a *Parentheses.
type Prefix interface {
	Node
	prefixNode()
}

// Suffix follows a prefix: a call or an index.
type Suffix interface {
	Node
	suffixNode()
}

// Var is an assignment target: a *Name or a *VarExpression.
type Var interface {
	Node
	varNode()
}

// FunctionArgs is the argument part of a call: *ParenthesesArgs,
// *StringLiteral or *TableConstructor.
type FunctionArgs interface {
	Node
	functionArgsNode()
}

func (*Name) prefixNode()        {}
func (*Parentheses) prefixNode() {}

func (*Name) varNode()          {}
func (*VarExpression) varNode() {}

// AnonymousCall is a plain call suffix `(args)`, `"s"` or `{t}`.
type AnonymousCall struct {
	Args FunctionArgs
}

// MethodCall is `:name(args)`.
type MethodCall struct {
	Colon *token.Reference
	Name  *token.Reference
	Args  FunctionArgs
}

// IndexBrackets is `[expr]`.
type IndexBrackets struct {
	Brackets ContainedSpan
	Expr     Expression
}

// IndexDot is `.name`.
type IndexDot struct {
	Dot  *token.Reference
	Name *token.Reference
}

func (*AnonymousCall) suffixNode() {}
func (*MethodCall) suffixNode()    {}
func (*IndexBrackets) suffixNode() {}
func (*IndexDot) suffixNode()      {}

// IsCall reports whether s is a call suffix.
func IsCall(s Suffix) bool {
	switch s.(type) {
	case *AnonymousCall, *MethodCall:
		return true
	default:
		return false
	}
}

func (s *AnonymousCall) items() []item {
	var l itemList
	l.add(s.Args)
	return l
}

func (s *MethodCall) items() []item {
	var l itemList
	l.tok(s.Colon)
	l.tok(s.Name)
	l.add(s.Args)
	return l
}

func (s *IndexBrackets) items() []item {
	var l itemList
	l.span(s.Brackets)
	l.add(s.Expr)
	l.close(s.Brackets)
	return l
}

func (s *IndexDot) items() []item {
	var l itemList
	l.tok(s.Dot)
	l.tok(s.Name)
	return l
}

// ParenthesesArgs is `(a, b)`.
type ParenthesesArgs struct {
	Parens ContainedSpan
	Args   Punctuated[Expression]
}

func (*ParenthesesArgs) functionArgsNode()  {}
func (*StringLiteral) functionArgsNode()    {}
func (*TableConstructor) functionArgsNode() {}

func (a *ParenthesesArgs) items() []item {
	var l itemList
	l.span(a.Parens)
	a.Args.appendItems(&l)
	l.close(a.Parens)
	return l
}

package ast

import "lunar/internal/token"

// Expression is any expression node.
type Expression interface {
	Node
	exprNode()
}

// BinaryOperator is `lhs op rhs`.
type BinaryOperator struct {
	Lhs Expression
	Op  *BinOp
	Rhs Expression
}

// UnaryOperator is `op operand`.
type UnaryOperator struct {
	Op      *UnOp
	Operand Expression
}

// Parentheses is `(expr)`.
type Parentheses struct {
	Parens ContainedSpan
	Expr   Expression
}

// AnonymousFunction is `function(params) block end`.
type AnonymousFunction struct {
	Function *token.Reference
	Body     *FunctionBody
}

// NumberLiteral is a number, kept as written.
type NumberLiteral struct {
	Token *token.Reference
}

// StringLiteral is a quoted or long string.
type StringLiteral struct {
	Token *token.Reference
}

// SymbolLiteral is `true`, `false`, `nil` or `...`.
type SymbolLiteral struct {
	Token *token.Reference
}

// Name is a bare identifier used as an expression, variable or prefix.
type Name struct {
	Token *token.Reference
}

// VarExpression is an indexed prefix such as `a.b[c]`.
type VarExpression struct {
	Prefix   Prefix
	Suffixes []Suffix
}

// FunctionCall is a prefix followed by suffixes, the last being a call.
type FunctionCall struct {
	Prefix   Prefix
	Suffixes []Suffix
}

func (*BinaryOperator) exprNode()     {}
func (*UnaryOperator) exprNode()      {}
func (*Parentheses) exprNode()        {}
func (*AnonymousFunction) exprNode()  {}
func (*NumberLiteral) exprNode()      {}
func (*StringLiteral) exprNode()      {}
func (*SymbolLiteral) exprNode()      {}
func (*Name) exprNode()               {}
func (*VarExpression) exprNode()      {}
func (*FunctionCall) exprNode()       {}
func (*TableConstructor) exprNode()   {}
func (*IfExpression) exprNode()       {}
func (*InterpolatedString) exprNode() {}

func (e *BinaryOperator) items() []item {
	var l itemList
	l.add(e.Lhs)
	l.add(e.Op)
	l.add(e.Rhs)
	return l
}

func (e *UnaryOperator) items() []item {
	var l itemList
	l.add(e.Op)
	l.add(e.Operand)
	return l
}

func (e *Parentheses) items() []item {
	var l itemList
	l.span(e.Parens)
	l.add(e.Expr)
	l.close(e.Parens)
	return l
}

func (e *AnonymousFunction) items() []item {
	var l itemList
	l.tok(e.Function)
	l.add(e.Body)
	return l
}

func (e *NumberLiteral) items() []item { return []item{{ref: e.Token}} }
func (e *StringLiteral) items() []item { return []item{{ref: e.Token}} }
func (e *SymbolLiteral) items() []item { return []item{{ref: e.Token}} }
func (e *Name) items() []item          { return []item{{ref: e.Token}} }

func (e *VarExpression) items() []item {
	l := make(itemList, 0, len(e.Suffixes)+1)
	l.add(e.Prefix)
	for _, s := range e.Suffixes {
		l.add(s)
	}
	return l
}

func (e *FunctionCall) items() []item {
	l := make(itemList, 0, len(e.Suffixes)+1)
	l.add(e.Prefix)
	for _, s := range e.Suffixes {
		l.add(s)
	}
	return l
}

// BinOp is a binary operator token.
type BinOp struct {
	Token *token.Reference
}

// UnOp is a unary operator token.
type UnOp struct {
	Token *token.Reference
}

func (o *BinOp) items() []item { return []item{{ref: o.Token}} }
func (o *UnOp) items() []item  { return []item{{ref: o.Token}} }

// Symbol returns the operator symbol.
func (o *BinOp) Symbol() token.Symbol { return o.Token.Token.Symbol }

// Symbol returns the operator symbol.
func (o *UnOp) Symbol() token.Symbol { return o.Token.Token.Symbol }

// Precedence levels, lowest first.
const (
	PrecOr         = 1
	PrecAnd        = 2
	PrecComparison = 3
	PrecBitOr      = 4
	PrecBitXor     = 5
	PrecBitAnd     = 6
	PrecShift      = 7
	PrecConcat     = 8
	PrecAdditive   = 9
	PrecMultiply   = 10
	PrecUnary      = 11
	PrecPower      = 12
)

var binaryPrec = map[token.Symbol]int{
	token.Or:                PrecOr,
	token.And:               PrecAnd,
	token.LessThan:          PrecComparison,
	token.GreaterThan:       PrecComparison,
	token.LessThanEqual:     PrecComparison,
	token.GreaterThanEqual:  PrecComparison,
	token.TildeEqual:        PrecComparison,
	token.TwoEqual:          PrecComparison,
	token.Pipe:              PrecBitOr,
	token.Tilde:             PrecBitXor,
	token.Ampersand:         PrecBitAnd,
	token.DoubleLesserThan:  PrecShift,
	token.DoubleGreaterThan: PrecShift,
	token.TwoDots:           PrecConcat,
	token.Plus:              PrecAdditive,
	token.Minus:             PrecAdditive,
	token.Star:              PrecMultiply,
	token.Slash:             PrecMultiply,
	token.DoubleSlash:       PrecMultiply,
	token.Percent:           PrecMultiply,
	token.Caret:             PrecPower,
}

// BinaryPrecedence returns the precedence of s as a binary operator.
func BinaryPrecedence(s token.Symbol) (int, bool) {
	p, ok := binaryPrec[s]
	return p, ok
}

// IsUnaryOperator reports whether s can start a unary expression.
func IsUnaryOperator(s token.Symbol) bool {
	switch s {
	case token.Minus, token.Not, token.Hash, token.Tilde:
		return true
	default:
		return false
	}
}

// Precedence returns the binding strength of the operator.
func (o *BinOp) Precedence() int {
	p, _ := BinaryPrecedence(o.Symbol())
	return p
}

// IsRightAssociative reports `^` and `..`.
func (o *BinOp) IsRightAssociative() bool {
	return IsRightAssociative(o.Symbol())
}

// IsRightAssociative reports whether s groups right to left.
func IsRightAssociative(s token.Symbol) bool {
	return s == token.Caret || s == token.TwoDots
}

// Precedence of every unary operator.
func (o *UnOp) Precedence() int { return PrecUnary }

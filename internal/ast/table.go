package ast

import "lunar/internal/token"

// TableConstructor is `{ fields }`; separators may be `,` or `;`.
type TableConstructor struct {
	Braces ContainedSpan
	Fields Punctuated[Field]
}

// Field is one table constructor entry.
type Field interface {
	Node
	fieldNode()
}

// ExpressionKeyField is `[key] = value`.
type ExpressionKeyField struct {
	Brackets ContainedSpan
	Key      Expression
	Equal    *token.Reference
	Value    Expression
}

// NameKeyField is `key = value`.
type NameKeyField struct {
	Key   *token.Reference
	Equal *token.Reference
	Value Expression
}

// NoKeyField is a positional `value`.
type NoKeyField struct {
	Value Expression
}

func (*ExpressionKeyField) fieldNode() {}
func (*NameKeyField) fieldNode()       {}
func (*NoKeyField) fieldNode()         {}

func (t *TableConstructor) items() []item {
	var l itemList
	l.span(t.Braces)
	t.Fields.appendItems(&l)
	l.close(t.Braces)
	return l
}

func (f *ExpressionKeyField) items() []item {
	var l itemList
	l.span(f.Brackets)
	l.add(f.Key)
	l.close(f.Brackets)
	l.tok(f.Equal)
	l.add(f.Value)
	return l
}

func (f *NameKeyField) items() []item {
	var l itemList
	l.tok(f.Key)
	l.tok(f.Equal)
	l.add(f.Value)
	return l
}

func (f *NoKeyField) items() []item {
	var l itemList
	l.add(f.Value)
	return l
}

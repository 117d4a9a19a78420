package ast

import (
	"reflect"
	"strings"

	"lunar/internal/source"
	"lunar/internal/token"
)

// Node is any syntax tree node. The set of implementations is closed.
type Node interface {
	// items lists the node's direct children in document order.
	items() []item
}

// item is either a leaf token reference or a child node still to expand.
type item struct {
	ref  *token.Reference
	node Node
}

// itemList accumulates children, skipping absent optional parts.
type itemList []item

func (l *itemList) tok(r *token.Reference) {
	if r != nil {
		*l = append(*l, item{ref: r})
	}
}

func (l *itemList) add(n Node) {
	if n == nil {
		return
	}
	if b, ok := n.(*Block); ok && b == nil {
		return
	}
	*l = append(*l, item{node: n})
}

func (l *itemList) span(c ContainedSpan) {
	l.tok(c.Open)
}

func (l *itemList) close(c ContainedSpan) {
	l.tok(c.Close)
}

// Child is one direct child of a node: either a token or a nested node.
type Child struct {
	Token *token.Reference
	Node  Node
}

// Children lists the direct children of n in document order.
func Children(n Node) []Child {
	if n == nil {
		return nil
	}
	items := n.items()
	out := make([]Child, len(items))
	for i, it := range items {
		out[i] = Child{Token: it.ref, Node: it.node}
	}
	return out
}

// KindName returns the node's type name, such as "LocalAssignment".
func KindName(n Node) string {
	t := reflect.TypeOf(n)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}

// Flatten returns a lazy double-ended sequence of every leaf token
// reference under n, in document order.
func Flatten(n Node) *Tokens {
	t := &Tokens{}
	if n != nil {
		t.pushBack(item{node: n})
	}
	return t
}

// FirstToken returns the first leaf of n, or nil for an empty node.
func FirstToken(n Node) *token.Reference {
	return Flatten(n).Next()
}

// LastToken returns the last leaf of n, or nil for an empty node.
func LastToken(n Node) *token.Reference {
	return Flatten(n).NextBack()
}

// Start returns where the first token of n begins. The boolean is false
// for nodes without tokens, such as an empty block.
func Start(n Node) (source.Position, bool) {
	ref := FirstToken(n)
	if ref == nil {
		return source.Position{}, false
	}
	return ref.Start(), true
}

// End returns where the last token of n ends.
func End(n Node) (source.Position, bool) {
	ref := LastToken(n)
	if ref == nil {
		return source.Position{}, false
	}
	return ref.End(), true
}

// Range returns Start and End together.
func Range(n Node) (start, end source.Position, ok bool) {
	start, ok = Start(n)
	if !ok {
		return start, start, false
	}
	end, _ = End(n)
	return start, end, true
}

// SurroundingTrivia returns the leading trivia of the first token and the
// trailing trivia of the last token of n.
func SurroundingTrivia(n Node) (leading, trailing []token.Token) {
	if first := FirstToken(n); first != nil {
		leading = first.Leading
	}
	if last := LastToken(n); last != nil {
		trailing = last.Trailing
	}
	return leading, trailing
}

// Print reproduces the source text of n.
func Print(n Node) string {
	var sb strings.Builder
	tokens := Flatten(n)
	for ref := tokens.Next(); ref != nil; ref = tokens.Next() {
		ref.AppendTo(&sb)
	}
	return sb.String()
}

// Similar reports whether a and b have the same shape and token types,
// ignoring positions and trivia.
func Similar(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	ai, bi := a.items(), b.items()
	if len(ai) != len(bi) {
		return false
	}
	for i := range ai {
		x, y := ai[i], bi[i]
		switch {
		case x.ref != nil && y.ref != nil:
			if !x.ref.Similar(y.ref) {
				return false
			}
		case x.node != nil && y.node != nil:
			if !Similar(x.node, y.node) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

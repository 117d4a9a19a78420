package ast

import "lunar/internal/token"

// Tokens is a work-list deque over a subtree. Items are leaves or
// unexpanded nodes; a node is expanded only when it reaches the end being
// consumed, so reading the first or last token costs time proportional to
// the depth of the tree.
type Tokens struct {
	buf  []item
	head int
	size int
}

// Next pops the next leaf from the front, or returns nil when exhausted.
func (t *Tokens) Next() *token.Reference {
	for t.size > 0 {
		it := t.popFront()
		if it.ref != nil {
			return it.ref
		}
		children := it.node.items()
		for i := len(children) - 1; i >= 0; i-- {
			t.pushFront(children[i])
		}
	}
	return nil
}

// NextBack pops the next leaf from the back, or returns nil when exhausted.
func (t *Tokens) NextBack() *token.Reference {
	for t.size > 0 {
		it := t.popBack()
		if it.ref != nil {
			return it.ref
		}
		for _, child := range it.node.items() {
			t.pushBack(child)
		}
	}
	return nil
}

// All drains the remaining leaves in document order.
func (t *Tokens) All() []*token.Reference {
	var out []*token.Reference
	for ref := t.Next(); ref != nil; ref = t.Next() {
		out = append(out, ref)
	}
	return out
}

func (t *Tokens) grow() {
	n := len(t.buf) * 2
	if n == 0 {
		n = 8
	}
	buf := make([]item, n)
	for i := 0; i < t.size; i++ {
		buf[i] = t.buf[(t.head+i)%len(t.buf)]
	}
	t.buf = buf
	t.head = 0
}

func (t *Tokens) pushFront(it item) {
	if t.size == len(t.buf) {
		t.grow()
	}
	t.head = (t.head - 1 + len(t.buf)) % len(t.buf)
	t.buf[t.head] = it
	t.size++
}

func (t *Tokens) pushBack(it item) {
	if t.size == len(t.buf) {
		t.grow()
	}
	t.buf[(t.head+t.size)%len(t.buf)] = it
	t.size++
}

func (t *Tokens) popFront() item {
	it := t.buf[t.head]
	t.buf[t.head] = item{}
	t.head = (t.head + 1) % len(t.buf)
	t.size--
	return it
}

func (t *Tokens) popBack() item {
	idx := (t.head + t.size - 1) % len(t.buf)
	it := t.buf[idx]
	t.buf[idx] = item{}
	t.size--
	return it
}

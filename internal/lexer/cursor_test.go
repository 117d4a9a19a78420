package lexer

import (
	"testing"

	"lunar/internal/source"
)

func TestCursorSequentialReading(t *testing.T) {
	c := NewCursor("a\né")

	want := []struct {
		r   rune
		pos source.Position
	}{
		{'a', source.Position{Bytes: 0, Line: 1, Character: 1}},
		{'\n', source.Position{Bytes: 1, Line: 1, Character: 2}},
		{'é', source.Position{Bytes: 2, Line: 2, Character: 1}},
	}
	for i, w := range want {
		if c.Position() != w.pos {
			t.Fatalf("step %d: position %+v, want %+v", i, c.Position(), w.pos)
		}
		r, ok := c.Next()
		if !ok || r != w.r {
			t.Fatalf("step %d: Next = %q, %v; want %q", i, r, ok, w.r)
		}
	}
	if _, ok := c.Current(); ok {
		t.Fatalf("expected end of input")
	}
	if got := c.Position(); got.Bytes != 4 || got.Character != 2 {
		t.Fatalf("final position %+v", got)
	}
}

func TestCursorPeekAndConsume(t *testing.T) {
	c := NewCursor("ab")
	if r, _ := c.Peek(); r != 'b' {
		t.Fatalf("Peek = %q", r)
	}
	if c.Consume('x') {
		t.Fatalf("Consume must not advance on mismatch")
	}
	if !c.Consume('a') {
		t.Fatalf("Consume('a') failed")
	}
	if _, ok := c.Peek(); ok {
		t.Fatalf("Peek past the end must report no character")
	}
}

func TestCursorMarkReset(t *testing.T) {
	c := NewCursor("[==x")
	m := c.Mark()
	c.Next()
	c.Next()
	if c.TextFrom(m) != "[=" {
		t.Fatalf("TextFrom = %q", c.TextFrom(m))
	}
	c.Reset(m)
	if c.Position() != source.StartPosition {
		t.Fatalf("Reset did not restore position")
	}
	if !c.HasPrefix("[==") || c.HasPrefix("[==x!") {
		t.Fatalf("HasPrefix mismatch")
	}
}

package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"lunar/internal/source"
)

// Cursor walks the input one character at a time and keeps the running
// position. Invalid UTF-8 bytes are read as utf8.RuneError of width 1.
type Cursor struct {
	src string
	off int
	pos source.Position
}

// NewCursor creates a cursor at the start of src.
func NewCursor(src string) Cursor {
	if _, err := safecast.Conv[uint32](len(src)); err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	return Cursor{src: src, pos: source.StartPosition}
}

// Current returns the character under the cursor without consuming it.
func (c *Cursor) Current() (rune, bool) {
	if c.off >= len(c.src) {
		return 0, false
	}
	r, _ := c.decode(c.off)
	return r, true
}

// Peek returns the character after the current one.
func (c *Cursor) Peek() (rune, bool) {
	if c.off >= len(c.src) {
		return 0, false
	}
	_, size := c.decode(c.off)
	if c.off+size >= len(c.src) {
		return 0, false
	}
	r, _ := c.decode(c.off + size)
	return r, true
}

// Next consumes and returns the current character.
func (c *Cursor) Next() (rune, bool) {
	if c.off >= len(c.src) {
		return 0, false
	}
	r, size := c.decode(c.off)
	c.off += size
	c.pos = c.pos.Advance(r, size)
	return r, true
}

// Consume advances past the current character if it is r.
func (c *Cursor) Consume(r rune) bool {
	if cur, ok := c.Current(); ok && cur == r {
		c.Next()
		return true
	}
	return false
}

// EOF reports whether the input is exhausted.
func (c *Cursor) EOF() bool {
	return c.off >= len(c.src)
}

// Position returns the position of the current character.
func (c *Cursor) Position() source.Position {
	return c.pos
}

// Mark is a saved cursor state for bounded backtracking.
type Mark struct {
	off int
	pos source.Position
}

func (c *Cursor) Mark() Mark {
	return Mark{off: c.off, pos: c.pos}
}

// Reset returns the cursor to a mark taken earlier.
func (c *Cursor) Reset(m Mark) {
	c.off = m.off
	c.pos = m.pos
}

// TextFrom returns the source text between a mark and the cursor.
func (c *Cursor) TextFrom(m Mark) string {
	return c.src[m.off:c.off]
}

// HasPrefix reports whether the remaining input starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	return len(c.src)-c.off >= len(s) && c.src[c.off:c.off+len(s)] == s
}

// remaining returns up to n bytes of unread input.
func (c *Cursor) remaining(n int) string {
	end := c.off + n
	if end > len(c.src) {
		end = len(c.src)
	}
	return c.src[c.off:end]
}

func (c *Cursor) decode(off int) (rune, int) {
	b := c.src[off]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(c.src[off:])
}

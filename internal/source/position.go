package source

import "fmt"

// Position is a point in a source text. Bytes is the 0-based byte offset;
// Line and Character are 1-based, Character counting runes within the line.
// Positions are ordered by Bytes alone.
type Position struct {
	Bytes     uint32
	Line      uint32
	Character uint32
}

// StartPosition is the position of the first character of any input.
var StartPosition = Position{Bytes: 0, Line: 1, Character: 1}

// IsZero reports whether p is the degenerate position carried by synthetic tokens.
func (p Position) IsZero() bool {
	return p == Position{}
}

func (p Position) Less(other Position) bool {
	return p.Bytes < other.Bytes
}

// Compare returns -1, 0 or +1 ordering p against other by byte offset.
func (p Position) Compare(other Position) int {
	switch {
	case p.Bytes < other.Bytes:
		return -1
	case p.Bytes > other.Bytes:
		return 1
	default:
		return 0
	}
}

// Advance returns the position after r.
func (p Position) Advance(r rune, size int) Position {
	p.Bytes += uint32(size) //nolint:gosec // size is a UTF-8 length in [1,4]
	if r == '\n' {
		p.Line++
		p.Character = 1
	} else {
		p.Character++
	}
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

// SpanOf converts a pair of positions into a byte span in file.
func SpanOf(file FileID, start, end Position) Span {
	if end.Bytes < start.Bytes {
		end = start
	}
	return Span{File: file, Start: start.Bytes, End: end.Bytes}
}

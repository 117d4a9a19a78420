package lsp

import (
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"lunar/internal/source"
)

// utf16Len counts the UTF-16 code units of b. Invalid bytes count as one
// unit each, matching how they decode to U+FFFD.
func utf16Len(b []byte) uint32 {
	var n uint32
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		n += uint32(utf16.RuneLen(r)) //nolint:gosec // 1 or 2
		b = b[size:]
	}
	return n
}

// offsetForPosition converts an LSP position (0-based line, UTF-16
// column) to a byte offset. Columns past the line end clamp to it; lines
// past the end clamp to the end of the file.
func offsetForPosition(file *source.File, pos protocol.Position) uint32 {
	if file == nil {
		return 0
	}
	start, end, ok := file.LineBounds(pos.Line + 1)
	if !ok {
		return uint32(len(file.Content)) //nolint:gosec // bounded by the file set
	}
	off, units := start, uint32(0)
	for off < end {
		r, size := utf8.DecodeRune(file.Content[off:end])
		units += uint32(utf16.RuneLen(r)) //nolint:gosec // 1 or 2
		if units > pos.Character {
			break
		}
		off += uint32(size) //nolint:gosec // at most 4
	}
	return off
}

// positionForOffset converts a byte offset to an LSP position.
func positionForOffset(file *source.File, offset uint32) protocol.Position {
	if file == nil {
		return protocol.Position{}
	}
	offset = min(offset, uint32(len(file.Content))) //nolint:gosec // bounded by the file set
	at := file.Locate(offset)
	lineStart := file.LineStart(at.Line)
	return protocol.Position{
		Line:      at.Line - 1,
		Character: utf16Len(file.Content[lineStart:offset]),
	}
}

func rangeForSpan(file *source.File, span source.Span) protocol.Range {
	return rangeForOffsets(file, span.Start, span.End)
}

func rangeForOffsets(file *source.File, start, end uint32) protocol.Range {
	return protocol.Range{
		Start: positionForOffset(file, start),
		End:   positionForOffset(file, end),
	}
}

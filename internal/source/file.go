package source

import (
	"bytes"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
)

// FileID names one version of a file inside a FileSet.
type FileID uint32

// FileFlags records how a file entered the set.
type FileFlags uint8

const (
	FileVirtual    FileFlags = 1 << iota // in-memory: stdin, tests, LSP buffers
	FileTranscoded                       // decoded from UTF-16 on load
)

// File is one stored source text. Content is never normalised: line
// endings and byte order marks stay as they were read, because the parser
// reproduces them byte for byte.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   FileFlags
	// newlines holds the offset of every '\n' in Content.
	newlines []uint32
}

// LineCol is a 1-based line and 1-based byte column.
type LineCol struct {
	Line uint32
	Col  uint32
}

func indexNewlines(content []byte) []uint32 {
	out := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for off := 0; ; {
		i := bytes.IndexByte(content[off:], '\n')
		if i < 0 {
			return out
		}
		off += i
		out = append(out, uint32(off)) //nolint:gosec // FileSet.Add rejects content past 4 GiB
		off++
	}
}

// Locate maps off to line and column. A '\n' belongs to the line it ends.
func (f *File) Locate(off uint32) LineCol {
	// number of newlines strictly before off
	lo, hi := 0, len(f.newlines)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if f.newlines[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	start := uint32(0)
	if lo > 0 {
		start = f.newlines[lo-1] + 1
	}
	return LineCol{Line: uint32(lo) + 1, Col: off - start + 1} //nolint:gosec // lo <= len(newlines)
}

// LineStart is the offset of the first byte of 1-based line n, or
// len(Content) past the last line.
func (f *File) LineStart(n uint32) uint32 {
	switch {
	case n <= 1:
		return 0
	case int(n-2) < len(f.newlines):
		return f.newlines[n-2] + 1
	}
	return uint32(len(f.Content)) //nolint:gosec // bounded in FileSet.Add
}

// LineCount is one more than the number of '\n' bytes.
func (f *File) LineCount() uint32 {
	return uint32(len(f.newlines)) + 1 //nolint:gosec // bounded in FileSet.Add
}

// LineBounds is the byte range of 1-based line n, excluding its '\n'.
// ok is false when the file has fewer lines.
func (f *File) LineBounds(n uint32) (start, end uint32, ok bool) {
	if n == 0 || n > f.LineCount() {
		return 0, 0, false
	}
	start = f.LineStart(n)
	end = uint32(len(f.Content)) //nolint:gosec // bounded in FileSet.Add
	if int(n-1) < len(f.newlines) {
		end = f.newlines[n-1]
	}
	return start, end, true
}

// GetLine returns 1-based line n without its "\n" or "\r\n" terminator,
// or "" when the file has no such line.
func (f *File) GetLine(n uint32) string {
	start, end, ok := f.LineBounds(n)
	if !ok || start >= end {
		return ""
	}
	return string(bytes.TrimSuffix(f.Content[start:end], []byte{'\r'}))
}

// Abs is the slash-separated absolute path, or Path when it cannot be
// resolved.
func (f *File) Abs() string {
	abs, err := filepath.Abs(f.Path)
	if err != nil {
		return f.Path
	}
	return filepath.ToSlash(abs)
}

// RelTo is the slash-separated path relative to base, or Path when no
// relative path exists.
func (f *File) RelTo(base string) string {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return f.Path
	}
	rel, err := filepath.Rel(absBase, filepath.FromSlash(f.Abs()))
	if err != nil {
		return f.Path
	}
	return filepath.ToSlash(rel)
}

// Base is the last element of Path.
func (f *File) Base() string {
	return filepath.Base(f.Path)
}

// decodeUTF16 transcodes BOM-marked UTF-16 input to UTF-8. Other input,
// including UTF-8 with a BOM, is returned unchanged.
func decodeUTF16(content []byte) ([]byte, bool, error) {
	var endian unicode.Endianness
	switch {
	case bytes.HasPrefix(content, []byte{0xFF, 0xFE}):
		endian = unicode.LittleEndian
	case bytes.HasPrefix(content, []byte{0xFE, 0xFF}):
		endian = unicode.BigEndian
	default:
		return content, false, nil
	}
	out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(content)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

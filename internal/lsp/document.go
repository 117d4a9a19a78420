package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lunar/internal/ast"
	"lunar/internal/diag"
	"lunar/internal/driver"
	"lunar/internal/source"
)

// document is an open editor buffer.
type document struct {
	text    string
	version protocol.Integer
	// gen increases on every edit; analyses of older generations are dropped.
	gen  uint64
	snap *snapshot
}

// snapshot is the parse of one document generation.
type snapshot struct {
	uri     protocol.DocumentUri
	version protocol.Integer
	gen     uint64
	file    *source.File
	tree    *ast.Ast
	bag     *diag.Bag
}

func analyze(uri protocol.DocumentUri, version protocol.Integer, gen uint64, text string, opts driver.Options) *snapshot {
	res := driver.ParseSource(displayName(uri), []byte(text), opts)
	return &snapshot{
		uri:     uri,
		version: version,
		gen:     gen,
		file:    res.File,
		tree:    res.Tree,
		bag:     res.Bag,
	}
}

// applyChange applies one didChange event to text. Events without a
// range replace the whole buffer.
func applyChange(text string, change any) string {
	switch c := change.(type) {
	case protocol.TextDocumentContentChangeEventWhole:
		return c.Text
	case *protocol.TextDocumentContentChangeEventWhole:
		return c.Text
	case protocol.TextDocumentContentChangeEvent:
		return applyRangeChange(text, c)
	case *protocol.TextDocumentContentChangeEvent:
		return applyRangeChange(text, *c)
	}
	return text
}

func applyRangeChange(text string, c protocol.TextDocumentContentChangeEvent) string {
	if c.Range == nil {
		return c.Text
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("", []byte(text)))
	start := offsetForPosition(file, c.Range.Start)
	end := offsetForPosition(file, c.Range.End)
	if end < start {
		start, end = end, start
	}
	return text[:start] + c.Text + text[end:]
}

package lsp

import (
	"sort"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"lunar/internal/ast"
	"lunar/internal/token"
)

// buildFoldingRanges folds multi-line blocks, functions and tables, plus
// block comments and runs of line comments. The closing line stays visible.
func buildFoldingRanges(snap *snapshot) []protocol.FoldingRange {
	ranges := make([]protocol.FoldingRange, 0)
	if snap == nil || snap.tree == nil {
		return ranges
	}
	file := snap.file
	line := func(off uint32) uint32 { return positionForOffset(file, off).Line }

	add := func(start, end uint32, kind string) {
		if end <= start {
			return
		}
		r := protocol.FoldingRange{StartLine: start, EndLine: end}
		if kind != "" {
			k := kind
			r.Kind = &k
		}
		ranges = append(ranges, r)
	}

	var visit func(n ast.Node)
	visit = func(n ast.Node) {
		switch n.(type) {
		case *ast.Do, *ast.While, *ast.Repeat, *ast.If, *ast.NumericFor, *ast.GenericFor,
			*ast.FunctionDeclaration, *ast.LocalFunction, *ast.AnonymousFunction, *ast.TableConstructor:
			first, last := ast.FirstToken(n), ast.LastToken(n)
			if first != nil && last != nil && !last.Start().IsZero() {
				end := line(last.Start().Bytes)
				if end > 0 {
					end--
				}
				add(line(first.Start().Bytes), end, "")
			}
		}
		for _, c := range ast.Children(n) {
			if c.Node != nil {
				visit(c.Node)
			}
		}
	}
	visit(snap.tree)

	comment := string(protocol.FoldingRangeKindComment)
	runStart, runEnd, inRun := uint32(0), uint32(0), false
	flush := func() {
		if inRun {
			add(runStart, runEnd, comment)
		}
		inRun = false
	}
	trivia := func(t token.Token, leading bool) {
		switch t.Kind {
		case token.KindMultiLineComment:
			flush()
			add(line(t.Start.Bytes), line(t.End.Bytes), comment)
		case token.KindSingleLineComment:
			if !leading {
				flush()
				return
			}
			l := line(t.Start.Bytes)
			if inRun && l == runEnd+1 {
				runEnd = l
				return
			}
			flush()
			runStart, runEnd, inRun = l, l, true
		case token.KindWhitespace:
		default:
			flush()
		}
	}
	tokens := ast.Flatten(snap.tree)
	for ref := tokens.Next(); ref != nil; ref = tokens.Next() {
		for _, t := range ref.Leading {
			trivia(t, true)
		}
		if ref.Token.Kind != token.KindEof {
			flush()
		}
		for _, t := range ref.Trailing {
			trivia(t, false)
		}
	}
	flush()

	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].StartLine == ranges[j].StartLine {
			return ranges[i].EndLine < ranges[j].EndLine
		}
		return ranges[i].StartLine < ranges[j].StartLine
	})
	return ranges
}

package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"lunar/internal/ast"
	"lunar/internal/token"
)

// buildDocumentSymbols lists functions and local variables, nesting the
// ones declared inside function bodies under their function.
func buildDocumentSymbols(snap *snapshot) []protocol.DocumentSymbol {
	if snap == nil || snap.tree == nil {
		return []protocol.DocumentSymbol{}
	}
	c := symbolCollector{snap: snap}
	return c.block(snap.tree.Block)
}

type symbolCollector struct {
	snap *snapshot
}

func (c *symbolCollector) nodeRange(n ast.Node) protocol.Range {
	start, end, ok := ast.Range(n)
	if !ok {
		return protocol.Range{}
	}
	return rangeForOffsets(c.snap.file, start.Bytes, end.Bytes)
}

func (c *symbolCollector) tokenRange(ref *token.Reference) protocol.Range {
	return rangeForOffsets(c.snap.file, ref.Start().Bytes, ref.End().Bytes)
}

func (c *symbolCollector) function(name string, kind protocol.SymbolKind, n ast.Node, nameTok *token.Reference, body *ast.FunctionBody) protocol.DocumentSymbol {
	sym := protocol.DocumentSymbol{
		Name:           name,
		Kind:           kind,
		Range:          c.nodeRange(n),
		SelectionRange: c.nodeRange(n),
	}
	if nameTok != nil {
		sym.SelectionRange = c.tokenRange(nameTok)
	}
	if body != nil {
		detail := "(" + strings.Join(paramNames(body), ", ") + ")"
		sym.Detail = &detail
		sym.Children = c.block(body.Block)
	}
	return sym
}

func paramNames(body *ast.FunctionBody) []string {
	var names []string
	for p := range body.Params.Values() {
		if p != nil {
			names = append(names, p.Token.String())
		}
	}
	return names
}

func (c *symbolCollector) block(b *ast.Block) []protocol.DocumentSymbol {
	out := make([]protocol.DocumentSymbol, 0)
	if b == nil {
		return out
	}
	for _, entry := range b.Stmts {
		out = append(out, c.stmt(entry.Stmt)...)
	}
	return out
}

func (c *symbolCollector) stmt(s ast.Stmt) []protocol.DocumentSymbol {
	switch s := s.(type) {
	case *ast.LocalFunction:
		if s.Name == nil {
			return nil
		}
		return []protocol.DocumentSymbol{c.function(s.Name.Token.String(), protocol.SymbolKindFunction, s, s.Name, s.Body)}
	case *ast.FunctionDeclaration:
		if s.Name == nil {
			return nil
		}
		name := strings.TrimSpace(ast.Print(s.Name))
		kind := protocol.SymbolKindFunction
		var nameTok *token.Reference
		if s.Name.Method != nil {
			kind = protocol.SymbolKindMethod
			nameTok = s.Name.Method
		} else if last, ok := s.Name.Names.Last(); ok {
			nameTok = last.Value()
		}
		return []protocol.DocumentSymbol{c.function(name, kind, s, nameTok, s.Body)}
	case *ast.LocalAssignment:
		return c.locals(s)
	case *ast.Do:
		return c.block(s.Block)
	case *ast.While:
		return c.block(s.Block)
	case *ast.Repeat:
		return c.block(s.Block)
	case *ast.NumericFor:
		return c.block(s.Block)
	case *ast.GenericFor:
		return c.block(s.Block)
	case *ast.If:
		out := c.block(s.Block)
		for _, e := range s.ElseIfs {
			out = append(out, c.block(e.Block)...)
		}
		return append(out, c.block(s.ElseBlock)...)
	}
	return nil
}

func (c *symbolCollector) locals(s *ast.LocalAssignment) []protocol.DocumentSymbol {
	exprs := s.Exprs.Slice()
	var out []protocol.DocumentSymbol
	for i, name := range s.Names.Slice() {
		if name == nil || name.Start().IsZero() {
			continue
		}
		if i < len(exprs) {
			if fn, ok := exprs[i].(*ast.AnonymousFunction); ok {
				sym := c.function(name.Token.String(), protocol.SymbolKindFunction, fn, name, fn.Body)
				sym.Range = c.nodeRange(s)
				out = append(out, sym)
				continue
			}
		}
		kind := protocol.SymbolKindVariable
		if i < len(s.Attributes) && s.Attributes[i] != nil && s.Attributes[i].Name != nil &&
			s.Attributes[i].Name.Token.String() == "const" {
			kind = protocol.SymbolKindConstant
		}
		r := c.tokenRange(name)
		out = append(out, protocol.DocumentSymbol{
			Name:           name.Token.String(),
			Kind:           kind,
			Range:          r,
			SelectionRange: r,
		})
	}
	return out
}

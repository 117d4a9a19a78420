package parser

import (
	"strconv"

	"lunar/internal/ast"
	"lunar/internal/token"
	"lunar/internal/trace"
)

const msgUnexpectedToken = "unexpected token, this needs to be a statement"

// Parse parses src and fails with an ErrorList if anything was wrong with it.
func Parse(src string, opts Options) (*ast.Ast, error) {
	tree, errs := ParseFallible(src, opts)
	if len(errs) > 0 {
		return nil, ErrorList(errs)
	}
	return tree, nil
}

// ParseFallible always returns a complete tree together with every error
// found on the way.
func ParseFallible(src string, opts Options) (*ast.Ast, []Error) {
	span := trace.Begin(opts.Tracer, trace.ScopePass, "parse", 0)
	p := newParser(src, opts)
	p.spanID = span.ID()
	tree := p.run()
	span.WithExtra("bytes", strconv.Itoa(len(src))).End(strconv.Itoa(len(p.errors)) + " errors")
	return tree, p.errors
}

// phase is the state of the top-level recovery loop.
type phase uint8

const (
	phaseParsing phase = iota
	phaseRecovering
	phaseDone
)

// run drives block parsing to the end of the input. Every iteration
// appends a statement, consumes a slot or finishes, so it terminates.
func (p *parser) run() *ast.Ast {
	block := &ast.Block{}
	for ph := phaseParsing; ph != phaseDone; {
		switch ph {
		case phaseParsing:
			switch {
			case p.lx.Current() == nil || p.atEOF():
				ph = phaseDone
			case p.atFatal():
				p.consume()
			default:
				frag := p.parseBlock()
				if frag.IsEmpty() {
					ph = phaseRecovering
					continue
				}
				p.merge(block, frag)
			}
		case phaseRecovering:
			if p.lx.Current() == nil || p.atEOF() {
				ph = phaseDone
				continue
			}
			if ref, status := p.consume(); status == consumedValue {
				p.unexpected(ref)
			}
			ph = phaseParsing
		}
	}

	eof, _ := p.consume()
	if eof == nil {
		eof = token.NewReference(nil, token.Token{Type: token.Type{Kind: token.KindEof}, Start: p.lx.Position(), End: p.lx.Position()}, nil)
	}
	return &ast.Ast{Block: block, Eof: eof}
}

// merge appends a recovered fragment. Only the first last statement is kept.
func (p *parser) merge(into, frag *ast.Block) {
	if into.Last != nil && len(frag.Stmts) > 0 {
		if first := frag.Stmts[0].FirstToken(); first != nil {
			p.errorAt(first, UnreachableStatement, "statement after the last statement of the block")
		}
	}
	into.Stmts = append(into.Stmts, frag.Stmts...)
	if into.Last == nil {
		into.Last = frag.Last
	} else if frag.Last != nil {
		if first := ast.FirstToken(frag.Last.Stmt); first != nil {
			p.errorAt(first, UnreachableStatement, "statement after the last statement of the block")
		}
	}
}

// unexpected records the generic recovery error unless the most recent
// error already is one.
func (p *parser) unexpected(ref *token.Reference) {
	if n := len(p.errors); n > 0 {
		if prev, ok := p.errors[n-1].(*AstError); ok && prev.message == msgUnexpectedToken {
			return
		}
	}
	trace.Point(p.tracer, trace.ScopeNode, "recover", p.spanID, ref.Start().String())
	p.errorAt(ref, UnexpectedToken, msgUnexpectedToken)
}

package parser

import (
	"lunar/internal/ast"
	"lunar/internal/dialect"
	"lunar/internal/lexer"
	"lunar/internal/source"
	"lunar/internal/token"
	"lunar/internal/trace"
)

// consumeStatus is the outcome of taking one slot from the lexer.
type consumeStatus uint8

const (
	// consumedValue: a token was produced, its diagnostics recorded.
	consumedValue consumeStatus = iota
	// lexerMoved: a Fatal slot was skipped; input advanced without a token.
	lexerMoved
	// notFound: the stream is exhausted.
	notFound
)

// parser is the state shared by every grammar routine.
type parser struct {
	lx      *lexer.Lexer
	version dialect.Version
	ev      *dialect.Evidence
	errors  []Error
	tracer  trace.Tracer
	spanID  uint64

	// lastEnd is the end of the most recent token read from the source.
	lastEnd source.Position
}

func newParser(src string, opts Options) *parser {
	return &parser{
		lx:      lexer.New(src, lexer.Options{Version: opts.Version, Evidence: opts.Evidence}),
		version: opts.Version,
		ev:      opts.Evidence,
		tracer:  opts.Tracer,
	}
}

// current returns the token under the cursor, or nil on a Fatal slot or
// after Eof.
func (p *parser) current() *token.Reference {
	return slotValue(p.lx.Current())
}

// peek returns the token after current, or nil.
func (p *parser) peek() *token.Reference {
	return slotValue(p.lx.Peek())
}

func slotValue(res *lexer.RefResult) *token.Reference {
	if res == nil || !res.HasValue() {
		return nil
	}
	return res.Value
}

// atFatal reports whether the cursor sits on an unreadable slot.
func (p *parser) atFatal() bool {
	res := p.lx.Current()
	return res != nil && !res.HasValue()
}

func (p *parser) atEOF() bool {
	cur := p.current()
	return cur != nil && cur.Token.Kind == token.KindEof
}

// consume takes the current slot, recording any tokenizer errors on it.
func (p *parser) consume() (*token.Reference, consumeStatus) {
	res := p.lx.Consume()
	if res == nil {
		return nil, notFound
	}
	for _, err := range res.Errors {
		p.errors = append(p.errors, err)
	}
	if !res.HasValue() {
		return nil, lexerMoved
	}
	if end := res.Value.End(); !end.IsZero() {
		p.lastEnd = end
	}
	return res.Value, consumedValue
}

// take consumes a token already known to be readable.
func (p *parser) take() *token.Reference {
	ref, _ := p.consume()
	return ref
}

// is reports whether the current token is the symbol s and s is enabled.
func (p *parser) is(s token.Symbol) bool {
	cur := p.current()
	return cur != nil && cur.Is(s) && s.EnabledIn(p.version)
}

func (p *parser) isKind(k token.Kind) bool {
	cur := p.current()
	return cur != nil && cur.Token.Kind == k
}

// consumeIf takes the current token only if it is s.
func (p *parser) consumeIf(s token.Symbol) *token.Reference {
	if !p.is(s) {
		return nil
	}
	return p.take()
}

// require is consumeIf that records message, anchored at the current token,
// when s is absent.
func (p *parser) require(s token.Symbol, message string) *token.Reference {
	if ref := p.consumeIf(s); ref != nil {
		return ref
	}
	p.errorHere(ExpectedToken, message)
	return nil
}

// requireWithReferenceToken is require anchored at anchor instead.
func (p *parser) requireWithReferenceToken(s token.Symbol, message string, anchor *token.Reference) *token.Reference {
	if ref := p.consumeIf(s); ref != nil {
		return ref
	}
	p.errors = append(p.errors, newTokenError(ExpectedToken, anchor, message))
	return nil
}

// requireWithReferenceRange is require reporting the range start..end.
func (p *parser) requireWithReferenceRange(s token.Symbol, message string, start, end source.Position) *token.Reference {
	if ref := p.consumeIf(s); ref != nil {
		return ref
	}
	p.errors = append(p.errors, newRangeError(UnclosedConstruct, start, end, message))
	return nil
}

// expect is require that substitutes a synthetic token for a missing one.
func (p *parser) expect(s token.Symbol, message string) *token.Reference {
	if ref := p.require(s, message); ref != nil {
		return ref
	}
	return placeholder(s)
}

// expectClose requires the token closing a construct that began at open.
// A missing one is reported across the whole construct parsed so far.
func (p *parser) expectClose(s token.Symbol, message string, open *token.Reference) *token.Reference {
	end := open.End()
	if open.Start().Compare(p.lastEnd) <= 0 {
		end = p.lastEnd
	}
	if ref := p.requireWithReferenceRange(s, message, open.Start(), end); ref != nil {
		return ref
	}
	return placeholder(s)
}

// placeholder is a synthetic symbol padded with a space on each side, so
// that printing a recovered tree never glues it to a neighbouring word.
func placeholder(s token.Symbol) *token.Reference {
	space := []token.Token{{Type: token.NewWhitespace(" ")}}
	return token.NewReference(space, token.Token{Type: token.NewSymbol(s)}, []token.Token{{Type: token.NewWhitespace(" ")}})
}

// identifier consumes an identifier token, if present.
func (p *parser) identifier() *token.Reference {
	if !p.isKind(token.KindIdentifier) {
		return nil
	}
	return p.take()
}

// requireIdentifier consumes an identifier or records message.
func (p *parser) requireIdentifier(message string) *token.Reference {
	if ref := p.identifier(); ref != nil {
		return ref
	}
	p.errorHere(ExpectedName, message)
	return nil
}

// errorHere records message anchored at the current token, or at the
// cursor position when the current slot is unreadable.
func (p *parser) errorHere(kind ErrorKind, message string) {
	if cur := p.current(); cur != nil {
		p.errors = append(p.errors, newTokenError(kind, cur, message))
		return
	}
	pos := p.lx.Position()
	p.errors = append(p.errors, newRangeError(kind, pos, pos, message))
}

func (p *parser) errorAt(ref *token.Reference, kind ErrorKind, message string) {
	p.errors = append(p.errors, newTokenError(kind, ref, message))
}

func (p *parser) feature(requires dialect.Version, reason string, at *token.Reference) {
	if p.ev != nil && at != nil {
		dialect.RecordFeature(p.ev, requires, reason, at.Start())
	}
}

// parseList parses `item {, item}`. A comma not followed by an item is
// reported with missing and kept as a trailing separator.
func parseList[T any](p *parser, item func() (T, bool), missing string) (ast.Punctuated[T], bool) {
	cur, ok := item()
	if !ok {
		return ast.Punctuated[T]{}, false
	}
	b := ast.NewPunctuatedBuilder[T]()
	for {
		comma := p.consumeIf(token.Comma)
		if comma == nil {
			return b.Finish(cur), true
		}
		b.Push(cur, comma)
		next, ok := item()
		if !ok {
			p.errorHere(ExpectedExpression, missing)
			return b.Build(), true
		}
		cur = next
	}
}

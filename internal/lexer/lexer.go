package lexer

import (
	"lunar/internal/source"
	"lunar/internal/token"
)

// TokenResult is the outcome of classifying one raw token.
type TokenResult = Result[token.Token]

// RefResult is the outcome of reading one significant token with its trivia.
type RefResult = Result[*token.Reference]

// Lexer turns source text into token references with attached trivia and
// keeps a two-slot lookahead buffer for the parser.
type Lexer struct {
	cursor Cursor
	opts   Options

	current *RefResult
	peek    *RefResult

	// open interpolations, innermost last; each counts unclosed `{` inside it
	braces []int
	// trivia read before a Fatal slot, handed to the next token
	carry []token.Token
	// errors from Recovered trivia, handed to the next token
	carryErrs []*Error
	eofDone   bool
}

// New creates a lexer and reads the first two tokens.
func New(src string, opts Options) *Lexer {
	lx := NewLazy(src, opts)
	lx.current = lx.nextReference()
	lx.peek = lx.nextReference()
	return lx
}

// NewLazy creates a lexer without pre-fetching; Current and Peek stay empty
// until Consume is called.
func NewLazy(src string, opts Options) *Lexer {
	return &Lexer{
		cursor: NewCursor(src),
		opts:   opts,
	}
}

// Current returns the token the parser is looking at, or nil after Eof was consumed.
func (lx *Lexer) Current() *RefResult {
	return lx.current
}

// Peek returns the token after Current, or nil.
func (lx *Lexer) Peek() *RefResult {
	return lx.peek
}

// Consume returns the current slot and shifts the buffer by one.
func (lx *Lexer) Consume() *RefResult {
	out := lx.current
	lx.current = lx.peek
	lx.peek = lx.nextReference()
	return out
}

// Position returns the raw cursor position, which is past the lookahead buffer.
func (lx *Lexer) Position() source.Position {
	return lx.cursor.Position()
}

// Collect returns every raw token left in the input, trivia included,
// ending with Eof. The result is Fatal if any step was. Tokens already
// buffered by New are not included, so pair it with NewLazy.
func (lx *Lexer) Collect() Result[[]token.Token] {
	var (
		tokens []token.Token
		errs   []*Error
		failed bool
	)
	for {
		res, ok := lx.ProcessNext()
		if !ok {
			break
		}
		errs = append(errs, res.Errors...)
		if res.Kind == Fatal {
			failed = true
			continue
		}
		tokens = append(tokens, res.Value)
	}
	if failed {
		return Result[[]token.Token]{Kind: Fatal, Value: tokens, Errors: errs}
	}
	return newResult(tokens, errs)
}

// nextReference reads the next significant token and attaches trivia.
// It returns nil once Eof has been produced.
func (lx *Lexer) nextReference() *RefResult {
	leading := lx.carry
	errs := lx.carryErrs
	lx.carry, lx.carryErrs = nil, nil

	for {
		res, ok := lx.ProcessNext()
		if !ok {
			return nil
		}
		if res.Kind == Fatal {
			lx.carry = leading
			lx.carryErrs = errs
			out := fatal[*token.Reference](res.Errors...)
			return &out
		}
		errs = append(errs, res.Errors...)
		tok := res.Value
		if tok.IsTrivia() {
			leading = append(leading, tok)
			continue
		}

		var trailing []token.Token
		if tok.Kind != token.KindEof {
			trailing = lx.readTrailingTrivia()
		}
		out := newResult(token.NewReference(leading, tok, trailing), errs)
		return &out
	}
}

// ProcessNext classifies the next raw token without trivia handling.
// The boolean is false once Eof has been returned.
func (lx *Lexer) ProcessNext() (TokenResult, bool) {
	if lx.eofDone {
		return TokenResult{}, false
	}
	start := lx.cursor.Position()
	r, ok := lx.cursor.Current()
	if !ok {
		lx.eofDone = true
		return newResult(token.Token{Type: token.Type{Kind: token.KindEof}, Start: start, End: start}, nil), true
	}
	next, _ := lx.cursor.Peek()

	switch {
	case start.Bytes == 0 && r == '#' && next == '!':
		return lx.scanShebang(), true
	case start.Bytes == 0 && r == '\uFEFF':
		lx.cursor.Next()
		return lx.emit(token.NewWhitespace("\uFEFF"), start, nil), true
	case isIdentStart(r):
		return lx.scanIdentifier(), true
	case isDigit(r), r == '.' && isDigit(next):
		return lx.scanNumber(), true
	case r == '"' || r == '\'':
		return lx.scanQuotedString(), true
	case r == '-' && next == '-':
		return lx.scanComment(), true
	case isSpace(r):
		return lx.scanWhitespace(), true
	case r == '[':
		if res, ok := lx.scanLongString(); ok {
			return res, true
		}
		return lx.scanSymbol(), true
	case r == '`' && lx.opts.Version.HasLuau():
		return lx.scanInterpolatedStart(), true
	case r == '}' && len(lx.braces) > 0 && lx.braces[len(lx.braces)-1] == 0:
		return lx.scanInterpolatedContinue(), true
	default:
		return lx.scanSymbol(), true
	}
}

func (lx *Lexer) emit(typ token.Type, start source.Position, errs []*Error) TokenResult {
	return newResult(token.Token{Type: typ, Start: start, End: lx.cursor.Position()}, errs)
}

func (lx *Lexer) errorFrom(kind ErrorKind, start source.Position) *Error {
	return &Error{Kind: kind, Start: start, End: lx.cursor.Position()}
}

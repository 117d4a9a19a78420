package lexer

// ResultKind is the outcome of one lexing step.
type ResultKind uint8

const (
	// Ok is a clean token.
	Ok ResultKind = iota
	// Recovered is a usable token that still carries errors.
	Recovered
	// Fatal means no token could be produced; the cursor still advanced.
	Fatal
)

func (k ResultKind) String() string {
	switch k {
	case Ok:
		return "Ok"
	case Recovered:
		return "Recovered"
	default:
		return "Fatal"
	}
}

// Result is the tri-state outcome of lexing a value of type T.
type Result[T any] struct {
	Kind   ResultKind
	Value  T
	Errors []*Error
}

func newResult[T any](value T, errs []*Error) Result[T] {
	if len(errs) == 0 {
		return Result[T]{Kind: Ok, Value: value}
	}
	return Result[T]{Kind: Recovered, Value: value, Errors: errs}
}

func fatal[T any](errs ...*Error) Result[T] {
	return Result[T]{Kind: Fatal, Errors: errs}
}

// HasValue reports whether the result carries a token.
func (r Result[T]) HasValue() bool {
	return r.Kind != Fatal
}

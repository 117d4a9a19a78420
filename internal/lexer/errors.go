package lexer

import (
	"fmt"

	"lunar/internal/source"
)

// ErrorKind classifies tokenizer errors.
type ErrorKind uint8

const (
	UnclosedComment ErrorKind = iota
	UnclosedString
	InvalidNumber
	UnexpectedToken
	InvalidSymbol
)

func (k ErrorKind) String() string {
	switch k {
	case UnclosedComment:
		return "UnclosedComment"
	case UnclosedString:
		return "UnclosedString"
	case InvalidNumber:
		return "InvalidNumber"
	case UnexpectedToken:
		return "UnexpectedToken"
	default:
		return "InvalidSymbol"
	}
}

// Error is a tokenizer error with the exact range it covers.
type Error struct {
	Kind   ErrorKind
	Char   rune   // UnexpectedToken
	Symbol string // InvalidSymbol
	Start  source.Position
	End    source.Position
}

func (e *Error) Message() string {
	switch e.Kind {
	case UnclosedComment:
		return "unclosed comment"
	case UnclosedString:
		return "unclosed string"
	case InvalidNumber:
		return "invalid number"
	case UnexpectedToken:
		return fmt.Sprintf("unexpected character %s", string(e.Char))
	default:
		return fmt.Sprintf("invalid symbol %s", e.Symbol)
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Start, e.Message())
}

// Range returns the start and end of the offending text.
func (e *Error) Range() (source.Position, source.Position) {
	return e.Start, e.End
}

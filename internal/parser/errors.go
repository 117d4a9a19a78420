package parser

import (
	"errors"
	"fmt"
	"strings"

	"lunar/internal/lexer"
	"lunar/internal/source"
	"lunar/internal/token"
)

// Error is a diagnostic produced while parsing. Tokenizer errors are
// reported as *lexer.Error, grammar errors as *AstError.
type Error interface {
	error
	Message() string
	Range() (start, end source.Position)
}

var (
	_ Error = (*lexer.Error)(nil)
	_ Error = (*AstError)(nil)
)

// ErrorKind groups grammar errors for tools that map them to codes.
type ErrorKind uint8

const (
	UnexpectedToken ErrorKind = iota
	ExpectedToken
	ExpectedExpression
	ExpectedName
	UnclosedConstruct
	InvalidAssignment
	UnsupportedConstruct
	UnreachableStatement
	UnknownAttribute
)

var errorKindNames = [...]string{
	UnexpectedToken:      "UnexpectedToken",
	ExpectedToken:        "ExpectedToken",
	ExpectedExpression:   "ExpectedExpression",
	ExpectedName:         "ExpectedName",
	UnclosedConstruct:    "UnclosedConstruct",
	InvalidAssignment:    "InvalidAssignment",
	UnsupportedConstruct: "UnsupportedConstruct",
	UnreachableStatement: "UnreachableStatement",
	UnknownAttribute:     "UnknownAttribute",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "Unknown"
}

// AstError is a grammar error anchored at a token or at an explicit range.
type AstError struct {
	kind    ErrorKind
	token   *token.Reference
	message string
	span    *[2]source.Position
}

func newTokenError(kind ErrorKind, tok *token.Reference, message string) *AstError {
	return &AstError{kind: kind, token: tok, message: message}
}

func newRangeError(kind ErrorKind, start, end source.Position, message string) *AstError {
	return &AstError{kind: kind, message: message, span: &[2]source.Position{start, end}}
}

func (e *AstError) Kind() ErrorKind { return e.kind }

// Token returns the anchor token, or nil for range errors.
func (e *AstError) Token() *token.Reference { return e.token }

func (e *AstError) Message() string { return e.message }

func (e *AstError) Range() (source.Position, source.Position) {
	if e.span != nil {
		return e.span[0], e.span[1]
	}
	if e.token == nil {
		return source.Position{}, source.Position{}
	}
	return e.token.Start(), e.token.End()
}

func (e *AstError) Error() string {
	start, _ := e.Range()
	return fmt.Sprintf("%s: %s", start, e.message)
}

// ErrDiagnostics matches every ErrorList under errors.Is.
var ErrDiagnostics = errors.New("source has diagnostics")

// ErrorList is returned by Parse when any error was recorded.
type ErrorList []Error

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d errors:", len(l))
	for _, e := range l {
		sb.WriteString("\n\t")
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Err returns l as an error, or nil when it is empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Unwrap exposes ErrDiagnostics followed by each error in l.
func (l ErrorList) Unwrap() []error {
	out := make([]error, 0, len(l)+1)
	out = append(out, ErrDiagnostics)
	for _, e := range l {
		out = append(out, e)
	}
	return out
}

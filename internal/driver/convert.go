package driver

import (
	"lunar/internal/diag"
	"lunar/internal/lexer"
	"lunar/internal/parser"
	"lunar/internal/source"
)

var lexCodes = map[lexer.ErrorKind]diag.Code{
	lexer.UnclosedComment: diag.LexUnclosedComment,
	lexer.UnclosedString:  diag.LexUnclosedString,
	lexer.InvalidNumber:   diag.LexInvalidNumber,
	lexer.UnexpectedToken: diag.LexUnexpectedChar,
	lexer.InvalidSymbol:   diag.LexInvalidSymbol,
}

var synCodes = map[parser.ErrorKind]diag.Code{
	parser.UnexpectedToken:      diag.SynUnexpectedToken,
	parser.ExpectedToken:        diag.SynExpectedToken,
	parser.ExpectedExpression:   diag.SynExpectExpression,
	parser.ExpectedName:         diag.SynExpectIdentifier,
	parser.UnclosedConstruct:    diag.SynUnclosedConstruct,
	parser.InvalidAssignment:    diag.SynInvalidAssignment,
	parser.UnsupportedConstruct: diag.SynUnsupportedConstruct,
	parser.UnreachableStatement: diag.SynUnreachableStatement,
	parser.UnknownAttribute:     diag.SynUnknownAttribute,
}

// CodeOf returns the stable diagnostic code for a lexer or parser error.
func CodeOf(err parser.Error) diag.Code {
	switch e := err.(type) {
	case *lexer.Error:
		if code, ok := lexCodes[e.Kind]; ok {
			return code
		}
		return diag.LexInfo
	case *parser.AstError:
		if code, ok := synCodes[e.Kind()]; ok {
			return code
		}
	}
	return diag.SynUnexpectedToken
}

// ErrorDiagnostic converts a lexer or parser error found in file.
func ErrorDiagnostic(file source.FileID, err parser.Error) diag.Diagnostic {
	start, end := err.Range()
	return diag.NewError(CodeOf(err), source.SpanOf(file, start, end), err.Message())
}

// reportErrors adds errs to bag, dropping repeats of the same message at
// the same range.
func reportErrors(bag *diag.Bag, file source.FileID, errs []parser.Error) {
	r := diag.Dedup(bag)
	for _, err := range errs {
		r.Report(ErrorDiagnostic(file, err))
	}
}

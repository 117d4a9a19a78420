package token

// Kind is the coarse category of a token.
type Kind uint8

const (
	// KindEof marks the end of the input; its text is empty.
	KindEof Kind = iota
	// KindIdentifier is a name that is not an enabled keyword.
	KindIdentifier
	// KindMultiLineComment is a `--[[ ]]` comment; Depth counts the `=`.
	KindMultiLineComment
	// KindNumber keeps the literal text exactly as written.
	KindNumber
	// KindShebang is a `#!` line at the very start of input, newline included.
	KindShebang
	// KindSingleLineComment is `--` up to, not including, the line end.
	KindSingleLineComment
	// KindStringLiteral holds the content between the delimiters, escapes untouched.
	KindStringLiteral
	// KindSymbol is a keyword or punctuation; Symbol tells which.
	KindSymbol
	// KindWhitespace is a run of blanks ending with at most one newline.
	KindWhitespace
	// KindInterpolatedString is one segment of a Luau backtick string.
	KindInterpolatedString
)

var kindNames = [...]string{
	KindEof:                "Eof",
	KindIdentifier:         "Identifier",
	KindMultiLineComment:   "MultiLineComment",
	KindNumber:             "Number",
	KindShebang:            "Shebang",
	KindSingleLineComment:  "SingleLineComment",
	KindStringLiteral:      "StringLiteral",
	KindSymbol:             "Symbol",
	KindWhitespace:         "Whitespace",
	KindInterpolatedString: "InterpolatedString",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsTrivia reports whether tokens of this kind are attached as trivia.
func (k Kind) IsTrivia() bool {
	switch k {
	case KindMultiLineComment, KindShebang, KindSingleLineComment, KindWhitespace:
		return true
	default:
		return false
	}
}

// QuoteType is the delimiter style of a string literal.
type QuoteType uint8

const (
	// QuoteBrackets is a long string `[[...]]`.
	QuoteBrackets QuoteType = iota
	QuoteDouble
	QuoteSingle
)

func (q QuoteType) String() string {
	switch q {
	case QuoteBrackets:
		return "Brackets"
	case QuoteDouble:
		return "Double"
	default:
		return "Single"
	}
}

// InterpolatedKind says which part of a backtick string a segment is.
type InterpolatedKind uint8

const (
	// InterpBegin is "`text{".
	InterpBegin InterpolatedKind = iota
	// InterpMiddle is "}text{".
	InterpMiddle
	// InterpEnd is "}text`".
	InterpEnd
	// InterpSimple is "`text`" with no expressions.
	InterpSimple
)

func (k InterpolatedKind) String() string {
	switch k {
	case InterpBegin:
		return "Begin"
	case InterpMiddle:
		return "Middle"
	case InterpEnd:
		return "End"
	default:
		return "Simple"
	}
}

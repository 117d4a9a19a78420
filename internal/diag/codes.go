package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo            Code = 1000
	LexUnclosedComment Code = 1001
	LexUnclosedString  Code = 1002
	LexInvalidNumber   Code = 1003
	LexUnexpectedChar  Code = 1004
	LexInvalidSymbol   Code = 1005

	// Syntax
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynExpectedToken        Code = 2002
	SynExpectExpression     Code = 2003
	SynExpectIdentifier     Code = 2004
	SynUnclosedConstruct    Code = 2005
	SynInvalidAssignment    Code = 2006
	SynUnsupportedConstruct Code = 2007
	SynUnreachableStatement Code = 2008
	SynUnknownAttribute     Code = 2009

	// Dialect
	DiaInfo             Code = 3000
	DiaFeatureUsed      Code = 3001
	DiaConflict         Code = 3002
	DiaRoundTripChanged Code = 3003

	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
	IOCacheError     Code = 4003

	// Project
	ProjInfo            Code = 5000
	ProjInvalidManifest Code = 5001
	ProjUnknownDialect  Code = 5002
	ProjBadExclude      Code = 5003
	ProjNoSources       Code = 5004

	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:             "Unknown error",
	LexInfo:                 "Lexical information",
	LexUnclosedComment:      "Unclosed comment",
	LexUnclosedString:       "Unclosed string",
	LexInvalidNumber:        "Invalid number",
	LexUnexpectedChar:       "Unexpected character",
	LexInvalidSymbol:        "Symbol not available in dialect",
	SynInfo:                 "Syntax information",
	SynUnexpectedToken:      "Unexpected token",
	SynExpectedToken:        "Expected token",
	SynExpectExpression:     "Expected expression",
	SynExpectIdentifier:     "Expected identifier",
	SynUnclosedConstruct:    "Unclosed construct",
	SynInvalidAssignment:    "Invalid assignment target",
	SynUnsupportedConstruct: "Unsupported construct",
	SynUnreachableStatement: "Statement after block terminator",
	SynUnknownAttribute:     "Unknown local attribute",
	DiaInfo:                 "Dialect information",
	DiaFeatureUsed:          "Dialect-specific feature",
	DiaConflict:             "Conflicting dialect features",
	DiaRoundTripChanged:     "Printed source differs from input",
	IOLoadFileError:         "I/O load file error",
	IOWriteFileError:        "I/O write file error",
	IOCacheError:            "Parse cache error",
	ProjInfo:                "Project information",
	ProjInvalidManifest:     "Invalid lunar.toml",
	ProjUnknownDialect:      "Unknown dialect name",
	ProjBadExclude:          "Invalid exclude pattern",
	ProjNoSources:           "No Lua sources found",
	ObsInfo:                 "Observability information",
	ObsTimings:              "Pipeline timings",
}

// ID returns the stable textual form, such as SYN2001.
func (c Code) ID() string {
	ic := int(c)
	switch {
	case ic >= 6000:
		return fmt.Sprintf("OBS%04d", ic)
	case ic >= 5000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 4000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 3000:
		return fmt.Sprintf("DIA%04d", ic)
	case ic >= 2000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 1000:
		return fmt.Sprintf("LEX%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	if title, ok := codeDescription[c]; ok {
		return title
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

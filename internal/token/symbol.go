package token

import "lunar/internal/dialect"

// Symbol enumerates keywords and punctuation across all dialects.
type Symbol uint8

const (
	// SymbolNone is the zero value; it never appears in a lexed token.
	SymbolNone Symbol = iota

	And      // and
	Break    // break
	Do       // do
	Else     // else
	ElseIf   // elseif
	End      // end
	False    // false
	For      // for
	Function // function
	Goto     // goto (lua52)
	If       // if
	In       // in
	Local    // local
	Nil      // nil
	Not      // not
	Or       // or
	Repeat   // repeat
	Return   // return
	Then     // then
	True     // true
	Until    // until
	While    // while

	Caret             // ^
	Colon             // :
	TwoColons         // :: (lua52)
	Comma             // ,
	Dot               // .
	TwoDots           // ..
	Ellipsis          // ...
	Equal             // =
	TwoEqual          // ==
	GreaterThan       // >
	GreaterThanEqual  // >=
	Hash              // #
	LeftBrace         // {
	LeftBracket       // [
	LeftParen         // (
	LessThan          // <
	LessThanEqual     // <=
	Minus             // -
	Percent           // %
	Plus              // +
	RightBrace        // }
	RightBracket      // ]
	RightParen        // )
	Semicolon         // ;
	Slash             // /
	Star              // *
	TildeEqual        // ~=
	Ampersand         // & (lua53, luau)
	Pipe              // | (lua53, luau)
	DoubleSlash       // // (lua53, luau)
	DoubleGreaterThan // >> (lua53)
	DoubleLesserThan  // << (lua53)
	Tilde             // ~ (lua53)
	PlusEqual         // += (luau)
	MinusEqual        // -= (luau)
	StarEqual         // *= (luau)
	SlashEqual        // /= (luau)
	DoubleSlashEqual  // //= (luau)
	PercentEqual      // %= (luau)
	CaretEqual        // ^= (luau)
	TwoDotsEqual      // ..= (luau)
	ThinArrow         // -> (luau)
	QuestionMark      // ? (luau)

	symbolCount
)

type symbolInfo struct {
	text string
	gate dialect.Version
}

var symbolTable = [symbolCount]symbolInfo{
	And:      {"and", 0},
	Break:    {"break", 0},
	Do:       {"do", 0},
	Else:     {"else", 0},
	ElseIf:   {"elseif", 0},
	End:      {"end", 0},
	False:    {"false", 0},
	For:      {"for", 0},
	Function: {"function", 0},
	Goto:     {"goto", dialect.FlagLua52},
	If:       {"if", 0},
	In:       {"in", 0},
	Local:    {"local", 0},
	Nil:      {"nil", 0},
	Not:      {"not", 0},
	Or:       {"or", 0},
	Repeat:   {"repeat", 0},
	Return:   {"return", 0},
	Then:     {"then", 0},
	True:     {"true", 0},
	Until:    {"until", 0},
	While:    {"while", 0},

	Caret:             {"^", 0},
	Colon:             {":", 0},
	TwoColons:         {"::", dialect.FlagLua52},
	Comma:             {",", 0},
	Dot:               {".", 0},
	TwoDots:           {"..", 0},
	Ellipsis:          {"...", 0},
	Equal:             {"=", 0},
	TwoEqual:          {"==", 0},
	GreaterThan:       {">", 0},
	GreaterThanEqual:  {">=", 0},
	Hash:              {"#", 0},
	LeftBrace:         {"{", 0},
	LeftBracket:       {"[", 0},
	LeftParen:         {"(", 0},
	LessThan:          {"<", 0},
	LessThanEqual:     {"<=", 0},
	Minus:             {"-", 0},
	Percent:           {"%", 0},
	Plus:              {"+", 0},
	RightBrace:        {"}", 0},
	RightBracket:      {"]", 0},
	RightParen:        {")", 0},
	Semicolon:         {";", 0},
	Slash:             {"/", 0},
	Star:              {"*", 0},
	TildeEqual:        {"~=", 0},
	Ampersand:         {"&", dialect.FlagLua53 | dialect.FlagLuau},
	Pipe:              {"|", dialect.FlagLua53 | dialect.FlagLuau},
	DoubleSlash:       {"//", dialect.FlagLua53 | dialect.FlagLuau},
	DoubleGreaterThan: {">>", dialect.FlagLua53},
	DoubleLesserThan:  {"<<", dialect.FlagLua53},
	Tilde:             {"~", dialect.FlagLua53},
	PlusEqual:         {"+=", dialect.FlagLuau},
	MinusEqual:        {"-=", dialect.FlagLuau},
	StarEqual:         {"*=", dialect.FlagLuau},
	SlashEqual:        {"/=", dialect.FlagLuau},
	DoubleSlashEqual:  {"//=", dialect.FlagLuau},
	PercentEqual:      {"%=", dialect.FlagLuau},
	CaretEqual:        {"^=", dialect.FlagLuau},
	TwoDotsEqual:      {"..=", dialect.FlagLuau},
	ThinArrow:         {"->", dialect.FlagLuau},
	QuestionMark:      {"?", dialect.FlagLuau},
}

var (
	keywordIndex = map[string]Symbol{}
	punctIndex   = map[string]Symbol{}
)

func init() {
	for s := Symbol(1); s < symbolCount; s++ {
		if s.IsKeyword() {
			keywordIndex[symbolTable[s].text] = s
		} else {
			punctIndex[symbolTable[s].text] = s
		}
	}
}

// String returns the source spelling of the symbol.
func (s Symbol) String() string {
	if s == SymbolNone || s >= symbolCount {
		return "<none>"
	}
	return symbolTable[s].text
}

// Gate returns the dialect flags of which one must be enabled for s; zero means always.
func (s Symbol) Gate() dialect.Version {
	if s >= symbolCount {
		return 0
	}
	return symbolTable[s].gate
}

// EnabledIn reports whether v accepts the symbol.
func (s Symbol) EnabledIn(v dialect.Version) bool {
	return s != SymbolNone && v.Enables(s.Gate())
}

func (s Symbol) IsKeyword() bool {
	return s >= And && s <= While
}

// LookupKeyword returns the keyword spelled ident if it is enabled in v.
// Keywords are case sensitive.
func LookupKeyword(ident string, v dialect.Version) (Symbol, bool) {
	s, ok := keywordIndex[ident]
	if !ok || !s.EnabledIn(v) {
		return SymbolNone, false
	}
	return s, true
}

// LookupPunct returns the punctuation spelled text regardless of dialect.
func LookupPunct(text string) (Symbol, bool) {
	s, ok := punctIndex[text]
	return s, ok
}

// LookupSymbol resolves any keyword or punctuation spelling, ignoring dialect gates.
func LookupSymbol(text string) (Symbol, bool) {
	if s, ok := keywordIndex[text]; ok {
		return s, true
	}
	return LookupPunct(text)
}

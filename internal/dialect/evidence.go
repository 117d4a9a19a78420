package dialect

import "lunar/internal/source"

// Hint is one observed construct that only some dialects accept.
// Requires holds the flags of which at least one must be enabled.
type Hint struct {
	Requires Version
	Reason   string
	Pos      source.Position
}

// Evidence aggregates per-file hints collected during tokenization/parsing.
// A nil *Evidence discards everything.
type Evidence struct {
	hints []Hint
}

func NewEvidence() *Evidence {
	return &Evidence{
		hints: make([]Hint, 0, 16),
	}
}

func (e *Evidence) Add(h Hint) {
	if e == nil {
		return
	}
	e.hints = append(e.hints, h)
}

func (e *Evidence) Hints() []Hint {
	if e == nil {
		return nil
	}
	return e.hints
}

type signal struct {
	requires Version
	reason   string
}

var symbolSignals = map[string]signal{
	"goto": {FlagLua52, "`goto` statement"},
	"::":   {FlagLua52, "label delimiter `::`"},
	"//":   {FlagLua53 | FlagLuau, "floor division `//`"},
	"&":    {FlagLua53, "bitwise and `&`"},
	"|":    {FlagLua53, "bitwise or `|`"},
	"~":    {FlagLua53, "bitwise `~`"},
	"<<":   {FlagLua53, "shift `<<`"},
	">>":   {FlagLua53, "shift `>>`"},
	"+=":   {FlagLuau, "compound assignment `+=`"},
	"-=":   {FlagLuau, "compound assignment `-=`"},
	"*=":   {FlagLuau, "compound assignment `*=`"},
	"/=":   {FlagLuau, "compound assignment `/=`"},
	"//=":  {FlagLuau, "compound assignment `//=`"},
	"%=":   {FlagLuau, "compound assignment `%=`"},
	"^=":   {FlagLuau, "compound assignment `^=`"},
	"..=":  {FlagLuau, "compound assignment `..=`"},
	"->":   {FlagLuau, "function type arrow `->`"},
	"?":    {FlagLuau, "optional type `?`"},
	"`":    {FlagLuau, "interpolated string"},
}

// RecordSymbol records evidence for a punctuation or keyword token. Text
// without a dialect restriction is ignored.
func RecordSymbol(e *Evidence, text string, pos source.Position) {
	if e == nil {
		return
	}
	if sig, ok := symbolSignals[text]; ok {
		e.Add(Hint{Requires: sig.requires, Reason: sig.reason, Pos: pos})
	}
}

// RecordFeature records evidence for a grammar construct recognised by the parser.
func RecordFeature(e *Evidence, requires Version, reason string, pos source.Position) {
	e.Add(Hint{Requires: requires, Reason: reason, Pos: pos})
}

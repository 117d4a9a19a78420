package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"lunar/internal/token"
)

// TokenOutput is the serialised form of one token.
type TokenOutput struct {
	Kind      string `json:"kind" yaml:"kind"`
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	Start     string `json:"start" yaml:"start"`
	End       string `json:"end" yaml:"end"`
	StartByte uint32 `json:"start_byte" yaml:"start_byte"`
	EndByte   uint32 `json:"end_byte" yaml:"end_byte"`
}

func tokenOutputs(tokens []token.Token, trivia bool) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		if !trivia && tok.IsTrivia() {
			continue
		}
		out = append(out, TokenOutput{
			Kind:      tok.Kind.String(),
			Text:      tok.String(),
			Start:     tok.Start.String(),
			End:       tok.End.String(),
			StartByte: tok.Start.Bytes,
			EndByte:   tok.End.Bytes,
		})
	}
	return out
}

// FormatTokensPretty writes one line per token:
//
//	  1: Symbol                 "local" at 1:1-1:6
//	  2: Identifier             "x" at 1:7-1:8
//	...
//	120: Eof                    "" at 9:1-9:1
func FormatTokensPretty(w io.Writer, tokens []token.Token, trivia bool) error {
	for i, tok := range tokenOutputs(tokens, trivia) {
		if _, err := fmt.Fprintf(w, "%3d: %-22s %q at %s-%s\n", i+1, tok.Kind, tok.Text, tok.Start, tok.End); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, trivia bool) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokenOutputs(tokens, trivia))
}

// FormatTokensYAML writes tokens as a YAML sequence.
func FormatTokensYAML(w io.Writer, tokens []token.Token, trivia bool) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tokenOutputs(tokens, trivia)); err != nil {
		return err
	}
	return enc.Close()
}

package fuzztests

import (
	"strings"
	"testing"
	"unicode/utf8"

	"lunar/internal/dialect"
	"lunar/internal/lexer"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) string {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return string(input)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		src := clampInput(input)
		res := lexer.NewLazy(src, lexer.Options{Version: dialect.All}).Collect()
		if res.Kind == lexer.Fatal || len(res.Errors) > 0 || !utf8.ValidString(src) {
			return
		}

		var sb strings.Builder
		var last uint32
		for _, tok := range res.Value {
			if tok.Start.Bytes < last || tok.End.Bytes < tok.Start.Bytes {
				t.Fatalf("token %s out of order at %s", tok.String(), tok.Start)
			}
			last = tok.End.Bytes
			sb.WriteString(tok.String())
		}
		if got := sb.String(); got != src {
			t.Fatalf("tokens print %q, input was %q", got, src)
		}
	})
}

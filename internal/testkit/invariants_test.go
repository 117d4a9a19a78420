package testkit

import (
	"os"
	"path/filepath"
	"testing"

	"lunar/internal/ast"
	"lunar/internal/dialect"
	"lunar/internal/parser"
)

func TestCheckAllOnSamples(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "testdata", "lua", "*.lua"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no samples")
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			opts := parser.Options{Version: dialect.All}
			if _, errs := parser.ParseFallible(string(src), opts); len(errs) > 0 {
				t.Fatalf("sample does not parse: %v", parser.ErrorList(errs))
			}
			if err := CheckAll(string(src), opts); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestCheckAllOnBrokenInput(t *testing.T) {
	inputs := []string{
		"if x == 2 code()",
		"local function f(",
		"x = {1, 2,",
		"--[[ unclosed",
		"return 'abc",
		"@@@",
		"return 0 A",
		"return\nx = 1\nreturn 2",
	}
	for _, src := range inputs {
		if err := CheckAll(src, parser.DefaultOptions()); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}

func TestCheckRoundTripDetectsMismatch(t *testing.T) {
	tree, err := parser.Parse("return 1", parser.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if CheckRoundTrip("return 2", tree) == nil {
		t.Fatal("mismatch not reported")
	}
	if CheckTokenOrder("return 1", tree) != nil {
		t.Fatal("valid tree rejected")
	}
	if CheckTokenOrder("ret", tree) == nil {
		t.Fatal("token past input end not reported")
	}
}

func TestRecoveryInsertsSyntheticTokens(t *testing.T) {
	tree, errs := parser.ParseFallible("if x == 2 code() end", parser.DefaultOptions())
	if len(errs) == 0 {
		t.Fatal("expected errors")
	}
	var synthetic int
	tokens := ast.Flatten(tree)
	for ref := tokens.Next(); ref != nil; ref = tokens.Next() {
		if IsSynthetic(ref) {
			synthetic++
		}
	}
	if synthetic == 0 {
		t.Fatal("missing `then` was not replaced by a placeholder")
	}
}

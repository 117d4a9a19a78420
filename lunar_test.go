package lunar_test

import (
	"errors"
	"fmt"
	"testing"

	"lunar"
)

func TestParsePrintRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts []lunar.Option
	}{
		{"empty", "", nil},
		{"comments", "-- leading\nlocal x = 1 --[[ trailing ]]\n", nil},
		{"lua54", "local x <close> = f()\ngoto done\n::done::\n", []lunar.Option{lunar.WithVersion(lunar.Lua54)}},
		{"luau", "local s = `hi {name}`\n", []lunar.Option{lunar.WithVersion(lunar.Luau)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := lunar.Parse(tt.src, tt.opts...)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := lunar.Print(tree); got != tt.src {
				t.Fatalf("Print = %q, want %q", got, tt.src)
			}
		})
	}
}

func TestParseErrorIsDiagnostics(t *testing.T) {
	_, err := lunar.Parse("a = b // c", lunar.WithVersion(lunar.Lua51))
	if err == nil {
		t.Fatal("expected `//` to be rejected under Lua 5.1")
	}
	if !errors.Is(err, lunar.ErrDiagnostics) {
		t.Fatalf("error %v does not match ErrDiagnostics", err)
	}
}

func TestParseFallibleKeepsTree(t *testing.T) {
	tree, errs := lunar.ParseFallible("if x == 2 code() end")
	if len(errs) == 0 {
		t.Fatal("expected errors")
	}
	if tree == nil || tree.Block == nil {
		t.Fatal("missing tree")
	}
}

func TestClassify(t *testing.T) {
	ev := lunar.NewEvidence()
	if _, err := lunar.Parse("goto x\n::x::\n", lunar.WithEvidence(ev)); err != nil {
		t.Fatal(err)
	}
	got := lunar.Classify(ev)
	if got.Minimal != lunar.Lua52 {
		t.Fatalf("Minimal = %s, want lua52", got.Minimal)
	}
}

func TestParseVersion(t *testing.T) {
	v, err := lunar.ParseVersion("luau")
	if err != nil || v != lunar.Luau {
		t.Fatalf("ParseVersion(luau) = %v, %v", v, err)
	}
	if _, err := lunar.ParseVersion("lua99"); err == nil {
		t.Fatal("expected unknown dialect error")
	}
}

func ExamplePrint() {
	tree, err := lunar.Parse("local answer   =  42 -- keep me\n")
	if err != nil {
		panic(err)
	}
	fmt.Print(lunar.Print(tree))
	// Output: local answer   =  42 -- keep me
}

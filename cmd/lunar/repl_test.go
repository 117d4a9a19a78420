package main

import (
	"bytes"
	"strings"
	"testing"

	"lunar/internal/dialect"
	"lunar/internal/driver"
	"lunar/internal/parser"
)

func TestNeedsMore(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"local x = 1", false},
		{"if x then", true},
		{"function f()\n  return 1", true},
		{"while true do\n  if a then b() end", true},
		{"--[[ open", true},
		{"local x = )", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, errs := parser.ParseFallible(tt.src, parser.Options{Version: dialect.All})
			if got := needsMore(tt.src, errs); got != tt.want {
				t.Fatalf("needsMore(%q) = %v, want %v (errors %v)", tt.src, got, tt.want, errs)
			}
		})
	}
}

func TestReplSession(t *testing.T) {
	var out, errOut bytes.Buffer
	sess := &replSession{
		opts:   driver.Options{Version: dialect.All},
		view:   "print",
		out:    &out,
		errOut: &errOut,
	}

	if err := sess.eval("local x = 1 -- keep"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "local x = 1 -- keep\n" {
		t.Fatalf("print view wrote %q", out.String())
	}

	if sess.command(":view nope") || !strings.Contains(errOut.String(), "unknown view") {
		t.Fatalf("bad view not reported: %q", errOut.String())
	}
	if sess.view != "print" {
		t.Fatalf("view changed to %q", sess.view)
	}

	sess.command(":dialect lua51")
	if sess.opts.Version != dialect.Lua51 {
		t.Fatalf("dialect = %s", sess.opts.Version)
	}
	sess.command(":view none")
	errOut.Reset()
	if err := sess.eval("x = 7 // 2"); err != nil {
		t.Fatal(err)
	}
	if errOut.Len() == 0 {
		t.Fatal("floor division under lua51 produced no diagnostics")
	}

	sess.command(":trivia")
	if !sess.astOpts.Trivia || !sess.astOpts.Tokens {
		t.Fatal(":trivia did not enable token output")
	}
	if !sess.command(":quit") {
		t.Fatal(":quit did not end the session")
	}
}

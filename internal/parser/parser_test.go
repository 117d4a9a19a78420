package parser_test

import (
	"strings"
	"testing"
	"time"

	"lunar/internal/ast"
	"lunar/internal/dialect"
	"lunar/internal/lexer"
	"lunar/internal/parser"
	"lunar/internal/token"
)

func parseAll(t *testing.T, src string) *ast.Ast {
	t.Helper()
	tree, errs := parser.ParseFallible(src, parser.DefaultOptions())
	if len(errs) > 0 {
		t.Fatalf("parse %q: %v", src, parser.ErrorList(errs))
	}
	return tree
}

var roundTripSources = []string{
	"",
	"  \n\t\n",
	"local x = 1\n",
	"local a, b <const> = 1, 2",
	"-- comment\nprint('hi') -- trailing\n",
	"#!/usr/bin/lua\nreturn 1",
	"function a.b:c(x, ...)\n  return x\nend\n",
	"local function f() end",
	"for i = 1, 10, 2 do print(i) end",
	"for k, v in pairs(t) do end",
	"while true do break end",
	"repeat x = x + 1 until x > 10",
	"if a then b() elseif c then d() else e() end",
	"do local t = {1, 2; a = 3, [4] = 5,} end",
	"goto done\n::done::\n",
	"x, y.z, w[1] = f(), g:h 'str', i {}",
	"local s = [[long\nstring]] .. [==[x]==]",
	"--[[ block\ncomment ]] x = 0x1F + 1e10 + .5",
	"local s = `hello {name}!`",
	"local v = if a then b elseif c then d else e",
	"for i = 1, 3 do if i == 2 then continue end end",
	"return (f())",
	"a = b // c & d ~ e << 1",
	"local x = \"esc\\\"aped\"\n",
	"print(1);print(2);",
	"local f = function(...) return ... end",
	"t.a.b.c = not #t == -1",
	"local continue = 1\ncontinue = continue + 1",
}

func TestRoundTrip(t *testing.T) {
	for _, src := range roundTripSources {
		t.Run(src, func(t *testing.T) {
			tree := parseAll(t, src)
			if got := ast.Print(tree); got != src {
				t.Fatalf("Print = %q, want %q", got, src)
			}
		})
	}
}

func TestReconstructionIsIdempotent(t *testing.T) {
	inputs := append([]string{"if x == 2 code()", "local = 1", "f(a,", "x = {1, 2"}, roundTripSources...)
	for _, src := range inputs {
		once, _ := parser.ParseFallible(src, parser.DefaultOptions())
		printed := ast.Print(once)
		twice, _ := parser.ParseFallible(printed, parser.DefaultOptions())
		if got := ast.Print(twice); got != printed {
			t.Fatalf("%q: reprint = %q, want %q", src, got, printed)
		}
	}
}

func sexpr(e ast.Expression) string {
	switch e := e.(type) {
	case *ast.BinaryOperator:
		return "(" + e.Op.Symbol().String() + " " + sexpr(e.Lhs) + " " + sexpr(e.Rhs) + ")"
	case *ast.UnaryOperator:
		return "(" + e.Op.Symbol().String() + " " + sexpr(e.Operand) + ")"
	case *ast.Parentheses:
		return sexpr(e.Expr)
	case nil:
		return "<hole>"
	default:
		return strings.TrimSpace(ast.Print(e))
	}
}

func returnedExpr(t *testing.T, tree *ast.Ast) ast.Expression {
	t.Helper()
	if tree.Block.Last == nil {
		t.Fatalf("no return statement")
	}
	ret, ok := tree.Block.Last.Stmt.(*ast.Return)
	if !ok || ret.Returns.Len() != 1 {
		t.Fatalf("unexpected last statement %T", tree.Block.Last.Stmt)
	}
	return ret.Returns.Pair(0).Value()
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"2 ^ 3 ^ 2", "(^ 2 (^ 3 2))"},
		{"2 - 3 - 2", "(- (- 2 3) 2)"},
		{"a .. b .. c", "(.. a (.. b c))"},
		{"-x ^ 2", "(- (^ x 2))"},
		{"2 ^ -3", "(^ 2 (- 3))"},
		{"not a == b", "(== (not a) b)"},
		{"#t * 2", "(* (# t) 2)"},
		{"a or b and c", "(or a (and b c))"},
		{"1 + 2 .. 3", "(.. (+ 1 2) 3)"},
		{"a < b .. c", "(< a (.. b c))"},
		{"a & b | c ~ d", "(| (& a b) (~ c d))"},
		{"1 << 2 + 3", "(<< 1 (+ 2 3))"},
		{"(1 + 2) * 3", "(* (+ 1 2) 3)"},
		{"a // b % c", "(% (// a b) c)"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tree := parseAll(t, "return "+tt.src)
			if got := sexpr(returnedExpr(t, tree)); got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func findIf(tree *ast.Ast) *ast.If {
	for _, e := range tree.Block.Stmts {
		if s, ok := e.Stmt.(*ast.If); ok {
			return s
		}
	}
	return nil
}

func TestRecoveryMissingThen(t *testing.T) {
	src := "if x == 2 code()"
	tree, errs := parser.ParseFallible(src, parser.DefaultOptions())
	if len(errs) == 0 {
		t.Fatalf("expected errors")
	}
	s := findIf(tree)
	if s == nil {
		t.Fatalf("no if statement in %q", ast.Print(tree))
	}
	if !s.Then.Is(token.Then) {
		t.Fatalf("then = %v", s.Then)
	}
	if !s.Then.Start().IsZero() || s.Then.End() != s.Then.Start() {
		t.Fatalf("synthetic then has range %v-%v", s.Then.Start(), s.Then.End())
	}
	if len(s.Block.Stmts) != 1 {
		t.Fatalf("body has %d statements", len(s.Block.Stmts))
	}
	if _, err := parser.Parse(src, parser.DefaultOptions()); err == nil {
		t.Fatalf("strict parse must fail")
	}
}

func TestMissingEndSpansConstruct(t *testing.T) {
	src := "if x then\n  foo()\n"
	_, errs := parser.ParseFallible(src, parser.DefaultOptions())
	var found bool
	for _, err := range errs {
		if !strings.Contains(err.Message(), "`end`") {
			continue
		}
		found = true
		start, end := err.Range()
		if start.Bytes != 0 || start.Line != 1 {
			t.Fatalf("start = %+v, want the `if` token", start)
		}
		if end.Bytes != 17 || end.Line != 2 {
			t.Fatalf("end = %+v, want the end of foo()", end)
		}
	}
	if !found {
		t.Fatalf("no missing end error in %v", errs)
	}
}

type binaryCollector struct {
	ast.BaseVisitor
	ops []token.Symbol
}

func (c *binaryCollector) VisitBinaryOperator(b *ast.BinaryOperator) {
	c.ops = append(c.ops, b.Op.Symbol())
}

func TestDialectGating(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		version dialect.Version
		ok      bool
	}{
		{"floor division in 5.1", "local a = b // c", dialect.Lua51, false},
		{"floor division in 5.3", "local a = b // c", dialect.Lua53, true},
		{"floor division in luau", "local a = b // c", dialect.Luau, true},
		{"bitwise and in luau", "local a = b & c", dialect.Luau, false},
		{"bitwise and in 5.4", "local a = b & c", dialect.Lua54, true},
		{"shift in 5.2", "local a = b << c", dialect.Lua52, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, errs := parser.ParseFallible(tt.src, parser.Options{Version: tt.version})
			c := &binaryCollector{}
			ast.Walk(c, tree)
			if tt.ok {
				if len(errs) != 0 || len(c.ops) != 1 {
					t.Fatalf("errors %v, operators %v", errs, c.ops)
				}
				return
			}
			if len(errs) == 0 {
				t.Fatalf("expected errors")
			}
			if len(c.ops) != 0 {
				t.Fatalf("disabled operator accepted: %v", c.ops)
			}
		})
	}
}

func TestDialectConstructs(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		version dialect.Version
		ok      bool
	}{
		{"goto in 5.1", "goto x", dialect.Lua51, false},
		{"goto in 5.2", "goto x ::x::", dialect.Lua52, true},
		{"label in luau", "::x::", dialect.Luau, false},
		{"attribute in 5.3", "local x <const> = 1", dialect.Lua53, false},
		{"attribute in 5.4", "local x <close> = nil", dialect.Lua54, true},
		{"continue in luau", "while true do continue end", dialect.Luau, true},
		{"continue in 5.4", "while true do continue end", dialect.Lua54, false},
		{"interpolation in 5.4", "print(`x`)", dialect.Lua54, false},
		{"if expression in luau", "local x = if a then 1 else 2", dialect.Luau, true},
		{"if expression in 5.1", "local x = if a then 1 else 2", dialect.Lua51, false},
		{"compound assignment", "x += 1", dialect.Luau, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, errs := parser.ParseFallible(tt.src, parser.Options{Version: tt.version})
			if tt.ok && len(errs) != 0 {
				t.Fatalf("unexpected errors %v", errs)
			}
			if !tt.ok && len(errs) == 0 {
				t.Fatalf("expected errors, got %q", ast.Print(tree))
			}
			if tt.ok && ast.Print(tree) != tt.src {
				t.Fatalf("Print = %q", ast.Print(tree))
			}
		})
	}
}

func TestStrayCharacter(t *testing.T) {
	_, errs := parser.ParseFallible("$", parser.DefaultOptions())
	if len(errs) != 1 {
		t.Fatalf("got %d errors: %v", len(errs), errs)
	}
	lexErr, ok := errs[0].(*lexer.Error)
	if !ok || lexErr.Kind != lexer.UnexpectedToken || lexErr.Char != '$' {
		t.Fatalf("got %#v", errs[0])
	}
}

func TestBrokenStringPrintsAsWritten(t *testing.T) {
	for _, src := range []string{"x = \"abc\ny = 1", "print('a\n)"} {
		t.Run(src, func(t *testing.T) {
			tree, errs := parser.ParseFallible(src, parser.DefaultOptions())
			if len(errs) == 0 {
				t.Fatal("expected an unclosed string error")
			}
			if got := ast.Print(tree); got != src {
				t.Fatalf("Print = %q, want %q", got, src)
			}
		})
	}
}

func TestUnexpectedTokenDeduplicated(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{") ) )", 1},
		{") f() )", 1},
		{") ) )\nx = 1\n) )", 1},
		{") x = 1 $ )", 3},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, errs := parser.ParseFallible(tt.src, parser.DefaultOptions())
			if len(errs) != tt.want {
				t.Fatalf("got %d errors, want %d: %v", len(errs), tt.want, errs)
			}
			if errs[0].Message() != "unexpected token, this needs to be a statement" {
				t.Fatalf("unexpected message %q", errs[0].Message())
			}
		})
	}
}

func TestEmptyStatements(t *testing.T) {
	tests := []struct {
		src     string
		version dialect.Version
		ok      bool
	}{
		{";", dialect.Lua52, true},
		{";;x = 1;;\n; do ; end", dialect.Lua54, true},
		{"local a = 1 ; ; return a;", dialect.All, true},
		{";", dialect.Lua51, false},
		{"x = 1;;", dialect.Luau, false},
	}
	for _, tt := range tests {
		t.Run(tt.version.String()+" "+tt.src, func(t *testing.T) {
			tree, errs := parser.ParseFallible(tt.src, parser.Options{Version: tt.version})
			if tt.ok != (len(errs) == 0) {
				t.Fatalf("errors = %v", errs)
			}
			if tt.ok && ast.Print(tree) != tt.src {
				t.Fatalf("Print = %q", ast.Print(tree))
			}
		})
	}

	ev := dialect.NewEvidence()
	if _, errs := parser.ParseFallible(";", parser.Options{Version: dialect.All, Evidence: ev}); len(errs) != 0 {
		t.Fatalf("errors = %v", errs)
	}
	if hints := ev.Hints(); len(hints) != 1 || hints[0].Requires != dialect.FlagLua52 {
		t.Fatalf("hints = %+v", hints)
	}
}

func TestUnclosedConstructRange(t *testing.T) {
	tests := []struct {
		src        string
		start, end uint32
	}{
		{"if x then\n  y = 1\n", 0, 17},
		{"f(a, b", 1, 6},
		{"local t = {", 10, 11},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, errs := parser.ParseFallible(tt.src, parser.DefaultOptions())
			if len(errs) != 1 {
				t.Fatalf("got %d errors: %v", len(errs), errs)
			}
			ae, ok := errs[0].(*parser.AstError)
			if !ok || ae.Kind() != parser.UnclosedConstruct {
				t.Fatalf("got %#v", errs[0])
			}
			if start, end := ae.Range(); start.Bytes != tt.start || end.Bytes != tt.end {
				t.Fatalf("range = %d..%d, want %d..%d", start.Bytes, end.Bytes, tt.start, tt.end)
			}
		})
	}
}

func TestUnclosedRunsInLinearTime(t *testing.T) {
	const n = 20000
	tests := []string{
		"x = " + strings.Repeat("(", n) + "1",
		strings.Repeat("if a then ", n),
		"t = " + strings.Repeat("{", n),
		strings.Repeat("do ", n),
	}
	for _, src := range tests {
		t.Run(src[:12], func(t *testing.T) {
			start := time.Now()
			tree, errs := parser.ParseFallible(src, parser.DefaultOptions())
			if elapsed := time.Since(start); elapsed > 5*time.Second {
				t.Fatalf("parse took %s", elapsed)
			}
			if tree == nil || len(errs) == 0 {
				t.Fatal("expected a recovered tree with errors")
			}
			var unclosed int
			for _, err := range errs {
				if ae, ok := err.(*parser.AstError); ok && ae.Kind() == parser.UnclosedConstruct {
					unclosed++
				}
			}
			if unclosed == 0 {
				t.Fatalf("no unclosed construct reported: %v", errs[:1])
			}
		})
	}
}

func TestStatementsAfterReturn(t *testing.T) {
	tree, errs := parser.ParseFallible("return 1\nx = 2", parser.DefaultOptions())
	if len(errs) != 1 {
		t.Fatalf("got %v", errs)
	}
	if tree.Block.Last == nil || len(tree.Block.Stmts) != 1 {
		t.Fatalf("merged block: %d statements, last %v", len(tree.Block.Stmts), tree.Block.Last)
	}
}

func TestTerminatesOnGarbage(t *testing.T) {
	src := strings.Repeat("end ) ] } = $ @ ", 200)
	tree, errs := parser.ParseFallible(src, parser.DefaultOptions())
	if tree == nil || tree.Eof == nil || len(errs) == 0 {
		t.Fatalf("expected a tree with errors")
	}
}

type punctChecker struct {
	ast.BaseVisitor
	t *testing.T
}

func checkPairs[T any](t *testing.T, what string, p ast.Punctuated[T]) {
	t.Helper()
	for i, pair := range p.Pairs() {
		if i < p.Len()-1 && pair.IsEnd() {
			t.Fatalf("%s: pair %d of %d has no separator", what, i, p.Len())
		}
	}
}

func (c punctChecker) VisitLocalAssignment(s *ast.LocalAssignment) {
	checkPairs(c.t, "local names", s.Names)
	checkPairs(c.t, "local values", s.Exprs)
}
func (c punctChecker) VisitAssignment(s *ast.Assignment) {
	checkPairs(c.t, "vars", s.Vars)
	checkPairs(c.t, "values", s.Exprs)
}
func (c punctChecker) VisitReturn(s *ast.Return) { checkPairs(c.t, "returns", s.Returns) }
func (c punctChecker) VisitParenthesesArgs(a *ast.ParenthesesArgs) {
	checkPairs(c.t, "args", a.Args)
}
func (c punctChecker) VisitTableConstructor(tc *ast.TableConstructor) {
	checkPairs(c.t, "fields", tc.Fields)
}
func (c punctChecker) VisitFunctionBody(b *ast.FunctionBody) { checkPairs(c.t, "params", b.Params) }
func (c punctChecker) VisitGenericFor(s *ast.GenericFor) {
	checkPairs(c.t, "for names", s.Names)
	checkPairs(c.t, "for values", s.Exprs)
}

func TestPunctuatedInvariant(t *testing.T) {
	for _, src := range append(roundTripSources, "f(a,", "local a, = 1", "t = {1,,2}") {
		tree, _ := parser.ParseFallible(src, parser.DefaultOptions())
		ast.Walk(punctChecker{t: t}, tree)
	}
}

func TestEvidence(t *testing.T) {
	ev := dialect.NewEvidence()
	opts := parser.Options{Version: dialect.All, Evidence: ev}
	parseWith := func(src string) {
		if _, errs := parser.ParseFallible(src, opts); len(errs) > 0 {
			t.Fatalf("%q: %v", src, errs)
		}
	}
	parseWith("local x <const> = 1")
	parseWith("while a do continue end")
	var reasons []string
	for _, h := range ev.Hints() {
		reasons = append(reasons, h.Reason)
	}
	joined := strings.Join(reasons, ";")
	if !strings.Contains(joined, "attribute") || !strings.Contains(joined, "continue") {
		t.Fatalf("hints = %v", reasons)
	}
}

func FuzzParseRoundTrip(f *testing.F) {
	for _, src := range roundTripSources {
		f.Add(src)
	}
	f.Fuzz(func(t *testing.T, src string) {
		tree, errs := parser.ParseFallible(src, parser.DefaultOptions())
		if tree == nil {
			t.Fatalf("nil tree")
		}
		if len(errs) == 0 && ast.Print(tree) != src {
			t.Fatalf("lossy parse: %q printed as %q", src, ast.Print(tree))
		}
	})
}

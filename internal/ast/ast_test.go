package ast_test

import (
	"testing"

	"lunar/internal/ast"
	"lunar/internal/source"
	"lunar/internal/token"
)

func ifTree() *ast.Ast {
	return ast.NewAst(ast.NewBlock(ast.NewIf(ast.NewName("x"), ast.NewBlock())))
}

func TestConstructorsPrint(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{"if", ast.NewIf(ast.NewName("x"), ast.NewBlock()), "if x then\nend"},
		{"if else", ast.NewIf(ast.NewName("a"), ast.NewBlock()).WithElseIf(ast.NewName("b"), ast.NewBlock()).WithElse(ast.NewBlock()), "if a then\nelseif b then\nelse\nend"},
		{"return", ast.NewReturn(ast.NewNumber("1"), ast.NewName("b")), "return 1, b"},
		{"bare return", ast.NewReturn(), "return"},
		{"local", ast.NewLocalAssignment("a", "b").WithExprs(ast.NewNumber("1")), "local a, b = 1"},
		{"local no values", ast.NewLocalAssignment("a").WithExprs(), "local a"},
		{"assignment", ast.NewAssignment([]ast.Var{ast.NewName("a")}, []ast.Expression{ast.NewString("s")}), `a = "s"`},
		{"binary", ast.NewBinaryOperator(ast.NewNumber("1"), token.Plus, ast.NewNumber("2")), "1 + 2"},
		{"not", ast.NewUnaryOperator(token.Not, ast.NewName("a")), "not a"},
		{"neg", ast.NewUnaryOperator(token.Minus, ast.NewName("a")), "-a"},
		{"call", ast.NewCall(ast.NewName("print"), ast.NewString("hi")), `print("hi")`},
		{"numeric for", ast.NewNumericFor("i", ast.NewNumber("1"), ast.NewNumber("10"), ast.NewBlock()).WithStep(ast.NewNumber("2")), "for i = 1, 10, 2 do\nend"},
		{"generic for", ast.NewGenericFor([]string{"k", "v"}, []ast.Expression{ast.NewName("t")}, ast.NewBlock()), "for k, v in t do\nend"},
		{"function", ast.NewFunctionDeclaration(ast.NewFunctionName("a", "b").WithMethod("c"), ast.NewFunctionBody([]string{"x", "..."}, ast.NewBlock())), "function a.b:c(x, ...)\nend"},
		{"local function", ast.NewLocalFunction("f", ast.NewFunctionBody(nil, ast.NewBlock())), "local function f()\nend"},
		{"table", ast.NewTableConstructor(ast.NewNameKeyField("a", ast.NewNumber("1")), ast.NewNoKeyField(ast.NewNumber("2"))), "{a = 1, 2}"},
		{"goto", ast.NewGoto("done"), "goto done"},
		{"label", ast.NewLabel("done"), "::done::"},
		{"repeat", ast.NewRepeat(ast.NewBlock(), ast.NewSymbolLiteral(token.True)), "repeat\nuntil true"},
		{"while", ast.NewWhile(ast.NewName("ok"), ast.NewBlock()), "while ok do\nend"},
		{"do break", ast.NewDo(ast.NewBlock().WithLast(ast.NewBreak())), "dobreak\nend"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ast.Print(tt.node); got != tt.want {
				t.Fatalf("Print = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUpdatePositions(t *testing.T) {
	a := ast.UpdatePositions(ifTree())
	refs := ast.Flatten(a).All()
	if len(refs) != 5 {
		t.Fatalf("got %d tokens, want 5", len(refs))
	}
	type want struct {
		start, end source.Position
	}
	pos := func(b, l, c uint32) source.Position { return source.Position{Bytes: b, Line: l, Character: c} }
	expect := []want{
		{pos(0, 1, 1), pos(2, 1, 3)},   // if
		{pos(3, 1, 4), pos(4, 1, 5)},   // x
		{pos(5, 1, 6), pos(9, 1, 10)},  // then
		{pos(10, 2, 1), pos(13, 2, 4)}, // end
		{pos(13, 2, 4), pos(13, 2, 4)}, // eof
	}
	for i, w := range expect {
		if refs[i].Start() != w.start || refs[i].End() != w.end {
			t.Fatalf("token %d %q: got %v-%v, want %v-%v", i, refs[i].Token.String(), refs[i].Start(), refs[i].End(), w.start, w.end)
		}
	}

	again := ast.Flatten(ast.UpdatePositions(a)).All()
	for i := range refs {
		if again[i].Start() != refs[i].Start() || again[i].End() != refs[i].End() {
			t.Fatalf("token %d moved on second pass", i)
		}
	}
}

type renamer struct {
	ast.BaseVisitorMut
	from, to string
}

func (r renamer) VisitIdentifier(tok token.Token) token.Token {
	if tok.Text == r.from {
		tok.Text = r.to
	}
	return tok
}

func TestRewriteLeavesInputUntouched(t *testing.T) {
	orig := ifTree()
	out := ast.Rewrite(renamer{from: "x", to: "y"}, orig)
	if got := ast.Print(out); got != "if y then\nend" {
		t.Fatalf("rewritten = %q", got)
	}
	if got := ast.Print(orig); got != "if x then\nend" {
		t.Fatalf("original changed to %q", got)
	}
	if !ast.Similar(orig, out) {
		t.Fatalf("rename must keep the tree shape")
	}
}

type counter struct {
	ast.BaseVisitor
	names, ifs, ifEnds int
	order              []string
}

func (c *counter) VisitName(*ast.Name) { c.names++ }
func (c *counter) VisitIf(*ast.If)     { c.ifs++; c.order = append(c.order, "if") }
func (c *counter) VisitIfEnd(*ast.If)  { c.ifEnds++; c.order = append(c.order, "/if") }
func (c *counter) VisitSymbol(tok token.Token) {
	c.order = append(c.order, tok.Symbol.String())
}

func TestWalkOrder(t *testing.T) {
	c := &counter{}
	ast.Walk(c, ifTree())
	if c.names != 1 || c.ifs != 1 || c.ifEnds != 1 {
		t.Fatalf("counts names=%d ifs=%d ifEnds=%d", c.names, c.ifs, c.ifEnds)
	}
	want := []string{"if", "if", "then", "end", "/if"}
	if len(c.order) != len(want) {
		t.Fatalf("order = %v, want %v", c.order, want)
	}
	for i := range want {
		if c.order[i] != want[i] {
			t.Fatalf("order = %v, want %v", c.order, want)
		}
	}
}

func TestSimilar(t *testing.T) {
	a := ast.NewBinaryOperator(ast.NewNumber("1"), token.Plus, ast.NewNumber("2"))
	b := &ast.BinaryOperator{
		Lhs: ast.NewNumber("1"),
		Op:  &ast.BinOp{Token: token.Synthetic(token.Plus)},
		Rhs: ast.NewNumber("2"),
	}
	if !ast.Similar(a, b) {
		t.Fatalf("trivia must not matter")
	}
	c := ast.NewBinaryOperator(ast.NewNumber("1"), token.Minus, ast.NewNumber("2"))
	if ast.Similar(a, c) {
		t.Fatalf("different operators compared similar")
	}
	if ast.Similar(a, ast.NewNumber("1")) {
		t.Fatalf("different node types compared similar")
	}
}

func TestFlattenBothEnds(t *testing.T) {
	e := ast.NewBinaryOperator(
		ast.NewBinaryOperator(ast.NewName("a"), token.Star, ast.NewName("b")),
		token.Plus,
		ast.NewParentheses(ast.NewName("c")),
	)
	toks := ast.Flatten(e)
	if got := toks.Next().Token.Text; got != "a" {
		t.Fatalf("first = %q", got)
	}
	if got := toks.NextBack().Token.Symbol; got != token.RightParen {
		t.Fatalf("last = %v", got)
	}
	var rest []string
	for ref := toks.Next(); ref != nil; ref = toks.Next() {
		rest = append(rest, ref.Token.String())
	}
	want := []string{"*", "b", "+", "(", "c"}
	if len(rest) != len(want) {
		t.Fatalf("middle = %v, want %v", rest, want)
	}
	for i := range want {
		if rest[i] != want[i] {
			t.Fatalf("middle = %v, want %v", rest, want)
		}
	}
	if toks.NextBack() != nil {
		t.Fatalf("deque not drained")
	}
}

func TestStartEndOfEmptyBlock(t *testing.T) {
	if _, ok := ast.Start(ast.NewBlock()); ok {
		t.Fatalf("empty block has no start")
	}
	start, end, ok := ast.Range(ast.UpdatePositions(ifTree()).Block)
	if !ok || start.Bytes != 0 || end.Bytes != 13 {
		t.Fatalf("range = %v %v %v", start, end, ok)
	}
}

func TestSurroundingTrivia(t *testing.T) {
	e := ast.NewBinaryOperator(ast.NewName("a"), token.Plus, ast.NewName("b"))
	leading, trailing := ast.SurroundingTrivia(e.Op)
	if len(leading) != 1 || len(trailing) != 1 {
		t.Fatalf("leading=%v trailing=%v", leading, trailing)
	}
	if leading[0].Kind != token.KindWhitespace || leading[0].Text != " " {
		t.Fatalf("leading = %#v", leading[0])
	}
}

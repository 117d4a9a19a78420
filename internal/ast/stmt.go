package ast

import "lunar/internal/token"

// Stmt is any statement that may appear anywhere in a block.
type Stmt interface {
	Node
	stmtNode()
}

// Assignment is `vars = exprs`.
type Assignment struct {
	Vars  Punctuated[Var]
	Equal *token.Reference
	Exprs Punctuated[Expression]
}

// LocalAssignment is `local names [= exprs]`. Attributes is either empty
// or parallel to Names, with nil for names without a Lua 5.4 attribute.
type LocalAssignment struct {
	Local      *token.Reference
	Names      Punctuated[*token.Reference]
	Attributes []*Attribute
	Equal      *token.Reference
	Exprs      Punctuated[Expression]
}

// Attribute is a Lua 5.4 `<const>` or `<close>` name attribute.
type Attribute struct {
	Brackets ContainedSpan
	Name     *token.Reference
}

// Do is `do block end`.
type Do struct {
	Do    *token.Reference
	Block *Block
	End   *token.Reference
}

// While is `while cond do block end`.
type While struct {
	While *token.Reference
	Cond  Expression
	Do    *token.Reference
	Block *Block
	End   *token.Reference
}

// Repeat is `repeat block until cond`.
type Repeat struct {
	Repeat *token.Reference
	Block  *Block
	Until  *token.Reference
	Cond   Expression
}

// If is an if statement with any number of elseif branches.
type If struct {
	If        *token.Reference
	Cond      Expression
	Then      *token.Reference
	Block     *Block
	ElseIfs   []*ElseIf
	Else      *token.Reference
	ElseBlock *Block
	End       *token.Reference
}

// ElseIf is one `elseif cond then block` branch.
type ElseIf struct {
	ElseIf *token.Reference
	Cond   Expression
	Then   *token.Reference
	Block  *Block
}

// NumericFor is `for index = start, limit[, step] do block end`.
type NumericFor struct {
	For        *token.Reference
	Index      *token.Reference
	Equal      *token.Reference
	Start      Expression
	StartComma *token.Reference
	Limit      Expression
	StepComma  *token.Reference
	Step       Expression
	Do         *token.Reference
	Block      *Block
	End        *token.Reference
}

// GenericFor is `for names in exprs do block end`.
type GenericFor struct {
	For   *token.Reference
	Names Punctuated[*token.Reference]
	In    *token.Reference
	Exprs Punctuated[Expression]
	Do    *token.Reference
	Block *Block
	End   *token.Reference
}

// FunctionDeclaration is `function a.b:c() end`.
type FunctionDeclaration struct {
	Function *token.Reference
	Name     *FunctionName
	Body     *FunctionBody
}

// LocalFunction is `local function name() end`.
type LocalFunction struct {
	Local    *token.Reference
	Function *token.Reference
	Name     *token.Reference
	Body     *FunctionBody
}

// Goto is the Lua 5.2 `goto label`.
type Goto struct {
	Goto  *token.Reference
	Label *token.Reference
}

// Label is the Lua 5.2 `::name::`.
type Label struct {
	LeftColons  *token.Reference
	Name        *token.Reference
	RightColons *token.Reference
}

func (*Assignment) stmtNode()          {}
func (*LocalAssignment) stmtNode()     {}
func (*Do) stmtNode()                  {}
func (*While) stmtNode()               {}
func (*Repeat) stmtNode()              {}
func (*If) stmtNode()                  {}
func (*NumericFor) stmtNode()          {}
func (*GenericFor) stmtNode()          {}
func (*FunctionDeclaration) stmtNode() {}
func (*LocalFunction) stmtNode()       {}
func (*FunctionCall) stmtNode()        {}
func (*Goto) stmtNode()                {}
func (*Label) stmtNode()               {}

func (s *Assignment) items() []item {
	var l itemList
	s.Vars.appendItems(&l)
	l.tok(s.Equal)
	s.Exprs.appendItems(&l)
	return l
}

func (s *LocalAssignment) items() []item {
	var l itemList
	l.tok(s.Local)
	for i, pair := range s.Names.pairs {
		l.tok(pair.value)
		if i < len(s.Attributes) && s.Attributes[i] != nil {
			l.add(s.Attributes[i])
		}
		l.tok(pair.punct)
	}
	l.tok(s.Equal)
	s.Exprs.appendItems(&l)
	return l
}

func (a *Attribute) items() []item {
	var l itemList
	l.span(a.Brackets)
	l.tok(a.Name)
	l.close(a.Brackets)
	return l
}

func (s *Do) items() []item {
	var l itemList
	l.tok(s.Do)
	l.add(s.Block)
	l.tok(s.End)
	return l
}

func (s *While) items() []item {
	var l itemList
	l.tok(s.While)
	l.add(s.Cond)
	l.tok(s.Do)
	l.add(s.Block)
	l.tok(s.End)
	return l
}

func (s *Repeat) items() []item {
	var l itemList
	l.tok(s.Repeat)
	l.add(s.Block)
	l.tok(s.Until)
	l.add(s.Cond)
	return l
}

func (s *If) items() []item {
	var l itemList
	l.tok(s.If)
	l.add(s.Cond)
	l.tok(s.Then)
	l.add(s.Block)
	for _, e := range s.ElseIfs {
		l.add(e)
	}
	l.tok(s.Else)
	if s.ElseBlock != nil {
		l.add(s.ElseBlock)
	}
	l.tok(s.End)
	return l
}

func (e *ElseIf) items() []item {
	var l itemList
	l.tok(e.ElseIf)
	l.add(e.Cond)
	l.tok(e.Then)
	l.add(e.Block)
	return l
}

func (s *NumericFor) items() []item {
	var l itemList
	l.tok(s.For)
	l.tok(s.Index)
	l.tok(s.Equal)
	l.add(s.Start)
	l.tok(s.StartComma)
	l.add(s.Limit)
	l.tok(s.StepComma)
	l.add(s.Step)
	l.tok(s.Do)
	l.add(s.Block)
	l.tok(s.End)
	return l
}

func (s *GenericFor) items() []item {
	var l itemList
	l.tok(s.For)
	s.Names.appendItems(&l)
	l.tok(s.In)
	s.Exprs.appendItems(&l)
	l.tok(s.Do)
	l.add(s.Block)
	l.tok(s.End)
	return l
}

func (s *FunctionDeclaration) items() []item {
	var l itemList
	l.tok(s.Function)
	l.add(s.Name)
	l.add(s.Body)
	return l
}

func (s *LocalFunction) items() []item {
	var l itemList
	l.tok(s.Local)
	l.tok(s.Function)
	l.tok(s.Name)
	l.add(s.Body)
	return l
}

func (s *Goto) items() []item {
	var l itemList
	l.tok(s.Goto)
	l.tok(s.Label)
	return l
}

func (s *Label) items() []item {
	var l itemList
	l.tok(s.LeftColons)
	l.tok(s.Name)
	l.tok(s.RightColons)
	return l
}

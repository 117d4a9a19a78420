package ast

import "lunar/internal/token"

// Ast is a parsed file: the top-level block and the end-of-file token,
// which carries any trivia after the last statement.
type Ast struct {
	Block *Block
	Eof   *token.Reference
}

// StmtEntry is a statement with its optional trailing semicolon. An empty
// statement has a nil Stmt and only the semicolon.
type StmtEntry struct {
	Stmt      Stmt
	Semicolon *token.Reference
}

// FirstToken returns the first token of the entry, the semicolon of an
// empty statement included.
func (e StmtEntry) FirstToken() *token.Reference {
	if e.Stmt == nil {
		return e.Semicolon
	}
	return FirstToken(e.Stmt)
}

// LastStmtEntry is the final return, break or continue of a block.
type LastStmtEntry struct {
	Stmt      LastStmt
	Semicolon *token.Reference
}

// Block is a sequence of statements optionally closed by a last statement.
type Block struct {
	Stmts []StmtEntry
	Last  *LastStmtEntry
}

// IsEmpty reports whether the block has no statements at all.
func (b *Block) IsEmpty() bool {
	return b == nil || (len(b.Stmts) == 0 && b.Last == nil)
}

func (a *Ast) items() []item {
	var l itemList
	if a.Block != nil {
		l.add(a.Block)
	}
	l.tok(a.Eof)
	return l
}

func (b *Block) items() []item {
	if b == nil {
		return nil
	}
	l := make(itemList, 0, 2*len(b.Stmts)+2)
	for _, e := range b.Stmts {
		l.add(e.Stmt)
		l.tok(e.Semicolon)
	}
	if b.Last != nil {
		l.add(b.Last.Stmt)
		l.tok(b.Last.Semicolon)
	}
	return l
}

// LastStmt is a statement that may only end a block.
type LastStmt interface {
	Node
	lastStmtNode()
}

// Return is `return exprs`.
type Return struct {
	Return  *token.Reference
	Returns Punctuated[Expression]
}

// Break is `break`.
type Break struct {
	Token *token.Reference
}

// Continue is the Luau `continue` statement; Token is an identifier.
type Continue struct {
	Token *token.Reference
}

func (*Return) lastStmtNode()   {}
func (*Break) lastStmtNode()    {}
func (*Continue) lastStmtNode() {}

func (r *Return) items() []item {
	var l itemList
	l.tok(r.Return)
	r.Returns.appendItems(&l)
	return l
}

func (b *Break) items() []item    { return []item{{ref: b.Token}} }
func (c *Continue) items() []item { return []item{{ref: c.Token}} }

// ContainedSpan is a pair of matching delimiters such as ( ) or [ ].
type ContainedSpan struct {
	Open  *token.Reference
	Close *token.Reference
}

// NewContainedSpan pairs two delimiter tokens.
func NewContainedSpan(open, close *token.Reference) ContainedSpan {
	return ContainedSpan{Open: open, Close: close}
}

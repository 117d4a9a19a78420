package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lunar/internal/ast"
	"lunar/internal/token"
)

// ASTOpts selects what the tree dumps include.
type ASTOpts struct {
	Tokens    bool // show leaf tokens, not only nodes
	Trivia    bool // show leading and trailing trivia of each token
	Positions bool // append line:col ranges
}

// ASTNodeOutput is the JSON form of one node or token.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	Start    string          `json:"start,omitempty"`
	End      string          `json:"end,omitempty"`
	Leading  []string        `json:"leading,omitempty"`
	Trailing []string        `json:"trailing,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

func nodeLabel(n ast.Node, opts ASTOpts) string {
	label := ast.KindName(n)
	if opts.Positions {
		if start, end, ok := ast.Range(n); ok {
			label += fmt.Sprintf(" %s-%s", start, end)
		}
	}
	return label
}

func tokenLabel(ref *token.Reference, opts ASTOpts) string {
	label := strconv.QuoteToASCII(ref.Token.String())
	if ref.Token.Kind == token.KindEof {
		label = "<eof>"
	}
	if opts.Positions {
		label += fmt.Sprintf(" %s-%s", ref.Token.Start, ref.Token.End)
	}
	if opts.Trivia {
		if len(ref.Leading) > 0 {
			label += " leading=" + triviaSummary(ref.Leading)
		}
		if len(ref.Trailing) > 0 {
			label += " trailing=" + triviaSummary(ref.Trailing)
		}
	}
	return label
}

func triviaSummary(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = strconv.QuoteToASCII(t.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// FormatASTPretty writes an indented outline of the tree.
func FormatASTPretty(w io.Writer, tree *ast.Ast, opts ASTOpts) error {
	if tree == nil {
		return fmt.Errorf("nil ast")
	}
	if _, err := fmt.Fprintln(w, nodeLabel(tree, opts)); err != nil {
		return err
	}
	return writeChildren(w, tree, "", opts)
}

func writeChildren(w io.Writer, n ast.Node, prefix string, opts ASTOpts) error {
	children := visibleChildren(n, opts)
	for i, c := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		var label string
		if c.Node != nil {
			label = nodeLabel(c.Node, opts)
		} else {
			label = tokenLabel(c.Token, opts)
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, label); err != nil {
			return err
		}
		if c.Node != nil {
			if err := writeChildren(w, c.Node, prefix+next, opts); err != nil {
				return err
			}
		}
	}
	return nil
}

func visibleChildren(n ast.Node, opts ASTOpts) []ast.Child {
	all := ast.Children(n)
	if opts.Tokens {
		return all
	}
	out := all[:0:0]
	for _, c := range all {
		if c.Node != nil {
			out = append(out, c)
		}
	}
	return out
}

// FormatASTJSON writes the tree as nested JSON objects. Tokens are always
// included so the document is lossless.
func FormatASTJSON(w io.Writer, tree *ast.Ast, opts ASTOpts) error {
	if tree == nil {
		return fmt.Errorf("nil ast")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(nodeJSON(tree, opts))
}

func nodeJSON(n ast.Node, opts ASTOpts) ASTNodeOutput {
	out := ASTNodeOutput{Type: ast.KindName(n)}
	if opts.Positions {
		if start, end, ok := ast.Range(n); ok {
			out.Start, out.End = start.String(), end.String()
		}
	}
	for _, c := range ast.Children(n) {
		if c.Node != nil {
			out.Children = append(out.Children, nodeJSON(c.Node, opts))
			continue
		}
		out.Children = append(out.Children, tokenJSON(c.Token, opts))
	}
	return out
}

func tokenJSON(ref *token.Reference, opts ASTOpts) ASTNodeOutput {
	out := ASTNodeOutput{
		Type: ref.Token.Kind.String(),
		Text: ref.Token.String(),
	}
	if opts.Positions {
		out.Start, out.End = ref.Token.Start.String(), ref.Token.End.String()
	}
	for _, t := range ref.Leading {
		out.Leading = append(out.Leading, t.String())
	}
	for _, t := range ref.Trailing {
		out.Trailing = append(out.Trailing, t.String())
	}
	return out
}

package diagfmt

import (
	"io"
	"strings"

	"lunar/internal/ast"
)

// treeGap separates sibling subtrees.
const treeGap = 3

// box is a rendered subtree: rows of equal width, and the column the
// parent's connector must land on.
type box struct {
	rows   []string
	width  int
	anchor int
}

// FormatASTTree draws the tree top-down with ASCII connectors. Labels are
// ASCII-quoted so byte length equals display width.
func FormatASTTree(w io.Writer, tree *ast.Ast, opts ASTOpts) error {
	for _, row := range layout(tree, opts).rows {
		if _, err := io.WriteString(w, strings.TrimRight(row, " ")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func layout(n ast.Node, opts ASTOpts) box {
	var kids []box
	for _, c := range visibleChildren(n, opts) {
		if c.Node != nil {
			kids = append(kids, layout(c.Node, opts))
		} else {
			kids = append(kids, leafBox(tokenLabel(c.Token, opts)))
		}
	}
	label := nodeLabel(n, opts)
	if len(kids) == 0 {
		return leafBox(label)
	}
	return stack(label, kids)
}

func leafBox(label string) box {
	return box{rows: []string{label}, width: len(label), anchor: len(label) / 2}
}

// stack centres label over the row of kids and joins them with a line of
// '/', '|' and '\' connectors.
func stack(label string, kids []box) box {
	anchors := make([]int, len(kids))
	x, height := 0, 0
	for i, k := range kids {
		if i > 0 {
			x += treeGap
		}
		anchors[i] = x + k.anchor
		x += k.width
		height = max(height, len(k.rows))
	}
	kidsWidth := x

	half := len(label) / 2
	labelAt := (anchors[0]+anchors[len(anchors)-1])/2 - half
	indent := 0
	if labelAt < 0 {
		indent, labelAt = -labelAt, 0
	}
	width := max(kidsWidth+indent, labelAt+len(label))
	anchor := labelAt + half

	conn := []byte(strings.Repeat(" ", width))
	conn[anchor] = '|'
	for _, a := range anchors {
		a += indent
		switch {
		case a < anchor:
			conn[a] = '/'
		case a > anchor:
			conn[a] = '\\'
		}
	}

	rows := make([]string, 0, height+2)
	rows = append(rows, padRight(strings.Repeat(" ", labelAt)+label, width), string(conn))
	for r := range height {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", indent))
		for i, k := range kids {
			if i > 0 {
				sb.WriteString(strings.Repeat(" ", treeGap))
			}
			cell := ""
			if r < len(k.rows) {
				cell = k.rows[r]
			}
			sb.WriteString(padRight(cell, k.width))
		}
		rows = append(rows, padRight(sb.String(), width))
	}
	return box{rows: rows, width: width, anchor: anchor}
}

func padRight(s string, width int) string {
	if n := width - len(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

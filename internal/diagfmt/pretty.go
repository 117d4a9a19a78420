package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lunar/internal/diag"
	"lunar/internal/source"
)

type palette struct {
	err, warn, info, note *color.Color
	gutter, caret, bold   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.gutter, p.caret, p.bold} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders diagnostics for humans. Call bag.Sort() first for a stable
// order. Each entry looks like
//
//	path:line:col: ERROR SYN2002: message
//	  3 | if x do
//	    |      ^~
//
// followed by notes when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, p)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	path := opts.PathMode.path(file, fs)

	sev := p.severity(d.Severity)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		path, start.Line, start.Col,
		sev.Sprint(d.Severity.String()),
		p.bold.Sprint(d.Code.ID()),
		d.Message)

	writeSnippet(w, file, start, end, opts, p)

	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		nf := fs.Get(note.Span.File)
		ns, ne := fs.Resolve(note.Span)
		fmt.Fprintf(w, "%s %s:%d:%d: %s\n",
			p.note.Sprint("note:"),
			opts.PathMode.path(nf, fs), ns.Line, ns.Col, note.Msg)
		writeSnippet(w, nf, ns, ne, PrettyOpts{Width: opts.Width}, p)
	}
}

func writeSnippet(w io.Writer, file *source.File, start, end source.LineCol, opts PrettyOpts, p palette) {
	ctx := uint32(max(opts.Context, 0)) //nolint:gosec // non-negative
	first := start.Line
	if first > ctx {
		first -= ctx
	} else {
		first = 1
	}
	last := start.Line + ctx
	last = min(last, file.LineCount())

	numWidth := len(strconv.FormatUint(uint64(last), 10))
	pad := strings.Repeat(" ", numWidth)

	for ln := first; ln <= last; ln++ {
		text := strings.TrimRight(file.GetLine(ln), "\r")
		if opts.Width > 0 {
			text = runewidth.Truncate(text, int(opts.Width), "...")
		}
		fmt.Fprintf(w, " %s %s %s\n", p.gutter.Sprintf("%*d", numWidth, ln), p.gutter.Sprint("|"), text)
		if ln != start.Line {
			continue
		}
		endCol := end.Col
		if end.Line != start.Line {
			endCol = uint32(len(text)) + 1 //nolint:gosec // line length
		}
		fmt.Fprintf(w, " %s %s %s\n", pad, p.gutter.Sprint("|"), p.caret.Sprint(caretLine(text, start.Col, endCol)))
	}
}

// caretLine returns the marker line under text for the 1-based byte
// columns [startCol, endCol). Tabs are kept so the marker lines up.
func caretLine(text string, startCol, endCol uint32) string {
	from := clampCol(text, startCol)
	to := max(clampCol(text, endCol), from)

	var sb strings.Builder
	for _, r := range text[:from] {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	width := runewidth.StringWidth(text[from:to])
	sb.WriteByte('^')
	if width > 1 {
		sb.WriteString(strings.Repeat("~", width-1))
	}
	return sb.String()
}

func clampCol(text string, col uint32) int {
	if col == 0 {
		return 0
	}
	return min(int(col-1), len(text))
}

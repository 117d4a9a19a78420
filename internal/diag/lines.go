package diag

import (
	"cmp"
	"fmt"
	"path"
	"slices"
	"strings"

	"lunar/internal/source"
)

// LineOptions controls FormatLines.
type LineOptions struct {
	Notes          bool // one extra "note" line per note
	SkipThirdParty bool // drop entries under vendor/, lua_modules/ or Packages/
}

// line is one rendered entry: "severity CODE path:line:col message".
type line struct {
	sev  string
	code string
	path string
	at   source.LineCol
	msg  string
}

func (l line) String() string {
	return fmt.Sprintf("%s %s %s:%d:%d %s", l.sev, l.code, l.path, l.at.Line, l.at.Col, l.msg)
}

func compareLines(a, b line) int {
	return cmp.Or(
		cmp.Compare(a.path, b.path),
		cmp.Compare(a.at.Line, b.at.Line),
		cmp.Compare(a.at.Col, b.at.Col),
		cmp.Compare(a.sev, b.sev),
		cmp.Compare(a.code, b.code),
		cmp.Compare(a.msg, b.msg),
	)
}

// FormatLines renders diagnostics one per line, ordered by location, with
// paths relative to the file set's base directory. Notes follow the line
// of their diagnostic wherever they point. Multi-line messages are folded
// onto one line. The result has no trailing newline and is empty when
// nothing is left to print.
func FormatLines(diags []Diagnostic, fs *source.FileSet, opts LineOptions) string {
	if fs == nil {
		return ""
	}
	render := func(sev string, code Code, sp source.Span, msg string) (line, bool) {
		p, at, ok := locate(fs, sp)
		if !ok || (opts.SkipThirdParty && thirdParty(p)) {
			return line{}, false
		}
		return line{sev: sev, code: code.ID(), path: p, at: at, msg: foldMessage(msg)}, true
	}
	// groups[i][0] is the diagnostic itself, the rest its notes.
	var groups [][]line
	for i := range diags {
		d := &diags[i]
		primary, ok := render(strings.ToLower(d.Severity.String()), d.Code, d.Primary, d.Message)
		if !ok {
			continue
		}
		group := []line{primary}
		if opts.Notes {
			for _, n := range d.Notes {
				if l, ok := render("note", d.Code, n.Span, n.Msg); ok {
					group = append(group, l)
				}
			}
		}
		groups = append(groups, group)
	}
	slices.SortStableFunc(groups, func(a, b []line) int { return compareLines(a[0], b[0]) })

	var rows []string
	for _, group := range groups {
		for _, l := range group {
			rows = append(rows, l.String())
		}
	}
	return strings.Join(rows, "\n")
}

func locate(fs *source.FileSet, sp source.Span) (string, source.LineCol, bool) {
	if int(sp.File) >= fs.Len() {
		return "", source.LineCol{}, false
	}
	file := fs.Get(sp.File)
	at, _ := fs.Resolve(sp)
	p := path.Clean(file.RelTo(fs.BaseDir()))
	return p, at, true
}

var thirdPartyDirs = []string{"vendor", "lua_modules", "Packages"}

func thirdParty(p string) bool {
	for _, seg := range strings.Split(strings.TrimLeft(p, "/"), "/") {
		if slices.Contains(thirdPartyDirs, seg) {
			return true
		}
	}
	return false
}

func foldMessage(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}

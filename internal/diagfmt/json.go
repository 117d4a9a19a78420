package diagfmt

import (
	"encoding/json"
	"io"

	"lunar/internal/diag"
	"lunar/internal/source"
)

// PointJSON is a 1-based line and byte column.
type PointJSON struct {
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

// LocationJSON always carries byte offsets; Start and End are present
// only when positions were requested.
type LocationJSON struct {
	File      string     `json:"file"`
	StartByte uint32     `json:"start_byte"`
	EndByte   uint32     `json:"end_byte"`
	Start     *PointJSON `json:"start,omitempty"`
	End       *PointJSON `json:"end,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

type DiagnosticJSON struct {
	Severity string          `json:"severity"`
	Code     string          `json:"code"`
	Title    string          `json:"title"`
	Message  string          `json:"message"`
	Location LocationJSON    `json:"location"`
	Notes    []NoteJSON      `json:"notes,omitempty"`
	Timings  json.RawMessage `json:"timings,omitempty"`
}

// SummaryJSON counts every diagnostic in the bag, including those cut by
// JSONOpts.Max.
type SummaryJSON struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// DiagnosticsOutput is the root of JSON output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Truncated   bool             `json:"truncated,omitempty"`
	Summary     SummaryJSON      `json:"summary"`
}

type jsonBuilder struct {
	fs   *source.FileSet
	opts JSONOpts
}

func (b jsonBuilder) location(span source.Span) LocationJSON {
	if int(span.File) >= b.fs.Len() {
		return LocationJSON{StartByte: span.Start, EndByte: span.End}
	}
	loc := LocationJSON{
		File:      b.opts.PathMode.path(b.fs.Get(span.File), b.fs),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if b.opts.IncludePositions {
		start, end := b.fs.Resolve(span)
		loc.Start = &PointJSON{Line: start.Line, Column: start.Col}
		loc.End = &PointJSON{Line: end.Line, Column: end.Col}
	}
	return loc
}

func (b jsonBuilder) diagnostic(d *diag.Diagnostic) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Title:    d.Code.Title(),
		Message:  d.Message,
		Location: b.location(d.Primary),
	}
	// timing reports keep their JSON payload in the first note
	if d.Code == diag.ObsTimings && len(d.Notes) > 0 && json.Valid([]byte(d.Notes[0].Msg)) {
		out.Timings = json.RawMessage(d.Notes[0].Msg)
		return out
	}
	if b.opts.IncludeNotes {
		for _, n := range d.Notes {
			out.Notes = append(out.Notes, NoteJSON{Message: n.Msg, Location: b.location(n.Span)})
		}
	}
	return out
}

// BuildDiagnosticsOutput builds the JSON document without encoding it.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	b := jsonBuilder{fs: fs, opts: opts}
	out := DiagnosticsOutput{
		Diagnostics: []DiagnosticJSON{},
		Summary: SummaryJSON{
			Errors:   bag.Count(diag.SevError),
			Warnings: bag.Count(diag.SevWarning),
			Info:     bag.Count(diag.SevInfo),
		},
	}
	for i := range items {
		if opts.Max > 0 && i == opts.Max {
			out.Truncated = true
			break
		}
		out.Diagnostics = append(out.Diagnostics, b.diagnostic(&items[i]))
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON writes diagnostics as an indented JSON document.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}

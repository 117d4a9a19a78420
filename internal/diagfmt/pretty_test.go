package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"lunar/internal/diag"
	"lunar/internal/source"
)

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("local x = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.lua", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.LexUnclosedString,
		source.Span{File: fileID, Start: 10, End: 30},
		"unclosed string",
	))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{name: "Absolute path", mode: PathModeAbsolute, contains: "/home/user/project/src/test.lua"},
		{name: "Relative path", mode: PathModeRelative, contains: "src/test.lua"},
		{name: "Basename only", mode: PathModeBasename, contains: "test.lua"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR") {
				t.Error("Expected ERROR in output")
			}
			if !strings.Contains(output, "LEX1002") {
				t.Error("Expected LEX1002 code in output")
			}
			if !strings.Contains(output, "unclosed string") {
				t.Error("Expected error message in output")
			}
		})
	}
}

func TestPrettySnippetAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("if x then\n\tprint(1)\n")
	fileID := fs.AddVirtual("test.lua", content)

	bag := diag.NewBag(4)
	d := diag.New(diag.SevError, diag.SynUnclosedConstruct,
		source.Span{File: fileID, Start: 11, End: 16}, "expected `end` to close `if` block")
	d = d.WithNote(source.Span{File: fileID, Start: 0, End: 2}, "block opened here")
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true})
	output := buf.String()

	wantLines := []string{
		"test.lua:2:2: ERROR SYN2005: expected `end` to close `if` block",
		" 2 | \tprint(1)",
		"   | \t^~~~~",
		"note: test.lua:1:1: block opened here",
		" 1 | if x then",
		"   | ^~",
	}
	for _, want := range wantLines {
		if !strings.Contains(output, want+"\n") {
			t.Fatalf("missing line %q in:\n%s", want, output)
		}
	}
}

func TestCaretLineWideRunes(t *testing.T) {
	cases := []struct {
		text       string
		start, end uint32
		want       string
	}{
		{"abc", 2, 3, " ^"},
		{"abc", 1, 4, "^~~"},
		{"x = \"日本\"", 5, 13, "    ^~~~~~"},
		{"日本 = 1", 8, 9, "     ^"},
		{"short", 10, 12, "     ^"},
	}
	for _, tc := range cases {
		if got := caretLine(tc.text, tc.start, tc.end); got != tc.want {
			t.Fatalf("caretLine(%q, %d, %d) = %q, want %q", tc.text, tc.start, tc.end, got, tc.want)
		}
	}
}

func TestJSONAndSarif(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.lua", []byte("x = = 1\n"))
	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.SynExpectExpression, source.Span{File: fileID, Start: 4, End: 5}, "expected an expression"))
	bag.Add(diag.NewWarning(diag.DiaFeatureUsed, source.Span{File: fileID, Start: 0, End: 1}, "uses goto"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, Max: 1, PathMode: PathModeBasename}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	first := out.Diagnostics[0]
	if out.Count != 1 || first.Code != "SYN2003" || first.Location.Start == nil || first.Location.Start.Column != 5 {
		t.Fatalf("unexpected JSON output: %+v", out)
	}
	if !out.Truncated || out.Summary != (SummaryJSON{Errors: 1, Warnings: 1}) {
		t.Fatalf("summary = %+v truncated = %v", out.Summary, out.Truncated)
	}

	timed := diag.NewBag(1)
	timed.Add(diag.New(diag.SevInfo, diag.ObsTimings, source.Span{File: fileID}, "timings").
		WithNote(source.Span{File: fileID}, `{"kind":"check","total_ms":1.5}`))
	got := BuildDiagnosticsOutput(timed, fs, JSONOpts{})
	if string(got.Diagnostics[0].Timings) != `{"kind":"check","total_ms":1.5}` || got.Diagnostics[0].Notes != nil {
		t.Fatalf("timings payload not lifted: %+v", got.Diagnostics[0])
	}

	buf.Reset()
	if err := Sarif(&buf, bag, fs, SarifRunMeta{ToolName: "lunar", ToolVersion: "test", InvocationArgs: []string{"check"}}); err != nil {
		t.Fatalf("Sarif: %v", err)
	}
	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("decode sarif: %v", err)
	}
	run := log.Runs[0]
	if len(run.Results) != 2 || len(run.Tool.Driver.Rules) != 2 {
		t.Fatalf("unexpected sarif run: %+v", run)
	}
	if run.Results[0].Level != "error" || run.Results[1].Level != "warning" {
		t.Fatalf("unexpected levels: %s %s", run.Results[0].Level, run.Results[1].Level)
	}
	if run.Invocations[0].ExecutionSuccessful {
		t.Fatalf("run with errors reported success")
	}
}

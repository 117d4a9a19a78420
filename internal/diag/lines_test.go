package diag

import (
	"testing"

	"lunar/internal/source"
)

func TestFormatLines(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	userFile := fs.Add("/workspace/testdata/golden/sample.lua", []byte("a\nb\n"), 0)
	vendored := fs.Add("/workspace/lua_modules/helper.lua", []byte("x\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: vendored, Start: 0, End: 0}, Msg: "skip me"},
				{Span: source.Span{File: userFile, Start: 2, End: 3}, Msg: "note line"},
			},
		},
		{
			Severity: SevWarning,
			Code:     DiaConflict,
			Message:  "another",
			Primary:  source.Span{File: userFile, Start: 2, End: 3},
		},
	}

	expected := "error SYN2001 testdata/golden/sample.lua:1:1 first line second\n" +
		"note SYN2001 testdata/golden/sample.lua:2:1 note line\n" +
		"warning DIA3002 testdata/golden/sample.lua:2:1 another"

	if got := FormatLines(diags, fs, LineOptions{Notes: true, SkipThirdParty: true}); got != expected {
		t.Fatalf("unexpected lines:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}

	short := FormatLines(diags[:1], fs, LineOptions{Notes: true})
	want := "error SYN2001 testdata/golden/sample.lua:1:1 first line second\n" +
		"note SYN2001 lua_modules/helper.lua:1:1 skip me\n" +
		"note SYN2001 testdata/golden/sample.lua:2:1 note line"
	if short != want {
		t.Fatalf("unexpected lines with third-party paths:\nwant:\n%s\n\ngot:\n%s", want, short)
	}
	if got := FormatLines(diags, fs, LineOptions{}); got != "error SYN2001 testdata/golden/sample.lua:1:1 first line second\n"+
		"warning DIA3002 testdata/golden/sample.lua:2:1 another" {
		t.Fatalf("notes leaked without LineOptions.Notes:\n%s", got)
	}
}

func TestFormatLinesKeepsNotesWithTheirDiagnostic(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")
	file := fs.Add("/workspace/a.lua", []byte("a\nb\nc\n"), 0)
	vendored := fs.Add("/workspace/vendor/v.lua", []byte("v\n"), 0)
	span := func(start uint32) source.Span { return source.Span{File: file, Start: start, End: start + 1} }

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SynExpectedToken,
			Message:  "missing end",
			Primary:  span(4),
			Notes:    []Note{{Span: span(0), Msg: "block opened here"}},
		},
		{Severity: SevError, Code: SynUnexpectedToken, Message: "stray", Primary: span(2)},
		{
			Severity: SevWarning,
			Code:     DiaConflict,
			Message:  "vendored",
			Primary:  source.Span{File: vendored, Start: 0, End: 1},
			Notes:    []Note{{Span: span(0), Msg: "dropped with its diagnostic"}},
		},
	}

	tests := []struct {
		name string
		opts LineOptions
		want string
	}{
		{
			name: "notes",
			opts: LineOptions{Notes: true, SkipThirdParty: true},
			want: "error SYN2001 a.lua:2:1 stray\n" +
				"error SYN2002 a.lua:3:1 missing end\n" +
				"note SYN2002 a.lua:1:1 block opened here",
		},
		{
			name: "third party kept",
			opts: LineOptions{Notes: true},
			want: "error SYN2001 a.lua:2:1 stray\n" +
				"error SYN2002 a.lua:3:1 missing end\n" +
				"note SYN2002 a.lua:1:1 block opened here\n" +
				"warning DIA3002 vendor/v.lua:1:1 vendored\n" +
				"note DIA3002 a.lua:1:1 dropped with its diagnostic",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLines(diags, fs, tt.opts); got != tt.want {
				t.Fatalf("unexpected lines:\nwant:\n%s\n\ngot:\n%s", tt.want, got)
			}
		})
	}
}

func TestCodeID(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{LexUnclosedString, "LEX1002"},
		{SynExpectedToken, "SYN2002"},
		{DiaConflict, "DIA3002"},
		{IOLoadFileError, "IO4001"},
		{ProjInvalidManifest, "PRJ5001"},
		{ObsTimings, "OBS6001"},
		{UnknownCode, "E0000"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Fatalf("%d: got %q, want %q", tc.code, got, tc.want)
		}
	}
	if got := Code(2999).Title(); got != "Unknown error" {
		t.Fatalf("unexpected fallback title %q", got)
	}
}

func TestBagSortDedupAndLimit(t *testing.T) {
	b := NewBag(3)
	sp := func(start uint32) source.Span { return source.Span{File: 1, Start: start, End: start + 1} }
	b.Add(NewWarning(DiaConflict, sp(5), "w"))
	b.Add(NewError(SynExpectedToken, sp(5), "e"))
	b.Add(NewError(SynExpectedToken, sp(5), "e"))
	if b.Add(NewError(SynExpectedToken, sp(1), "over")) {
		t.Fatalf("bag accepted item past its limit")
	}
	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("expected 2 items after dedup, got %d", b.Len())
	}
	b.Sort()
	if b.Items()[0].Severity != SevError {
		t.Fatalf("errors should sort before warnings at the same span")
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatalf("expected both errors and warnings")
	}
	if b.Count(SevWarning) != 1 {
		t.Fatalf("expected one warning, got %d", b.Count(SevWarning))
	}

	other := NewBag(4)
	for i := range 4 {
		other.Add(NewError(SynUnexpectedToken, sp(uint32(i)), "x"))
	}
	b.Merge(other)
	if b.Len() != 6 || b.Cap() != 6 {
		t.Fatalf("merge should grow the limit: len=%d cap=%d", b.Len(), b.Cap())
	}
	b.Filter(func(d Diagnostic) bool { return d.Code != SynUnexpectedToken })
	if b.Len() != 2 {
		t.Fatalf("filter kept %d items", b.Len())
	}
}

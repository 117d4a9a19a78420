package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.lua", []byte("print(1)"), 0)
	id2 := fs.Add("test.lua", []byte("print(2)"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}
	latest, ok := fs.GetLatest("test.lua")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d, %v; want %d", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "print(1)" {
		t.Errorf("old version content = %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
	if _, ok := fs.GetLatest("./test.lua"); !ok {
		t.Error("GetLatest must clean its argument")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.lua", []byte("local a\r\nlocal b\nx"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{6, LineCol{1, 7}},
		{8, LineCol{1, 9}}, // the '\n' of "\r\n" still belongs to line 1
		{9, LineCol{2, 1}},
		{16, LineCol{2, 8}},
		{17, LineCol{3, 1}},
	}
	for _, tt := range tests {
		got, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if got != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestGetLineStripsTerminator(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a.lua", []byte("one\r\ntwo\nthree")))
	for i, want := range []string{"one", "two", "three", ""} {
		if got := f.GetLine(uint32(i + 1)); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", i+1, got, want)
		}
	}
	if f.LineStart(2) != 5 || f.LineStart(3) != 9 {
		t.Errorf("LineStart = %d, %d", f.LineStart(2), f.LineStart(3))
	}
}

func TestLoadKeepsBytesVerbatim(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.lua")
	content := []byte("\xEF\xBB\xBFlocal x = 1\r\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != string(content) {
		t.Fatalf("content changed on load: %q", f.Content)
	}
	if f.Flags&FileTranscoded != 0 {
		t.Fatalf("UTF-8 file marked as transcoded")
	}
}

func TestLoadTranscodesUTF16(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wide.lua")
	// "x=1" in UTF-16LE with BOM
	content := []byte{0xFF, 0xFE, 'x', 0, '=', 0, '1', 0}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "x=1" {
		t.Fatalf("content = %q, want x=1", f.Content)
	}
	if f.Flags&FileTranscoded == 0 {
		t.Fatalf("expected FileTranscoded flag")
	}
}

func TestFileDisplayPaths(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.Add("/work/proj/src/a.lua", nil, 0))
	if got := f.RelTo("/work/proj"); got != "src/a.lua" {
		t.Errorf("RelTo = %q", got)
	}
	if got := f.RelTo("/work/other"); got != "../proj/src/a.lua" {
		t.Errorf("RelTo sibling = %q", got)
	}
	if f.Base() != "a.lua" || !filepath.IsAbs(filepath.FromSlash(f.Abs())) {
		t.Errorf("Base = %q, Abs = %q", f.Base(), f.Abs())
	}
}

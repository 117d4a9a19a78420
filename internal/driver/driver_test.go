package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lunar/internal/diag"
	"lunar/internal/dialect"
	"lunar/internal/observ"
	"lunar/internal/pipeline"
	"lunar/internal/source"
)

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestParseSourceDiagnostics(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		version dialect.Version
		code    diag.Code
	}{
		{name: "clean", src: "local x = 1\nreturn x\n", version: dialect.All},
		{name: "unclosed string", src: "x = \"abc\n", version: dialect.All, code: diag.LexUnclosedString},
		{name: "unclosed comment", src: "--[[ never closed", version: dialect.All, code: diag.LexUnclosedComment},
		{name: "missing then", src: "if x == 2 code() end", version: dialect.All, code: diag.SynExpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseSource("test.lua", []byte(tt.src), Options{Version: tt.version, RoundTrip: true})
			if res.Tree == nil {
				t.Fatal("tree must always be produced")
			}
			if hasCode(res.Bag, diag.DiaRoundTripChanged) {
				t.Fatalf("round trip changed for %q", tt.src)
			}
			if tt.code == 0 {
				if res.Bag.Len() != 0 {
					t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
				}
				return
			}
			if !hasCode(res.Bag, tt.code) {
				t.Fatalf("missing %s in %+v", tt.code.ID(), res.Bag.Items())
			}
		})
	}
}

func TestDialectGating(t *testing.T) {
	src := []byte("local x = 7 // 2\n")
	if res := ParseSource("a.lua", src, Options{Version: dialect.Lua51}); !res.Bag.HasErrors() {
		t.Fatal("floor division must be rejected under lua51")
	}
	if res := ParseSource("a.lua", src, Options{Version: dialect.Lua53}); res.Bag.HasErrors() {
		t.Fatalf("floor division rejected under lua53: %+v", res.Bag.Items())
	}
}

func TestCodeOfMapsEveryParserError(t *testing.T) {
	res := ParseSource("a.lua", []byte("local = 5\n@"), Options{Version: dialect.All})
	if len(res.Errors) == 0 {
		t.Fatal("expected errors")
	}
	for _, err := range res.Errors {
		code := CodeOf(err)
		if id := code.ID(); !strings.HasPrefix(id, "LEX") && !strings.HasPrefix(id, "SYN") {
			t.Fatalf("error %v mapped to %s", err, id)
		}
	}
}

func TestFirstDifference(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", -1},
		{"abc", "abc", -1},
		{"abc", "abd", 2},
		{"abc", "ab", 2},
		{"", "x", 0},
	}
	for _, tt := range tests {
		if got := FirstDifference(tt.a, tt.b); got != tt.want {
			t.Errorf("FirstDifference(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCheckRoundTripReportsOffset(t *testing.T) {
	res := ParseSource("a.lua", []byte("local x = 1"), Options{Version: dialect.All})
	fs := source.NewFileSet()
	id := fs.AddVirtual("b.lua", []byte("local x = 2"))
	bag := diag.NewBag(10)
	if checkRoundTrip(bag, fs.Get(id), res.Tree) {
		t.Fatal("expected a mismatch")
	}
	d := bag.Items()[0]
	if d.Code != diag.DiaRoundTripChanged || d.Primary.Start != 10 || d.Primary.End != 11 {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
}

func TestDetect(t *testing.T) {
	t.Run("minimal", func(t *testing.T) {
		res := ParseSource("a.lua", []byte("goto x; a = b // c ::x::"), Options{Version: dialect.All, Detect: true})
		if res.Detection == nil || res.Detection.Minimal != dialect.Lua53 {
			t.Fatalf("detection = %+v, want lua53", res.Detection)
		}
		if !hasCode(res.Bag, diag.DiaFeatureUsed) {
			t.Fatal("expected feature diagnostics")
		}
		if hasCode(res.Bag, diag.DiaConflict) {
			t.Fatal("unexpected conflict")
		}
	})
	t.Run("conflict", func(t *testing.T) {
		res := ParseSource("a.lua", []byte("a = b & c\nlocal s = `x`\n"), Options{Version: dialect.All, Detect: true})
		if res.Detection == nil || len(res.Detection.Candidates) != 0 {
			t.Fatalf("detection = %+v, want no candidates", res.Detection)
		}
		if !hasCode(res.Bag, diag.DiaConflict) {
			t.Fatalf("expected conflict diagnostic in %+v", res.Bag.Items())
		}
	})
}

func TestTokenize(t *testing.T) {
	src := "-- hi\nlocal x = 1\n"
	dir := writeFiles(t, map[string]string{"a.lua": src})
	res, err := Tokenize(filepath.Join(dir, "a.lua"), Options{Version: dialect.All})
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	for _, tok := range res.Tokens {
		sb.WriteString(tok.String())
	}
	if sb.String() != src {
		t.Fatalf("tokens print %q, want %q", sb.String(), src)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics %+v", res.Bag.Items())
	}
}

func TestCheckParallelAndCache(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.lua": "return 1\n",
		"bad.lua":  "if x then\n",
	})
	files := []string{
		filepath.Join(dir, "bad.lua"),
		filepath.Join(dir, "good.lua"),
		filepath.Join(dir, "missing.lua"),
	}
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := CheckOptions{
		Options: Options{Version: dialect.All, RoundTrip: true},
		Jobs:    2,
		Cache:   cache,
		BaseDir: dir,
		Timings: true,
	}
	opts.Timer = observ.NewTimer()

	rec := &pipeline.Recorder{}
	opts.Sink = rec
	first, err := Check(context.Background(), files, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Files) != 3 || first.Files[0].Path != files[0] {
		t.Fatalf("unexpected reports %+v", first.Files)
	}
	if !first.HasErrors() || !first.Files[0].Bag.HasErrors() {
		t.Fatal("bad.lua must have errors")
	}
	if first.Files[1].Bag.Len() != 0 {
		t.Fatalf("good.lua diagnostics: %+v", first.Files[1].Bag.Items())
	}
	if first.Files[2].LoadErr == nil || !hasCode(first.Bag, diag.IOLoadFileError) {
		t.Fatal("missing.lua must report a load error")
	}
	if !hasCode(first.Bag, diag.ObsTimings) {
		t.Fatal("expected timing diagnostic")
	}
	var sawError bool
	for _, ev := range rec.Events() {
		if ev.File == files[0] && ev.Stage == pipeline.StageCheck && ev.Status == pipeline.StatusError {
			sawError = true
		}
	}
	if !sawError {
		t.Fatal("no error event for bad.lua")
	}

	opts.Timings = false
	opts.Sink = nil
	second, err := Check(context.Background(), files[:2], opts)
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range second.Files {
		if !r.Cached {
			t.Fatalf("%s was not served from cache", r.Path)
		}
		if r.Bag.Len() != first.Files[i].Bag.Len() {
			t.Fatalf("%s: cached %d diagnostics, want %d", r.Path, r.Bag.Len(), first.Files[i].Bag.Len())
		}
	}
}

func TestCheckCancelled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.lua": "return 1\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Check(ctx, []string{filepath.Join(dir, "a.lua")}, CheckOptions{}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestCacheKey(t *testing.T) {
	var h [32]byte
	a := CacheKey(h, Options{Version: dialect.Lua54})
	if a != CacheKey(h, Options{Version: dialect.Lua54}) {
		t.Fatal("key is not deterministic")
	}
	if a == CacheKey(h, Options{Version: dialect.Luau}) {
		t.Fatal("dialect must change the key")
	}
	if a == CacheKey(h, Options{Version: dialect.Lua54, Detect: true}) {
		t.Fatal("detection must change the key")
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "c"))
	if err != nil {
		t.Fatal(err)
	}
	var key [32]byte
	if err := cache.Put(key, &DiskPayload{Path: "x.lua"}); err != nil {
		t.Fatal(err)
	}
	var out DiskPayload
	if ok, err := cache.Get(key, &out); err != nil || !ok || out.Path != "x.lua" {
		t.Fatalf("Get = %v, %v, %+v", ok, err, out)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	if ok, _ := cache.Get(key, &out); ok {
		t.Fatal("entry survived DropAll")
	}
}

func TestTimingsDiagnostic(t *testing.T) {
	d := timingsDiagnostic("check", 2, observ.Report{
		TotalMS: 3,
		Phases:  []observ.PhaseReport{{Name: "load", DurationMS: 1}, {Name: "parse", DurationMS: 2}},
	})
	if d.Code != diag.ObsTimings || d.Message != "check: 2 files in 3.00 ms (load 1.00, parse 2.00)" {
		t.Fatalf("message = %q", d.Message)
	}
	if len(d.Notes) != 1 || !strings.Contains(d.Notes[0].Msg, `"files":2`) {
		t.Fatalf("notes = %+v", d.Notes)
	}
}

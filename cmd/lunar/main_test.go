package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lunar/internal/dialect"
	"lunar/internal/driver"
	"lunar/internal/project"
)

// execute runs the root command with args inside dir.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(dir)
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	runCleanups()
	return out.String(), err
}

func writeLua(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseToggle(t *testing.T) {
	tests := []struct {
		in   string
		want toggle
		ok   bool
	}{
		{"", toggleAuto, true},
		{"AUTO", toggleAuto, true},
		{" on ", toggleOn, true},
		{"never", toggleOff, true},
		{"sometimes", toggleAuto, false},
	}
	for _, tt := range tests {
		got, err := parseToggle("ui", tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("parseToggle(%q) = %v, %v", tt.in, got, err)
		}
	}
	if !toggleOn.enabled(os.Stdout) || toggleOff.enabled(os.Stdout) {
		t.Fatal("explicit toggles must ignore the terminal")
	}
}

func TestInitWritesManifestOnce(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "init", "proj")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, project.ManifestName) {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "proj", project.ManifestName)); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, dir, "init", "proj"); err == nil {
		t.Fatal("second init must refuse to overwrite")
	}
}

func TestCheckReportsFindings(t *testing.T) {
	dir := t.TempDir()
	writeLua(t, dir, "ok.lua", "local x = 1\n")
	writeLua(t, dir, "sub/bad.lua", "if x == 2 code() end\n")
	writeLua(t, dir, "vendor/skip.lua", "@@@\n")
	if err := os.WriteFile(filepath.Join(dir, project.ManifestName), []byte("[files]\nexclude = [\"^vendor/\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, dir, "check", "--ui", "off", "--format", "short", "--no-cache")
	if !errors.Is(err, errFindings) {
		t.Fatalf("check error = %v, want errFindings", err)
	}

	if err := os.Remove(filepath.Join(dir, "sub", "bad.lua")); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, dir, "check", "--ui", "off", "--format", "short", "--no-cache"); err != nil {
		t.Fatalf("clean project: %v", err)
	}
}

func TestCheckRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { _ = checkCmd.Flags().Set("format", "pretty") })
	if _, err := execute(t, dir, "check", "--format", "xml"); err == nil {
		t.Fatal("expected unknown format error")
	}
}

func TestDialectFlagOverridesManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeLua(t, dir, "floor.lua", "a = b // c\n")
	if err := os.WriteFile(filepath.Join(dir, project.ManifestName), []byte("[parse]\ndialect = \"lua54\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = rootCmd.PersistentFlags().Set("dialect", "") })
	if _, err := execute(t, dir, "parse", "--format", "none", path); err != nil {
		t.Fatalf("lua54 from manifest: %v", err)
	}
	_, err := execute(t, dir, "--dialect", "lua51", "parse", "--format", "none", path)
	if !errors.Is(err, errFindings) {
		t.Fatalf("lua51 override: %v", err)
	}
}

func TestBuildDetectReport(t *testing.T) {
	result := driver.ParseSource("mixed.lua", []byte("a = b & c\nlocal s = `x`\n"), driver.Options{
		Version: dialect.All,
		Detect:  true,
	})
	r := buildDetectReport("mixed.lua", result)
	if r.Minimal != "none" || len(r.Conflicts) == 0 {
		t.Fatalf("report = %+v", r)
	}

	result = driver.ParseSource("goto.lua", []byte("goto x\n::x::\n"), driver.Options{
		Version: dialect.All,
		Detect:  true,
	})
	r = buildDetectReport("goto.lua", result)
	if r.Minimal != "lua52" || len(r.Candidates) < 2 || r.Candidates[0] != "lua52" {
		t.Fatalf("report = %+v", r)
	}
}

func TestVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := renderVersionJSON(&buf, false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"tool": "lunar"`) {
		t.Fatalf("unexpected payload %s", buf.String())
	}
}

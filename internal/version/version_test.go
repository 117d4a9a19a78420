package version

import (
	"strings"
	"testing"
)

func TestColoredPlain(t *testing.T) {
	if got := Colored(false); got != Version {
		t.Fatalf("Colored(false) = %q, want %q", got, Version)
	}
}

func TestColoredKeepsDigitsAndSuffix(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "1.2.3-rc1"
	got := Colored(true)
	for _, want := range []string{"1", "2", "3", "-rc1", "\x1b["} {
		if !strings.Contains(got, want) {
			t.Fatalf("Colored(true) = %q, missing %q", got, want)
		}
	}

	Version = "nightly"
	if got := Colored(true); got != "nightly" {
		t.Fatalf("non-semver version should pass through, got %q", got)
	}
}

func TestInfo(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	t.Cleanup(func() { GitCommit, BuildDate = origCommit, origDate })

	GitCommit = "abc123def4567890"
	BuildDate = "2024-01-15T10:30:00Z"
	got := Info(false)
	want := "lunar " + Version + " (abc123def456) built 2024-01-15T10:30:00Z"
	if got != want {
		t.Fatalf("Info() = %q, want %q", got, want)
	}
}

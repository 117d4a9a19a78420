package version

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/fatih/color"
)

// Build information for the lunar CLI, overridable via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with each numeric part highlighted.
func Colored(enabled bool) string {
	if !enabled {
		return Version
	}
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	out := make([]string, 3)
	for i, c := range []*color.Color{versionMajorColor, versionMinorColor, versionPatchColor} {
		c.EnableColor()
		out[i] = c.Sprint(parts[i])
	}
	s := strings.Join(out, ".")
	if suffix != "" {
		s += "-" + suffix
	}
	return s
}

// Commit returns GitCommit, falling back to the VCS stamp of the binary.
func Commit() string {
	if GitCommit != "" {
		return GitCommit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

// Info is the one-line description printed by `lunar version`.
func Info(colored bool) string {
	s := "lunar " + Colored(colored)
	if c := Commit(); c != "" {
		if len(c) > 12 {
			c = c[:12]
		}
		s += fmt.Sprintf(" (%s)", c)
	}
	if BuildDate != "" {
		s += " built " + BuildDate
	}
	return s
}

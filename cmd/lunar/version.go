package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"lunar/internal/dialect"
	"lunar/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show lunar build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("full", false, "include commit, build date and toolchain")
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

// buildReport is the `version --format json` document.
type buildReport struct {
	Tool      string   `json:"tool"`
	Version   string   `json:"version"`
	Dialects  []string `json:"dialects"`
	GitCommit string   `json:"git_commit,omitempty"`
	BuildDate string   `json:"build_date,omitempty"`
	GoVersion string   `json:"go_version,omitempty"`
}

func newBuildReport(full bool) buildReport {
	r := buildReport{Tool: "lunar", Version: version.Version}
	for _, v := range []dialect.Version{dialect.Lua51, dialect.Lua52, dialect.Lua53, dialect.Lua54, dialect.Luau} {
		r.Dialects = append(r.Dialects, v.String())
	}
	if full {
		r.GitCommit = orUnknown(version.Commit())
		r.BuildDate = orUnknown(version.BuildDate)
		r.GoVersion = runtime.Version()
	}
	return r
}

func runVersion(cmd *cobra.Command, _ []string) error {
	full, _ := cmd.Flags().GetBool("full")
	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return renderVersionJSON(out, full)
	case "pretty":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	fmt.Fprintln(out, version.Info(useColor(cmd, os.Stdout)))
	if full {
		r := newBuildReport(true)
		fmt.Fprintf(out, "commit:   %s\nbuilt:    %s\ngo:       %s\n", r.GitCommit, r.BuildDate, r.GoVersion)
	}
	return nil
}

func renderVersionJSON(w io.Writer, full bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newBuildReport(full))
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

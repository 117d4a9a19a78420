package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"lunar/internal/dialect"
	"lunar/internal/driver"
)

var detectCmd = &cobra.Command{
	Use:   "detect [flags] file.lua...",
	Short: "Guess the smallest Lua dialect each file is written in",
	Long: `Detect parses files with every dialect enabled, collects the
dialect-specific constructs they use and reports the smallest dialect that
accepts all of them, along with any constructs no single dialect allows`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml)")
}

type detectHint struct {
	Reason   string `json:"reason" yaml:"reason"`
	Position string `json:"position" yaml:"position"`
	Dialects string `json:"dialects" yaml:"dialects"`
}

type detectReport struct {
	Path       string       `json:"path" yaml:"path"`
	Minimal    string       `json:"minimal" yaml:"minimal"`
	Candidates []string     `json:"candidates" yaml:"candidates"`
	Signals    int          `json:"signals" yaml:"signals"`
	Conflicts  []detectHint `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
	Errors     int          `json:"errors" yaml:"errors"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "yaml":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	opts := s.driverOptions()
	// detection only makes sense with every construct accepted
	opts.Version = dialect.All
	opts.Detect = true

	reports := make([]detectReport, 0, len(args))
	for _, path := range args {
		result, err := driver.Parse(path, opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		reports = append(reports, buildDetectReport(path, result))
	}
	printTimings(opts.Timer)

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	}
	for _, r := range reports {
		fmt.Fprintf(os.Stdout, "%s: %s", r.Path, r.Minimal)
		if len(r.Candidates) > 1 {
			fmt.Fprintf(os.Stdout, " (also %v)", r.Candidates[1:])
		}
		if r.Errors > 0 {
			fmt.Fprintf(os.Stdout, " [%d parse errors]", r.Errors)
		}
		fmt.Fprintln(os.Stdout)
		for _, c := range r.Conflicts {
			fmt.Fprintf(os.Stdout, "  conflict at %s: %s needs %s\n", c.Position, c.Reason, c.Dialects)
		}
	}
	return nil
}

func buildDetectReport(path string, result *driver.ParseResult) detectReport {
	r := detectReport{Path: path, Errors: len(result.Errors)}
	cls := result.Detection
	if cls == nil {
		return r
	}
	r.Minimal = cls.Minimal.String()
	if len(cls.Conflicts) > 0 {
		r.Minimal = "none"
	}
	r.Signals = cls.ObservedSignals
	for _, v := range cls.Candidates {
		r.Candidates = append(r.Candidates, v.String())
	}
	for _, h := range cls.Conflicts {
		r.Conflicts = append(r.Conflicts, detectHint{
			Reason:   h.Reason,
			Position: h.Pos.String(),
			Dialects: driver.DialectNames(h.Requires),
		})
	}
	return r
}

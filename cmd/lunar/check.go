package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lunar/internal/diag"
	"lunar/internal/diagfmt"
	"lunar/internal/driver"
	"lunar/internal/project"
	"lunar/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path...]",
	Short: "Parse every Lua file of a project and report diagnostics",
	Long: `Check discovers Lua sources under the given paths (the project root by
default), parses them in parallel and reports every diagnostic. Files
excluded by lunar.toml or --exclude are skipped unless named explicitly.
Results are cached per file content and options.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json|sarif)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0 = lunar.toml or GOMAXPROCS)")
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
	checkCmd.Flags().Bool("round-trip", true, "verify that error-free files reprint byte for byte")
	checkCmd.Flags().Bool("detect", false, "report the dialect features each file uses")
	checkCmd.Flags().StringSlice("exclude", nil, "additional exclude pattern (regular expression, repeatable)")
	checkCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	checkCmd.Flags().String("path-mode", "auto", "path display (auto|absolute|relative|basename)")
	checkCmd.Flags().Bool("no-warnings", false, "drop warnings and notes from the output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "short", "json", "sarif":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	roundTrip, err := cmd.Flags().GetBool("round-trip")
	if err != nil {
		return fmt.Errorf("failed to get round-trip flag: %w", err)
	}
	detect, err := cmd.Flags().GetBool("detect")
	if err != nil {
		return fmt.Errorf("failed to get detect flag: %w", err)
	}
	excludes, err := cmd.Flags().GetStringSlice("exclude")
	if err != nil {
		return fmt.Errorf("failed to get exclude flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	ui, err := parseToggle("ui", uiValue)
	if err != nil {
		return err
	}
	pathModeValue, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	pathMode, ok := diagfmt.ParsePathMode(pathModeValue)
	if !ok {
		return fmt.Errorf("invalid --path-mode value %q", pathModeValue)
	}
	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cfg := s.manifest.Config

	matcher, err := project.NewMatcher(cfg.Files, excludes...)
	if err != nil {
		return err
	}
	targets := args
	if len(targets) == 0 {
		targets = []string{s.manifest.Root}
	}
	files, err := project.Discover(s.manifest.Root, targets, matcher)
	if err != nil {
		return fmt.Errorf("failed to discover sources: %w", err)
	}
	if len(files) == 0 {
		if !s.quiet {
			fmt.Fprintln(os.Stderr, "no Lua sources found")
		}
		return nil
	}

	if jobs <= 0 {
		jobs = cfg.Check.Jobs
	}
	opts := driver.CheckOptions{
		Options: s.driverOptions(),
		Jobs:    jobs,
		BaseDir: s.manifest.Root,
		Timings: s.timings,
	}
	opts.RoundTrip = roundTrip
	opts.Detect = detect
	if cfg.Check.Cache && !noCache {
		cache, err := driver.OpenDiskCache("lunar")
		if err != nil {
			fmt.Fprintf(os.Stderr, "cache disabled: %v\n", err)
		} else {
			opts.Cache = cache
		}
	}

	var result *driver.CheckResult
	if ui.enabled(os.Stdout) && format == "pretty" && !s.quiet {
		title := fmt.Sprintf("checking %s", filepath.Base(s.manifest.Root))
		result, err = runCheckWithUI(cmd.Context(), title, files, opts)
	} else {
		result, err = driver.Check(cmd.Context(), files, opts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	bag := result.Bag
	if noWarnings {
		bag.Filter(func(d diag.Diagnostic) bool { return d.Severity >= diag.SevError })
	}
	if err := writeCheckReport(cmd, bag, result, format, pathMode); err != nil {
		return err
	}
	if !s.quiet && format == "pretty" {
		printCheckSummary(result)
	}
	return findingsErr(bag)
}

func writeCheckReport(cmd *cobra.Command, bag *diag.Bag, result *driver.CheckResult, format string, pathMode diagfmt.PathMode) error {
	switch format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stdout),
			Context:   2,
			PathMode:  pathMode,
			ShowNotes: true,
		})
	case "short":
		if out := diag.FormatLines(bag.Items(), result.FileSet, diag.LineOptions{Notes: true}); out != "" {
			fmt.Fprintln(os.Stdout, out)
		}
	case "json":
		return diagfmt.JSON(os.Stdout, bag, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     true,
		})
	case "sarif":
		return diagfmt.Sarif(os.Stdout, bag, result.FileSet, diagfmt.SarifRunMeta{
			ToolName:       "lunar",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args[1:],
		})
	}
	return nil
}

func printCheckSummary(result *driver.CheckResult) {
	var cached int
	for _, f := range result.Files {
		if f.Cached {
			cached++
		}
	}
	errs := result.Bag.Count(diag.SevError)
	warns := result.Bag.Count(diag.SevWarning)
	fmt.Fprintf(os.Stderr, "%d files checked (%d cached): %d errors, %d warnings\n",
		len(result.Files), cached, errs, warns)
}

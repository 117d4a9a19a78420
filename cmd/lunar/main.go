package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lunar/internal/prof"
	"lunar/internal/version"
)

// errFindings signals that a command ran but reported error diagnostics.
// main exits with status 1 without printing it.
var errFindings = errors.New("diagnostics reported")

var rootCmd = &cobra.Command{
	Use:   "lunar",
	Short: "Lossless Lua and Luau parser and tooling",
	Long: `lunar parses Lua 5.1 through 5.4 and Luau into lossless syntax trees.
It tokenizes, dumps trees, reprints sources byte for byte, checks whole
projects in parallel and serves diagnostics over the language server protocol.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupRun,
}

// cleanups run after the command finished, whatever its outcome.
var cleanups []func()

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(lspCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 0, "maximum number of diagnostics per file (0 = lunar.toml or 100)")
	flags.String("dialect", "", "language dialect (lua51|lua52|lua53|lua54|luau|all), overrides lunar.toml")

	flags.String("trace", "", "write trace events to this file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "ring", "trace storage (stream|ring|both)")
	flags.Int("trace-ring-size", 4096, "events kept by the ring tracer")
	flags.Duration("trace-heartbeat", 0, "emit a heartbeat event at this interval (0 = off)")

	flags.String("cpu-profile", "", "write a CPU profile to this file")
	flags.String("mem-profile", "", "write a heap profile to this file")
	flags.String("runtime-trace", "", "write a Go runtime trace to this file")
}

func main() {
	err := rootCmd.Execute()
	runCleanups()
	if err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintf(os.Stderr, "lunar: %v\n", err)
		}
		os.Exit(1)
	}
}

// setupRun starts tracing and profiling for every subcommand.
func setupRun(cmd *cobra.Command, _ []string) error {
	stopTrace, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	cleanups = append(cleanups, stopTrace)

	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	for name, dst := range map[string]*string{"cpu-profile": &opts.CPU, "mem-profile": &opts.Mem, "runtime-trace": &opts.Trace} {
		if *dst, err = flags.GetString(name); err != nil {
			return err
		}
	}
	session, err := prof.Start(opts)
	if err != nil {
		return fmt.Errorf("start profiling: %w", err)
	}
	cleanups = append(cleanups, func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "lunar: write profiles: %v\n", err)
		}
	})
	return nil
}

func runCleanups() {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	cleanups = nil
}

// toggle is an auto|on|off flag value; auto defers to whether the output
// is a terminal.
type toggle uint8

const (
	toggleAuto toggle = iota
	toggleOn
	toggleOff
)

func parseToggle(flag, value string) (toggle, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return toggleAuto, nil
	case "on", "always":
		return toggleOn, nil
	case "off", "never":
		return toggleOff, nil
	}
	return toggleAuto, fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
}

func (t toggle) enabled(f *os.File) bool {
	switch t {
	case toggleOn:
		return true
	case toggleOff:
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves --color for output written to f. An invalid value
// behaves like auto.
func useColor(cmd *cobra.Command, f *os.File) bool {
	value, _ := cmd.Root().PersistentFlags().GetString("color")
	t, _ := parseToggle("color", value)
	return t.enabled(f)
}

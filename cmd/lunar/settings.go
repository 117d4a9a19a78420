package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lunar/internal/dialect"
	"lunar/internal/driver"
	"lunar/internal/observ"
	"lunar/internal/project"
	"lunar/internal/trace"
)

// settings merges lunar.toml with the persistent flags.
type settings struct {
	manifest *project.Manifest
	// hasManifest is false when the defaults were used.
	hasManifest bool
	version     dialect.Version
	maxDiags    int
	quiet       bool
	timings     bool
	tracer      trace.Tracer
}

// loadSettings finds lunar.toml from the working directory. Flags win over
// the file.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	manifest, ok, err := project.Load(wd)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", project.ManifestName, err)
	}
	if ok && len(manifest.Unknown) > 0 {
		fmt.Fprintf(os.Stderr, "%s: ignoring unknown keys: %v\n", manifest.Path, manifest.Unknown)
	}

	flags := cmd.Root().PersistentFlags()
	s := &settings{
		manifest:    manifest,
		hasManifest: ok,
		tracer:      trace.FromContext(cmd.Context()),
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	name, err := flags.GetString("dialect")
	if err != nil {
		return nil, fmt.Errorf("failed to get dialect flag: %w", err)
	}
	if name != "" {
		s.version, err = dialect.Parse(name)
	} else {
		s.version, err = manifest.Config.Version()
	}
	if err != nil {
		return nil, err
	}

	maxDiags, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if maxDiags <= 0 {
		maxDiags = manifest.Config.Parse.MaxDiagnostics
	}
	s.maxDiags = maxDiags
	return s, nil
}

// driverOptions builds the per-file options; a timer is attached only
// when --timings is set.
func (s *settings) driverOptions() driver.Options {
	opts := driver.Options{
		Version:        s.version,
		MaxDiagnostics: s.maxDiags,
		Tracer:         s.tracer,
	}
	if s.timings {
		opts.Timer = observ.NewTimer()
	}
	return opts
}

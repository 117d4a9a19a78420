package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lunar/internal/diag"
	"lunar/internal/diagfmt"
	"lunar/internal/observ"
	"lunar/internal/source"
)

// printDiagnostics writes bag to stderr when it holds anything worth showing.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   2,
		ShowNotes: true,
	})
}

func printTimings(timer *observ.Timer) {
	if timer == nil {
		return
	}
	fmt.Fprint(os.Stderr, timer.Summary())
}

// findingsErr maps a bag with errors to errFindings.
func findingsErr(bag *diag.Bag) error {
	if bag != nil && bag.HasErrors() {
		return errFindings
	}
	return nil
}

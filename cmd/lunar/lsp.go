package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lunar/internal/lsp"
	"lunar/internal/trace"
	"lunar/internal/version"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run the lunar language server over stdio",
	Long: `Lsp serves diagnostics, folding ranges and document symbols to an
editor over the language server protocol on stdin and stdout`,
	Args: cobra.NoArgs,
	RunE: runLSP,
}

func init() {
	lspCmd.Flags().Duration("debounce", 150*time.Millisecond, "delay before re-analyzing after an edit")
}

func runLSP(cmd *cobra.Command, _ []string) error {
	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return fmt.Errorf("failed to get debounce flag: %w", err)
	}
	dialectName, err := cmd.Root().PersistentFlags().GetString("dialect")
	if err != nil {
		return fmt.Errorf("failed to get dialect flag: %w", err)
	}
	maxDiags, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	server := lsp.NewServer(lsp.ServerOptions{
		Debounce:       debounce,
		Dialect:        dialectName,
		MaxDiagnostics: maxDiags,
		Version:        version.Version,
		Tracer:         trace.FromContext(cmd.Context()),
	})
	return server.RunStdio()
}

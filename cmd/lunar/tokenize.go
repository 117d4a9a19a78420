package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lunar/internal/diagfmt"
	"lunar/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.lua",
	Short: "Tokenize a Lua source file",
	Long:  `Tokenize breaks a Lua source file into its tokens, trivia included`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml)")
	tokenizeCmd.Flags().Bool("no-trivia", false, "omit whitespace and comment tokens")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	noTrivia, err := cmd.Flags().GetBool("no-trivia")
	if err != nil {
		return fmt.Errorf("failed to get no-trivia flag: %w", err)
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	opts := s.driverOptions()

	result, err := driver.Tokenize(filePath, opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	printDiagnostics(cmd, result.Bag, result.FileSet)

	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, !noTrivia)
	case "json":
		err = diagfmt.FormatTokensJSON(os.Stdout, result.Tokens, !noTrivia)
	case "yaml":
		err = diagfmt.FormatTokensYAML(os.Stdout, result.Tokens, !noTrivia)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	printTimings(opts.Timer)
	return findingsErr(result.Bag)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lunar/internal/diagfmt"
	"lunar/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.lua",
	Short: "Parse a Lua source file and output its syntax tree",
	Long: `Parse builds the lossless syntax tree of a Lua source file, reports
every lexing and parsing problem and dumps the tree`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|pretty|json|none)")
	parseCmd.Flags().Bool("tokens", false, "include leaf tokens in the dump")
	parseCmd.Flags().Bool("trivia", false, "include trivia of each token (implies --tokens)")
	parseCmd.Flags().Bool("positions", false, "include line:column ranges")
	parseCmd.Flags().Bool("detect", false, "report the dialect features the file uses")
}

func runParse(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	var astOpts diagfmt.ASTOpts
	if astOpts.Tokens, err = cmd.Flags().GetBool("tokens"); err != nil {
		return fmt.Errorf("failed to get tokens flag: %w", err)
	}
	if astOpts.Trivia, err = cmd.Flags().GetBool("trivia"); err != nil {
		return fmt.Errorf("failed to get trivia flag: %w", err)
	}
	if astOpts.Positions, err = cmd.Flags().GetBool("positions"); err != nil {
		return fmt.Errorf("failed to get positions flag: %w", err)
	}
	astOpts.Tokens = astOpts.Tokens || astOpts.Trivia
	detect, err := cmd.Flags().GetBool("detect")
	if err != nil {
		return fmt.Errorf("failed to get detect flag: %w", err)
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	opts := s.driverOptions()
	opts.Detect = detect

	result, err := driver.Parse(filePath, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	printDiagnostics(cmd, result.Bag, result.FileSet)

	switch format {
	case "tree":
		err = diagfmt.FormatASTTree(os.Stdout, result.Tree, astOpts)
	case "pretty":
		err = diagfmt.FormatASTPretty(os.Stdout, result.Tree, astOpts)
	case "json":
		err = diagfmt.FormatASTJSON(os.Stdout, result.Tree, astOpts)
	case "none":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	printTimings(opts.Timer)
	return findingsErr(result.Bag)
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lunar/internal/ast"
	"lunar/internal/driver"
)

var printCmd = &cobra.Command{
	Use:   "print [flags] file.lua",
	Short: "Reprint a Lua source file from its syntax tree",
	Long: `Print parses a file and writes the tree back out. The output is
byte-identical to the input for any file that parses without errors;
--check verifies that instead of printing`,
	Args: cobra.ExactArgs(1),
	RunE: runPrint,
}

func init() {
	printCmd.Flags().Bool("check", false, "verify the reprinted text matches the source")
	printCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")
}

func runPrint(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	opts := s.driverOptions()
	opts.RoundTrip = check

	result, err := driver.Parse(filePath, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	printDiagnostics(cmd, result.Bag, result.FileSet)
	printTimings(opts.Timer)

	if check {
		if result.Bag.HasErrors() {
			return errFindings
		}
		if !s.quiet {
			fmt.Fprintf(os.Stdout, "%s: round trip ok\n", filePath)
		}
		return nil
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if _, err := io.WriteString(w, ast.Print(result.Tree)); err != nil {
		return err
	}
	return findingsErr(result.Bag)
}

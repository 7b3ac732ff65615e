package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsstyle/internal/diagfmt"
	"jsstyle/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.js",
	Short: "Parse a source file and print its AST",
	Long:  `Parse builds the syntax tree of a file, recovering after errors, and prints it`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	_, _, result, err := driver.ParseFile(filePath)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(cmd.OutOrStdout(), result)
	case "json":
		return diagfmt.FormatASTJSON(cmd.OutOrStdout(), result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

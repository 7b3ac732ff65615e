package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsstyle/internal/diagfmt"
	"jsstyle/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.js",
	Short: "Tokenize a source file",
	Long:  `Tokenize prints the token stream of a file together with lexical anomalies`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("all", false, "include whitespace tokens in pretty output")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to get all flag: %w", err)
	}

	_, result, err := driver.TokenizeFile(filePath)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result, all)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

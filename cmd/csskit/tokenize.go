package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"csskit/internal/diagfmt"
	"csskit/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.css",
	Short: "Print the tokens of a stylesheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if outputFormat != "pretty" && outputFormat != "json" {
		return fmt.Errorf("tokenize: unknown format %q", outputFormat)
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	res, err := driver.Tokenize(cmd.Context(), args[0], s.options(false))
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}
	s.report(res.Bag, res.FileSet)

	if outputFormat == "json" {
		err = diagfmt.FormatTokensJSON(s.out(), res.Tokens, res.FileSet, res.File.ID)
	} else {
		err = diagfmt.FormatTokensPretty(s.out(), res.Tokens, res.FileSet, res.File.ID)
	}
	if err != nil {
		return err
	}
	return s.result()
}

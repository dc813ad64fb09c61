package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"csskit/internal/diagfmt"
	"csskit/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file|dir|glob>...",
	Short: "Print the syntax tree of stylesheets",
	Args:  cobra.ArbitraryArgs,
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json|yaml)")
	parseCmd.Flags().Bool("raws", false, "include stored formatting")
}

func runParse(cmd *cobra.Command, args []string) error {
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	withRaws, err := cmd.Flags().GetBool("raws")
	if err != nil {
		return err
	}
	switch outputFormat {
	case "tree", "json", "yaml":
	default:
		return fmt.Errorf("parse: unknown format %q", outputFormat)
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	paths, err := s.inputs(args)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	fs, results, err := driver.ParseFiles(cmd.Context(), paths, s.options(false))
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	for _, res := range results {
		s.report(res.Bag, fs)
		if res.Root == nil {
			continue
		}
		if len(results) > 1 && outputFormat == "tree" {
			fmt.Fprintf(s.out(), "%s:\n", res.Path)
		}
		switch outputFormat {
		case "json":
			err = diagfmt.FormatASTJSON(s.out(), res.Root, withRaws)
		case "yaml":
			if len(results) > 1 {
				fmt.Fprintf(s.out(), "--- # %s\n", res.Path)
			}
			err = diagfmt.FormatASTYAML(s.out(), res.Root, withRaws)
		default:
			err = diagfmt.FormatASTPretty(s.out(), res.Root, withRaws)
		}
		if err != nil {
			return err
		}
	}
	return s.result()
}

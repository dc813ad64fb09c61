package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"csskit/internal/driver"
	"csskit/internal/source"
	"csskit/internal/ui"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] [path...]",
	Short: "Re-serialize stylesheets",
	Long: `fmt parses and writes back every file. Stored formatting is kept,
except that declarations inside blocks are moved onto their own line and
line breaks followed by at most one space are indented. --verbatim turns
that off; --reindent drops all stored line breaks and indentation.`,
	Args: cobra.ArbitraryArgs,
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "report files that would change and exit 1")
	fmtCmd.Flags().Bool("stdout", false, "print the output instead of rewriting files")
	fmtCmd.Flags().Bool("reindent", false, "drop stored line breaks and indentation")
	fmtCmd.Flags().Bool("verbatim", false, "keep stored whitespace exactly as parsed")
	fmtCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	reindent, err := cmd.Flags().GetBool("reindent")
	if err != nil {
		return err
	}
	verbatim, err := cmd.Flags().GetBool("verbatim")
	if err != nil {
		return err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	if toStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	paths, err := s.inputs(args)
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}
	opts := driver.FormatOptions{
		Options:  s.options(verbatim),
		Check:    check,
		Stdout:   toStdout,
		Reindent: reindent,
	}

	var (
		fs      *source.FileSet
		results []driver.FormatResult
	)
	work := func(obs driver.Observer) error {
		opts.Observer = obs
		var err error
		fs, results, err = driver.FormatPaths(cmd.Context(), paths, opts)
		return err
	}
	if !toStdout && !s.quiet && shouldUseTUI(mode) {
		err = ui.Run(cmd.ErrOrStderr(), "fmt", paths, work)
	} else {
		err = work(nil)
	}
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}

	for _, res := range results {
		s.report(res.Bag, fs)
		switch {
		case res.Err != nil:
		case toStdout:
			if _, err := s.out().Write(res.Formatted); err != nil {
				return err
			}
		case res.Changed && !check && !s.quiet:
			fmt.Fprintf(s.out(), "reformatted %s\n", res.Path)
		}
	}
	return s.result()
}

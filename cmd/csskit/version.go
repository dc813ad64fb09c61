package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"csskit/internal/version"
)

type versionPayload struct {
	Tool        string `json:"tool"`
	Version     string `json:"version"`
	GitCommit   string `json:"git_commit,omitempty"`
	BuildDate   string `json:"build_date,omitempty"`
	Fingerprint string `json:"fingerprint"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show csskit build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch strings.ToLower(outputFormat) {
	case "json":
		return renderVersionJSON(cmd.OutOrStdout())
	case "pretty":
		colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return err
		}
		useColor, err := readColor(colorFlag, os.Stdout)
		if err != nil {
			return err
		}
		renderVersionPretty(cmd.OutOrStdout(), useColor)
		return nil
	}
	return fmt.Errorf("unsupported format %q (must be pretty or json)", outputFormat)
}

func renderVersionPretty(out io.Writer, useColor bool) {
	saved := color.NoColor
	color.NoColor = !useColor
	defer func() { color.NoColor = saved }()
	for _, line := range version.Lines() {
		fmt.Fprintln(out, line)
	}
}

func renderVersionJSON(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(versionPayload{
		Tool:        "csskit",
		Version:     version.Version,
		GitCommit:   version.GitCommit,
		BuildDate:   version.BuildDate,
		Fingerprint: version.Fingerprint(),
	})
}

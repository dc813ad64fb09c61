package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"csskit/internal/version"
)

// errReported means the failure was already printed as diagnostics.
var errReported = errors.New("failed")

var rootCmd = &cobra.Command{
	Use:           "csskit",
	Short:         "CSS parser and formatting-preserving serializer",
	Long:          `csskit parses CSS into a tree that remembers its formatting and writes it back unchanged`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per file")
	pf.String("config", "", "path to csskit.toml (default: search upwards)")
	pf.Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	pf.String("path-mode", "auto", "how paths are shown (auto|absolute|relative|basename)")
	pf.String("diag-format", "pretty", "diagnostics format (pretty|short|json)")
	pf.String("trace", "", "write trace events to file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 0, "events kept by the ring tracer")
	pf.String("cpuprofile", "", "write a CPU profile to file")
	pf.String("memprofile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")
}

// exitCode maps a command error to the process status and prints it unless
// the command already reported it.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintf(os.Stderr, "csskit: %v\n", err)
	}
	return 1
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

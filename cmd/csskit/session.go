package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"csskit/internal/ast"
	"csskit/internal/diag"
	"csskit/internal/diagfmt"
	"csskit/internal/driver"
	"csskit/internal/format"
	"csskit/internal/observ"
	"csskit/internal/prof"
	"csskit/internal/project"
	"csskit/internal/source"
	"csskit/internal/trace"
)

// session carries the resolved global flags and project config of one
// command invocation.
type session struct {
	cmd      *cobra.Command
	cfg      *project.Config
	color    bool
	quiet    bool
	maxDiag  int
	jobs     int
	pathMode diagfmt.PathMode
	diagFmt  string
	timer    *observ.Timer
	profile  *prof.Session
	cleanup  func()
	failed   bool
}

func openSession(cmd *cobra.Command) (*session, error) {
	pf := cmd.Root().PersistentFlags()
	s := &session{cmd: cmd}

	colorFlag, err := pf.GetString("color")
	if err != nil {
		return nil, err
	}
	if s.color, err = readColor(colorFlag, os.Stderr); err != nil {
		return nil, err
	}
	if s.quiet, err = pf.GetBool("quiet"); err != nil {
		return nil, err
	}
	if s.maxDiag, err = pf.GetInt("max-diagnostics"); err != nil {
		return nil, err
	}
	if s.jobs, err = pf.GetInt("jobs"); err != nil {
		return nil, err
	}
	modeFlag, err := pf.GetString("path-mode")
	if err != nil {
		return nil, err
	}
	mode, ok := diagfmt.ParsePathMode(modeFlag)
	if !ok {
		return nil, fmt.Errorf("invalid --path-mode value %q", modeFlag)
	}
	s.pathMode = mode
	if s.diagFmt, err = pf.GetString("diag-format"); err != nil {
		return nil, err
	}
	switch s.diagFmt {
	case "pretty", "short", "json":
	default:
		return nil, fmt.Errorf("invalid --diag-format value %q (expected pretty|short|json)", s.diagFmt)
	}
	timings, err := pf.GetBool("timings")
	if err != nil {
		return nil, err
	}
	if timings {
		s.timer = observ.NewTimer()
	}

	configPath, err := pf.GetString("config")
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		found, ok, err := project.Find(wd)
		if err != nil {
			return nil, err
		}
		if !ok {
			s.cfg, err = project.Discover(wd)
			if err != nil {
				return nil, err
			}
		}
		configPath = found
	}
	if s.cfg == nil {
		if s.cfg, err = project.Load(configPath); err != nil {
			if errors.Is(err, project.ErrInvalidConfig) {
				s.reportConfig(configPath, err)
				return nil, errReported
			}
			return nil, err
		}
	}

	var pc prof.Config
	if pc.CPU, err = pf.GetString("cpuprofile"); err != nil {
		return nil, err
	}
	if pc.Mem, err = pf.GetString("memprofile"); err != nil {
		return nil, err
	}
	if pc.Trace, err = pf.GetString("runtime-trace"); err != nil {
		return nil, err
	}

	if s.cleanup, err = setupTracing(cmd); err != nil {
		return nil, err
	}
	if pc.Enabled() {
		if s.profile, err = prof.Start(pc); err != nil {
			s.cleanup()
			return nil, err
		}
	}
	return s, nil
}

// close flushes tracing and prints timings. On failure the trace ring, if
// any, is dumped first.
func (s *session) close() {
	if s.failed {
		dumpRing(s.cmd, trace.FromContext(s.cmd.Context()))
	}
	if s.profile != nil {
		if err := s.profile.Stop(); err != nil {
			fmt.Fprintf(s.cmd.ErrOrStderr(), "csskit: %v\n", err)
		}
	}
	s.cleanup()
	if s.timer != nil && !s.quiet {
		fmt.Fprint(s.cmd.ErrOrStderr(), s.timer.Summary())
	}
}

// options returns the driver options for this invocation. verbatim is
// or'ed with the config value.
func (s *session) options(verbatim bool) driver.Options {
	return driver.Options{
		Jobs:           s.jobs,
		MaxDiagnostics: s.maxDiag,
		Parse:          s.cfg.ParseOptions(),
		Format: format.Options{
			Table:     s.cfg.Table(ast.DefaultTable()),
			Verbatim:  verbatim || s.cfg.Format.Verbatim,
		},
		Timer: s.timer,
	}
}

// inputs expands command arguments, or the configured include list when
// there are none.
func (s *session) inputs(args []string) ([]string, error) {
	paths, err := s.cfg.Expand(args)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, driver.ErrNoInputs
	}
	return paths, nil
}

// report prints the diagnostics of bag to stderr and records whether any
// of them was an error.
func (s *session) report(bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	if bag.HasErrors() {
		s.failed = true
	}
	bag.Sort()
	w := s.cmd.ErrOrStderr()
	var err error
	switch s.diagFmt {
	case "short":
		_, err = fmt.Fprintln(w, diag.FormatShortDiagnostics(bag.Items(), fs, true))
	case "json":
		err = diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         s.pathMode,
			IncludeNotes:     true,
		})
	default:
		err = diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     s.color,
			PathMode:  s.pathMode,
			ShowNotes: true,
			Snippet:   true,
		})
	}
	if err != nil {
		fmt.Fprintf(w, "csskit: %v\n", err)
	}
}

// reportConfig prints a config error as a diagnostic on the config file.
func (s *session) reportConfig(path string, err error) {
	fs := source.NewFileSet()
	id, loadErr := fs.Load(path)
	if loadErr != nil {
		id = fs.AddVirtual(path, nil)
	}
	msg := err.Error()
	if inner := errors.Unwrap(err); inner != nil {
		msg = inner.Error()
	}
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.ProjInvalidConfig, source.Span{File: id}, msg))
	s.report(bag, fs)
}

func (s *session) out() io.Writer { return s.cmd.OutOrStdout() }

func (s *session) result() error {
	if s.failed {
		return errReported
	}
	return nil
}

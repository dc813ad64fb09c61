package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"csskit/internal/driver"
	"csskit/internal/source"
	"csskit/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path...]",
	Short: "Verify that stylesheets survive parse and stringify unchanged",
	Args:  cobra.ArbitraryArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("no-cache", false, "do not read or write the result cache")
	checkCmd.Flags().Bool("drop-cache", false, "remove cached results before checking")
	checkCmd.Flags().String("cache-dir", "", "cache directory (default: user cache dir)")
	checkCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	dropCache, err := cmd.Flags().GetBool("drop-cache")
	if err != nil {
		return err
	}
	cacheDir, err := cmd.Flags().GetString("cache-dir")
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

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	paths, err := s.inputs(args)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	opts := driver.CheckOptions{
		Options:   s.options(false),
		CacheSalt: fmt.Sprintf("max_depth=%d", s.cfg.Parse.MaxDepth),
	}
	if !noCache {
		cache, err := openCache(cacheDir)
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}
		if dropCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("check: %w", err)
			}
		}
		opts.Cache = cache
	}

	var (
		fs      *source.FileSet
		results []driver.CheckResult
	)
	work := func(obs driver.Observer) error {
		opts.Observer = obs
		var err error
		fs, results, err = driver.CheckPaths(cmd.Context(), paths, opts)
		return err
	}
	if !s.quiet && shouldUseTUI(mode) {
		err = ui.Run(cmd.ErrOrStderr(), "check", paths, work)
	} else {
		err = work(nil)
	}
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	var failed, cached, nodes int
	for _, res := range results {
		s.report(res.Bag, fs)
		if !res.OK {
			failed++
			s.failed = true
		}
		if res.Cached {
			cached++
		}
		nodes += res.Nodes
	}
	if !s.quiet {
		fmt.Fprintf(s.out(), "checked %d files (%d nodes, %d cached), %d failed\n", len(results), nodes, cached, failed)
	}
	return s.result()
}

func openCache(dir string) (*driver.DiskCache, error) {
	if dir != "" {
		return driver.NewDiskCache(dir)
	}
	return driver.OpenDiskCache("csskit")
}

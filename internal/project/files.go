package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Extension is the suffix used when a directory is expanded.
const Extension = ".css"

func validPattern(p string) bool {
	return doublestar.ValidatePattern(filepath.ToSlash(p))
}

// Expand turns command-line arguments into a sorted, de-duplicated list of
// absolute file paths. Arguments may be files, directories (searched for
// *.css) or doublestar globs. With no arguments the [files] include list is
// used. Paths matching an exclude pattern, relative to the project root, are
// dropped.
func (c *Config) Expand(args []string) ([]string, error) {
	root := c.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("working directory: %w", err)
		}
		root = wd
	}
	inputs := args
	base := ""
	if len(inputs) == 0 {
		inputs = c.Files.Include
		base = root
	}

	seen := make(map[string]bool)
	var out []string
	for _, in := range inputs {
		if base != "" && !filepath.IsAbs(in) {
			in = filepath.Join(base, in)
		}
		matches, err := expandOne(in)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			abs, err := filepath.Abs(m)
			if err != nil {
				return nil, fmt.Errorf("resolve %q: %w", m, err)
			}
			if seen[abs] || c.excluded(root, abs) {
				continue
			}
			seen[abs] = true
			out = append(out, abs)
		}
	}
	sort.Strings(out)
	return out, nil
}

func expandOne(arg string) ([]string, error) {
	slash := filepath.ToSlash(arg)
	if !hasMeta(slash) {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", arg, err)
		}
		if !info.IsDir() {
			return []string{arg}, nil
		}
		slash = strings.TrimSuffix(slash, "/") + "/**/*" + Extension
	}
	if !doublestar.ValidatePattern(slash) {
		return nil, fmt.Errorf("bad glob %q", arg)
	}
	dir, pattern := doublestar.SplitPattern(slash)
	matches, err := doublestar.Glob(os.DirFS(filepath.FromSlash(dir)), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", arg, err)
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = filepath.Join(filepath.FromSlash(dir), filepath.FromSlash(m))
	}
	return out, nil
}

func (c *Config) excluded(root, abs string) bool {
	if len(c.Files.Exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		rel = abs
	}
	rel = filepath.ToSlash(rel)
	for _, p := range c.Files.Exclude {
		if ok, _ := doublestar.Match(filepath.ToSlash(p), rel); ok {
			return true
		}
	}
	return false
}

func hasMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}


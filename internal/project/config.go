// Package project finds and decodes csskit.toml and expands the file sets it
// and the command line name.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"csskit/internal/ast"
	"csskit/internal/parser"
)

// FileName is the project file looked up from the working directory.
const FileName = "csskit.toml"

// ErrInvalidConfig wraps every decoding or validation failure.
var ErrInvalidConfig = errors.New("invalid csskit.toml")

// Config is the decoded project file. The zero value is the built-in default.
type Config struct {
	Path string `toml:"-"`
	Root string `toml:"-"`

	Format FormatConfig `toml:"format"`
	Parse  ParseConfig  `toml:"parse"`
	Files  FilesConfig  `toml:"files"`

	set map[string]bool
}

type FormatConfig struct {
	Indent    string `toml:"indent"`
	Colon     string `toml:"colon"`
	Semicolon bool   `toml:"semicolon"`
	Verbatim  bool   `toml:"verbatim"`
}

type ParseConfig struct {
	MaxDepth int `toml:"max_depth"`
}

type FilesConfig struct {
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

// Find walks up from startDir and returns the path of the nearest
// csskit.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolve %q: %w", startDir, err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		_, statErr := os.Stat(candidate)
		if statErr == nil {
			return candidate, true, nil
		}
		if !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Discover loads the nearest csskit.toml above startDir, or returns the
// default config rooted at startDir when there is none.
func Discover(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		root, absErr := filepath.Abs(startDir)
		if absErr != nil {
			return nil, fmt.Errorf("resolve %q: %w", startDir, absErr)
		}
		return &Config{Root: root}, nil
	}
	return Load(path)
}

// Load decodes the file at path. Keys csskit does not know are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", path, err)
	}
	cfg.Path = abs
	cfg.Root = filepath.Dir(abs)
	return cfg, nil
}

// Decode parses TOML text into a Config.
func Decode(text string) (*Config, error) {
	var cfg Config
	meta, err := toml.Decode(text, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	cfg.set = make(map[string]bool)
	for _, k := range meta.Keys() {
		cfg.set[k.String()] = true
	}
	if cfg.Parse.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: parse.max_depth must not be negative", ErrInvalidConfig)
	}
	if cfg.set["format.indent"] && strings.Trim(cfg.Format.Indent, " \t") != "" {
		return nil, fmt.Errorf("%w: format.indent must be spaces or tabs", ErrInvalidConfig)
	}
	for _, p := range append(append([]string(nil), cfg.Files.Include...), cfg.Files.Exclude...) {
		if !validPattern(p) {
			return nil, fmt.Errorf("%w: bad glob %q", ErrInvalidConfig, p)
		}
	}
	return &cfg, nil
}

// IsSet reports whether the dotted key was present in the file.
func (c *Config) IsSet(key string) bool {
	return c != nil && c.set[key]
}

// Table returns base with the [format] overrides applied.
func (c *Config) Table(base ast.Table) ast.Table {
	if c.IsSet("format.indent") {
		base = base.With(ast.DefIndent, c.Format.Indent)
	}
	if c.IsSet("format.colon") {
		base = base.With(ast.DefColon, c.Format.Colon)
	}
	if c.IsSet("format.semicolon") {
		v := "false"
		if c.Format.Semicolon {
			v = "true"
		}
		base = base.With(ast.DefSemicolon, v)
	}
	return base
}

// ParseOptions returns the parser options from [parse].
func (c *Config) ParseOptions() []parser.Option {
	if c == nil || c.Parse.MaxDepth == 0 {
		return nil
	}
	return []parser.Option{parser.WithMaxDepth(c.Parse.MaxDepth)}
}

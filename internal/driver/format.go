package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"csskit/internal/ast"
	"csskit/internal/diag"
	"csskit/internal/format"
	"csskit/internal/source"
)

// ErrNoInputs is returned when a batch operation gets no files.
var ErrNoInputs = errors.New("no input files")

type FormatOptions struct {
	Options
	// Check reports files that would change without writing them.
	Check bool
	// Stdout returns the output in FormatResult.Formatted instead of writing.
	Stdout bool
	// Reindent drops stored before and after raws so the table decides layout.
	Reindent bool
}

type FormatResult struct {
	Path      string
	FileID    source.FileID
	Changed   bool
	Formatted []byte
	Bag       *diag.Bag
	Err       error
}

// FormatPaths re-serializes every file with opts.Format. Files that already
// have one declaration per line and indented lines come back unchanged.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) (*source.FileSet, []FormatResult, error) {
	if len(paths) == 0 {
		return nil, nil, ErrNoInputs
	}
	fs := source.NewFileSet()
	_, done := opts.phase(ctx, "load")
	files := loadAll(fs, paths)
	done(fmt.Sprintf("%d files", len(files)))

	results := make([]FormatResult, len(files))
	pctx, done := opts.phase(ctx, "format")
	err := forEach(pctx, opts.jobs(len(files)), len(files), func(ctx context.Context, i int) error {
		f := files[i]
		start := time.Now()
		opts.Observer.emit(Event{Path: f.path, Index: i, Total: len(files), Status: StatusWorking})
		if f.err != nil {
			bag := opts.newBag()
			bag.Add(loadDiagnostic(f.id, f.err))
			results[i] = FormatResult{Path: f.path, FileID: f.id, Bag: bag, Err: f.err}
		} else {
			results[i] = formatFile(ctx, f.path, fs.Get(f.id), opts)
		}
		status := StatusDone
		if results[i].Err != nil {
			status = StatusFailed
		}
		opts.Observer.emit(Event{Path: f.path, Index: i, Total: len(files), Status: status, Elapsed: time.Since(start)})
		return nil
	})
	done("")
	return fs, results, err
}

func formatFile(ctx context.Context, path string, file *source.File, opts FormatOptions) FormatResult {
	parsed := parseFile(ctx, file, opts.Options)
	res := FormatResult{Path: path, FileID: file.ID, Bag: parsed.Bag, Err: parsed.Err}
	if parsed.Root == nil {
		return res
	}

	span := fileSpan(ctx, "stringify", file.Path)
	var root ast.Node = parsed.Root
	if opts.Reindent {
		root = ast.Clean(root, ast.RawBefore, ast.RawAfter)
	}
	out := format.Stringify(root, opts.Format)
	span.End("")

	res.Changed = out != file.Text()
	res.Formatted = []byte(out)
	switch {
	case opts.Check:
		if res.Changed {
			res.Bag.Add(diag.NewError(diag.ChkNotFormatted, firstDiff(file, out), "file is not formatted"))
		}
	case opts.Stdout:
	case res.Changed:
		if err := writeFile(path, file, res.Formatted); err != nil {
			res.Err = err
			res.Bag.Add(diag.NewError(diag.IOWriteFileError, source.Span{File: file.ID}, err.Error()))
		}
	}
	return res
}

// writeFile replaces path keeping its mode and restoring a stripped BOM.
func writeFile(path string, file *source.File, content []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if file.Flags&source.FileHadBOM != 0 {
		content = append(append([]byte(nil), source.BOM...), content...)
	}
	if err := os.WriteFile(path, content, mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// firstDiff returns a one-character span at the first position where out
// differs from the file text.
func firstDiff(file *source.File, out string) source.Span {
	text := file.Text()
	n := min(len(text), len(out))
	i := 0
	for i < n && text[i] == out[i] {
		i++
	}
	for i > 0 && i < len(text) && !utf8.RuneStart(text[i]) {
		i--
	}
	off := source.RuneOffset(text, i)
	return source.Span{File: file.ID, Start: off, End: off + 1}
}


package driver

import (
	"context"
	"fmt"
	"time"

	"csskit/internal/ast"
	"csskit/internal/diag"
	"csskit/internal/parser"
	"csskit/internal/source"
)

// ParseResult is the outcome for one file. Root is nil when the file failed
// to load or parse; the reason is in Bag.
type ParseResult struct {
	Path   string
	FileID source.FileID
	Root   *ast.Root
	Bag    *diag.Bag
	Err    error
}

// Parse loads and parses a single file.
func Parse(ctx context.Context, path string, opts Options) (*source.FileSet, *ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", path, err)
	}
	res := parseFile(ctx, fs.Get(id), opts)
	return fs, &res, nil
}

// ParseFiles parses paths concurrently. Results are in input order.
func ParseFiles(ctx context.Context, paths []string, opts Options) (*source.FileSet, []ParseResult, error) {
	fs := source.NewFileSet()
	_, done := opts.phase(ctx, "load")
	files := loadAll(fs, paths)
	done(fmt.Sprintf("%d files", len(files)))

	results := make([]ParseResult, len(files))
	pctx, done := opts.phase(ctx, "parse")
	err := forEach(pctx, opts.jobs(len(files)), len(files), func(ctx context.Context, i int) error {
		f := files[i]
		start := time.Now()
		opts.Observer.emit(Event{Path: f.path, Index: i, Total: len(files), Status: StatusWorking})
		if f.err != nil {
			bag := opts.newBag()
			bag.Add(loadDiagnostic(f.id, f.err))
			results[i] = ParseResult{Path: f.path, FileID: f.id, Bag: bag, Err: f.err}
		} else {
			results[i] = parseFile(ctx, fs.Get(f.id), opts)
		}
		status := StatusDone
		if results[i].Root == nil {
			status = StatusFailed
		}
		opts.Observer.emit(Event{Path: f.path, Index: i, Total: len(files), Status: status, Elapsed: time.Since(start)})
		return nil
	})
	done("")
	return fs, results, err
}

func parseFile(ctx context.Context, file *source.File, opts Options) ParseResult {
	bag := opts.newBag()
	span := fileSpan(ctx, "parse", file.Path)
	popts := append([]parser.Option{
		parser.WithFile(file.Path),
		parser.WithFileID(file.ID),
		parser.WithReporter(diag.BagReporter{Bag: bag}),
	}, opts.Parse...)
	root, err := parser.Parse(file.Text(), popts...)
	if err != nil {
		span.End("error")
		return ParseResult{Path: file.Path, FileID: file.ID, Bag: bag, Err: err}
	}
	span.WithExtra("nodes", fmt.Sprint(ast.Count(root))).End("")
	return ParseResult{Path: file.Path, FileID: file.ID, Root: root, Bag: bag}
}

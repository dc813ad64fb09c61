package driver

import (
	"context"
	"fmt"
	"time"

	"csskit/internal/ast"
	"csskit/internal/diag"
	"csskit/internal/format"
	"csskit/internal/source"
	"csskit/internal/trace"
)

type CheckOptions struct {
	Options
	// CacheSalt separates cache entries produced under different parse
	// options.
	CacheSalt string
}

// CheckResult reports whether a file survives parse and stringify unchanged.
type CheckResult struct {
	Path   string
	FileID source.FileID
	OK     bool
	Cached bool
	Nodes  int
	Bag    *diag.Bag
}

// CheckPaths verifies the byte-for-byte round trip of every file.
func CheckPaths(ctx context.Context, paths []string, opts CheckOptions) (*source.FileSet, []CheckResult, error) {
	if len(paths) == 0 {
		return nil, nil, ErrNoInputs
	}
	fs := source.NewFileSet()
	_, done := opts.phase(ctx, "load")
	files := loadAll(fs, paths)
	done(fmt.Sprintf("%d files", len(files)))

	results := make([]CheckResult, len(files))
	pctx, done := opts.phase(ctx, "check")
	err := forEach(pctx, opts.jobs(len(files)), len(files), func(ctx context.Context, i int) error {
		f := files[i]
		start := time.Now()
		opts.Observer.emit(Event{Path: f.path, Index: i, Total: len(files), Status: StatusWorking})
		if f.err != nil {
			bag := opts.newBag()
			bag.Add(loadDiagnostic(f.id, f.err))
			results[i] = CheckResult{Path: f.path, FileID: f.id, Bag: bag}
		} else {
			results[i] = checkFile(ctx, f.path, fs.Get(f.id), opts)
		}
		status := StatusDone
		switch {
		case results[i].Cached:
			status = StatusCached
		case !results[i].OK:
			status = StatusFailed
		}
		opts.Observer.emit(Event{Path: f.path, Index: i, Total: len(files), Status: status, Elapsed: time.Since(start)})
		return nil
	})
	done("")
	return fs, results, err
}

func checkFile(ctx context.Context, path string, file *source.File, opts CheckOptions) CheckResult {
	res := CheckResult{Path: path, FileID: file.ID, Bag: opts.newBag()}
	key := CacheKey(file.Content, opts.CacheSalt)

	var cached CheckPayload
	if hit, err := opts.Cache.Get(key, &cached); err == nil && hit {
		res.OK, res.Nodes, res.Cached = cached.OK, cached.Nodes, true
		trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-hit", path, trace.ParentSpan(ctx))
		fromCached(res.Bag, file.ID, cached.Diagnostics)
		return res
	}

	span := fileSpan(ctx, "check", file.Path)
	parsed := parseFile(ctx, file, opts.Options)
	res.Bag.Merge(parsed.Bag)
	if parsed.Root != nil {
		res.Nodes = ast.Count(parsed.Root)
		verbatim := opts.Format
		verbatim.Verbatim = true
		out := format.Stringify(parsed.Root, verbatim)
		if out == file.Text() {
			res.OK = true
		} else {
			res.Bag.Add(diag.NewError(diag.ChkRoundTripMismatch, firstDiff(file, out), "output differs from input"))
		}
	}
	span.WithExtra("ok", fmt.Sprint(res.OK)).End("")

	// a failed write only costs a re-check next time
	_ = opts.Cache.Put(key, &CheckPayload{OK: res.OK, Nodes: res.Nodes, Diagnostics: toCached(res.Bag.Items())})
	return res
}

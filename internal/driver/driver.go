// Package driver runs the tokenizer, parser and serializer over files on
// disk. It loads inputs into a source.FileSet, fans work out over a bounded
// errgroup and collects per-file diagnostics into bags.
package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"csskit/internal/diag"
	"csskit/internal/format"
	"csskit/internal/observ"
	"csskit/internal/parser"
	"csskit/internal/source"
	"csskit/internal/trace"
)

const defaultMaxDiagnostics = 128

// Options are shared by the batch operations.
type Options struct {
	// Jobs bounds concurrency; <= 0 means GOMAXPROCS.
	Jobs           int
	MaxDiagnostics int
	Parse          []parser.Option
	Format         format.Options
	// Cache, when non-nil, short-circuits CheckPaths for unchanged inputs.
	Cache *DiskCache
	// Observer receives progress events. It is called from worker goroutines.
	Observer Observer
	Timer    *observ.Timer
}

func (o Options) jobs(n int) int {
	j := o.Jobs
	if j <= 0 {
		j = runtime.GOMAXPROCS(0)
	}
	return max(1, min(j, n))
}

func (o Options) newBag() *diag.Bag {
	n := o.MaxDiagnostics
	if n <= 0 {
		n = defaultMaxDiagnostics
	}
	return diag.NewBag(n)
}

// phase times a batch step and opens the pass span that per-file spans of
// the step nest under.
func (o Options) phase(ctx context.Context, name string) (context.Context, func(note string)) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, name, trace.ParentSpan(ctx))
	ctx = trace.WithSpan(ctx, span.ID())
	idx := -1
	if o.Timer != nil {
		idx = o.Timer.Begin(name)
	}
	return ctx, func(note string) {
		span.End(note)
		if o.Timer != nil {
			o.Timer.End(idx, note)
		}
	}
}

// loaded is an input file after the sequential load step.
type loaded struct {
	path string
	id   source.FileID
	err  error
}

// loadAll reads every path into fs. FileSet is not safe for concurrent
// writers, so this runs before the workers start.
func loadAll(fs *source.FileSet, paths []string) []loaded {
	out := make([]loaded, len(paths))
	for i, p := range paths {
		id, err := fs.Load(p)
		if err != nil {
			id = fs.AddVirtual(p, nil)
		}
		out[i] = loaded{path: p, id: id, err: err}
	}
	return out
}

// forEach runs fn for 0..n-1 with at most jobs in flight. Workers stop
// picking up new indices once ctx is done.
func forEach(ctx context.Context, jobs, n int, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}
	return g.Wait()
}

// fileSpan opens the per-file trace span under the span stored in ctx.
func fileSpan(ctx context.Context, name, path string) *trace.Span {
	return trace.Begin(trace.FromContext(ctx), trace.ScopeFile, name, trace.ParentSpan(ctx)).WithExtra("path", path)
}

func loadDiagnostic(fileID source.FileID, err error) diag.Diagnostic {
	return diag.NewError(diag.IOLoadFileError, source.Span{File: fileID}, err.Error())
}

package driver

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"synerr/internal/diag"
	"synerr/internal/source"
	"synerr/internal/trace"
)

// Options controls a batch run.
type Options struct {
	Jobs int // max parallel workers, 0 = GOMAXPROCS
}

// Report builds a syntax error for every request and returns them in request
// order. Each distinct file is loaded once. A file that cannot be loaded
// aborts the run. The list is unbounded; renderers decide how much to print.
func Report(ctx context.Context, reqs []Request, opts Options) (*diag.List, error) {
	tracer := trace.FromContext(ctx)
	batch := trace.Begin(tracer, trace.ScopeBatch, "batch", 0).
		WithExtra("requests", strconv.Itoa(len(reqs)))
	defer batch.End("")

	list := diag.NewList(0)
	if len(reqs) == 0 {
		return list, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	sources, err := loadSources(ctx, reqs, jobs, batch.ID())
	if err != nil {
		return nil, err
	}

	// Indexes are unique per goroutine, no mutex needed.
	results := make([]*diag.Error, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(reqs)))
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = diag.SyntaxError(sources[req.File], req.Offset, req.Description)
			trace.Point(tracer, trace.ScopeError, "syntax-error", req.File+": "+req.Description, batch.ID())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, e := range results {
		list.Add(e)
	}
	return list, nil
}

func loadSources(ctx context.Context, reqs []Request, jobs int, parent uint64) (map[string]*source.Source, error) {
	var paths []string
	seen := make(map[string]struct{}, len(reqs))
	for _, req := range reqs {
		if _, ok := seen[req.File]; ok {
			continue
		}
		seen[req.File] = struct{}{}
		paths = append(paths, req.File)
	}

	tracer := trace.FromContext(ctx)
	loaded := make([]*source.Source, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			span := trace.Begin(tracer, trace.ScopeFile, "load", parent).WithExtra("file", path)
			src, err := source.Load(path)
			if err != nil {
				span.End("failed")
				return fmt.Errorf("failed to load %s: %w", path, err)
			}
			span.End("")
			loaded[i] = src
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sources := make(map[string]*source.Source, len(paths))
	for i, path := range paths {
		i, path := i, path
		sources[path] = loaded[i]
	}
	return sources, nil
}

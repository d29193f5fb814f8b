// Package indexing runs the four-stage build pipeline (C4): a directory
// walker feeds an id-assigning coordinator, which dispatches to a pool of
// token-extraction workers, whose results a single merger folds into the
// exact, exact_lower, and trigram posting maps.
package indexing

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/searchidx/internal/config"
	"github.com/standardbeagle/searchidx/internal/debug"
	"github.com/standardbeagle/searchidx/internal/pathindex"
	"github.com/standardbeagle/searchidx/internal/postings"
)

// log tags every debug line this package emits with "INDEX".
var log = debug.New("INDEX")

// Build walks cfg.Root and returns the in-memory path registry and three
// posting maps produced by a single run of the pipeline. Per-file I/O or
// extraction errors are swallowed (the file keeps its id but contributes
// no postings); only a walker fault or a cancelled context fail the
// whole build.
func Build(ctx context.Context, cfg *config.Config) (*Result, error) {
	capacity := cfg.ChannelCapacity
	if capacity <= 0 {
		capacity = 1024
	}
	workerCount := runtime.GOMAXPROCS(0)
	if workerCount < 1 {
		workerCount = 1
	}

	f := newFilter(cfg)
	reg := pathindex.New()
	exact := postings.New()
	exactLower := postings.New()
	trigram := postings.New()

	paths := make(chan string, capacity)
	tasks := make(chan fileTask, capacity)
	results := make(chan fileResult, capacity)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return walk(gctx, cfg, f, paths)
	})

	g.Go(func() error {
		return coordinate(gctx, reg, paths, tasks)
	})

	g.Go(func() error {
		runWorkers(gctx, workerCount, tasks, results)
		return nil
	})

	g.Go(func() error {
		merge(results, exact, exactLower, trigram)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("build complete: %d files, %d dirs, exact=%d exact_lower=%d trigram=%d keys",
		reg.Count(), reg.DirectoryCount(), exact.KeyCount(), exactLower.KeyCount(), trigram.KeyCount())

	return &Result{
		Paths:      reg,
		Exact:      exact,
		ExactLower: exactLower,
		Trigram:    trigram,
		FileCount:  reg.Count(),
	}, nil
}

package indexing

import (
	"context"
	"sync"

	"github.com/standardbeagle/searchidx/internal/tokenize"
)

// runWorkers starts count token-extraction workers consuming tasks and
// emitting fileResult to results. A per-file extraction failure is
// non-fatal: the worker logs it and emits an empty token set, so the
// file-id remains allocated and contributes zero postings rather than
// aborting the build.
//
// results is closed once every worker has drained tasks, which is why
// the caller must start the merger before waiting on this function.
func runWorkers(ctx context.Context, count int, tasks <-chan fileTask, results chan<- fileResult) {
	var wg sync.WaitGroup
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			extractWorker(ctx, tasks, results)
		}()
	}
	wg.Wait()
	close(results)
}

func extractWorker(ctx context.Context, tasks <-chan fileTask, results chan<- fileResult) {
	for task := range tasks {
		toks, err := tokenize.ExtractFile(task.path)
		if err != nil {
			log.Printf("extraction failed for %s: %v", task.path, err)
			toks = tokenize.FileTokens{
				Exact:      map[uint64]struct{}{},
				ExactLower: map[uint64]struct{}{},
				Trigram:    map[uint32]struct{}{},
			}
		}

		select {
		case results <- fileResult{id: task.id, tokens: toks}:
		case <-ctx.Done():
			return
		}
	}
}

package indexing

import "github.com/standardbeagle/searchidx/internal/postings"

// merge is the single consumer that folds worker results into the three
// posting maps. It may run concurrently with the workers (streaming) --
// insertion order within a bitmap doesn't matter, only the final
// membership does -- and terminates when results is closed and drained.
func merge(results <-chan fileResult, exact, exactLower, trigram *postings.Map) int {
	count := 0
	for res := range results {
		count++
		for h := range res.tokens.Exact {
			exact.Insert(h, res.id)
		}
		for h := range res.tokens.ExactLower {
			exactLower.Insert(h, res.id)
		}
		for t := range res.tokens.Trigram {
			trigram.Insert(uint64(t), res.id)
		}
	}
	return count
}

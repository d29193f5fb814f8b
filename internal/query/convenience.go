package query

import (
	"github.com/standardbeagle/searchidx/internal/pathindex"
	"github.com/standardbeagle/searchidx/internal/postings"
)

// Exact runs a case-sensitive identifier query against the exact posting
// store -- a thin wrapper over Run kept because the library surface
// (spec.md §6) exposes query_exact and query_fuzzy as distinct entry
// points rather than funneling every caller through one mode parameter.
func Exact(paths *pathindex.Registry, exact *postings.Map, q string, opts Options) (Result, error) {
	return Run(paths, exact, ModeExact, q, opts)
}

// Fuzzy runs a trigram substring query against the trigram posting
// store.
func Fuzzy(paths *pathindex.Registry, trigram *postings.Map, q string, opts Options) (Result, error) {
	return Run(paths, trigram, ModeFuzzy, q, opts)
}

// Word runs a word-tokenized query against a legacy TKIX index's
// combined posting store (persistence.Index.Legacy). There is no
// split-format equivalent of this store; Word exists only for the
// compatibility path spec.md §4.4 describes, and must never be called
// with exact, exact_lower, or trigram in place of legacy.
func Word(paths *pathindex.Registry, legacy *postings.Map, q string, opts Options) (Result, error) {
	return Run(paths, legacy, ModeWord, q, opts)
}

package query

import (
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/standardbeagle/searchidx/internal/debug"
	"github.com/standardbeagle/searchidx/internal/errors"
	"github.com/standardbeagle/searchidx/internal/pathindex"
	"github.com/standardbeagle/searchidx/internal/postings"
	"github.com/standardbeagle/searchidx/internal/tokenize"
	"github.com/standardbeagle/searchidx/internal/types"
)

// log tags every debug line this package emits with "QUERY".
var log = debug.New("QUERY")

// Run executes a query against the given posting store and mode. The
// caller is responsible for passing the store that matches mode: exact
// uses the split-format exact store, exact_lower uses the lowercased
// store, fuzzy uses the trigram store, and word uses the legacy
// combined store (persistence.Index.Legacy) -- never exact, since the
// word and identifier-preserving tokenizers do not produce the same
// keys for the same input (see the doc comment on ModeWord). Run itself
// doesn't enforce this; callers should go through Exact/Fuzzy/Word in
// internal/query/convenience.go rather than calling Run directly with a
// mismatched store.
func Run(paths *pathindex.Registry, store *postings.Map, mode Mode, q string, opts Options) (Result, error) {
	keys, err := tokenizeQuery(mode, q)
	if err != nil {
		return Result{}, err
	}
	log.Printf("mode=%d query=%q tokens=%d", mode, q, len(keys))

	if len(keys) == 0 {
		return Result{QueryTokenCount: 0, MatchedTokenCount: 0}, nil
	}

	var bitmaps []*roaring.Bitmap
	for _, k := range keys {
		if bm, ok := store.Lookup(k); ok && !bm.IsEmpty() {
			bitmaps = append(bitmaps, bm)
		}
	}

	result := Result{QueryTokenCount: len(keys), MatchedTokenCount: len(bitmaps)}
	if len(bitmaps) == 0 {
		return result, nil
	}

	var combined *roaring.Bitmap
	if opts.MatchAll {
		combined = postings.Intersect(bitmaps)
	} else {
		combined = postings.Union(bitmaps)
	}

	globs, err := compileGlobs(opts.GlobPatterns)
	if err != nil {
		return Result{}, err
	}
	pathNeedle := strings.ToLower(opts.PathContains)
	excludeNeedle := strings.ToLower(opts.Exclude)

	it := combined.Iterator()
	for it.HasNext() {
		if opts.Limit > 0 && len(result.Files) >= opts.Limit {
			break
		}
		id := it.Next()
		full, ok := paths.Path(types.FileID(id))
		if !ok {
			continue
		}
		if !passesFilters(full, pathNeedle, excludeNeedle, globs) {
			continue
		}
		result.Files = append(result.Files, full)
	}
	return result, nil
}

// tokenizeQuery runs the scanner matching mode over the query text and
// returns the posting-map keys it produces. Exact and exact_lower run the
// identifier-preserving scanner (exact_lower lowercasing each token) and
// word runs the word scanner, each hashing to 64 bits (word does not
// produce the same keys as exact for the same input -- see ModeWord);
// fuzzy widens its 24-bit packed trigrams
// into the same uint64 key space the posting map uses for every mode.
func tokenizeQuery(mode Mode, q string) ([]uint64, error) {
	data := []byte(q)
	switch mode {
	case ModeExact:
		return tokenize.ExactTokenHashes(data), nil
	case ModeExactLower:
		return tokenize.ExactLowerTokenHashes(data), nil
	case ModeWord:
		return tokenize.WordTokenHashes(data), nil
	case ModeFuzzy:
		trigrams := tokenize.Trigrams(data)
		keys := make([]uint64, len(trigrams))
		for i, tg := range trigrams {
			keys[i] = uint64(tg)
		}
		return keys, nil
	default:
		return nil, errors.New(errors.KindMissingQueryMode, "unknown query mode")
	}
}

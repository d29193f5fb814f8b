package persistence

import (
	"github.com/standardbeagle/searchidx/internal/debug"
	"github.com/standardbeagle/searchidx/internal/indexing"
	"github.com/standardbeagle/searchidx/internal/pathindex"
	"github.com/standardbeagle/searchidx/internal/postings"
)

// log tags every debug line this package emits with "PERSIST".
var log = debug.New("PERSIST")

// Index is the read-only, loaded form of one build: the path registry
// and its posting maps, all sharing one header. A split-format load
// populates Exact/ExactLower/Trigram and leaves Legacy nil; a
// LoadLegacy load populates only Legacy (the word-tokenized combined
// store) and leaves the other three nil. The two families are never
// mixed: word-mode queries use Legacy, every other mode uses its
// matching split-format map.
type Index struct {
	Header     Header
	Paths      *pathindex.Registry
	Exact      *postings.Map
	ExactLower *postings.Map
	Trigram    *postings.Map
	Legacy     *postings.Map
}

// SaveAll writes the four-file split format for res to base+suffix,
// minting one header shared across every file.
func SaveAll(base string, res *indexing.Result) error {
	h := NewHeader()

	if err := SavePaths(base, h, res.Paths); err != nil {
		return err
	}
	if err := SaveExact(base, h, res.Exact); err != nil {
		return err
	}
	if err := SaveExactLower(base, h, res.ExactLower); err != nil {
		return err
	}
	if err := SaveTrigram(base, h, res.Trigram); err != nil {
		return err
	}

	log.Printf("saved index %x to %s (%d files)", h.IndexID, base, res.Paths.Count())
	return nil
}

// LoadAll reads all four files with buffered readers and validates that
// they share one index_id.
func LoadAll(base string) (*Index, error) {
	ph, paths, err := LoadPaths(base)
	if err != nil {
		return nil, err
	}
	eh, exact, err := LoadExact(base)
	if err != nil {
		return nil, err
	}
	if err := ValidateIndexMatch(ph, eh); err != nil {
		return nil, err
	}
	elh, exactLower, err := LoadExactLower(base)
	if err != nil {
		return nil, err
	}
	if err := ValidateIndexMatch(ph, elh); err != nil {
		return nil, err
	}
	th, trigram, err := LoadTrigram(base)
	if err != nil {
		return nil, err
	}
	if err := ValidateIndexMatch(ph, th); err != nil {
		return nil, err
	}

	return &Index{Header: ph, Paths: paths, Exact: exact, ExactLower: exactLower, Trigram: trigram}, nil
}

// LoadAllMmap is LoadAll using memory-mapped reads, preferred for
// repeated queries against a warm index.
func LoadAllMmap(base string) (*Index, error) {
	ph, paths, err := LoadPathsMmap(base)
	if err != nil {
		return nil, err
	}
	eh, exact, err := LoadExactMmap(base)
	if err != nil {
		return nil, err
	}
	if err := ValidateIndexMatch(ph, eh); err != nil {
		return nil, err
	}
	elh, exactLower, err := LoadExactLowerMmap(base)
	if err != nil {
		return nil, err
	}
	if err := ValidateIndexMatch(ph, elh); err != nil {
		return nil, err
	}
	th, trigram, err := LoadTrigramMmap(base)
	if err != nil {
		return nil, err
	}
	if err := ValidateIndexMatch(ph, th); err != nil {
		return nil, err
	}

	return &Index{Header: ph, Paths: paths, Exact: exact, ExactLower: exactLower, Trigram: trigram}, nil
}

// IndexStats summarizes an on-disk index: file and directory counts,
// the key count of each posting map, and the build time.
type IndexStats struct {
	FileCount      int
	DirectoryCount int
	ExactKeys      int
	ExactLowerKeys int
	TrigramKeys    int
	CreatedAt      uint64
}

// Stats loads base in full with LoadAll and summarizes it -- the
// library-level operation the CLI's "stats" command composes.
func Stats(base string) (IndexStats, error) {
	idx, err := LoadAll(base)
	if err != nil {
		return IndexStats{}, err
	}
	return IndexStats{
		FileCount:      idx.Paths.Count(),
		DirectoryCount: idx.Paths.DirectoryCount(),
		ExactKeys:      idx.Exact.KeyCount(),
		ExactLowerKeys: idx.ExactLower.KeyCount(),
		TrigramKeys:    idx.Trigram.KeyCount(),
		CreatedAt:      idx.Header.CreatedAt,
	}, nil
}

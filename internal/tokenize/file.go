package tokenize

import (
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/standardbeagle/searchidx/internal/types"
)

// FileTokens holds the deduplicated token sets extracted from a single
// file: exact (case-sensitive identifier hashes), exact-lower (the same
// tokens lowercased), and trigrams (fuzzy-mode substrings). All three
// use the identifier-preserving alphabet; each set comes from its own
// scan of the content.
type FileTokens struct {
	Exact      map[uint64]struct{}
	ExactLower map[uint64]struct{}
	Trigram    map[uint32]struct{}
}

// ExtractFile memory-maps path and extracts its token sets. A zero-length
// file, or one whose first min(8192, len) bytes contain a NUL byte, is
// treated as binary and yields an empty (but non-nil) FileTokens --
// binary detection never fails the caller.
func ExtractFile(path string) (FileTokens, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileTokens{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return FileTokens{}, err
	}

	if info.Size() == 0 {
		return emptyFileTokens(), nil
	}

	m, err := mmap.MapRegion(f, int(info.Size()), mmap.RDONLY, 0, 0)
	if err != nil {
		return FileTokens{}, err
	}
	defer m.Unmap()

	data := []byte(m)

	precheckLen := len(data)
	if precheckLen > types.BinaryPreCheckBytes {
		precheckLen = types.BinaryPreCheckBytes
	}
	for _, b := range data[:precheckLen] {
		if b == 0 {
			return emptyFileTokens(), nil
		}
	}

	return ExtractBytes(data), nil
}

// ExtractBytes runs the three scanners directly over in-memory content,
// used by ExtractFile and directly by tests that don't want to touch
// the filesystem.
func ExtractBytes(data []byte) FileTokens {
	toks := emptyFileTokens()
	for _, h := range ExactTokenHashes(data) {
		toks.Exact[h] = struct{}{}
	}
	for _, h := range ExactLowerTokenHashes(data) {
		toks.ExactLower[h] = struct{}{}
	}
	for _, t := range Trigrams(data) {
		toks.Trigram[t] = struct{}{}
	}
	return toks
}

func emptyFileTokens() FileTokens {
	return FileTokens{
		Exact:      make(map[uint64]struct{}),
		ExactLower: make(map[uint64]struct{}),
		Trigram:    make(map[uint32]struct{}),
	}
}

package persistence

import (
	"bufio"
	"io"
	"os"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/standardbeagle/searchidx/internal/errors"
	"github.com/standardbeagle/searchidx/internal/pathindex"
	"github.com/standardbeagle/searchidx/internal/postings"
)

// legacyMagic identifies the older single-file format: header, path
// registry, and one combined token map in place of the current split
// exact/exact_lower/trigram trio. The combined map is built by the word
// tokenizer, not the identifier-preserving one -- it predates the
// case-insensitive and fuzzy posting stores, and it only ever serves
// word-mode queries against its one token map (see query.Word).
const legacyMagic = "TKIX"

// legacySuffix is assumed rather than bare base, since the split format
// already reserves base as a prefix for four suffixed files; keeping a
// suffix here lets both formats coexist in the same directory during a
// migration.
const legacySuffix = ".tkix"

// LegacyExists reports whether a single-file TKIX index is present at
// base, independent of whether the split format also exists there.
func LegacyExists(base string) bool {
	_, err := os.Stat(base + legacySuffix)
	return err == nil
}

// SaveLegacy writes the combined single-file format. tokens must be a
// word-tokenized posting map (see tokenize.WordTokenHashes) -- the
// format has no identifier-preserving, lowercased, or trigram
// equivalent. The pipeline never calls this on its own -- it exists for
// migration tooling and for the compatibility tests that exercise
// LoadLegacy.
func SaveLegacy(base string, h Header, reg *pathindex.Registry, tokens *postings.Map) error {
	return writeFile(base+legacySuffix, func(w io.Writer) error {
		if _, err := io.WriteString(w, legacyMagic); err != nil {
			return err
		}
		if err := writeHeader(w, h); err != nil {
			return err
		}
		if err := encodePaths(w, reg); err != nil {
			return err
		}
		return encodePostings(w, tokens)
	})
}

// LoadLegacy reads a TKIX file into an Index whose Exact, ExactLower,
// and Trigram maps are nil and whose Legacy map holds the combined
// word-tokenized store -- callers must route legacy-backed queries to
// word mode only, per the split format's compatibility contract.
func LoadLegacy(base string) (*Index, error) {
	path := base + legacySuffix
	f, err := os.Open(path)
	if err != nil {
		return nil, notFoundOrIO(err, path)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if err := checkMagic(r, legacyMagic, path); err != nil {
		return nil, err
	}
	h, err := readHeader(r)
	if err != nil {
		return nil, errors.Wrap(errors.KindInvalidFormat, "bad header", err).WithPath(path)
	}

	_, reg, err := decodeLegacyPaths(r, path)
	if err != nil {
		return nil, err
	}

	_, tokens, err := decodeLegacyPostings(r, path)
	if err != nil {
		return nil, err
	}

	return &Index{Header: h, Paths: reg, Legacy: tokens}, nil
}

func decodeLegacyPaths(r io.Reader, path string) (Header, *pathindex.Registry, error) {
	dirCount, err := readUint32(r)
	if err != nil {
		return Header{}, nil, serErr(err, path)
	}
	dirs := make([]string, dirCount)
	for i := range dirs {
		if dirs[i], err = readString(r); err != nil {
			return Header{}, nil, serErr(err, path)
		}
	}

	fileCount, err := readUint32(r)
	if err != nil {
		return Header{}, nil, serErr(err, path)
	}
	files := make([]pathindex.FileEntry, fileCount)
	for i := range files {
		if files[i].DirIndex, err = readUint32(r); err != nil {
			return Header{}, nil, serErr(err, path)
		}
		if files[i].Filename, err = readString(r); err != nil {
			return Header{}, nil, serErr(err, path)
		}
	}

	reg := pathindex.FromParts(dirs, files)
	reg.RebuildDirLookup()
	return Header{}, reg, nil
}

func decodeLegacyPostings(r io.Reader, path string) (Header, *postings.Map, error) {
	_, m, err := decodePostingsBody(r, path)
	return Header{}, m, err
}

// decodePostingsBody reads the same key/bitmap loop as the split
// format's decodePostingsFrom (which keeps its own copy), without the
// magic+header prefix, so the legacy reader doesn't expect a second
// magic+header pair mid-stream.
func decodePostingsBody(r io.Reader, path string) (Header, *postings.Map, error) {
	keyCount, err := readUint32(r)
	if err != nil {
		return Header{}, nil, serErr(err, path)
	}

	out := postings.New()
	for i := uint32(0); i < keyCount; i++ {
		key, err := readUint64(r)
		if err != nil {
			return Header{}, nil, serErr(err, path)
		}
		n, err := readUint32(r)
		if err != nil {
			return Header{}, nil, serErr(err, path)
		}
		raw := make([]byte, n)
		if _, err := io.ReadFull(r, raw); err != nil {
			return Header{}, nil, serErr(err, path)
		}
		bm := roaring.New()
		if _, err := bm.FromBuffer(raw); err != nil {
			return Header{}, nil, serErr(err, path)
		}
		out.Set(key, bm)
	}
	return Header{}, out, nil
}

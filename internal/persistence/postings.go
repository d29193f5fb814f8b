package persistence

import (
	"bufio"
	"io"
	"os"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/edsrzf/mmap-go"

	"github.com/standardbeagle/searchidx/internal/errors"
	"github.com/standardbeagle/searchidx/internal/postings"
)

// exactMagic is shared by both the case-sensitive and case-insensitive
// exact posting files; they are distinguished by suffix, not magic, per
// the split format's table.
const exactMagic = "TKIE"
const trigramMagic = "TKIT"

// SaveExact writes the case-sensitive exact posting map to base+".exact".
func SaveExact(base string, h Header, m *postings.Map) error {
	return savePostings(base+".exact", exactMagic, h, m)
}

// SaveExactLower writes the case-insensitive exact posting map to
// base+".exacti".
func SaveExactLower(base string, h Header, m *postings.Map) error {
	return savePostings(base+".exacti", exactMagic, h, m)
}

// SaveTrigram writes the trigram posting map to base+".tri".
func SaveTrigram(base string, h Header, m *postings.Map) error {
	return savePostings(base+".tri", trigramMagic, h, m)
}

func savePostings(path, magic string, h Header, m *postings.Map) error {
	return writeFile(path, func(w io.Writer) error {
		if _, err := io.WriteString(w, magic); err != nil {
			return err
		}
		if err := writeHeader(w, h); err != nil {
			return err
		}
		return encodePostings(w, m)
	})
}

func encodePostings(w io.Writer, m *postings.Map) error {
	keys := m.SortedKeys()
	if err := writeUint32(w, uint32(len(keys))); err != nil {
		return err
	}
	for _, key := range keys {
		if err := binary64(w, key); err != nil {
			return err
		}
		bm, _ := m.Lookup(key)
		raw, err := bm.ToBytes()
		if err != nil {
			return err
		}
		if err := writeUint32(w, uint32(len(raw))); err != nil {
			return err
		}
		if _, err := w.Write(raw); err != nil {
			return err
		}
	}
	return nil
}

// LoadExact reads a .exact file via a buffered reader.
func LoadExact(base string) (Header, *postings.Map, error) {
	return loadPostings(base+".exact", exactMagic)
}

// LoadExactLower reads a .exacti file via a buffered reader.
func LoadExactLower(base string) (Header, *postings.Map, error) {
	return loadPostings(base+".exacti", exactMagic)
}

// LoadTrigram reads a .tri file via a buffered reader.
func LoadTrigram(base string) (Header, *postings.Map, error) {
	return loadPostings(base+".tri", trigramMagic)
}

func loadPostings(path, magic string) (Header, *postings.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, nil, notFoundOrIO(err, path)
	}
	defer f.Close()
	return decodePostingsFrom(bufio.NewReader(f), magic, path)
}

// LoadExactMmap, LoadExactLowerMmap, LoadTrigramMmap read the
// corresponding posting file via a memory map instead of a buffered
// copy, preferred for repeated queries against a warm index.
func LoadExactMmap(base string) (Header, *postings.Map, error) {
	return loadPostingsMmap(base+".exact", exactMagic)
}

func LoadExactLowerMmap(base string) (Header, *postings.Map, error) {
	return loadPostingsMmap(base+".exacti", exactMagic)
}

func LoadTrigramMmap(base string) (Header, *postings.Map, error) {
	return loadPostingsMmap(base+".tri", trigramMagic)
}

func loadPostingsMmap(path, magic string) (Header, *postings.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, nil, notFoundOrIO(err, path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Header{}, nil, errors.Wrap(errors.KindIO, "stat failed", err).WithPath(path)
	}
	if info.Size() == 0 {
		return Header{}, nil, errors.New(errors.KindInvalidFormat, "empty index file").WithPath(path)
	}

	m, err := mmap.MapRegion(f, int(info.Size()), mmap.RDONLY, 0, 0)
	if err != nil {
		return Header{}, nil, errors.Wrap(errors.KindIO, "mmap failed", err).WithPath(path)
	}
	defer m.Unmap()

	return decodePostingsFrom(newByteReader(m), magic, path)
}

func decodePostingsFrom(r io.Reader, magic, path string) (Header, *postings.Map, error) {
	if err := checkMagic(r, magic, path); err != nil {
		return Header{}, nil, err
	}
	h, err := readHeader(r)
	if err != nil {
		return Header{}, nil, errors.Wrap(errors.KindInvalidFormat, "bad header", err).WithPath(path)
	}

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
	return h, out, nil
}

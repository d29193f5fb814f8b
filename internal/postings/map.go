// Package postings wraps run-length-compressed roaring bitmaps into the
// keyed posting maps used by the exact, exact_lower, and trigram
// indexes: key -> bitmap-of-file-ids, with O(1) cardinality and
// ascending-order iteration.
package postings

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/standardbeagle/searchidx/internal/types"
)

// Map is a posting map: a 64-bit key (a token hash for exact/exact_lower,
// or a widened 24-bit trigram for the trigram map) to a compressed
// bitmap of file-ids. A zero Map is not usable; use New.
type Map struct {
	bitmaps map[uint64]*roaring.Bitmap
}

// New returns an empty posting map.
func New() *Map {
	return &Map{bitmaps: make(map[uint64]*roaring.Bitmap)}
}

// Insert adds id to the bitmap for key, creating it if absent.
func (m *Map) Insert(key uint64, id types.FileID) {
	bm, ok := m.bitmaps[key]
	if !ok {
		bm = roaring.New()
		m.bitmaps[key] = bm
	}
	bm.Add(uint32(id))
}

// Lookup returns the bitmap for key, or (nil, false) if the key has no
// postings.
func (m *Map) Lookup(key uint64) (*roaring.Bitmap, bool) {
	bm, ok := m.bitmaps[key]
	return bm, ok
}

// Cardinality returns the number of file-ids posted under key, in O(1).
func (m *Map) Cardinality(key uint64) uint64 {
	if bm, ok := m.bitmaps[key]; ok {
		return bm.GetCardinality()
	}
	return 0
}

// KeyCount returns the number of distinct keys in the map.
func (m *Map) KeyCount() int {
	return len(m.bitmaps)
}

// SortedKeys returns every key in ascending order, used by the
// persistence layer for deterministic, byte-identical serialization.
func (m *Map) SortedKeys() []uint64 {
	keys := make([]uint64, 0, len(m.bitmaps))
	for k := range m.bitmaps {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Set replaces (or creates) the bitmap stored under key, used when
// rebuilding a Map from a persisted representation.
func (m *Map) Set(key uint64, bm *roaring.Bitmap) {
	m.bitmaps[key] = bm
}

// Intersect ANDs bitmaps together, smallest-cardinality first, with
// early exit once the running result is empty. The input slice is
// sorted in place by ascending cardinality.
func Intersect(bitmaps []*roaring.Bitmap) *roaring.Bitmap {
	if len(bitmaps) == 0 {
		return roaring.New()
	}
	sort.Slice(bitmaps, func(i, j int) bool {
		return bitmaps[i].GetCardinality() < bitmaps[j].GetCardinality()
	})

	result := bitmaps[0].Clone()
	for _, bm := range bitmaps[1:] {
		if result.IsEmpty() {
			break
		}
		result.And(bm)
	}
	return result
}

// Union ORs all bitmaps together into a single accumulator.
func Union(bitmaps []*roaring.Bitmap) *roaring.Bitmap {
	result := roaring.New()
	for _, bm := range bitmaps {
		result.Or(bm)
	}
	return result
}

package postings

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/standardbeagle/searchidx/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertLookup(t *testing.T) {
	m := New()
	m.Insert(1, types.FileID(3))
	m.Insert(1, types.FileID(7))

	bm, ok := m.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, uint64(2), bm.GetCardinality())
	assert.True(t, bm.Contains(3))
	assert.True(t, bm.Contains(7))
}

func TestLookup_MissingKey(t *testing.T) {
	m := New()
	_, ok := m.Lookup(42)
	assert.False(t, ok)
}

func TestCardinality_O1(t *testing.T) {
	m := New()
	for i := 0; i < 100; i++ {
		m.Insert(5, types.FileID(i))
	}
	assert.Equal(t, uint64(100), m.Cardinality(5))
	assert.Equal(t, uint64(0), m.Cardinality(99))
}

func TestAscendingIteration(t *testing.T) {
	m := New()
	ids := []types.FileID{9, 1, 5, 3}
	for _, id := range ids {
		m.Insert(1, id)
	}

	bm, _ := m.Lookup(1)
	it := bm.Iterator()
	var got []uint32
	for it.HasNext() {
		got = append(got, it.Next())
	}
	assert.Equal(t, []uint32{1, 3, 5, 9}, got)
}

func TestSortedKeys(t *testing.T) {
	m := New()
	m.Insert(5, 0)
	m.Insert(1, 0)
	m.Insert(3, 0)

	assert.Equal(t, []uint64{1, 3, 5}, m.SortedKeys())
}

func TestIntersect_SortsAndEarlyExits(t *testing.T) {
	a := roaring.New()
	a.AddMany([]uint32{1, 2, 3})
	b := roaring.New()
	b.AddMany([]uint32{2, 3, 4})
	c := roaring.New() // empty bitmap forces an early exit

	result := Intersect([]*roaring.Bitmap{a, b, c})
	assert.True(t, result.IsEmpty())
}

func TestIntersect_OrderIndependent(t *testing.T) {
	a := roaring.New()
	a.AddMany([]uint32{1, 2, 3})
	b := roaring.New()
	b.AddMany([]uint32{2, 3, 4})
	c := roaring.New()
	c.AddMany([]uint32{2, 3, 5})

	r1 := Intersect([]*roaring.Bitmap{a, b, c})
	r2 := Intersect([]*roaring.Bitmap{c, a, b})
	assert.Equal(t, r1.ToArray(), r2.ToArray())
	assert.Equal(t, []uint32{2, 3}, r1.ToArray())
}

func TestUnion(t *testing.T) {
	a := roaring.New()
	a.AddMany([]uint32{1, 2})
	b := roaring.New()
	b.AddMany([]uint32{2, 3})

	result := Union([]*roaring.Bitmap{a, b})
	assert.Equal(t, []uint32{1, 2, 3}, result.ToArray())
}

func TestUnionSupersetOfIntersect(t *testing.T) {
	a := roaring.New()
	a.AddMany([]uint32{1, 2, 3})
	b := roaring.New()
	b.AddMany([]uint32{3, 4, 5})

	and := Intersect([]*roaring.Bitmap{a.Clone(), b.Clone()})
	or := Union([]*roaring.Bitmap{a, b})

	for _, id := range and.ToArray() {
		assert.True(t, or.Contains(id))
	}
}

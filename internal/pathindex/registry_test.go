package pathindex

import (
	"testing"

	"github.com/standardbeagle/searchidx/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_RoundTripsPath(t *testing.T) {
	r := New()
	id := r.Register("/srv/project/src/main.go")

	got, ok := r.Path(id)
	require.True(t, ok)
	assert.Equal(t, "/srv/project/src/main.go", got)
}

func TestRegister_DenseMonotonicIDs(t *testing.T) {
	r := New()
	a := r.Register("/a/one.go")
	b := r.Register("/a/two.go")
	c := r.Register("/b/three.go")

	assert.Equal(t, types.FileID(0), a)
	assert.Equal(t, types.FileID(1), b)
	assert.Equal(t, types.FileID(2), c)
}

func TestRegister_DeduplicatesDirectories(t *testing.T) {
	r := New()
	r.Register("/a/one.go")
	r.Register("/a/two.go")
	r.Register("/b/three.go")

	assert.Equal(t, 2, r.DirectoryCount())
	assert.Equal(t, 3, r.Count())
}

func TestRegister_NoParentUsesEmptyDirectory(t *testing.T) {
	r := New()
	id := r.Register("standalone.go")

	got, ok := r.Path(id)
	require.True(t, ok)
	assert.Equal(t, "standalone.go", got)
}

func TestPath_AbsentID(t *testing.T) {
	r := New()
	_, ok := r.Path(types.FileID(42))
	assert.False(t, ok)
}

func TestDirectoryCountLessOrEqualFileCount(t *testing.T) {
	r := New()
	r.Register("/a/one.go")
	r.Register("/a/two.go")
	r.Register("/a/three.go")

	assert.LessOrEqual(t, r.DirectoryCount(), r.Count())
}

func TestIterFilenames(t *testing.T) {
	r := New()
	r.Register("/a/one.go")
	r.Register("/b/two.go")

	var got []string
	for _, name := range r.IterFilenames() {
		got = append(got, name)
	}
	assert.Equal(t, []string{"one.go", "two.go"}, got)
}

func TestIterFiles(t *testing.T) {
	r := New()
	r.Register("/a/one.go")
	r.Register("/b/two.go")

	var got []string
	for _, p := range r.IterFiles() {
		got = append(got, p)
	}
	assert.Equal(t, []string{"/a/one.go", "/b/two.go"}, got)
}

func TestFromParts_RequiresRebuildBeforeRegister(t *testing.T) {
	original := New()
	original.Register("/a/one.go")
	original.Register("/a/two.go")

	restored := FromParts(original.Dirs(), original.Files())
	restored.RebuildDirLookup()

	id := restored.Register("/a/three.go")
	assert.Equal(t, types.FileID(2), id)
	assert.Equal(t, 1, restored.DirectoryCount())

	got, ok := restored.Path(id)
	require.True(t, ok)
	assert.Equal(t, "/a/three.go", got)
}

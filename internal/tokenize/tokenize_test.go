package tokenize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordTokenHashes_MinLength(t *testing.T) {
	hashes := WordTokenHashes([]byte("a bb ccc"))
	// "a" is below min length 2 and contributes nothing.
	assert.Len(t, hashes, 2)
}

func TestWordTokenHashes_CaseSensitive(t *testing.T) {
	lower := WordTokenHashes([]byte("alfred"))
	upper := WordTokenHashes([]byte("ALFRED"))
	assert.NotEqual(t, lower[0], upper[0])
}

func TestExactTokenHashes_PreservesIdentifiers(t *testing.T) {
	hashes := ExactTokenHashes([]byte("run_game start_server"))
	assert.Len(t, hashes, 2)

	runOnly := ExactTokenHashes([]byte("run"))
	assert.NotContains(t, hashes, runOnly[0])
}

func TestExactLowerTokenHashes_FoldsCase(t *testing.T) {
	lower := ExactLowerTokenHashes([]byte("Run_Game"))
	target := ExactLowerTokenHashes([]byte("run_game"))
	require.Len(t, lower, 1)
	require.Len(t, target, 1)
	assert.Equal(t, target[0], lower[0])
}

func TestExactTokenHashes_DelimiterSet(t *testing.T) {
	hashes := ExactTokenHashes([]byte(`foo("bar"); baz.qux`))
	// foo, bar, baz, qux -- each >= 2 bytes.
	assert.Len(t, hashes, 4)
}

func TestExactTokenHashes_UnknownByteActsAsDelimiter(t *testing.T) {
	hashes := ExactTokenHashes([]byte("foo\x01bar"))
	assert.Len(t, hashes, 2)
}

func TestIsIdentDelimiter_CoversExplicitSet(t *testing.T) {
	for _, b := range []byte(" \t\n()[]{}<>\"'`,;:.+=/\\@#$%^&*!?|~") {
		assert.True(t, isIdentDelimiter(b), "byte %q should be a delimiter", b)
	}
	assert.True(t, isIdentDelimiter(0))
	assert.False(t, isIdentDelimiter('a'))
}

func TestTrigrams_ShortTokenContributesNone(t *testing.T) {
	assert.Empty(t, Trigrams([]byte("lf")))
}

func TestTrigrams_LowercasedSlidingWindow(t *testing.T) {
	got := Trigrams([]byte("alfred"))
	want := []uint32{
		PackTrigram('a', 'l', 'f'),
		PackTrigram('l', 'f', 'r'),
		PackTrigram('f', 'r', 'e'),
		PackTrigram('r', 'e', 'd'),
	}
	assert.Equal(t, want, got)
}

func TestTrigrams_CaseInsensitive(t *testing.T) {
	lower := Trigrams([]byte("alfred"))
	upper := Trigrams([]byte("ALFRED"))
	assert.Equal(t, lower, upper)
}

func TestPackUnpackTrigram_RoundTrip(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for b := 0; b < 256; b += 23 {
			for c := 0; c < 256; c += 29 {
				packed := PackTrigram(byte(a), byte(b), byte(c))
				ga, gb, gc := UnpackTrigram(packed)
				require.Equal(t, byte(a), ga)
				require.Equal(t, byte(b), gb)
				require.Equal(t, byte(c), gc)
			}
		}
	}
}

func TestPackUnpackTrigram_BoundaryBytes(t *testing.T) {
	packed := PackTrigram(0, 128, 255)
	a, b, c := UnpackTrigram(packed)
	assert.Equal(t, byte(0), a)
	assert.Equal(t, byte(128), b)
	assert.Equal(t, byte(255), c)
}

func TestHash64_Deterministic(t *testing.T) {
	a := Hash64([]byte("run_game"))
	b := Hash64([]byte("run_game"))
	assert.Equal(t, a, b)
}

func TestExtractFile_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	toks, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Empty(t, toks.Exact)
	assert.Empty(t, toks.ExactLower)
	assert.Empty(t, toks.Trigram)
}

func TestExtractFile_BinarySkipped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binary.bin")
	content := append([]byte("run_game"), 0x00, 0x01, 0x02)
	require.NoError(t, os.WriteFile(path, content, 0644))

	toks, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Empty(t, toks.Exact)
}

func TestExtractFile_TextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "source.txt")
	require.NoError(t, os.WriteFile(path, []byte("run_game start_server"), 0644))

	toks, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Len(t, toks.Exact, 2)
	assert.NotEmpty(t, toks.Trigram)
}

func TestExtractBytes_Deduplicates(t *testing.T) {
	toks := ExtractBytes([]byte("foo foo foo"))
	assert.Len(t, toks.Exact, 1)
}

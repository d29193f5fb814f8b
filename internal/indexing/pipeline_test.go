package indexing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/standardbeagle/searchidx/internal/config"
	"github.com/standardbeagle/searchidx/internal/tokenize"
	"github.com/standardbeagle/searchidx/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func writeTestTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("run_game start_server"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("beta token"), 0o644))

	sub := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "c.txt"), []byte("alpha beta gamma"), 0o644))

	binary := make([]byte, 16)
	binary[4] = 0x00
	require.NoError(t, os.WriteFile(filepath.Join(root, "bin.dat"), append([]byte("GIF8"), binary...), 0o644))

	gitDir := filepath.Join(root, ".git")
	require.NoError(t, os.MkdirAll(gitDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ref: refs/heads/main"), 0o644))

	return root
}

func testConfig(root string) *config.Config {
	cfg := config.Default()
	cfg.Root = root
	return cfg
}

func TestBuild_AssignsDenseFileIDs(t *testing.T) {
	root := writeTestTree(t)
	res, err := Build(context.Background(), testConfig(root))
	require.NoError(t, err)

	assert.Equal(t, res.FileCount, res.Paths.Count())
	for i := 0; i < res.Paths.Count(); i++ {
		_, ok := res.Paths.Path(types.FileID(i))
		assert.True(t, ok)
	}
}

func TestBuild_ExcludesGitDirectory(t *testing.T) {
	root := writeTestTree(t)
	res, err := Build(context.Background(), testConfig(root))
	require.NoError(t, err)

	for _, p := range res.Paths.Files() {
		assert.NotContains(t, p.Filename, "HEAD")
	}
}

func TestBuild_IndexesExactTokens(t *testing.T) {
	root := writeTestTree(t)
	res, err := Build(context.Background(), testConfig(root))
	require.NoError(t, err)

	h := tokenize.Hash64([]byte("run_game"))
	bm, ok := res.Exact.Lookup(h)
	require.True(t, ok)
	assert.Equal(t, uint64(1), bm.GetCardinality())
}

func TestBuild_BinaryFileGetsIDButNoTokens(t *testing.T) {
	root := writeTestTree(t)
	res, err := Build(context.Background(), testConfig(root))
	require.NoError(t, err)

	var binID int = -1
	for id, name := range res.Paths.IterFilenames() {
		if name == "bin.dat" {
			binID = int(id)
		}
	}
	require.GreaterOrEqual(t, binID, 0)

	for _, key := range res.Exact.SortedKeys() {
		bm, _ := res.Exact.Lookup(key)
		assert.False(t, bm.Contains(uint32(binID)))
	}
}

func TestBuild_NoGoroutineLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := writeTestTree(t)
	_, err := Build(context.Background(), testConfig(root))
	require.NoError(t, err)
}

func TestBuild_RespectsMaxFileSize(t *testing.T) {
	root := t.TempDir()
	big := filepath.Join(root, "big.txt")
	require.NoError(t, os.WriteFile(big, []byte("alpha_token"), 0o644))

	cfg := testConfig(root)
	cfg.MaxFileSize = 3

	res, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, res.FileCount)
}

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKDL_Defaults(t *testing.T) {
	cfg, err := parseKDL("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Nil(t, cfg.Extensions)
	assert.Contains(t, cfg.Exclude, "**/.git/**")
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize)
}

func TestParseKDL_MaxFileSizeString(t *testing.T) {
	cfg, err := parseKDL(`max_file_size "5MB"`)
	require.NoError(t, err)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxFileSize)
}

func TestParseKDL_MaxFileSizeInt(t *testing.T) {
	cfg, err := parseKDL(`max_file_size 2048`)
	require.NoError(t, err)
	assert.Equal(t, int64(2048), cfg.MaxFileSize)
}

func TestParseKDL_BatchAndChannel(t *testing.T) {
	cfg, err := parseKDL(`
batch_size 128
channel_capacity 4096
follow_symlinks true
`)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.BatchSize)
	assert.Equal(t, 4096, cfg.ChannelCapacity)
	assert.True(t, cfg.FollowSymlinks)
}

func TestParseKDL_ExtensionsAndExclude(t *testing.T) {
	cfg, err := parseKDL(`
extensions ".go" ".rs"
exclude {
    "**/vendor/**"
    "**/.git/**"
}
`)
	require.NoError(t, err)
	assert.Equal(t, []string{".go", ".rs"}, cfg.Extensions)
	assert.Contains(t, cfg.Exclude, "**/vendor/**")
	assert.Contains(t, cfg.Exclude, "**/.git/**")
}

func TestParseKDL_Root(t *testing.T) {
	cfg, err := parseKDL(`root "/srv/project"`)
	require.NoError(t, err)
	assert.Equal(t, "/srv/project", cfg.Root)
}

func TestLoadKDL_NoFile(t *testing.T) {
	cfg, err := LoadKDL(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadKDL_FromFile(t *testing.T) {
	dir := t.TempDir()
	kdlPath := dir + "/.searchidx.kdl"
	require.NoError(t, os.WriteFile(kdlPath, []byte(`
extensions ".go"
batch_size 32
`), 0644))

	cfg, err := LoadKDL(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, []string{".go"}, cfg.Extensions)
	assert.Equal(t, 32, cfg.BatchSize)
	assert.Equal(t, dir, cfg.Root)
}

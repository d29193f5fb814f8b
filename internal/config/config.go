// Package config loads the scan configuration consumed by the indexing
// pipeline: which root to walk, which extensions and paths to
// include/exclude, and the size/concurrency limits that bound a build.
package config

import (
	"os"

	"github.com/standardbeagle/searchidx/internal/types"
)

// Config is the scan configuration for a single indexing run.
type Config struct {
	Root            string
	Extensions      []string // empty means "all extensions"
	Exclude         []string // doublestar glob patterns
	MaxFileSize     int64
	BatchSize       int
	ChannelCapacity int
	FollowSymlinks  bool
}

// defaultExclude mirrors the teacher's always-skip set, trimmed to the
// directories and generated-file patterns relevant to a byte-level index
// (no language-specific test-file heuristics, since this module has no
// notion of symbols to distinguish test code from production code).
func defaultExclude() []string {
	return []string{
		"**/.git/**",
		"**/.*/**",
		"**/node_modules/**",
		"**/vendor/**",
		"**/dist/**",
		"**/build/**",
		"**/out/**",
		"**/target/**",
		"**/bin/**",
		"**/obj/**",
		"**/*.min.js",
		"**/*.min.css",
		"**/__pycache__/**",
		"**/*.pyc",
	}
}

// Default returns the built-in configuration rooted at the current working
// directory, used when no .searchidx.kdl file is present.
func Default() *Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return &Config{
		Root:            cwd,
		Extensions:      nil,
		Exclude:         defaultExclude(),
		MaxFileSize:     types.DefaultMaxFileSize,
		BatchSize:       types.DefaultBatchSize,
		ChannelCapacity: types.DefaultChannelCapacity,
		FollowSymlinks:  false,
	}
}

// Load reads .searchidx.kdl from root if present, falling back to Default.
// CLI flags are applied on top of the returned Config by the caller.
func Load(root string) (*Config, error) {
	cfg, err := LoadKDL(root)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = Default()
		cfg.Root = root
	}
	return cfg, nil
}

package indexing

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/standardbeagle/searchidx/internal/config"
)

// filter applies the walker's directory and file predicates: exclude
// patterns (matched against the path relative to the scan root using
// doublestar, so "**" directory wildcards work), an extension allow-list,
// and a max file size.
type filter struct {
	root       string
	extensions map[string]struct{}
	exclude    []string
	maxSize    int64
}

func newFilter(cfg *config.Config) *filter {
	f := &filter{
		root:    cfg.Root,
		exclude: cfg.Exclude,
		maxSize: cfg.MaxFileSize,
	}
	if len(cfg.Extensions) > 0 {
		f.extensions = make(map[string]struct{}, len(cfg.Extensions))
		for _, ext := range cfg.Extensions {
			f.extensions[strings.ToLower(ext)] = struct{}{}
		}
	}
	return f
}

// excludeDir reports whether a directory entry should be skipped before
// the walker descends into it.
func (f *filter) excludeDir(path string) bool {
	return f.matchesExclude(path)
}

// acceptFile reports whether a regular file should be handed to the
// coordinator for registration.
func (f *filter) acceptFile(path string, info os.FileInfo) bool {
	if !info.Mode().IsRegular() {
		return false
	}
	if info.Size() > f.maxSize {
		return false
	}
	if f.extensions != nil {
		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := f.extensions[ext]; !ok {
			return false
		}
	}
	return !f.matchesExclude(path)
}

func (f *filter) matchesExclude(path string) bool {
	rel, err := filepath.Rel(f.root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range f.exclude {
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return true
		}
	}
	return false
}

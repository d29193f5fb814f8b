package query

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/standardbeagle/searchidx/internal/errors"
	"github.com/standardbeagle/searchidx/internal/pathindex"
)

// compileGlobs lowercases and validates every pattern up front, so a
// malformed pattern fails the query before any iteration rather than
// silently excluding every candidate.
func compileGlobs(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	compiled := make([]string, len(patterns))
	for i, p := range patterns {
		lower := strings.ToLower(p)
		if _, err := doublestar.Match(lower, ""); err != nil {
			return nil, errors.Wrap(errors.KindInvalidPattern, "invalid glob pattern", err).WithPath(p)
		}
		compiled[i] = lower
	}
	return compiled, nil
}

// passesFilters applies path_contains, glob_patterns, and exclude in the
// order spec.md §4.5 fixes: contains, then glob, then exclude.
func passesFilters(full, pathNeedle, excludeNeedle string, globs []string) bool {
	lowerFull := strings.ToLower(full)

	if pathNeedle != "" && !strings.Contains(lowerFull, pathNeedle) {
		return false
	}

	if len(globs) > 0 {
		base := strings.ToLower(filepath.Base(full))
		matched := false
		for _, g := range globs {
			if ok, _ := doublestar.Match(g, base); ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if excludeNeedle != "" && strings.Contains(lowerFull, excludeNeedle) {
		return false
	}

	return true
}

// GlobResult is the outcome of GlobFiles: the matching paths plus the
// number of registered files scanned to find them.
type GlobResult struct {
	Files   []string
	Scanned int
}

// GlobFiles matches every registered path's basename against pattern
// (case-insensitive), independent of any posting lookup -- used by the
// CLI's "glob" command, which has no token query to run.
func GlobFiles(paths *pathindex.Registry, pattern string, opts Options) (GlobResult, error) {
	globs, err := compileGlobs([]string{pattern})
	if err != nil {
		return GlobResult{}, err
	}
	pathNeedle := strings.ToLower(opts.PathContains)
	excludeNeedle := strings.ToLower(opts.Exclude)

	var res GlobResult
	for _, full := range paths.IterFiles() {
		if opts.Limit > 0 && len(res.Files) >= opts.Limit {
			break
		}
		res.Scanned++
		if !passesFilters(full, pathNeedle, excludeNeedle, globs) {
			continue
		}
		res.Files = append(res.Files, full)
	}
	return res, nil
}

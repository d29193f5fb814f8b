// Package pathindex assigns dense file-ids to registered paths and
// reconstructs full paths from them, deduplicating the directory
// component across files that share a parent.
package pathindex

import (
	"iter"
	"path/filepath"

	"github.com/standardbeagle/searchidx/internal/types"
)

// FileEntry is one registered file: its directory's index into Dirs and
// its basename.
type FileEntry struct {
	DirIndex uint32
	Filename string
}

// Registry is the path registry (C2): an ordered list of unique
// directories, an ordered list of files referencing them, and a
// transient directory lookup map that accelerates registration.
//
// Registry is mutated only by the indexing pipeline's coordinator
// goroutine (see internal/indexing) -- it performs no internal locking.
type Registry struct {
	dirs     []string
	files    []FileEntry
	dirIndex map[string]uint32
}

// New returns an empty registry ready to accept Register calls.
func New() *Registry {
	return &Registry{dirIndex: make(map[string]uint32)}
}

// FromParts reconstructs a registry from a deserialized directory and
// file list. The transient directory lookup map is left empty --
// callers must invoke RebuildDirLookup before registering further paths.
func FromParts(dirs []string, files []FileEntry) *Registry {
	return &Registry{dirs: dirs, files: files}
}

// RebuildDirLookup repopulates the transient directory lookup map after
// a Registry has been reconstructed from persisted Dirs/Files. It must
// run before any further Register call.
func (r *Registry) RebuildDirLookup() {
	r.dirIndex = make(map[string]uint32, len(r.dirs))
	for i, d := range r.dirs {
		r.dirIndex[d] = uint32(i)
	}
}

// splitPath divides a full path into its directory and filename. A path
// with no parent (no separator) uses the empty directory.
func splitPath(fullPath string) (dir, filename string) {
	d, f := filepath.Split(fullPath)
	if d == "" {
		return "", f
	}
	return filepath.Clean(d), f
}

// Register assigns the next dense file-id to fullPath, deduplicating its
// directory against previously registered directories. Call order
// determines file-id order: the caller (the coordinator) must call
// Register exactly once per file in walker-emission order.
func (r *Registry) Register(fullPath string) types.FileID {
	dir, filename := splitPath(fullPath)

	dirIdx, ok := r.dirIndex[dir]
	if !ok {
		dirIdx = uint32(len(r.dirs))
		r.dirs = append(r.dirs, dir)
		r.dirIndex[dir] = dirIdx
	}

	id := types.FileID(len(r.files))
	r.files = append(r.files, FileEntry{DirIndex: dirIdx, Filename: filename})
	return id
}

// Path reconstructs the full path for id, or reports absence.
func (r *Registry) Path(id types.FileID) (string, bool) {
	idx := int(id)
	if idx < 0 || idx >= len(r.files) {
		return "", false
	}
	entry := r.files[idx]
	dir := r.dirs[entry.DirIndex]
	if dir == "" {
		return entry.Filename, true
	}
	return filepath.Join(dir, entry.Filename), true
}

// Count returns the number of registered files.
func (r *Registry) Count() int {
	return len(r.files)
}

// DirectoryCount returns the number of distinct directories seen.
func (r *Registry) DirectoryCount() int {
	return len(r.dirs)
}

// Dirs exposes the ordered directory list for persistence encoding.
func (r *Registry) Dirs() []string {
	return r.dirs
}

// Files exposes the ordered file list for persistence encoding.
func (r *Registry) Files() []FileEntry {
	return r.files
}

// IterFilenames lazily yields (file_id, filename) pairs in registration
// order.
func (r *Registry) IterFilenames() iter.Seq2[types.FileID, string] {
	return func(yield func(types.FileID, string) bool) {
		for i, f := range r.files {
			if !yield(types.FileID(i), f.Filename) {
				return
			}
		}
	}
}

// IterFiles lazily yields (file_id, full_path) pairs in registration
// order.
func (r *Registry) IterFiles() iter.Seq2[types.FileID, string] {
	return func(yield func(types.FileID, string) bool) {
		for i := range r.files {
			id := types.FileID(i)
			p, _ := r.Path(id)
			if !yield(id, p) {
				return
			}
		}
	}
}

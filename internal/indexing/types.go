package indexing

import (
	"github.com/standardbeagle/searchidx/internal/pathindex"
	"github.com/standardbeagle/searchidx/internal/postings"
	"github.com/standardbeagle/searchidx/internal/tokenize"
	"github.com/standardbeagle/searchidx/internal/types"
)

// fileTask is dispatched by the coordinator to the worker pool once a
// path has been sequentially registered and assigned a file-id.
type fileTask struct {
	id   types.FileID
	path string
}

// fileResult is what a worker sends to the merger: the extracted token
// sets for one file-id. A failed extraction yields an empty FileTokens
// rather than an error -- per-file failures are non-fatal to the build.
type fileResult struct {
	id     types.FileID
	tokens tokenize.FileTokens
}

// Result is the in-memory output of Build: the path registry plus the
// three posting maps it indexes into.
type Result struct {
	Paths      *pathindex.Registry
	Exact      *postings.Map
	ExactLower *postings.Map
	Trigram    *postings.Map
	FileCount  int
}

package types

// FileID is a dense, stable identifier assigned to each indexed file in the
// order it is registered with the path registry. IDs are never reused within
// a build and are stored as the element type of every posting bitmap.
type FileID uint32

// Common system-wide constants.
const (
	// DefaultMaxFileSize bounds the size of a single file considered for
	// indexing.
	// Rationale: skips generated blobs and binaries while covering the
	// overwhelming majority of source files.
	DefaultMaxFileSize = 10 * 1024 * 1024 // 10MB

	// BinaryPreCheckBytes is the number of leading bytes inspected for a
	// NUL byte when deciding whether a file is binary.
	BinaryPreCheckBytes = 8 * 1024 // 8KB

	// DefaultChannelCapacity sizes the bounded channels between pipeline
	// stages (walker -> coordinator -> workers -> merger).
	// Rationale: large enough to absorb directory-walk bursts without
	// unbounded memory growth from a slow downstream stage.
	DefaultChannelCapacity = 1024

	// DefaultBatchSize is the default for config.Config.BatchSize. The
	// indexing pipeline hands one file to a worker per task and does not
	// read this value.
	DefaultBatchSize = 64
)

// Package debug provides a lightweight, opt-in debug logging sink shared by
// the indexing pipeline, persistence layer, and query planner.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnableDebug is a build flag that can be overridden at link time:
// go build -ldflags "-X .../internal/debug.EnableDebug=true"
var EnableDebug = "false"

var (
	mu     sync.Mutex
	output io.Writer // nil means no output
	file   *os.File  // open handle when output goes to a file
)

// SetOutput sets a custom writer for debug output. Pass nil to disable
// debug output entirely.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// InitDebugLogFile initializes debug logging to a timestamped file under
// the OS temp directory and returns its path.
func InitDebugLogFile() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	dir := filepath.Join(os.TempDir(), "searchidx-debug-logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create debug log directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("debug-%s.log", time.Now().Format("2006-01-02T150405")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("create debug log file: %w", err)
	}

	file = f
	output = f
	return path, nil
}

// CloseDebugLog closes the debug log file if one is open.
func CloseDebugLog() error {
	mu.Lock()
	defer mu.Unlock()

	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	output = nil
	return err
}

// IsDebugEnabled reports whether debug output is active, either via the
// build flag or the DEBUG environment variable.
func IsDebugEnabled() bool {
	if EnableDebug == "true" {
		return true
	}
	v := os.Getenv("DEBUG")
	return v == "1" || v == "true"
}

func writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return output
}

// Logger writes debug lines tagged with one pipeline stage. Each stage
// package keeps its own package-level Logger (indexing's "INDEX",
// query's "QUERY", persistence's "PERSIST") built once at init, so the
// tag lives at the construction site rather than being threaded through
// every call as an argument.
type Logger struct {
	tag string
}

// New returns a Logger that tags every line it writes with tag.
func New(tag string) *Logger {
	return &Logger{tag: tag}
}

// Printf writes a tagged line when debug output is enabled and a sink is
// configured; it is a no-op otherwise.
func (l *Logger) Printf(format string, args ...interface{}) {
	if !IsDebugEnabled() {
		return
	}
	w := writer()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[DEBUG:%s] "+format, append([]interface{}{l.tag}, args...)...)
}

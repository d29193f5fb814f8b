// Package errors defines the single error sum used across the indexing and
// query packages.
package errors

import "fmt"

// Kind classifies an IndexError so callers can branch on failure category
// without string-matching messages.
type Kind uint8

const (
	KindIO Kind = iota
	KindSerialization
	KindInvalidFormat
	KindWalkDir
	KindNotFound
	KindInvalidPattern
	KindIndexMismatch
	KindMissingQueryMode
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindSerialization:
		return "serialization"
	case KindInvalidFormat:
		return "invalid_index_format"
	case KindWalkDir:
		return "walk_dir"
	case KindNotFound:
		return "index_not_found"
	case KindInvalidPattern:
		return "invalid_pattern"
	case KindIndexMismatch:
		return "index_mismatch"
	case KindMissingQueryMode:
		return "missing_query_mode"
	default:
		return "unknown"
	}
}

// IndexError is the single error type returned by this module's public
// operations. It carries a Kind for programmatic dispatch and wraps the
// underlying cause, if any, for errors.Is/As.
type IndexError struct {
	Kind    Kind
	Message string
	Path    string
	Err     error
}

func (e *IndexError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause, if any, to errors.Is/As.
func (e *IndexError) Unwrap() error {
	return e.Err
}

// New builds an IndexError without a path or underlying cause.
func New(kind Kind, message string) *IndexError {
	return &IndexError{Kind: kind, Message: message}
}

// Wrap builds an IndexError around an underlying cause.
func Wrap(kind Kind, message string, err error) *IndexError {
	return &IndexError{Kind: kind, Message: message, Err: err}
}

// WithPath attaches the file or directory path relevant to the failure.
func (e *IndexError) WithPath(path string) *IndexError {
	e.Path = path
	return e
}

// Is reports whether err is an IndexError of the given kind.
func Is(err error, kind Kind) bool {
	ie, ok := err.(*IndexError)
	return ok && ie.Kind == kind
}

package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(KindNotFound, "index not found")
	assert.Equal(t, KindNotFound, err.Kind)
	assert.Equal(t, "index_not_found: index not found", err.Error())
}

func TestWrapUnwrap(t *testing.T) {
	underlying := errors.New("no such file")
	err := Wrap(KindIO, "open failed", underlying)

	require.ErrorIs(t, err, underlying)
	assert.Equal(t, "io: open failed", err.Error())
}

func TestWithPath(t *testing.T) {
	err := New(KindWalkDir, "permission denied").WithPath("/var/log")
	assert.Equal(t, "walk_dir: permission denied (/var/log)", err.Error())
}

func TestIsKind(t *testing.T) {
	err := New(KindIndexMismatch, "index_id mismatch across files")
	assert.True(t, Is(err, KindIndexMismatch))
	assert.False(t, Is(err, KindInvalidFormat))
	assert.False(t, Is(errors.New("plain"), KindIndexMismatch))
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindIO:               "io",
		KindSerialization:    "serialization",
		KindInvalidFormat:    "invalid_index_format",
		KindWalkDir:          "walk_dir",
		KindNotFound:         "index_not_found",
		KindInvalidPattern:   "invalid_pattern",
		KindIndexMismatch:    "index_mismatch",
		KindMissingQueryMode: "missing_query_mode",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

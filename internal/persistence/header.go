// Package persistence implements the four-file split index format: a
// shared header (version, per-build index id, creation time) followed by
// a self-describing, length-prefixed encoding of the path registry or a
// posting map. Every file is validated independently against its magic
// and the header is compared across files before any joint query.
package persistence

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/standardbeagle/searchidx/internal/errors"
)

// CurrentVersion is the only format version this package writes, and the
// only one it accepts on load.
const CurrentVersion uint16 = 3

// Header is shared across all files written by one Build+Persist run.
// IndexID is the cross-file consistency token: any two files read
// together must carry the same value.
type Header struct {
	Version   uint16
	IndexID   [16]byte
	CreatedAt uint64
}

// NewHeader mints a header for a fresh build: current version, a random
// index id, and the current time. Two independent builds collide on
// IndexID only with the negligible probability of a UUIDv4 collision.
func NewHeader() Header {
	return Header{
		Version:   CurrentVersion,
		IndexID:   uuid.New(),
		CreatedAt: uint64(time.Now().Unix()),
	}
}

func writeHeader(w io.Writer, h Header) error {
	if err := binary.Write(w, binary.LittleEndian, h.Version); err != nil {
		return err
	}
	if _, err := w.Write(h.IndexID[:]); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, h.CreatedAt)
}

func readHeader(r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h.Version); err != nil {
		return h, err
	}
	if _, err := io.ReadFull(r, h.IndexID[:]); err != nil {
		return h, err
	}
	if err := binary.Read(r, binary.LittleEndian, &h.CreatedAt); err != nil {
		return h, err
	}
	if h.Version != CurrentVersion {
		return h, errors.New(errors.KindInvalidFormat, "unsupported index format version")
	}
	return h, nil
}

// ValidateIndexMatch reports an IndexMismatch error if two headers read
// together do not share the same build id. Callers must run this before
// any joint query across a path file and a posting file.
func ValidateIndexMatch(a, b Header) error {
	if a.IndexID != b.IndexID {
		return errors.New(errors.KindIndexMismatch, "index_id mismatch between joined files")
	}
	return nil
}

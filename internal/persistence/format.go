package persistence

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"

	stderrors "github.com/standardbeagle/searchidx/internal/errors"
)

// writeFile creates path and invokes encode against a buffered writer,
// so every file-type codec shares one create/flush/close path.
func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return stderrors.Wrap(stderrors.KindIO, "create failed", err).WithPath(path)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := encode(bw); err != nil {
		return stderrors.Wrap(stderrors.KindSerialization, "encode failed", err).WithPath(path)
	}
	if err := bw.Flush(); err != nil {
		return stderrors.Wrap(stderrors.KindIO, "write failed", err).WithPath(path)
	}
	return nil
}

// checkMagic reads and validates the 4-byte magic prefix of a file.
func checkMagic(r io.Reader, want, path string) error {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return notFoundOrIO(err, path)
	}
	if string(buf) != want {
		return stderrors.New(stderrors.KindInvalidFormat, "magic mismatch").WithPath(path)
	}
	return nil
}

// notFoundOrIO classifies an open/read failure as IndexNotFound when the
// underlying cause is a missing file, otherwise as a generic Io error.
func notFoundOrIO(err error, path string) error {
	if errors.Is(err, os.ErrNotExist) {
		return stderrors.Wrap(stderrors.KindNotFound, "index file not found", err).WithPath(path)
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return stderrors.Wrap(stderrors.KindInvalidFormat, "truncated index file", err).WithPath(path)
	}
	return stderrors.Wrap(stderrors.KindIO, "read failed", err).WithPath(path)
}

func serErr(err error, path string) error {
	return stderrors.Wrap(stderrors.KindSerialization, "malformed payload", err).WithPath(path)
}

// newByteReader wraps a memory-mapped slice as an io.Reader for the
// shared decode routines, avoiding a second buffered copy of the file.
func newByteReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}

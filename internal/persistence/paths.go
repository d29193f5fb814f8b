package persistence

import (
	"bufio"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/standardbeagle/searchidx/internal/errors"
	"github.com/standardbeagle/searchidx/internal/pathindex"
)

// pathsMagic identifies a .paths file: header + path registry.
const pathsMagic = "TKIP"

// SavePaths writes the path registry to base+".paths".
func SavePaths(base string, h Header, reg *pathindex.Registry) error {
	return writeFile(base+".paths", func(w io.Writer) error {
		if _, err := io.WriteString(w, pathsMagic); err != nil {
			return err
		}
		if err := writeHeader(w, h); err != nil {
			return err
		}
		return encodePaths(w, reg)
	})
}

func encodePaths(w io.Writer, reg *pathindex.Registry) error {
	dirs := reg.Dirs()
	if err := writeUint32(w, uint32(len(dirs))); err != nil {
		return err
	}
	for _, d := range dirs {
		if err := writeString(w, d); err != nil {
			return err
		}
	}

	files := reg.Files()
	if err := writeUint32(w, uint32(len(files))); err != nil {
		return err
	}
	for _, f := range files {
		if err := writeUint32(w, f.DirIndex); err != nil {
			return err
		}
		if err := writeString(w, f.Filename); err != nil {
			return err
		}
	}
	return nil
}

// LoadPaths reads a .paths file via a buffered reader, decoding into an
// owned byte copy.
func LoadPaths(base string) (Header, *pathindex.Registry, error) {
	f, err := os.Open(base + ".paths")
	if err != nil {
		return Header{}, nil, notFoundOrIO(err, base+".paths")
	}
	defer f.Close()
	return decodePathsFrom(bufio.NewReader(f), base+".paths")
}

// LoadPathsMmap reads a .paths file via a memory map, avoiding a buffered
// copy of the whole file for large registries read repeatedly.
func LoadPathsMmap(base string) (Header, *pathindex.Registry, error) {
	f, err := os.Open(base + ".paths")
	if err != nil {
		return Header{}, nil, notFoundOrIO(err, base+".paths")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Header{}, nil, errors.Wrap(errors.KindIO, "stat failed", err).WithPath(base + ".paths")
	}
	if info.Size() == 0 {
		return Header{}, nil, errors.New(errors.KindInvalidFormat, "empty index file").WithPath(base + ".paths")
	}

	m, err := mmap.MapRegion(f, int(info.Size()), mmap.RDONLY, 0, 0)
	if err != nil {
		return Header{}, nil, errors.Wrap(errors.KindIO, "mmap failed", err).WithPath(base + ".paths")
	}
	defer m.Unmap()

	return decodePathsFrom(newByteReader(m), base+".paths")
}

func decodePathsFrom(r io.Reader, path string) (Header, *pathindex.Registry, error) {
	if err := checkMagic(r, pathsMagic, path); err != nil {
		return Header{}, nil, err
	}
	h, err := readHeader(r)
	if err != nil {
		return Header{}, nil, errors.Wrap(errors.KindInvalidFormat, "bad header", err).WithPath(path)
	}

	dirCount, err := readUint32(r)
	if err != nil {
		return Header{}, nil, serErr(err, path)
	}
	dirs := make([]string, dirCount)
	for i := range dirs {
		dirs[i], err = readString(r)
		if err != nil {
			return Header{}, nil, serErr(err, path)
		}
	}

	fileCount, err := readUint32(r)
	if err != nil {
		return Header{}, nil, serErr(err, path)
	}
	files := make([]pathindex.FileEntry, fileCount)
	for i := range files {
		files[i].DirIndex, err = readUint32(r)
		if err != nil {
			return Header{}, nil, serErr(err, path)
		}
		files[i].Filename, err = readString(r)
		if err != nil {
			return Header{}, nil, serErr(err, path)
		}
	}

	reg := pathindex.FromParts(dirs, files)
	reg.RebuildDirLookup()
	return h, reg, nil
}

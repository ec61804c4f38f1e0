package source

import (
	"compress/bzip2"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrNotFound is returned when a table does not exist at its source.
// It unifies the not-found conditions of all source implementations.
var ErrNotFound = os.ErrNotExist

// Source is a read-only origin of an embedding table.
type Source interface {
	// Open returns the raw byte stream of the table.
	Open(ctx context.Context) (io.ReadCloser, error)

	// Name returns the table name, e.g. a file path or object key. Its
	// extension selects the decompression applied by the Open function.
	Name() string
}

// fileSource reads a table from the local file system.
type fileSource struct {
	path string
}

// File returns a Source reading the local file at path.
func File(path string) Source {
	return fileSource{path: path}
}

func (s fileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return os.Open(s.path)
}

func (s fileSource) Name() string { return s.path }

// Open opens src and decompresses its stream according to the extension of
// src.Name(): .gz, .bz2, .zst and .lz4 are recognized, anything else passes
// through unchanged. Closing the returned reader closes the decompressor
// and the underlying stream.
func Open(ctx context.Context, src Source) (io.ReadCloser, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}

	dec, err := decompress(src.Name(), rc)
	if err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("open %s: %w", src.Name(), err)
	}

	return dec, nil
}

func decompress(name string, rc io.ReadCloser) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		zr, err := gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}

		return &decompressedReader{Reader: zr, closers: []io.Closer{zr, rc}}, nil

	case ".bz2":
		return &decompressedReader{Reader: bzip2.NewReader(rc), closers: []io.Closer{rc}}, nil

	case ".zst":
		zr, err := zstd.NewReader(rc)
		if err != nil {
			return nil, err
		}
		zrc := zr.IOReadCloser()

		return &decompressedReader{Reader: zrc, closers: []io.Closer{zrc, rc}}, nil

	case ".lz4":
		return &decompressedReader{Reader: lz4.NewReader(rc), closers: []io.Closer{rc}}, nil

	default:
		return rc, nil
	}
}

// decompressedReader couples a decompressing reader with the closers of the
// decompressor and the underlying stream, in close order.
type decompressedReader struct {
	io.Reader
	closers []io.Closer
}

func (r *decompressedReader) Close() error {
	var firstErr error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

package embedgo

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/embedgo/distance"
	"github.com/hupe1980/embedgo/source"
)

// Load reads an embedding table from r and builds a Store from it.
//
// The table format is one record per line: a key followed by the vector
// elements, separated by whitespace. The first record fixes the dimension.
// Vectors are L2-normalized before insertion; vectors with a norm below
// distance.Epsilon are stored as parsed. For duplicate keys the first
// occurrence wins; later ones are skipped and reported through the logger.
//
// Loading is atomic: on a malformed line, a read error or context
// cancellation no store is returned.
func Load(ctx context.Context, r io.Reader, optFns ...func(*Options)) (*Store, error) {
	opts := applyOptions(optFns)

	s := &Store{
		byKey:  make(map[string][]float32),
		byID:   make(map[uint32][]float32),
		logger: opts.Logger,
	}

	// A table with many duplicates would otherwise flood the log. The
	// totals always show up in the final summary.
	warnLimit := rate.Sometimes{First: 16, Interval: time.Second}

	scanner := bufio.NewScanner(r)
	// The scanner grows up to the larger of max and cap(buf), so the initial
	// buffer must not exceed the configured limit.
	scanner.Buffer(make([]byte, min(64*1024, opts.MaxLineBytes)), opts.MaxLineBytes)

	line := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line++

		rec, err := parseRecord(scanner.Text(), line)
		if err != nil {
			return nil, err
		}

		if opts.ProgressInterval > 0 && line%opts.ProgressInterval == 0 {
			opts.Logger.LogProgress(line, len(s.byKey))
		}

		if rec.key == "" {
			continue
		}

		if s.dim == 0 {
			if len(rec.vec) == 0 {
				return nil, &FormatError{Line: line, cause: ErrNoVectorElements}
			}

			s.dim = len(rec.vec)
		} else if len(rec.vec) != s.dim {
			return nil, &FormatError{
				Line:  line,
				cause: &ErrDimensionMismatch{Expected: s.dim, Actual: len(rec.vec)},
			}
		}

		if _, ok := s.byKey[rec.key]; ok {
			s.stats.Duplicates++
			warnLimit.Do(func() { opts.Logger.LogDuplicate(rec.key, line) })

			continue
		}

		distance.NormalizeL2InPlace(rec.vec)

		s.byKey[rec.key] = rec.vec

		if opts.Recoder != nil {
			if id, ok := opts.Recoder.WordID(rec.key); ok {
				// The id index shares the key index slice.
				s.byID[id] = rec.vec
				s.stats.Recoded++
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read embeddings: %w", err)
	}

	s.stats.Lines = line
	s.stats.Keys = len(s.byKey)
	s.zero = make([]float32, s.dim)

	opts.Logger.LogLoad(s.dim, s.stats)

	return s, nil
}

// LoadFile loads an embedding table from a file. Tables compressed with
// gzip, bzip2, zstd or lz4 are decompressed transparently based on the file
// extension.
func LoadFile(ctx context.Context, path string, optFns ...func(*Options)) (*Store, error) {
	rc, err := source.Open(ctx, source.File(path))
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Load(ctx, rc, optFns...)
}

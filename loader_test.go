package embedgo

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/embedgo/source"
	"github.com/hupe1980/embedgo/vocab"
)

func TestLoad(t *testing.T) {
	t.Run("BasicTable", func(t *testing.T) {
		store, err := Load(context.Background(), strings.NewReader("alpha 1.0 0.0\nbeta 0.0 1.0\n"))
		require.NoError(t, err)

		assert.Equal(t, 2, store.Dimension())
		assert.Equal(t, 2, store.Len())

		vec, ok := store.Vector("alpha")
		require.True(t, ok)
		assert.Equal(t, []float32{1, 0}, vec)

		_, ok = store.Vector("gamma")
		assert.False(t, ok)
	})

	t.Run("Normalization", func(t *testing.T) {
		store, err := Load(context.Background(), strings.NewReader("a 3 4\n"))
		require.NoError(t, err)

		vec, ok := store.Vector("a")
		require.True(t, ok)
		assert.InDelta(t, 0.6, vec[0], 1e-6)
		assert.InDelta(t, 0.8, vec[1], 1e-6)
	})

	t.Run("TinyNormKeptAsParsed", func(t *testing.T) {
		store, err := Load(context.Background(), strings.NewReader("tiny 0.000001 0\n"))
		require.NoError(t, err)

		vec, ok := store.Vector("tiny")
		require.True(t, ok)
		assert.Equal(t, []float32{1e-6, 0}, vec)
	})

	t.Run("DuplicateKeepsFirst", func(t *testing.T) {
		store, err := Load(context.Background(), strings.NewReader("a 1 0\nb 0 1\na 0 1\n"))
		require.NoError(t, err)

		assert.Equal(t, 2, store.Len())
		assert.Equal(t, 1, store.Stats().Duplicates)

		vec, ok := store.Vector("a")
		require.True(t, ok)
		assert.Equal(t, []float32{1, 0}, vec)
	})

	t.Run("BlankAndIndentedLines", func(t *testing.T) {
		store, err := Load(context.Background(), strings.NewReader("a 1 0\n\n   \n\t0.5 0.5\nb 0 1\n"))
		require.NoError(t, err)

		assert.Equal(t, 2, store.Len())
		assert.Equal(t, 5, store.Stats().Lines)
		assert.Equal(t, 2, store.Stats().Keys)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		store, err := Load(context.Background(), strings.NewReader(""))
		require.NoError(t, err)

		assert.Equal(t, 0, store.Dimension())
		assert.Equal(t, 0, store.Len())
		assert.Empty(t, store.VectorOrZero("anything"))
	})

	t.Run("Recoder", func(t *testing.T) {
		v := vocab.New("beta")

		store, err := Load(context.Background(), strings.NewReader("alpha 1 0\nbeta 0 1\n"), func(o *Options) {
			o.Recoder = v
		})
		require.NoError(t, err)

		assert.Equal(t, 1, store.Stats().Recoded)

		byKey, ok := store.Vector("beta")
		require.True(t, ok)

		byID, ok := store.VectorByID(0)
		require.True(t, ok)

		// The id index aliases the key index, it does not copy.
		assert.Same(t, &byKey[0], &byID[0])

		_, ok = store.VectorByID(42)
		assert.False(t, ok)
	})

	t.Run("ProgressLogging", func(t *testing.T) {
		var buf bytes.Buffer

		_, err := Load(context.Background(), strings.NewReader("a 1 0\nb 0 1\nc 1 1\nd 0 0\n"), func(o *Options) {
			o.Logger = NewLogger(slog.NewTextHandler(&buf, nil))
			o.ProgressInterval = 2
		})
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "loading embeddings")
		assert.Contains(t, buf.String(), "load completed")
	})
}

func TestLoadErrors(t *testing.T) {
	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := Load(context.Background(), strings.NewReader("a 1 0\nb 1 2 3\n"))
		require.Error(t, err)

		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, 2, formatErr.Line)

		var dimErr *ErrDimensionMismatch
		require.ErrorAs(t, err, &dimErr)
		assert.Equal(t, 2, dimErr.Expected)
		assert.Equal(t, 3, dimErr.Actual)

		assert.EqualError(t, err, "wrong format in line 2: number of vector elements (3) differs from preceding lines (2)")
	})

	t.Run("KeyOnlyAfterFirstLine", func(t *testing.T) {
		_, err := Load(context.Background(), strings.NewReader("a 1 0\nsolo\n"))
		require.Error(t, err)

		var dimErr *ErrDimensionMismatch
		require.ErrorAs(t, err, &dimErr)
		assert.Equal(t, 2, dimErr.Expected)
		assert.Equal(t, 0, dimErr.Actual)
	})

	t.Run("InvalidValue", func(t *testing.T) {
		_, err := Load(context.Background(), strings.NewReader("x notanumber 2\n"))
		require.Error(t, err)

		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, 1, formatErr.Line)

		var valErr *ErrInvalidValue
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, 1, valErr.Index)
		assert.Equal(t, "notanumber", valErr.Literal)

		assert.ErrorIs(t, err, strconv.ErrSyntax)
	})

	t.Run("NoVectorElements", func(t *testing.T) {
		_, err := Load(context.Background(), strings.NewReader("solo\n"))
		require.Error(t, err)

		assert.ErrorIs(t, err, ErrNoVectorElements)

		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, 1, formatErr.Line)
	})

	t.Run("ContextCanceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Load(ctx, strings.NewReader("a 1 0\n"))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("LineTooLong", func(t *testing.T) {
		long := "key " + strings.Repeat("0.1 ", 64)

		_, err := Load(context.Background(), strings.NewReader(long), func(o *Options) {
			o.MaxLineBytes = 32
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, bufio.ErrTooLong)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("Gzip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "table.txt.gz")

		f, err := os.Create(path)
		require.NoError(t, err)

		zw := gzip.NewWriter(f)
		_, err = zw.Write([]byte("alpha 1 0\nbeta 0 1\n"))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		require.NoError(t, f.Close())

		store, err := LoadFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, 2, store.Len())
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
		assert.ErrorIs(t, err, source.ErrNotFound)
	})
}

package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/embedgo/source"
	miniosource "github.com/hupe1980/embedgo/source/minio"
	s3source "github.com/hupe1980/embedgo/source/s3"
)

func TestResolveSource(t *testing.T) {
	t.Run("File", func(t *testing.T) {
		src, err := resolveSource(context.Background(), "dir/table.txt.gz")
		require.NoError(t, err)

		assert.IsType(t, source.File(""), src)
		assert.Equal(t, "dir/table.txt.gz", src.Name())
	})

	t.Run("S3", func(t *testing.T) {
		src, err := resolveSource(context.Background(), "s3://models/glove.txt.gz")
		require.NoError(t, err)

		assert.IsType(t, &s3source.Source{}, src)
		assert.Equal(t, "glove.txt.gz", src.Name())
	})

	t.Run("S3NestedKey", func(t *testing.T) {
		src, err := resolveSource(context.Background(), "s3://models/glove/6B/50d.txt.gz")
		require.NoError(t, err)

		assert.Equal(t, "glove/6B/50d.txt.gz", src.Name())
	})

	t.Run("MinIOEndpoint", func(t *testing.T) {
		endpoint = "localhost:9000"
		t.Cleanup(func() { endpoint = "" })

		src, err := resolveSource(context.Background(), "s3://models/glove.txt.gz")
		require.NoError(t, err)

		assert.IsType(t, &miniosource.Source{}, src)
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, path := range []string{"s3://", "s3://bucket", "s3://bucket/", "s3:///key"} {
			_, err := resolveSource(context.Background(), path)
			assert.Error(t, err, path)
		}
	})
}

func TestMetricFunc(t *testing.T) {
	t.Run("Cosine", func(t *testing.T) {
		metricName = "cosine"
		t.Cleanup(func() { metricName = "cosine" })

		dist, err := metricFunc()
		require.NoError(t, err)
		assert.NotNil(t, dist)
	})

	t.Run("Unknown", func(t *testing.T) {
		metricName = "hamming"
		t.Cleanup(func() { metricName = "cosine" })

		_, err := metricFunc()
		assert.Error(t, err)
	})
}

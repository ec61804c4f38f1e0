// Package minio provides a MinIO (and S3-compatible endpoint) source for
// embedding tables.
package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"github.com/hupe1980/embedgo/source"
)

// Compile time check to ensure Source satisfies the source interface.
var _ source.Source = (*Source)(nil)

// Source reads an embedding table from a MinIO object.
type Source struct {
	client *minio.Client
	bucket string
	key    string
}

// New creates a new MinIO source for the given bucket and object key.
func New(client *minio.Client, bucket, key string) *Source {
	return &Source{
		client: client,
		bucket: bucket,
		key:    key,
	}
}

// Open returns the object's byte stream. A missing object is reported as
// source.ErrNotFound.
func (s *Source) Open(ctx context.Context) (io.ReadCloser, error) {
	// Stat first: GetObject defers errors to the first read, a missing
	// object should fail here.
	if _, err := s.client.StatObject(ctx, s.bucket, s.key, minio.StatObjectOptions{}); err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, fmt.Errorf("%w: %s/%s", source.ErrNotFound, s.bucket, s.key)
		}

		return nil, err
	}

	return s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
}

// Name returns the object key.
func (s *Source) Name() string { return s.key }

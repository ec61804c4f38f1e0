// Package s3 provides an Amazon S3 source for embedding tables.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/hupe1980/embedgo/source"
)

// Client is the interface for the S3 operations used by Source.
// *s3.Client satisfies it.
type Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Compile time check to ensure Source satisfies the source interface.
var _ source.Source = (*Source)(nil)

// Source reads an embedding table from an S3 object.
type Source struct {
	client Client
	bucket string
	key    string
}

// New creates a new S3 source for the given bucket and object key.
func New(client Client, bucket, key string) *Source {
	return &Source{
		client: client,
		bucket: bucket,
		key:    key,
	}
}

// Open returns the object's byte stream. A missing object is reported as
// source.ErrNotFound.
func (s *Source) Open(ctx context.Context) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("%w: s3://%s/%s", source.ErrNotFound, s.bucket, s.key)
		}

		return nil, err
	}

	return out.Body, nil
}

// Name returns the object key.
func (s *Source) Name() string { return s.key }

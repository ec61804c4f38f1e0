package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/embedgo/source"
	miniosource "github.com/hupe1980/embedgo/source/minio"
	s3source "github.com/hupe1980/embedgo/source/s3"
)

// resolveSource maps a table location to a source. Plain paths read from the
// local filesystem, s3:// locations from S3 or, with --endpoint set, from
// any S3-compatible store. Credentials come from the usual AWS environment.
func resolveSource(ctx context.Context, path string) (source.Source, error) {
	if !strings.HasPrefix(path, "s3://") {
		return source.File(path), nil
	}

	bucket, key, ok := strings.Cut(strings.TrimPrefix(path, "s3://"), "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("invalid s3 location %q, want s3://bucket/key", path)
	}

	if endpoint != "" {
		client, err := minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewEnvAWS(),
			Secure: !insecure,
		})
		if err != nil {
			return nil, fmt.Errorf("connect to %s: %w", endpoint, err)
		}

		return miniosource.New(client, bucket, key), nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3source.New(awss3.NewFromConfig(cfg), bucket, key), nil
}

// Package source provides read-only origins for embedding tables.
//
// A Source yields the raw byte stream of a table; Open wraps that stream
// with transparent decompression selected by the extension of the source
// name (.gz, .bz2, .zst, .lz4). Local files are covered here; S3 and MinIO
// objects live in the s3 and minio subpackages.
package source

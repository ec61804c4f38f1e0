// Package main provides the embedgo CLI tool.
//
// Usage:
//
//	embedgo [flags] <command> [args]
//
// Commands:
//
//	knn  - Query nearest neighbors of stored keys
//	info - Print statistics of an embedding table
//
// Tables are read from local files or S3, with transparent decompression
// based on the file extension (.gz, .bz2, .zst, .lz4).
package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/embedgo/cmd/embedgo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/embedgo"
	"github.com/hupe1980/embedgo/distance"
	"github.com/hupe1980/embedgo/source"
	"github.com/hupe1980/embedgo/vocab"
)

var (
	// Global flags
	tablePath  string
	vocabPath  string
	metricName string
	endpoint   string
	insecure   bool
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "embedgo",
	Short: "Query word embedding tables",
	Long: `Embedgo CLI - load word embedding tables and query them.

Tables are plain text, one key and its vector per line. Compressed
tables (.gz, .bz2, .zst, .lz4) are decompressed on the fly, and
s3:// locations are fetched from S3 or any S3-compatible store.

Examples:
  # Nearest neighbors of two words
  embedgo -t glove.6B.50d.txt.gz knn king queen

  # Interactive session against a table in S3
  embedgo -t s3://models/glove.42B.300d.txt.gz knn

  # Table statistics
  embedgo -t glove.6B.50d.txt.gz info`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&tablePath, "table", "t", "", "embedding table (path or s3://bucket/key)")
	rootCmd.PersistentFlags().StringVar(&vocabPath, "vocab", "", "vocabulary file for id-based lookups")
	rootCmd.PersistentFlags().StringVarP(&metricName, "metric", "m", "cosine", "distance metric (l2, cosine)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint (e.g. localhost:9000)")
	rootCmd.PersistentFlags().BoolVar(&insecure, "insecure", false, "use plain HTTP for the S3 endpoint")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = rootCmd.MarkPersistentFlagRequired("table")

	rootCmd.AddCommand(knnCmd)
	rootCmd.AddCommand(infoCmd)
}

// newLogger returns the logger for the configured verbosity.
func newLogger() *embedgo.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return embedgo.NewTextLogger(level)
}

// openStore loads the configured embedding table.
func openStore(ctx context.Context) (*embedgo.Store, error) {
	src, err := resolveSource(ctx, tablePath)
	if err != nil {
		return nil, err
	}

	rc, err := source.Open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	optFns := []func(*embedgo.Options){
		func(o *embedgo.Options) { o.Logger = newLogger() },
	}

	if vocabPath != "" {
		v, err := loadVocab(vocabPath)
		if err != nil {
			return nil, err
		}

		optFns = append(optFns, func(o *embedgo.Options) { o.Recoder = v })
	}

	return embedgo.Load(ctx, rc, optFns...)
}

func loadVocab(path string) (*vocab.Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	v, err := vocab.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}

	return v, nil
}

// metricFunc resolves the configured metric name.
func metricFunc() (distance.Func, error) {
	m, err := distance.ParseMetric(metricName)
	if err != nil {
		return nil, err
	}

	return distance.Provider(m)
}

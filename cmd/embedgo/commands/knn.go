package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/embedgo"
	"github.com/hupe1980/embedgo/distance"
)

var (
	knnK           int
	knnIncludeSelf bool
)

var knnCmd = &cobra.Command{
	Use:   "knn [keys...]",
	Short: "Query nearest neighbors of stored keys",
	Long: `Query the k nearest neighbors of one or more stored keys.

With keys as arguments, each key is queried once and the results are
printed in argument order. Without arguments an interactive prompt
reads one key per line; leave with "exit", "quit" or Ctrl-D.

Examples:
  embedgo -t glove.6B.50d.txt.gz knn king
  embedgo -t glove.6B.50d.txt.gz knn -k 5 king queen berlin
  embedgo -t glove.6B.50d.txt.gz -m l2 knn`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dist, err := metricFunc()
		if err != nil {
			return err
		}

		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		if len(args) == 0 {
			return runInteractive(store, dist)
		}

		return runBatch(store, dist, args)
	},
}

func init() {
	knnCmd.Flags().IntVarP(&knnK, "top", "k", 10, "number of neighbors to return")
	knnCmd.Flags().BoolVar(&knnIncludeSelf, "include-self", false, "report the query key itself as a neighbor")
}

func runBatch(store *embedgo.Store, dist distance.Func, keys []string) error {
	results := make([][]embedgo.SearchResult, len(keys))

	g := new(errgroup.Group)
	g.SetLimit(16)

	for i, key := range keys {
		g.Go(func() error {
			res, err := store.KNNSearch(key, dist, knnK, !knnIncludeSelf)
			if err != nil {
				return fmt.Errorf("search %q: %w", key, err)
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, key := range keys {
		printResults(key, results[i])
	}

	return nil
}

func runInteractive(store *embedgo.Store, dist distance.Func) error {
	fmt.Printf("Loaded %d keys of dimension %d. One key per line, \"exit\" to quit.\n", store.Len(), store.Dimension())

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("embedgo> ")

		if !scanner.Scan() {
			fmt.Println()
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == "exit" || line == "quit" {
			break
		}

		results, err := store.KNNSearch(line, dist, knnK, !knnIncludeSelf)
		if err != nil {
			return err
		}

		printResults(line, results)
	}

	return scanner.Err()
}

func printResults(key string, results []embedgo.SearchResult) {
	if len(results) == 0 {
		fmt.Printf("%s: no results\n", key)
		return
	}

	fmt.Println(key)

	for i, r := range results {
		fmt.Printf("%3d. %-24s %.6f\n", i+1, r.Key, r.Distance)
	}
}

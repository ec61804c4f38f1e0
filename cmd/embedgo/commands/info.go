package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print statistics of an embedding table",
	Long: `Load an embedding table and print its statistics.

Examples:
  embedgo -t glove.6B.50d.txt.gz info
  embedgo -t s3://models/glove.42B.300d.txt.gz --endpoint localhost:9000 info`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		stats := store.Stats()

		fmt.Printf("Table:      %s\n", tablePath)
		fmt.Printf("Dimension:  %d\n", store.Dimension())
		fmt.Printf("Keys:       %d\n", stats.Keys)
		fmt.Printf("Lines:      %d\n", stats.Lines)
		fmt.Printf("Duplicates: %d\n", stats.Duplicates)

		if vocabPath != "" {
			fmt.Printf("Recoded:    %d\n", stats.Recoded)
		}

		return nil
	},
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newSummarizeCmd(app *App) *cobra.Command {
	var (
		inputPath string
		stats     bool
	)

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Compress a document into a bounded-length extractive summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return err
			}

			summary := app.Summaries.Summarize(cmd.Context(), string(data))
			fmt.Fprintln(cmd.OutOrStdout(), summary)

			if stats {
				cs := app.Summaries.CacheStats()
				fmt.Fprintf(cmd.ErrOrStderr(), "cache: %d entries, ~%d bytes\n", cs.Size, cs.MemoryUsage)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "document text file (required)")
	cmd.Flags().BoolVar(&stats, "stats", false, "print summary cache statistics to stderr")
	cmd.MarkFlagRequired("input")

	return cmd
}

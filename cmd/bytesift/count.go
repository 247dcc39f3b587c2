package bytesift

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bytesift/bytesift/internal/engine"
	"github.com/bytesift/bytesift/internal/report"
	"github.com/bytesift/bytesift/internal/types"
)

var flagCountTotal bool

func init() {
	cmd := &cobra.Command{
		Use:   "count [paths...]",
		Short: "Count lines, words, and bytes",
		Long:  "Count reports line, word, and byte totals per file in wc column order. Use \"-\" to read from stdin.",
		RunE:  runCount,
	}
	rootCmd.AddCommand(cmd)
	addScopeFlags(cmd)
	cmd.Flags().BoolVar(&flagCountTotal, "total", false, "always print the total row")
}

func runCount(_ *cobra.Command, args []string) error {
	jsonl := jsonlOutput()
	cfg := baseConfig(args)

	enc := report.NewEncoder(os.Stdout)
	var total types.TextMetrics

	res, err := engine.Metrics(cfg,
		func(path string, m types.TextMetrics) {
			total.Lines += m.Lines
			total.Words += m.Words
			total.Bytes += m.Bytes
			if jsonl {
				_ = enc.WriteMetrics(path, m)
				return
			}
			report.PrintMetrics(os.Stdout, path, m)
		},
		func(path string, e error) {
			if jsonl {
				_ = enc.WriteError(path, e)
				return
			}
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", path, e)
		})
	if err != nil {
		return fmt.Errorf("count error: %w", err)
	}
	if !jsonl && (flagCountTotal || res.FilesScanned > 1) {
		report.PrintMetrics(os.Stdout, "total", total)
	}
	if res.Errors > 0 {
		os.Exit(1)
	}
	return nil
}

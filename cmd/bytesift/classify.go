package bytesift

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bytesift/bytesift/internal/engine"
	"github.com/bytesift/bytesift/internal/report"
	"github.com/bytesift/bytesift/internal/types"
)

var flagSampleBytes int64

func init() {
	cmd := &cobra.Command{
		Use:   "classify [paths...]",
		Short: "Classify files by type, encoding, and language",
		RunE:  runClassify,
	}
	rootCmd.AddCommand(cmd)
	addScopeFlags(cmd)
	cmd.Flags().Int64Var(&flagSampleBytes, "sample-bytes", 0, "bytes sniffed per file (0 = default)")
}

func runClassify(_ *cobra.Command, args []string) error {
	jsonl := jsonlOutput()
	cfg := baseConfig(args)
	cfg.SampleBytes = flagSampleBytes

	enc := report.NewEncoder(os.Stdout)
	opts := report.PrintOptions{NoColor: flagNoColor}

	res, err := engine.ClassifyFiles(cfg,
		func(path string, size uint64, digest string, cls types.FileClassification) {
			if jsonl {
				_ = enc.WriteFile(path, size, digest, cls)
				return
			}
			report.PrintClassification(os.Stdout, cls, opts)
		},
		func(path string, e error) {
			if jsonl {
				_ = enc.WriteError(path, e)
				return
			}
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", path, e)
		})
	if err != nil {
		return fmt.Errorf("classify error: %w", err)
	}
	if res.Errors > 0 {
		os.Exit(1)
	}
	return nil
}

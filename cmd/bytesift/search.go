package bytesift

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bytesift/bytesift/internal/engine"
	"github.com/bytesift/bytesift/internal/report"
)

var flagHexPattern bool

func init() {
	cmd := &cobra.Command{
		Use:   "search <pattern> [paths...]",
		Short: "Find byte pattern occurrences",
		Long:  "Search reports the offset of every non-overlapping occurrence of a literal byte pattern. With --hex the pattern is decoded from hex first, so binary sequences can be located.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSearch,
	}
	rootCmd.AddCommand(cmd)
	addScopeFlags(cmd)
	cmd.Flags().BoolVar(&flagHexPattern, "hex", false, "interpret the pattern as hex bytes")
}

func runSearch(_ *cobra.Command, args []string) error {
	pattern := []byte(args[0])
	if flagHexPattern {
		b, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("invalid hex pattern: %w", err)
		}
		pattern = b
	}
	if len(pattern) == 0 {
		return fmt.Errorf("empty pattern")
	}

	jsonl := jsonlOutput()
	cfg := baseConfig(args[1:])

	enc := report.NewEncoder(os.Stdout)
	res, err := engine.Search(cfg, pattern,
		func(path string, offset, length uint64) {
			if jsonl {
				_ = enc.WriteMatch(path, offset, length)
				return
			}
			fmt.Fprintf(os.Stdout, "%s:%d\n", path, offset)
		},
		func(path string, e error) {
			if jsonl {
				_ = enc.WriteError(path, e)
				return
			}
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", path, e)
		})
	if err != nil {
		return fmt.Errorf("search error: %w", err)
	}
	if res.Errors > 0 {
		os.Exit(1)
	}
	return nil
}

package bytesift

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	flagJSONL           bool
	flagText            bool
	flagThreads         int
	flagNoColor         bool
	flagMinConfidence   float64
	flagFailFast        bool
	flagIncremental     bool
	flagDefaultExcludes bool
	flagNoUpdateCheck   bool
	flagSelfUpdate      bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the bytesift CLI.
var rootCmd = &cobra.Command{
	Use:           "bytesift",
	Short:         "Analyze file contents",
	Long:          "Bytesift inspects files through memory-mapped regions and reports text metrics, recognizable patterns, and file classifications as terminal output or JSON Lines.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the bytesift CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSONL, "jsonl", false, "emit JSON Lines records")
	rootCmd.PersistentFlags().BoolVar(&flagText, "text", false, "force human-readable output even when piped")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().Float64Var(&flagMinConfidence, "min-confidence", 0.0, "only report matches with confidence >= value (0-1)")
	rootCmd.PersistentFlags().BoolVar(&flagFailFast, "fail-fast", false, "abort the batch on the first per-file error")
	rootCmd.PersistentFlags().BoolVar(&flagIncremental, "incremental", false, "skip files unchanged since the last run")
	rootCmd.PersistentFlags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "apply built-in directory exclude list (node_modules, dist, etc.)")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
	rootCmd.PersistentFlags().BoolVar(&flagSelfUpdate, "self-update", false, "update bytesift to the latest release")
}

// jsonlOutput decides the output codec: explicit flags win, otherwise a
// non-terminal stdout gets JSON Lines so pipes always see machine records.
func jsonlOutput() bool {
	if flagJSONL {
		return true
	}
	if flagText {
		return false
	}
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

package bytesift

import "github.com/spf13/cobra"

var (
	flagInclude  string
	flagExclude  string
	flagMaxBytes int64
	flagEnable   string
	flagDisable  string
)

// addScopeFlags registers the file-selection flags shared by every batch
// subcommand.
func addScopeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip walked files larger than this")
}

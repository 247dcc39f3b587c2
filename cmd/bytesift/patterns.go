package bytesift

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bytesift/bytesift/internal/patterns"
)

func init() {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List available pattern types",
		Run: func(_ *cobra.Command, _ []string) {
			for _, id := range patterns.TypeIDs() {
				marker := " "
				if patterns.Sensitive(id) {
					marker = "*"
				}
				fmt.Printf("%s %-20s base=%.2f\n", marker, id, patterns.BaseConfidence(id))
			}
		},
	}
	rootCmd.AddCommand(cmd)
}

package bytesift

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/bytesift/bytesift/internal/audit"
)

var flagHistoryLimit int

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past analysis runs",
		RunE: func(_ *cobra.Command, _ []string) error {
			records, err := audit.NewLog(".").LoadHistory()
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					fmt.Println("no runs recorded yet")
					return nil
				}
				return err
			}
			for i, r := range records {
				if flagHistoryLimit > 0 && i >= flagHistoryLimit {
					break
				}
				fmt.Printf("%s  %-8s files=%d patterns=%d errors=%d  %s\n",
					r.Timestamp.Format("2006-01-02 15:04:05"), r.Command,
					r.FilesScanned, r.TotalPatterns, r.Errors, r.Duration)
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "show at most N runs (0 = all)")
}

package bytesift

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bytesift/bytesift/internal/memregion"
)

var (
	flagReadOffset uint64
	flagReadLength uint64
)

func init() {
	cmd := &cobra.Command{
		Use:   "read <file>",
		Short: "Read a byte range from a file",
		Long:  "Read maps a file and writes the requested byte range to stdout. Reads past the end of the file fail instead of truncating.",
		Args:  cobra.ExactArgs(1),
		RunE:  runRead,
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().Uint64Var(&flagReadOffset, "offset", 0, "start offset in bytes")
	cmd.Flags().Uint64Var(&flagReadLength, "length", 0, "bytes to read (0 = to end of file)")
}

func runRead(_ *cobra.Command, args []string) error {
	r, err := memregion.Open(args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	length := flagReadLength
	if length == 0 {
		if flagReadOffset > r.Len() {
			return fmt.Errorf("offset %d beyond end of file (%d bytes)", flagReadOffset, r.Len())
		}
		length = r.Len() - flagReadOffset
	}
	b, err := r.Read(flagReadOffset, length)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(b)
	return err
}

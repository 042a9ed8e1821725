package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/uuidv7"
)

func newFieldCommand() *cobra.Command {
	var offset int
	cmd := &cobra.Command{
		Use:   "field <uuid>",
		Short: "Print the big-endian uint16 at a byte offset (0-14)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuidv7.Parse(args[0])
			if err != nil {
				return err
			}
			v, err := id.ToUint16(offset)
			if err != nil {
				return fmt.Errorf("offset %d: %w", offset, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d 0x%04x\n", v, v)
			return nil
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 14, "Byte offset of the two-byte window")
	return cmd
}

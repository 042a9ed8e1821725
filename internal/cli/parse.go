package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Lzww0608/uuidv7"
)

func newParseCommand(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <uuid>...",
		Short: "Decode UUIDs and print their fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := uuidv7.ParseAll(args)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "UUID\tVERSION\tVARIANT\tTIME\tSEQUENCE\tV7")
			for _, id := range ids {
				ts := "-"
				if !id.Time().IsZero() {
					ts = id.Time().UTC().Format(time.RFC3339Nano)
				}
				valid := "yes"
				if verr := id.Validate(); verr != nil {
					valid = "no"
					log.WithField("uuid", id.String()).Debug(verr)
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d\t%s\n",
					id, id.Version(), variantName(id.Variant()), ts, id.Sequence(), valid)
			}
			if ferr := tw.Flush(); ferr != nil {
				return ferr
			}
			return err
		},
	}
}

func variantName(v uuidv7.Variant) string {
	switch v {
	case uuidv7.VariantNCS:
		return "ncs"
	case uuidv7.VariantRFC4122:
		return "rfc4122"
	case uuidv7.VariantMicrosoft:
		return "microsoft"
	default:
		return "future"
	}
}

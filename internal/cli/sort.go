package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Lzww0608/uuidv7"
)

func newSortCommand(log *logrus.Logger) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Read UUIDs from stdin, one per line, and print them in byte order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var lines []string
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				lines = append(lines, line)
			}
			if err := sc.Err(); err != nil {
				return err
			}

			ids, err := uuidv7.ParseAll(lines)
			if err != nil {
				if strict {
					return err
				}
				if merr, ok := err.(*multierror.Error); ok {
					for _, e := range merr.Errors {
						log.WithError(e).Warn("skipping line")
					}
				}
			}

			uuidv7.Sort(ids)
			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, id := range ids {
				fmt.Fprintln(w, id)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on the first malformed line instead of skipping it")
	return cmd
}

package cli

import (
	"bufio"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Lzww0608/uuidv7"
	"github.com/Lzww0608/uuidv7/metrics"
)

func newGenCommand(log *logrus.Logger) *cobra.Command {
	var (
		count int
		stats bool
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate UUIDv7 identifiers, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("invalid -n %d; must be at least 1", count)
			}

			collector := metrics.NewCollector(prometheus.NewRegistry())
			gen := uuidv7.NewGenerator(uuidv7.WithObserver(collector))

			w := bufio.NewWriter(cmd.OutOrStdout())
			for i := 0; i < count; i++ {
				fmt.Fprintln(w, gen.New())
			}
			if err := w.Flush(); err != nil {
				return err
			}

			entry := log.WithFields(logrus.Fields{
				"count":            count,
				"new_millis":       collector.Count(uuidv7.EventNewMillis),
				"same_millis":      collector.Count(uuidv7.EventSameMillis),
				"clock_regression": collector.Count(uuidv7.EventClockRegression),
				"sequence_wrap":    collector.Count(uuidv7.EventSequenceWrap),
			})
			if stats {
				entry.Info("generated")
			} else {
				entry.Debug("generated")
			}
			if n := collector.Count(uuidv7.EventSequenceWrap); n > 0 {
				log.WithField("wraps", n).Warn("sequence wrapped within a millisecond; output is not strictly ordered")
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of UUIDs to generate")
	cmd.Flags().BoolVar(&stats, "stats", false, "Log generator event counts")
	return cmd
}

package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRoot constructs the root command and registers every subcommand.
func NewRoot() *cobra.Command {
	var (
		logLevel  string
		logFormat string
		log       = logrus.New()
	)

	root := &cobra.Command{
		Use:           "uuidv7",
		Short:         "Generate, parse and sort UUIDv7 identifiers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogger(log, cmd, logLevel, logFormat)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", envOr("UUIDV7_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", envOr("UUIDV7_LOG_FORMAT", "text"), "Log format: text|json")

	root.AddCommand(newGenCommand(log))
	root.AddCommand(newParseCommand(log))
	root.AddCommand(newSortCommand(log))
	root.AddCommand(newFieldCommand())
	return root
}

// configureLogger applies level and format to log and points it at stderr
func configureLogger(log *logrus.Logger, cmd *cobra.Command, level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(lvl)
	log.SetOutput(cmd.ErrOrStderr())

	switch format {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("invalid --log-format %q; use text|json", format)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

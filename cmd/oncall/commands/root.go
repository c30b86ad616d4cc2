package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Schedule string
	LogLevel string
}

// Execute runs the root command
func Execute(ctx context.Context, version, commit string) error {
	return NewRootCommand(version, commit).ExecuteContext(ctx)
}

func NewRootCommand(version, commit string) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "oncall",
		Short: "Keep a Slack user group in sync with the on-call rotation",
		Long: `oncall resolves who is on call from a declarative rotation file and
makes the Slack user group (for example @oncall) match it. Optionally it
projects the rotation onto a Google Calendar.

Run it once a day from cron with "oncall run", or keep it running with
"oncall serve" to get the daily scheduler, slash commands and metrics.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.Schedule, "schedule", "s", "", "rotation file (default $ROTATION_FILE or ./rotation.yaml)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error (default $LOG_LEVEL)")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newResolveCommand(opts))
	cmd.AddCommand(newBackfillCommand(opts))
	cmd.AddCommand(newCursorCommand(opts))
	cmd.AddCommand(newHistoryCommand(opts))

	return cmd
}

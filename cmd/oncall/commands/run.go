package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const pushJob = "slack_oncall"

func newRunCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Sync the on-call user group once",
		Long: `Resolve today's on-call set, update the Slack user group when it drifted,
announce the change and project the calendar. Meant to be called by cron.

The process exits non-zero when the run fails.`,
		Example: `  # Daily cron entry
  0 7 * * * oncall run --schedule /etc/oncall/rotation.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts, needSlack|needCalendar)
			if err != nil {
				return err
			}
			defer a.Close()

			run, runErr := a.instance.OnCall.Run(cmd.Context())

			if a.cfg.PushgatewayURL != "" {
				pushCtx, cancel := context.WithTimeout(context.WithoutCancel(cmd.Context()), 10*time.Second)
				defer cancel()
				if err := a.metrics.Push(pushCtx, a.cfg.PushgatewayURL, pushJob); err != nil {
					a.log.Warn().Err(err).Msg("failed to push metrics")
				}
			}

			if run != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n",
					run.Date.Format(time.DateOnly), run.Status, strings.Join(run.OnCall, ", "))
			}

			return runErr
		},
	}
}

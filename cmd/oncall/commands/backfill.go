package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newBackfillCommand(opts *RootOptions) *cobra.Command {
	var (
		start string
		days  int
	)

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Create calendar events for a range of days",
		Long: `Create one calendar event per day for --days days starting at --start.
Sundays are skipped because the Saturday event spans the weekend, so do not
start on a Sunday. Events are not deduplicated: running it twice creates
every event twice.`,
		Example: `  oncall backfill --start 2024-01-01 --days 45`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("--days must be positive")
			}

			a, err := newApp(cmd, opts, needCalendar)
			if err != nil {
				return err
			}
			defer a.Close()

			from, err := time.ParseInLocation(time.DateOnly, start, a.schedule.Timezone)
			if err != nil {
				return fmt.Errorf("invalid --start %q, use YYYY-MM-DD", start)
			}

			created, err := a.instance.OnCall.Backfill(cmd.Context(), from, days)
			fmt.Fprintf(cmd.OutOrStdout(), "created %d calendar events\n", created)
			return err
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 0, "number of days")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("days")

	return cmd
}

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newResolveCommand(opts *RootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print who is on call, without touching Slack or the cursor",
		Example: `  # Today
  oncall resolve

  # A given day
  oncall resolve --date 2024-01-06`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts, 0)
			if err != nil {
				return err
			}
			defer a.Close()

			day := a.instance.OnCall.Today()
			if date != "" {
				day, err = time.ParseInLocation(time.DateOnly, date, a.schedule.Timezone)
				if err != nil {
					return fmt.Errorf("invalid --date %q, use YYYY-MM-DD", date)
				}
			}

			onCall, err := a.instance.OnCall.WhoIsOnCall(cmd.Context(), day)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", day.Weekday(), day.Format(time.DateOnly))
			if len(onCall) == 0 {
				fmt.Fprintln(out, "  nobody on call")
				return nil
			}
			for _, identity := range onCall {
				fmt.Fprintf(out, "  %s <%s>\n", identity.Name, identity.Email)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "day to resolve (YYYY-MM-DD, default today)")

	return cmd
}

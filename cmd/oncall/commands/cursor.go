package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCursorCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cursor",
		Short: "Inspect or seed the weekend rotation cursor",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the stored cursor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts, 0)
			if err != nil {
				return err
			}
			defer a.Close()

			index, err := a.instance.OnCall.GetCursor(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), index)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <index>",
		Short: "Overwrite the stored cursor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid cursor %q: %w", args[0], err)
			}

			a, err := newApp(cmd, opts, 0)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.instance.OnCall.SetCursor(cmd.Context(), index); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "cursor set to %d\n", index)
			return nil
		},
	})

	return cmd
}

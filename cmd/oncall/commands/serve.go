package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/diegoclair/slack-oncall/internal/config"
	"github.com/diegoclair/slack-oncall/internal/handlers"
	"github.com/spf13/cobra"
)

func newServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the daily scheduler and the HTTP endpoints",
		Long: `Start a long running process that syncs the user group every day at RUN_AT
(schedule timezone) and serves:

  /health          liveness probe
  /metrics         Prometheus metrics
  /slack/commands  signed slash command endpoint (who, history, help)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts, needSlack|needCalendar)
			if err != nil {
				return err
			}
			defer a.Close()

			signingSecret, err := a.creds.Resolve(config.SigningSecretKey)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			handler := handlers.New(a.instance.OnCall, signingSecret, a.log)

			srv := &http.Server{
				Addr:              ":" + a.cfg.Port,
				Handler:           newMux(handler, a),
				ReadHeaderTimeout: 10 * time.Second,
			}

			a.instance.Scheduler.Start(ctx)
			defer a.instance.Scheduler.Stop()

			errCh := make(chan error, 1)
			go func() {
				a.log.Info().Str("port", a.cfg.Port).Msg("server starting")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("failed to start server: %w", err)
			case <-ctx.Done():
				a.log.Info().Msg("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}
}

func newMux(handler *handlers.SlackHandler, a *app) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})
	mux.Handle("/metrics", a.metrics.Handler())
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	return mux
}

package commands

import (
	"fmt"

	"github.com/diegoclair/slack-oncall/internal/config"
	"github.com/diegoclair/slack-oncall/internal/database"
	"github.com/diegoclair/slack-oncall/internal/domain/entity"
	"github.com/diegoclair/slack-oncall/internal/domain/service"
	"github.com/diegoclair/slack-oncall/internal/gcal"
	"github.com/diegoclair/slack-oncall/internal/logger"
	"github.com/diegoclair/slack-oncall/internal/metrics"
	"github.com/diegoclair/slack-oncall/internal/slack"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// needs lists the external systems a command talks to. Secrets are only
// resolved for what the command needs.
type needs int

const (
	needSlack needs = 1 << iota
	needCalendar
)

type app struct {
	cfg      *config.Config
	creds    *config.EnvCredentials
	log      zerolog.Logger
	schedule *entity.Schedule
	db       *database.DB
	metrics  *metrics.Metrics
	instance *service.Instance
}

func newApp(cmd *cobra.Command, opts *RootOptions, n needs) (*app, error) {
	ctx := cmd.Context()

	cfg := config.Load()
	if opts.Schedule != "" {
		cfg.RotationFile = opts.Schedule
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

	schedule, err := config.LoadSchedule(cfg.RotationFile)
	if err != nil {
		return nil, err
	}
	if n&needCalendar == 0 {
		schedule.Calendar.Enabled = false
	}

	a := &app{
		cfg:      cfg,
		creds:    config.NewEnvCredentials(),
		log:      log,
		schedule: schedule,
		metrics:  metrics.New(),
	}
	deps := service.Dependencies{Observer: a.metrics}

	if n&needSlack != 0 {
		token, err := a.creds.Resolve(config.SlackTokenKey)
		if err != nil {
			return nil, err
		}
		client := slack.New(token, log)
		deps.Groups = client
		deps.Members = client
		deps.Notifier = client
	}

	if schedule.Calendar.Enabled {
		keyfile, err := a.creds.Resolve(config.GoogleKeyfileKey)
		if err != nil {
			return nil, err
		}
		calendar, err := gcal.New(ctx, schedule.Calendar.CalendarID, log, gcal.CredentialOptions(keyfile)...)
		if err != nil {
			return nil, err
		}
		deps.Calendar = calendar
	}

	a.db, err = database.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.DataManager = database.NewInstance(a.db)

	a.instance, err = service.NewInstance(schedule, deps, service.Options{
		AnnounceChannel: cfg.AnnounceChannel,
		RunAt:           cfg.RunAt,
		Logger:          log,
	})
	if err != nil {
		a.db.Close()
		return nil, err
	}

	log.Debug().
		Str("schedule", cfg.RotationFile).
		Str("timezone", schedule.Timezone.String()).
		Str("group", schedule.GroupHandle).
		Str("fallback_policy", string(schedule.FallbackPolicy)).
		Bool("calendar", schedule.Calendar.Enabled).
		Msg("application initialized")

	return a, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/slack-oncall/internal/domain"
	"github.com/diegoclair/slack-oncall/internal/domain/contract"
	"github.com/diegoclair/slack-oncall/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultHistoryLimit = 10

type onCallService struct {
	schedule        *entity.Schedule
	dm              contract.DataManager
	resolver        *resolver
	reconciler      *reconciler
	projector       *projector
	notifier        contract.Notifier
	observer        contract.RunObserver
	announceChannel string
	now             func() time.Time
	log             zerolog.Logger
}

// Today returns local midnight of the current day in the schedule timezone.
func (s *onCallService) Today() time.Time {
	return domain.StartOfDay(s.now(), s.resolver.location())
}

// Run resolves today's on-call set, reconciles the user group and projects the
// calendar. Every run is recorded, failed ones included.
func (s *onCallService) Run(ctx context.Context) (*entity.Run, error) {
	started := s.now()
	today := s.Today()

	run := &entity.Run{
		ID:          uuid.NewString(),
		Date:        today,
		GroupHandle: s.schedule.GroupHandle,
		StartedAt:   started,
	}
	log := s.log.With().
		Str("run_id", run.ID).
		Str("date", today.Format(time.DateOnly)).
		Logger()

	err := s.sync(ctx, run, today, log)
	run.FinishedAt = s.now()
	if err != nil {
		run.Status = entity.OutcomeFailed
		run.Error = err.Error()
		log.Error().Err(err).Msg("on-call sync failed")
	}

	if recErr := s.dm.Run().Create(context.WithoutCancel(ctx), run); recErr != nil {
		log.Error().Err(recErr).Msg("failed to record run")
	}
	if s.observer != nil {
		s.observer.ObserveRun(run.Status, run.FinishedAt.Sub(started))
	}

	return run, err
}

func (s *onCallService) sync(ctx context.Context, run *entity.Run, today time.Time, log zerolog.Logger) error {
	onCall, err := s.resolver.Resolve(ctx, today)
	if err != nil {
		return err
	}
	run.OnCall = onCall.Names()
	log.Info().Strs("on_call", run.OnCall).Msgf("found %d users on-call", len(onCall))

	outcome, pending, err := s.reconciler.Plan(ctx, onCall, s.schedule.GroupHandle)
	run.Status = outcome.Status
	run.Members = outcome.Members
	if err != nil {
		return err
	}

	if outcome.Status == entity.OutcomeEmpty {
		return nil
	}

	// projected ahead of the group write; a calendar failure still lets the write happen
	projectErr := s.project(ctx, today)
	if projectErr != nil {
		log.Error().Err(projectErr).Msg("failed to project the calendar")
	}

	if pending {
		outcome, err = s.reconciler.Apply(ctx, outcome, s.schedule.GroupHandle)
		run.Status = outcome.Status
		if err != nil {
			return err
		}
		s.announce(ctx, outcome.Members, today, log)
	}

	if projectErr != nil {
		return projectErr
	}

	log.Info().Str("status", string(outcome.Status)).Msg("job complete")
	return nil
}

// project creates the calendar event DaysAhead days after today.
func (s *onCallService) project(ctx context.Context, today time.Time) error {
	if s.projector == nil {
		return nil
	}

	future := today.AddDate(0, 0, s.schedule.Calendar.DaysAhead)
	upcoming, err := s.resolver.Preview(ctx, future)
	if err != nil {
		return err
	}

	_, err = s.projector.Project(ctx, upcoming, future)
	return err
}

// announce posts the new members to the announce channel. Failures are only logged
// because the group is already updated at this point.
func (s *onCallService) announce(ctx context.Context, members []string, date time.Time, log zerolog.Logger) {
	if s.notifier == nil || s.announceChannel == "" {
		return
	}

	if err := s.notifier.Announce(ctx, s.announceChannel, members, date); err != nil {
		log.Warn().Err(err).Str("channel", s.announceChannel).Msg("failed to announce on-call change")
	}
}

// WhoIsOnCall previews the on-call set for date without advancing the cursor. For
// today, after a run, it returns the set that run applied.
func (s *onCallService) WhoIsOnCall(ctx context.Context, date time.Time) (entity.OnCallSet, error) {
	return s.resolver.Preview(ctx, date)
}

// Backfill creates calendar events for days consecutive days starting at start.
// Do not start on a Sunday: the Saturday event is the one covering it.
func (s *onCallService) Backfill(ctx context.Context, start time.Time, days int) (int, error) {
	if s.projector == nil {
		return 0, domain.ErrCalendarDisabled
	}

	created := 0
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)

		onCall, err := s.resolver.Preview(ctx, day)
		if err != nil {
			return created, err
		}

		ok, err := s.projector.Project(ctx, onCall, day)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	return created, nil
}

// GetCursor returns the index the next uncovered day consumes.
func (s *onCallService) GetCursor(ctx context.Context) (int64, error) {
	cursor, err := s.dm.Cursor().Read(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read cursor: %w", err)
	}
	return cursor.Next, nil
}

// SetCursor seeds the index the next uncovered day consumes and forgets the last consumed day.
func (s *onCallService) SetCursor(ctx context.Context, index int64) error {
	if index < 0 {
		return fmt.Errorf("cursor must not be negative, got %d", index)
	}

	if err := s.dm.Cursor().Write(ctx, entity.Cursor{Next: index}); err != nil {
		return fmt.Errorf("failed to write cursor: %w", err)
	}
	return nil
}

func (s *onCallService) History(ctx context.Context, limit int) ([]*entity.Run, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	runs, err := s.dm.Run().ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

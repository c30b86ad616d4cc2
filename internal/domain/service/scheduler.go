package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-oncall/internal/domain/entity"
	"github.com/rs/zerolog"
)

type runner interface {
	Run(ctx context.Context) (*entity.Run, error)
}

// scheduler triggers one run per day at a fixed local time. Runs execute one
// after the other on the scheduler goroutine.
type scheduler struct {
	runner   runner
	runAt    string
	loc      *time.Location
	stopChan chan struct{}
	running  bool
	now      func() time.Time
	log      zerolog.Logger
}

func newScheduler(runner runner, runAt string, loc *time.Location, log zerolog.Logger) *scheduler {
	return &scheduler{
		runner:   runner,
		runAt:    runAt,
		loc:      loc,
		stopChan: make(chan struct{}),
		running:  false,
		now:      time.Now,
		log:      log.With().Str("component", "scheduler").Logger(),
	}
}

func (s *scheduler) Start(ctx context.Context) {
	if s.running {
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.log.Info().Str("run_at", s.runAt).Str("timezone", s.loc.String()).Msg("scheduler starting")
	go s.mainLoop(ctx, s.stopChan)
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	s.log.Info().Msg("scheduler stopping")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) mainLoop(ctx context.Context, stop <-chan struct{}) {
	for {
		nextTime, err := nextRunTime(s.runAt, s.now(), s.loc)
		if err != nil {
			s.log.Error().Err(err).Msg("invalid run time, scheduler stopped")
			return
		}

		s.log.Info().Time("next_run", nextTime).Msg("next on-call sync scheduled")

		timer := time.NewTimer(time.Until(nextTime))
		select {
		case <-timer.C:
			if _, err := s.runner.Run(ctx); err != nil {
				s.log.Error().Err(err).Msg("scheduled run failed")
			}

		case <-stop:
			timer.Stop()
			return

		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}

// nextRunTime returns the first HH:MM in loc strictly after now.
func nextRunTime(runAt string, now time.Time, loc *time.Location) (time.Time, error) {
	hour, minute, err := parseClock(runAt)
	if err != nil {
		return time.Time{}, err
	}

	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if today.After(local) {
		return today, nil
	}

	return time.Date(local.Year(), local.Month(), local.Day()+1, hour, minute, 0, 0, loc), nil
}

func parseClock(value string) (int, int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time format %q, use HH:MM", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}

	return hour, minute, nil
}

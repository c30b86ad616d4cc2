package service

import (
	"context"
	"time"

	"github.com/diegoclair/slack-oncall/internal/domain"
	"github.com/diegoclair/slack-oncall/internal/domain/entity"
	"github.com/rs/zerolog"
)

// resolver maps a date to the identities on call that day.
type resolver struct {
	schedule *entity.Schedule
	policy   FallbackPolicy
	today    func() time.Time
	log      zerolog.Logger
}

func newResolver(schedule *entity.Schedule, policy FallbackPolicy, log zerolog.Logger) *resolver {
	r := &resolver{
		schedule: schedule,
		policy:   policy,
		log:      log.With().Str("component", "resolver").Logger(),
	}
	r.today = func() time.Time { return domain.StartOfDay(time.Now(), r.location()) }
	return r
}

// Resolve returns the on-call set for date. With a cursor policy every call on an
// uncovered day advances the cursor, so callers resolve at most once per run.
func (r *resolver) Resolve(ctx context.Context, date time.Time) (entity.OnCallSet, error) {
	return r.resolve(ctx, date, true)
}

// Preview is Resolve without side effects on the cursor.
func (r *resolver) Preview(ctx context.Context, date time.Time) (entity.OnCallSet, error) {
	return r.resolve(ctx, date, false)
}

func (r *resolver) resolve(ctx context.Context, date time.Time, advance bool) (entity.OnCallSet, error) {
	local := domain.StartOfDay(date, r.location())
	weekday := domain.WeekdayOf(local)
	weekNumber := domain.WeekNumberOf(local)

	if !r.schedule.FallsBack(weekday) {
		onCall := entity.NewOnCallSet(r.schedule.Table[weekday]...)
		r.log.Debug().
			Str("weekday", domain.WeekdayNames[weekday]).
			Int("count", len(onCall)).
			Msg("resolved on-call from rotation table")
		return onCall, nil
	}

	period := pairCount(len(r.schedule.Roster))
	if period == 0 {
		r.log.Warn().Str("weekday", domain.WeekdayNames[weekday]).Msg("roster is empty, nobody to rotate")
		return entity.OnCallSet{}, nil
	}

	var (
		raw int64
		err error
	)
	if advance {
		raw, err = r.policy.Index(ctx, local)
	} else {
		raw, err = r.policy.Peek(ctx, local, r.today())
	}
	if err != nil {
		return nil, err
	}

	index := wrapIndex(raw, period)
	onCall := entity.NewOnCallSet(pairAt(r.schedule.Roster, index)...)

	r.log.Debug().
		Str("weekday", domain.WeekdayNames[weekday]).
		Int("week", weekNumber).
		Int64("cursor", raw).
		Int("pair", index).
		Strs("on_call", onCall.Names()).
		Msg("resolved on-call from pairwise fallback")

	return onCall, nil
}

func (r *resolver) location() *time.Location {
	if r.schedule.Timezone == nil {
		return time.UTC
	}
	return r.schedule.Timezone
}

// pairCount is ceil(n / PairSize).
func pairCount(n int) int {
	return (n + domain.PairSize - 1) / domain.PairSize
}

func wrapIndex(raw int64, period int) int {
	index := raw % int64(period)
	if index < 0 {
		index += int64(period)
	}
	return int(index)
}

// pairAt returns the index-th pair of the roster; the last pair is a singleton for odd rosters.
func pairAt(roster entity.Roster, index int) []entity.Identity {
	start := index * domain.PairSize
	end := min(start+domain.PairSize, len(roster))
	if start >= end {
		return nil
	}
	return roster[start:end]
}

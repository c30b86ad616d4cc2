package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/slack-oncall/internal/domain"
	"github.com/diegoclair/slack-oncall/internal/domain/contract"
	"github.com/diegoclair/slack-oncall/internal/domain/entity"
)

// FallbackPolicy picks the raw pair index for a day the rotation table does not cover.
// The resolver reduces the index modulo the number of pairs. Days are local midnights
// in the schedule timezone.
type FallbackPolicy interface {
	// Index returns the index for day and may advance internal state.
	Index(ctx context.Context, day time.Time) (int64, error)
	// Peek returns the index day gets, assuming one run per day from today on.
	// Nothing is written.
	Peek(ctx context.Context, day, today time.Time) (int64, error)
}

// WeekNumberPolicy uses the ISO week number, so every uncovered day of a week gets the same pair.
type WeekNumberPolicy struct{}

func (WeekNumberPolicy) Index(_ context.Context, day time.Time) (int64, error) {
	return int64(domain.WeekNumberOf(day)), nil
}

func (WeekNumberPolicy) Peek(_ context.Context, day, _ time.Time) (int64, error) {
	return int64(domain.WeekNumberOf(day)), nil
}

// ExternalCursorPolicy reads the persisted cursor and writes back cursor+1 right away,
// together with the day that consumed it. The write is not rolled back when a later
// step of the run fails.
type ExternalCursorPolicy struct {
	store    contract.CursorStore
	schedule *entity.Schedule
}

func NewExternalCursorPolicy(store contract.CursorStore, schedule *entity.Schedule) *ExternalCursorPolicy {
	return &ExternalCursorPolicy{store: store, schedule: schedule}
}

func (p *ExternalCursorPolicy) Index(ctx context.Context, day time.Time) (int64, error) {
	cursor, err := p.read(ctx)
	if err != nil {
		return 0, err
	}

	next := entity.Cursor{Next: cursor.Next + 1, ConsumedOn: p.dateOf(day)}
	if err := p.store.Write(ctx, next); err != nil {
		return 0, fmt.Errorf("%w: failed to advance rotation cursor: %v", domain.ErrTransport, err)
	}

	return cursor.Next, nil
}

// Peek counts the uncovered days between the next run and day. The day that consumed
// the cursor keeps the index it was given, and days after it with no run since keep
// the same pair because the group was not touched.
func (p *ExternalCursorPolicy) Peek(ctx context.Context, day, today time.Time) (int64, error) {
	cursor, err := p.read(ctx)
	if err != nil {
		return 0, err
	}

	day = p.dateOf(day)
	nextRun := p.dateOf(today)

	if !cursor.ConsumedOn.IsZero() {
		y, m, d := cursor.ConsumedOn.Date()
		consumed := time.Date(y, m, d, 0, 0, 0, 0, p.location())

		if !day.After(consumed) {
			return cursor.Next - 1 - p.fallbackDays(day.AddDate(0, 0, 1), consumed.AddDate(0, 0, 1)), nil
		}
		if following := consumed.AddDate(0, 0, 1); following.After(nextRun) {
			nextRun = following
		}
		if day.Before(nextRun) {
			return cursor.Next - 1, nil
		}
	}

	if day.Before(nextRun) {
		return cursor.Next - p.fallbackDays(day, nextRun), nil
	}
	return cursor.Next + p.fallbackDays(nextRun, day), nil
}

func (p *ExternalCursorPolicy) read(ctx context.Context) (entity.Cursor, error) {
	cursor, err := p.store.Read(ctx)
	if err != nil {
		return entity.Cursor{}, fmt.Errorf("%w: failed to read rotation cursor: %v", domain.ErrTransport, err)
	}
	return cursor, nil
}

// fallbackDays counts the days in [from, to) served by the pairwise fallback.
func (p *ExternalCursorPolicy) fallbackDays(from, to time.Time) int64 {
	var n int64
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		if p.schedule.FallsBack(domain.WeekdayOf(d)) {
			n++
		}
	}
	return n
}

func (p *ExternalCursorPolicy) dateOf(t time.Time) time.Time {
	return domain.StartOfDay(t, p.location())
}

func (p *ExternalCursorPolicy) location() *time.Location {
	if p.schedule.Timezone == nil {
		return time.UTC
	}
	return p.schedule.Timezone
}

// NewFallbackPolicy builds the policy selected in the schedule.
func NewFallbackPolicy(schedule *entity.Schedule, store contract.CursorStore) (FallbackPolicy, error) {
	switch schedule.FallbackPolicy {
	case entity.FallbackWeekNumber, "":
		return WeekNumberPolicy{}, nil
	case entity.FallbackCursor:
		if store == nil {
			return nil, fmt.Errorf("%w: cursor fallback policy needs a cursor store", domain.ErrConfiguration)
		}
		return NewExternalCursorPolicy(store, schedule), nil
	default:
		return nil, fmt.Errorf("%w: unknown fallback policy %q", domain.ErrConfiguration, schedule.FallbackPolicy)
	}
}

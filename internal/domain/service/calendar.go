package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/slack-oncall/internal/domain"
	"github.com/diegoclair/slack-oncall/internal/domain/contract"
	"github.com/diegoclair/slack-oncall/internal/domain/entity"
	"github.com/rs/zerolog"
)

const eventLocation = "Earth"

// projector writes on-call shifts to the calendar.
type projector struct {
	calendar contract.CalendarService
	loc      *time.Location
	log      zerolog.Logger
}

func newProjector(calendar contract.CalendarService, loc *time.Location, log zerolog.Logger) *projector {
	return &projector{
		calendar: calendar,
		loc:      loc,
		log:      log.With().Str("component", "calendar").Logger(),
	}
}

// Project creates the event for date. Sundays are skipped because the Saturday
// event already spans the weekend. Repeated calls create duplicate events.
func (p *projector) Project(ctx context.Context, onCall entity.OnCallSet, date time.Time) (bool, error) {
	day := domain.StartOfDay(date, p.loc)
	if domain.WeekdayOf(day) == domain.Sunday {
		return false, nil
	}
	if len(onCall) == 0 {
		p.log.Warn().Str("date", day.Format(time.DateOnly)).Msg("nobody on call, no calendar event created")
		return false, nil
	}

	event := BuildEvent(onCall, day, p.loc)
	if err := p.calendar.CreateEvent(ctx, event); err != nil {
		return false, fmt.Errorf("%w: failed to create calendar event for %s: %v", domain.ErrTransport, day.Format(time.DateOnly), err)
	}

	p.log.Info().
		Str("date", day.Format(time.DateOnly)).
		Strs("on_call", onCall.Names()).
		Msg("calendar event created")
	return true, nil
}

// BuildEvent renders the calendar event of a shift starting on date.
// Saturday shifts cover the whole weekend.
func BuildEvent(onCall entity.OnCallSet, date time.Time, loc *time.Location) entity.CalendarEvent {
	start := domain.StartOfDay(date, loc)

	days := 1
	if domain.WeekdayOf(start) == domain.Saturday {
		days = 2
	}

	var description strings.Builder
	attendees := make([]string, 0, len(onCall))
	for _, identity := range onCall {
		attendees = append(attendees, identity.Email)
		fmt.Fprintf(&description, "%s (%s, %s)\n", identity.Name, identity.Email, identity.Phone)
	}

	return entity.CalendarEvent{
		Summary:     "On-Call " + strings.Join(onCall.Names(), "/"),
		Location:    eventLocation,
		Description: description.String(),
		Start:       start,
		End:         start.AddDate(0, 0, days),
		TimeZone:    loc.String(),
		Attendees:   attendees,
	}
}

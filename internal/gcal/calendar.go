package gcal

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/slack-oncall/internal/domain/contract"
	"github.com/diegoclair/slack-oncall/internal/domain/entity"
	"github.com/rs/zerolog"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var _ contract.CalendarService = (*Calendar)(nil)

// Calendar creates on-call events on a single Google Calendar.
type Calendar struct {
	service    *calendar.Service
	calendarID string
	log        zerolog.Logger
}

// CredentialOptions authenticates with a service account key (the JSON document itself).
func CredentialOptions(serviceAccountJSON string) []option.ClientOption {
	return []option.ClientOption{
		option.WithCredentialsJSON([]byte(serviceAccountJSON)),
		option.WithScopes(calendar.CalendarScope),
	}
}

func New(ctx context.Context, calendarID string, log zerolog.Logger, opts ...option.ClientOption) (*Calendar, error) {
	service, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &Calendar{
		service:    service,
		calendarID: calendarID,
		log:        log.With().Str("component", "gcal").Logger(),
	}, nil
}

func (c *Calendar) CreateEvent(ctx context.Context, event entity.CalendarEvent) error {
	created, err := c.service.Events.Insert(c.calendarID, toAPIEvent(event)).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	c.log.Debug().Str("event_id", created.Id).Str("summary", event.Summary).Msg("event inserted")
	return nil
}

func toAPIEvent(event entity.CalendarEvent) *calendar.Event {
	attendees := make([]*calendar.EventAttendee, 0, len(event.Attendees))
	for _, email := range event.Attendees {
		attendees = append(attendees, &calendar.EventAttendee{Email: email})
	}

	return &calendar.Event{
		Summary:     event.Summary,
		Location:    event.Location,
		Description: event.Description,
		Start: &calendar.EventDateTime{
			DateTime: event.Start.Format(time.RFC3339),
			TimeZone: event.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: event.End.Format(time.RFC3339),
			TimeZone: event.TimeZone,
		},
		Attendees: attendees,
	}
}

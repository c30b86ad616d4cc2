package contract

import (
	"context"

	"github.com/diegoclair/slack-oncall/internal/domain/entity"
)

// CalendarService creates events on the on-call calendar
type CalendarService interface {
	CreateEvent(ctx context.Context, event entity.CalendarEvent) error
}

// CredentialProvider resolves a named secret at startup
type CredentialProvider interface {
	Resolve(name string) (string, error)
}

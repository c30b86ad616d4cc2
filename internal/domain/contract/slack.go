package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-oncall/internal/domain/entity"
)

// GroupDirectory reads and writes the notification group.
// FindByHandle returns nil, nil when no group matches.
type GroupDirectory interface {
	FindByHandle(ctx context.Context, handle string) (*entity.Group, error)
	SetMembers(ctx context.Context, groupID string, memberIDs []string) error
}

// MemberDirectory lists every member of the workspace
type MemberDirectory interface {
	ListAll(ctx context.Context) ([]entity.DirectoryEntry, error)
}

// Notifier announces a membership change in a channel
type Notifier interface {
	Announce(ctx context.Context, channelID string, memberIDs []string, date time.Time) error
}

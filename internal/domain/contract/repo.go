package contract

import (
	"context"

	"github.com/diegoclair/slack-oncall/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	Cursor() CursorStore
	Run() RunRepo
}

// CursorStore persists the pairwise fallback cursor
type CursorStore interface {
	Read(ctx context.Context) (entity.Cursor, error)
	Write(ctx context.Context, cursor entity.Cursor) error
}

// RunRepo defines the contract for the run history repository
type RunRepo interface {
	Create(ctx context.Context, run *entity.Run) error
	ListRecent(ctx context.Context, limit int) ([]*entity.Run, error)
}

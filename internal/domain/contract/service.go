package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-oncall/internal/domain/entity"
)

type OnCallService interface {
	Run(ctx context.Context) (*entity.Run, error)
	WhoIsOnCall(ctx context.Context, date time.Time) (entity.OnCallSet, error)
	Backfill(ctx context.Context, start time.Time, days int) (int, error)
	GetCursor(ctx context.Context) (int64, error)
	SetCursor(ctx context.Context, index int64) error
	History(ctx context.Context, limit int) ([]*entity.Run, error)
	Today() time.Time
}

// RunObserver receives the outcome of every run (metrics)
type RunObserver interface {
	ObserveRun(status entity.OutcomeStatus, took time.Duration)
}

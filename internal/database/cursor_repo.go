package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/slack-oncall/internal/domain/contract"
	"github.com/diegoclair/slack-oncall/internal/domain/entity"
)

// cursorRepo keeps the pairwise fallback cursor in a single-row table.
type cursorRepo struct {
	db dbConn
}

func newCursorRepo(db dbConn) contract.CursorStore {
	return &cursorRepo{db: db}
}

// Read returns the stored cursor, or the zero cursor when it was never written.
// ConsumedOn comes back as a UTC midnight carrying the stored calendar date.
func (r *cursorRepo) Read(ctx context.Context) (entity.Cursor, error) {
	var (
		cursor     entity.Cursor
		consumedOn string
	)
	err := r.db.QueryRowContext(ctx, `SELECT last_index, consumed_on FROM rotation_cursor WHERE id = 1`).
		Scan(&cursor.Next, &consumedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Cursor{}, nil
	}
	if err != nil {
		return entity.Cursor{}, fmt.Errorf("failed to read cursor: %w", err)
	}

	if consumedOn != "" {
		cursor.ConsumedOn, err = time.Parse(time.DateOnly, consumedOn)
		if err != nil {
			return entity.Cursor{}, fmt.Errorf("failed to parse cursor day %q: %w", consumedOn, err)
		}
	}

	return cursor, nil
}

// Write stores the cursor. ConsumedOn is kept as its calendar date in its own location.
func (r *cursorRepo) Write(ctx context.Context, cursor entity.Cursor) error {
	query := `
		INSERT INTO rotation_cursor (id, last_index, consumed_on, updated_at)
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			last_index = excluded.last_index,
			consumed_on = excluded.consumed_on,
			updated_at = excluded.updated_at
	`

	consumedOn := ""
	if !cursor.ConsumedOn.IsZero() {
		consumedOn = cursor.ConsumedOn.Format(time.DateOnly)
	}

	if _, err := r.db.ExecContext(ctx, query, cursor.Next, consumedOn); err != nil {
		return fmt.Errorf("failed to write cursor: %w", err)
	}

	return nil
}

package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diegoclair/slack-oncall/internal/domain/contract"
	"github.com/diegoclair/slack-oncall/internal/domain/entity"
)

type runRepo struct {
	db dbConn
}

func newRunRepo(db dbConn) contract.RunRepo {
	return &runRepo{db: db}
}

func (r *runRepo) Create(ctx context.Context, run *entity.Run) error {
	onCall, err := encodeList(run.OnCall)
	if err != nil {
		return fmt.Errorf("failed to encode on-call names: %w", err)
	}
	members, err := encodeList(run.Members)
	if err != nil {
		return fmt.Errorf("failed to encode members: %w", err)
	}

	query := `
		INSERT INTO runs (id, run_date, group_handle, status, on_call, members, error, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		run.ID,
		run.Date.Format(time.DateOnly),
		run.GroupHandle,
		string(run.Status),
		onCall,
		members,
		run.Error,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// ListRecent returns up to limit runs, newest first. Dates come back as UTC midnight.
func (r *runRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Run, error) {
	query := `
		SELECT id, run_date, group_handle, status, on_call, members, error, started_at, finished_at
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*entity.Run
	for rows.Next() {
		var (
			run                           entity.Run
			status, date, onCall, members string
			startedAt, finishedAt         string
		)

		err := rows.Scan(
			&run.ID,
			&date,
			&run.GroupHandle,
			&status,
			&onCall,
			&members,
			&run.Error,
			&startedAt,
			&finishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		run.Status = entity.OutcomeStatus(status)
		if run.Date, err = time.Parse(time.DateOnly, date); err != nil {
			return nil, fmt.Errorf("failed to parse run date %q: %w", date, err)
		}
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, fmt.Errorf("failed to parse started_at %q: %w", startedAt, err)
		}
		if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt); err != nil {
			return nil, fmt.Errorf("failed to parse finished_at %q: %w", finishedAt, err)
		}
		if run.OnCall, err = decodeList(onCall); err != nil {
			return nil, fmt.Errorf("failed to decode on-call names: %w", err)
		}
		if run.Members, err = decodeList(members); err != nil {
			return nil, fmt.Errorf("failed to decode members: %w", err)
		}

		runs = append(runs, &run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}

func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeList(data string) ([]string, error) {
	values := []string{}
	if data == "" {
		return values, nil
	}
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, err
	}
	return values, nil
}

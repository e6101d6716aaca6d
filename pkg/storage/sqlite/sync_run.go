package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/vodz/pkg/storage"
	"github.com/kasuboski/vodz/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/vodz/pkg/storage/sqlite/schema/gen/table"
)

// CreateSyncRun stores a new run in the running state
func (s *SQLite) CreateSyncRun(ctx context.Context, run storage.SyncRun) (int64, error) {
	err := run.Machine().ToState(storage.SyncRunStatusRunning)
	if err != nil {
		return 0, err
	}

	run.Status = string(storage.SyncRunStatusRunning)
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	stmt := table.SyncRun.
		INSERT(table.SyncRun.StartedAt, table.SyncRun.Status, table.SyncRun.HighWaterMark).
		MODEL(run.SyncRun)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create sync run: %w", err)
	}

	return result.LastInsertId()
}

// FinishSyncRun moves a running run to its final state and records its counts
func (s *SQLite) FinishSyncRun(ctx context.Context, id int64, result storage.SyncRunResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	run := new(storage.SyncRun)
	err = table.SyncRun.
		SELECT(table.SyncRun.AllColumns).
		FROM(table.SyncRun).
		WHERE(table.SyncRun.ID.EQ(sqlite.Int64(id))).
		LIMIT(1).
		QueryContext(ctx, tx, run)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, qrm.ErrNoRows) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("failed to get sync run: %w", err)
	}

	err = run.Machine().ToState(result.Status)
	if err != nil {
		tx.Rollback()
		return err
	}

	finishedAt := result.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = time.Now().UTC()
	}

	update := model.SyncRun{
		FinishedAt:    &finishedAt,
		Status:        string(result.Status),
		Inserted:      result.Inserted,
		Updated:       result.Updated,
		Skipped:       result.Skipped,
		HighWaterMark: result.HighWaterMark,
		Error:         nullString(result.Error),
	}

	_, err = table.SyncRun.
		UPDATE(
			table.SyncRun.FinishedAt,
			table.SyncRun.Status,
			table.SyncRun.Inserted,
			table.SyncRun.Updated,
			table.SyncRun.Skipped,
			table.SyncRun.HighWaterMark,
			table.SyncRun.Error,
		).
		MODEL(update).
		WHERE(table.SyncRun.ID.EQ(sqlite.Int64(id))).
		ExecContext(ctx, tx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to finish sync run: %w", err)
	}

	return tx.Commit()
}

// GetSyncRun gets a run by id
func (s *SQLite) GetSyncRun(ctx context.Context, id int64) (*storage.SyncRun, error) {
	stmt := table.SyncRun.
		SELECT(table.SyncRun.AllColumns).
		FROM(table.SyncRun).
		WHERE(table.SyncRun.ID.EQ(sqlite.Int64(id))).
		LIMIT(1)

	run := new(storage.SyncRun)
	err := stmt.QueryContext(ctx, s.db, run)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sync run: %w", err)
	}

	return run, nil
}

// GetHighWaterMark returns the greatest mark recorded by a successful run, or 0
func (s *SQLite) GetHighWaterMark(ctx context.Context) (int64, error) {
	// raw sql since the aggregate scans into a scalar
	var mark int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(high_water_mark), 0) FROM sync_run WHERE status = ?`,
		string(storage.SyncRunStatusSuccess),
	).Scan(&mark)
	if err != nil {
		return 0, fmt.Errorf("failed to get high water mark: %w", err)
	}

	return mark, nil
}

// ListSyncRuns lists the most recent runs first
func (s *SQLite) ListSyncRuns(ctx context.Context, limit int) ([]*storage.SyncRun, error) {
	runs := make([]*storage.SyncRun, 0)

	stmt := table.SyncRun.
		SELECT(table.SyncRun.AllColumns).
		FROM(table.SyncRun).
		ORDER_BY(table.SyncRun.ID.DESC())

	if limit > 0 {
		stmt = stmt.LIMIT(int64(limit))
	}

	err := stmt.QueryContext(ctx, s.db, &runs)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}

	return runs, nil
}

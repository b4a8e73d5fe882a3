package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	v1 "github.com/storepulse/storepulse/internal/api/v1"
	"github.com/storepulse/storepulse/internal/core/storage"
)

// ReportRunAdapter implements storage.ReportRunStore using PostgreSQL.
type ReportRunAdapter struct {
	db *sql.DB
}

// NewReportRunAdapter creates a ReportRunAdapter sharing the given connection.
func NewReportRunAdapter(db *sql.DB) *ReportRunAdapter {
	return &ReportRunAdapter{db: db}
}

func (a *ReportRunAdapter) CreateRun(ctx context.Context, run *v1.ReportRun) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("create report run: %w", err)
	}
	_, err := a.db.ExecContext(ctx, queryInsertReportRun,
		run.ID,
		string(run.Status),
		run.StartedAt.UTC(),
		run.StoreCount,
		run.FilePath,
	)
	if err != nil {
		return fmt.Errorf("create report run %s: %w", run.ID, err)
	}
	return nil
}

func (a *ReportRunAdapter) CompleteRun(ctx context.Context, id string, completedAt, referenceAt time.Time, storeCount int) error {
	var ref interface{}
	if !referenceAt.IsZero() {
		ref = referenceAt.UTC()
	}
	result, err := a.db.ExecContext(ctx, queryCompleteReportRun,
		id,
		string(v1.RunStatusComplete),
		completedAt.UTC(),
		ref,
		storeCount,
	)
	if err != nil {
		return fmt.Errorf("complete report run %s: %w", id, err)
	}
	return requireOneRow(result, id)
}

func (a *ReportRunAdapter) FailRun(ctx context.Context, id string, completedAt time.Time, reason string) error {
	result, err := a.db.ExecContext(ctx, queryFailReportRun,
		id,
		string(v1.RunStatusFailed),
		completedAt.UTC(),
		reason,
	)
	if err != nil {
		return fmt.Errorf("fail report run %s: %w", id, err)
	}
	return requireOneRow(result, id)
}

func (a *ReportRunAdapter) GetRun(ctx context.Context, id string) (*v1.ReportRun, error) {
	run, err := scanReportRun(a.db.QueryRowContext(ctx, queryGetReportRun, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get report run %s: %w", id, err)
	}
	return run, nil
}

func requireOneRow(result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("report run %s: rows affected: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("report run %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

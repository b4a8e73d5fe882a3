package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	v1 "github.com/storepulse/storepulse/internal/api/v1"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanReportRun scans a report_runs row, mapping NULL columns to zero values.
func scanReportRun(row scanner) (*v1.ReportRun, error) {
	var (
		run         v1.ReportRun
		status      string
		completedAt sql.NullTime
		referenceAt sql.NullTime
		errText     sql.NullString
	)

	err := row.Scan(
		&run.ID,
		&status,
		&run.StartedAt,
		&completedAt,
		&referenceAt,
		&run.StoreCount,
		&errText,
		&run.FilePath,
	)
	if err != nil {
		return nil, err
	}

	run.Status = v1.RunStatus(status)
	run.StartedAt = run.StartedAt.UTC()
	if completedAt.Valid {
		t := completedAt.Time.UTC()
		run.CompletedAt = &t
	}
	if referenceAt.Valid {
		t := referenceAt.Time.UTC()
		run.ReferenceAt = &t
	}
	run.Error = errText.String

	return &run, nil
}

// replaceTable truncates table and bulk-loads rows through COPY in one transaction.
// rowArgs is called once per row index and returns the column values.
func replaceTable(
	ctx context.Context,
	db *sql.DB,
	table string,
	truncateQuery string,
	columns []string,
	n int,
	rowArgs func(i int) []interface{},
) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace %s: begin tx: %w", table, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, truncateQuery); err != nil {
		return fmt.Errorf("replace %s: truncate: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return fmt.Errorf("replace %s: prepare copy: %w", table, err)
	}

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, rowArgs(i)...); err != nil {
			stmt.Close()
			return fmt.Errorf("replace %s: copy row %d: %w", table, i, err)
		}
	}
	// Flush buffered COPY data.
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return fmt.Errorf("replace %s: flush copy: %w", table, err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("replace %s: close copy: %w", table, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace %s: commit: %w", table, err)
	}
	return nil
}

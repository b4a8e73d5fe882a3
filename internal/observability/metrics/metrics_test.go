package metrics

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestObserveBeforeInitIsNoop(t *testing.T) {
	// Collectors are nil until Init; helpers must not panic.
	if reportRunsTotal != nil {
		t.Skip("metrics already initialised in this process")
	}
	ObserveReportRun(ResultSuccess, time.Second, 3)
	ObserveIngest("store_status", ResultError, 0, time.Millisecond)
	IncReportPoll("")
}

func TestQueryCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	query := "SELECT COUNT(*) FROM report_runs WHERE status = 'running'"
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))
	require.Equal(t, float64(2), queryCount(db, query))

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnError(sqlmock.ErrCancelled)
	require.Equal(t, float64(0), queryCount(db, query))

	require.NoError(t, mock.ExpectationsWereMet())
}

package postgres

// SQL for the report input tables and report runs.

const (
	// queryValidateSchema reports how many of the expected tables exist.
	queryValidateSchema = `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_name IN ('store_status', 'menu_hours', 'timezones', 'report_runs')
	`

	expectedTableCount = 4

	// row_seq keeps insertion order so "first rule wins" is stable across reads.
	queryListStatusObservations = `
		SELECT store_id, timestamp_utc, status
		FROM store_status
		ORDER BY row_seq ASC
	`

	queryListBusinessHours = `
		SELECT store_id, day, start_time_local, end_time_local
		FROM menu_hours
		ORDER BY row_seq ASC
	`

	queryListTimezones = `
		SELECT store_id, timezone_str
		FROM timezones
		ORDER BY store_id ASC
	`

	// Tables are replaced wholesale, mirroring a full CSV re-import.
	queryTruncateStatus        = `TRUNCATE TABLE store_status RESTART IDENTITY`
	queryTruncateBusinessHours = `TRUNCATE TABLE menu_hours RESTART IDENTITY`
	queryTruncateTimezones     = `TRUNCATE TABLE timezones`

	queryInsertReportRun = `
		INSERT INTO report_runs (id, status, started_at, store_count, file_path)
		VALUES ($1, $2, $3, $4, $5)
	`

	queryCompleteReportRun = `
		UPDATE report_runs
		SET status = $2, completed_at = $3, reference_at = $4, store_count = $5
		WHERE id = $1
	`

	queryFailReportRun = `
		UPDATE report_runs
		SET status = $2, completed_at = $3, error = $4
		WHERE id = $1
	`

	queryGetReportRun = `
		SELECT id, status, started_at, completed_at, reference_at, store_count, error, file_path
		FROM report_runs
		WHERE id = $1
	`
)

// COPY targets, used with pq.CopyIn.
var (
	statusCopyColumns        = []string{"store_id", "timestamp_utc", "status"}
	businessHoursCopyColumns = []string{"store_id", "day", "start_time_local", "end_time_local"}
	timezonesCopyColumns     = []string{"store_id", "timezone_str"}
)

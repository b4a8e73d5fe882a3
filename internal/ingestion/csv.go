package ingestion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/storepulse/storepulse/internal/core/uptime"
)

// ErrInvalidCSV is returned for missing headers and malformed rows.
var ErrInvalidCSV = errors.New("invalid csv")

// Table names accepted by the loader.
const (
	TableStoreStatus = "store_status"
	TableMenuHours   = "menu_hours"
	TableTimezones   = "timezones"
)

// timestampLayouts are tried in order. Zone-less layouts parse as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999 MST",
	"2006-01-02 15:04:05.999999999 -0700",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

// csvTable reads a CSV stream and resolves named columns.
type csvTable struct {
	reader  *csv.Reader
	columns map[string]int
	line    int
}

// openCSV reads the header row and checks that every required column is
// present. aliases maps an accepted alternative header to its canonical name.
func openCSV(r io.Reader, required []string, aliases map[string]string) (*csvTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input, expected header %s", ErrInvalidCSV, strings.Join(required, ","))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrInvalidCSV, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if canonical, ok := aliases[name]; ok {
			name = canonical
		}
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}

	var missing []string
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing column(s) %s", ErrInvalidCSV, strings.Join(missing, ","))
	}

	// Rows may carry extra columns; only the named ones are read.
	reader.FieldsPerRecord = -1
	return &csvTable{reader: reader, columns: columns, line: 1}, nil
}

// next returns the following record, or io.EOF.
func (t *csvTable) next() ([]string, error) {
	record, err := t.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	t.line++
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidCSV, t.line, err)
	}
	return record, nil
}

// field returns the trimmed value of a named column, or "" when the row is short.
func (t *csvTable) field(record []string, name string) string {
	i := t.columns[name]
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (t *csvTable) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", ErrInvalidCSV, t.line, fmt.Sprintf(format, args...))
}

// ParseStoreStatus reads store_id,status,timestamp_utc rows.
// Unknown status values are kept; the aggregator ignores them.
func ParseStoreStatus(r io.Reader) ([]uptime.StatusObservation, error) {
	table, err := openCSV(r, []string{"store_id", "status", "timestamp_utc"}, nil)
	if err != nil {
		return nil, err
	}

	var rows []uptime.StatusObservation
	for {
		record, err := table.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		storeID := table.field(record, "store_id")
		if storeID == "" {
			return nil, table.errorf("store_id is empty")
		}
		ts, err := parseTimestamp(table.field(record, "timestamp_utc"))
		if err != nil {
			return nil, table.errorf("%v", err)
		}
		rows = append(rows, uptime.StatusObservation{
			StoreID:   storeID,
			Timestamp: ts,
			Status:    uptime.Status(table.field(record, "status")),
		})
	}
	return rows, nil
}

// ParseMenuHours reads store_id,day,start_time_local,end_time_local rows.
// "dayOfWeek" is accepted in place of "day". Times are validated but kept raw.
func ParseMenuHours(r io.Reader) ([]uptime.BusinessHourRow, error) {
	table, err := openCSV(r,
		[]string{"store_id", "day", "start_time_local", "end_time_local"},
		map[string]string{"dayOfWeek": "day"},
	)
	if err != nil {
		return nil, err
	}

	var rows []uptime.BusinessHourRow
	for {
		record, err := table.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		storeID := table.field(record, "store_id")
		if storeID == "" {
			return nil, table.errorf("store_id is empty")
		}
		day, err := strconv.Atoi(table.field(record, "day"))
		if err != nil || day < 0 || day > 6 {
			return nil, table.errorf("day %q must be an integer 0..6", table.field(record, "day"))
		}
		start := table.field(record, "start_time_local")
		if _, err := uptime.ParseTimeOfDay(start); err != nil {
			return nil, table.errorf("start_time_local: %v", err)
		}
		end := table.field(record, "end_time_local")
		if _, err := uptime.ParseTimeOfDay(end); err != nil {
			return nil, table.errorf("end_time_local: %v", err)
		}

		rows = append(rows, uptime.BusinessHourRow{
			StoreID:    storeID,
			DayOfWeek:  day,
			StartLocal: start,
			EndLocal:   end,
		})
	}
	return rows, nil
}

// ParseTimezones reads store_id,timezone_str rows. Identifiers are checked
// when a report is built, so an unknown zone does not block the import.
func ParseTimezones(r io.Reader) ([]uptime.TimezoneAssignment, error) {
	table, err := openCSV(r, []string{"store_id", "timezone_str"}, nil)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var rows []uptime.TimezoneAssignment
	for {
		record, err := table.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		storeID := table.field(record, "store_id")
		if storeID == "" {
			return nil, table.errorf("store_id is empty")
		}
		// store_id is the table key; the first assignment wins.
		if _, dup := seen[storeID]; dup {
			continue
		}
		seen[storeID] = struct{}{}
		rows = append(rows, uptime.TimezoneAssignment{
			StoreID:  storeID,
			Timezone: table.field(record, "timezone_str"),
		})
	}
	return rows, nil
}

func parseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("timestamp_utc is empty")
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("timestamp_utc %q is not a recognised timestamp", value)
}

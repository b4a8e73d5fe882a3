package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/storepulse/storepulse/internal/core/uptime"
)

var errMalformedReport = errors.New("malformed report file")

// writeReportCSV writes records to path. The file is staged next to the
// target and renamed into place, so a reader never sees a partial report.
func writeReportCSV(path string, records []uptime.ReportRecord) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) //nolint:errcheck // no-op after a successful rename

	w := csv.NewWriter(tmp)
	if err := w.Write(uptime.ReportColumns); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write report header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(r.Values()); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write report row for store %s: %w", r.StoreID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush report: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync report file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to publish report file: %w", err)
	}
	return nil
}

// readReportCSV parses a report file written by writeReportCSV.
func readReportCSV(path string) ([]uptime.ReportRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(uptime.ReportColumns)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", errMalformedReport, err)
	}
	for i, name := range uptime.ReportColumns {
		if header[i] != name {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", errMalformedReport, i, header[i], name)
		}
	}

	var records []uptime.ReportRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errMalformedReport, err)
		}

		var counts [6]int64
		for i := range counts {
			counts[i], err = strconv.ParseInt(row[i+1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: store %s column %s: %v", errMalformedReport, row[0], uptime.ReportColumns[i+1], err)
			}
		}
		records = append(records, uptime.ReportRecord{
			StoreID:          row[0],
			UptimeLastHour:   counts[0],
			UptimeLastDay:    counts[1],
			UptimeLastWeek:   counts[2],
			DowntimeLastHour: counts[3],
			DowntimeLastDay:  counts[4],
			DowntimeLastWeek: counts[5],
		})
	}
	return records, nil
}

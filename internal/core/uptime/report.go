package uptime

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/storepulse/storepulse/internal/core/partition"
	"golang.org/x/sync/errgroup"
)

const defaultWorkerCount = 8

// Dataset is the raw content of the three input tables.
type Dataset struct {
	Observations  []StatusObservation
	BusinessHours []BusinessHourRow
	Timezones     []TimezoneAssignment
}

// BuildOptions tunes report generation.
type BuildOptions struct {
	WorkerCount int
}

// Report is the output of one BuildReport call.
type Report struct {
	// Reference is the "now" every window was computed against. Zero when
	// the dataset has no observations.
	Reference time.Time
	Records   []ReportRecord
}

// ReferenceInstant returns the latest observation timestamp.
// ok is false when observations is empty.
func ReferenceInstant(observations []StatusObservation) (time.Time, bool) {
	var latest time.Time
	for i, obs := range observations {
		if i == 0 || obs.Timestamp.After(latest) {
			latest = obs.Timestamp
		}
	}
	return latest.UTC(), len(observations) > 0
}

// BuildReport computes one ReportRecord per store present in the observations.
//
// Schedules are normalized up front and the reference instant is fixed
// before any store is evaluated. Stores are then sharded across workers, each
// working on its own pre-filtered observation slices. Records are returned
// sorted by store ID.
func BuildReport(ctx context.Context, ds Dataset, opts BuildOptions) (*Report, error) {
	schedules, err := NormalizeSchedules(ds.BusinessHours, NewTimezones(ds.Timezones))
	if err != nil {
		return nil, fmt.Errorf("normalize business hours: %w", err)
	}

	reference, ok := ReferenceInstant(ds.Observations)
	if !ok {
		return &Report{Records: []ReportRecord{}}, nil
	}

	byStore := make(map[string][]StatusObservation)
	for _, obs := range ds.Observations {
		byStore[obs.StoreID] = append(byStore[obs.StoreID], obs)
	}

	storeIDs := make([]string, 0, len(byStore))
	for id := range byStore {
		storeIDs = append(storeIDs, id)
	}
	sort.Strings(storeIDs)

	workers := opts.WorkerCount
	if workers <= 0 {
		workers = defaultWorkerCount
	}
	if workers > len(storeIDs) {
		workers = len(storeIDs)
	}

	shards := make([][]string, workers)
	for _, id := range storeIDs {
		shard := partition.For(id) % workers
		shards[shard] = append(shards[shard], id)
	}

	results := make([][]ReportRecord, workers)
	g, gctx := errgroup.WithContext(ctx)
	for i, shard := range shards {
		g.Go(func() error {
			out := make([]ReportRecord, 0, len(shard))
			for _, storeID := range shard {
				if err := gctx.Err(); err != nil {
					return err
				}
				out = append(out, buildRecord(storeID, byStore[storeID], schedules[storeID], reference))
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]ReportRecord, 0, len(storeIDs))
	for _, out := range results {
		records = append(records, out...)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].StoreID < records[j].StoreID
	})

	return &Report{Reference: reference, Records: records}, nil
}

func buildRecord(storeID string, observations []StatusObservation, schedule Schedule, reference time.Time) ReportRecord {
	if schedule.Empty() {
		slog.Debug("[ReportBuilder] Store has no business hours, counts will be zero", "store_id", storeID)
	}

	hourly := Aggregate(observations, schedule, reference, LastHour)
	daily := Aggregate(observations, schedule, reference, LastDay)
	weekly := Aggregate(observations, schedule, reference, LastWeek)

	return ReportRecord{
		StoreID:          storeID,
		UptimeLastHour:   hourly.Uptime,
		UptimeLastDay:    daily.Uptime,
		UptimeLastWeek:   weekly.Uptime,
		DowntimeLastHour: hourly.Downtime,
		DowntimeLastDay:  daily.Downtime,
		DowntimeLastWeek: weekly.Downtime,
	}
}

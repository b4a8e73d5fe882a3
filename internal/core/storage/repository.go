package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	v1 "github.com/storepulse/storepulse/internal/api/v1"
	"github.com/storepulse/storepulse/internal/core/uptime"
)

// ErrNotFound is returned when a report run does not exist.
var ErrNotFound = errors.New("report run not found")

// DatasetReader reads the three report input tables.
type DatasetReader interface {
	ListStatusObservations(ctx context.Context) ([]uptime.StatusObservation, error)

	// ListBusinessHours returns rows in insertion order, so the first rule
	// for a store and day stays the first one.
	ListBusinessHours(ctx context.Context) ([]uptime.BusinessHourRow, error)

	ListTimezones(ctx context.Context) ([]uptime.TimezoneAssignment, error)
}

// DatasetWriter replaces the content of an input table wholesale.
// Each call is atomic: readers see either the old rows or the new ones.
type DatasetWriter interface {
	ReplaceStatusObservations(ctx context.Context, rows []uptime.StatusObservation) error
	ReplaceBusinessHours(ctx context.Context, rows []uptime.BusinessHourRow) error
	ReplaceTimezones(ctx context.Context, rows []uptime.TimezoneAssignment) error
}

// DatasetStore is a DatasetReader that can also be loaded.
type DatasetStore interface {
	DatasetReader
	DatasetWriter
}

// ReportRunStore persists report run state.
type ReportRunStore interface {
	CreateRun(ctx context.Context, run *v1.ReportRun) error
	CompleteRun(ctx context.Context, id string, completedAt, referenceAt time.Time, storeCount int) error
	FailRun(ctx context.Context, id string, completedAt time.Time, reason string) error

	// GetRun returns ErrNotFound for unknown IDs.
	GetRun(ctx context.Context, id string) (*v1.ReportRun, error)
}

// LoadDataset reads all three tables into one snapshot.
func LoadDataset(ctx context.Context, r DatasetReader) (uptime.Dataset, error) {
	observations, err := r.ListStatusObservations(ctx)
	if err != nil {
		return uptime.Dataset{}, fmt.Errorf("list status observations: %w", err)
	}
	hours, err := r.ListBusinessHours(ctx)
	if err != nil {
		return uptime.Dataset{}, fmt.Errorf("list business hours: %w", err)
	}
	timezones, err := r.ListTimezones(ctx)
	if err != nil {
		return uptime.Dataset{}, fmt.Errorf("list timezones: %w", err)
	}

	return uptime.Dataset{
		Observations:  observations,
		BusinessHours: hours,
		Timezones:     timezones,
	}, nil
}

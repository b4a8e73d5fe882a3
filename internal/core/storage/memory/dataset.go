package memory

import (
	"context"
	"sync"

	"github.com/storepulse/storepulse/internal/core/uptime"
)

// DatasetStore is an in-memory implementation of storage.DatasetStore.
// Useful for testing and single-node deployments fed from CSV on startup.
type DatasetStore struct {
	mu            sync.RWMutex
	observations  []uptime.StatusObservation
	businessHours []uptime.BusinessHourRow
	timezones     []uptime.TimezoneAssignment
}

// NewDatasetStore creates an empty in-memory dataset store.
func NewDatasetStore() *DatasetStore {
	return &DatasetStore{}
}

func (s *DatasetStore) ListStatusObservations(ctx context.Context) ([]uptime.StatusObservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.observations), nil
}

func (s *DatasetStore) ListBusinessHours(ctx context.Context) ([]uptime.BusinessHourRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.businessHours), nil
}

func (s *DatasetStore) ListTimezones(ctx context.Context) ([]uptime.TimezoneAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.timezones), nil
}

func (s *DatasetStore) ReplaceStatusObservations(ctx context.Context, rows []uptime.StatusObservation) error {
	// Copy before taking the lock to prevent external modification.
	next := cloneSlice(rows)
	s.mu.Lock()
	s.observations = next
	s.mu.Unlock()
	return nil
}

func (s *DatasetStore) ReplaceBusinessHours(ctx context.Context, rows []uptime.BusinessHourRow) error {
	next := cloneSlice(rows)
	s.mu.Lock()
	s.businessHours = next
	s.mu.Unlock()
	return nil
}

func (s *DatasetStore) ReplaceTimezones(ctx context.Context, rows []uptime.TimezoneAssignment) error {
	next := cloneSlice(rows)
	s.mu.Lock()
	s.timezones = next
	s.mu.Unlock()
	return nil
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

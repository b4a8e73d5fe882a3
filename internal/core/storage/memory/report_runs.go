package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	v1 "github.com/storepulse/storepulse/internal/api/v1"
	"github.com/storepulse/storepulse/internal/core/storage"
)

// ReportRunStore is an in-memory implementation of storage.ReportRunStore.
type ReportRunStore struct {
	mu   sync.RWMutex
	runs map[string]*v1.ReportRun
}

// NewReportRunStore creates an empty in-memory report run store.
func NewReportRunStore() *ReportRunStore {
	return &ReportRunStore{
		runs: make(map[string]*v1.ReportRun),
	}
}

func (s *ReportRunStore) CreateRun(ctx context.Context, run *v1.ReportRun) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("create report run: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[run.ID]; exists {
		return fmt.Errorf("create report run: %s already exists", run.ID)
	}
	s.runs[run.ID] = copyRun(run)
	return nil
}

func (s *ReportRunStore) CompleteRun(ctx context.Context, id string, completedAt, referenceAt time.Time, storeCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, exists := s.runs[id]
	if !exists {
		return fmt.Errorf("report run %s: %w", id, storage.ErrNotFound)
	}

	completed := completedAt.UTC()
	run.Status = v1.RunStatusComplete
	run.CompletedAt = &completed
	run.StoreCount = storeCount
	if !referenceAt.IsZero() {
		ref := referenceAt.UTC()
		run.ReferenceAt = &ref
	}
	return nil
}

func (s *ReportRunStore) FailRun(ctx context.Context, id string, completedAt time.Time, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, exists := s.runs[id]
	if !exists {
		return fmt.Errorf("report run %s: %w", id, storage.ErrNotFound)
	}

	completed := completedAt.UTC()
	run.Status = v1.RunStatusFailed
	run.CompletedAt = &completed
	run.Error = reason
	return nil
}

func (s *ReportRunStore) GetRun(ctx context.Context, id string) (*v1.ReportRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, exists := s.runs[id]
	if !exists {
		return nil, storage.ErrNotFound
	}
	return copyRun(run), nil
}

func copyRun(run *v1.ReportRun) *v1.ReportRun {
	out := *run
	if run.CompletedAt != nil {
		t := *run.CompletedAt
		out.CompletedAt = &t
	}
	if run.ReferenceAt != nil {
		t := *run.ReferenceAt
		out.ReferenceAt = &t
	}
	return &out
}

package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	v1 "github.com/storepulse/storepulse/internal/api/v1"
	"github.com/storepulse/storepulse/internal/core/storage"
	"github.com/storepulse/storepulse/internal/core/uptime"
	"github.com/storepulse/storepulse/internal/observability/metrics"
)

const statusWriteTimeout = 10 * time.Second

var (
	// ErrInvalidReportID marks IDs that are not UUIDs. Only UUIDs are ever
	// issued, and the ID doubles as a file name.
	ErrInvalidReportID = errors.New("invalid report id")

	// ErrShuttingDown is returned by Trigger once Shutdown has begun.
	ErrShuttingDown = errors.New("report service is shutting down")

	// ErrNotComplete is returned by Summary for runs without a finished file.
	ErrNotComplete = errors.New("report is not complete")
)

// Options configures a Service.
type Options struct {
	OutputDir   string
	WorkerCount int
	RunTimeout  time.Duration
}

// Service triggers report runs, generates them in the background and
// serves their status and output.
type Service struct {
	dataset    storage.DatasetReader
	runs       storage.ReportRunStore
	outputDir  string
	workers    int
	runTimeout time.Duration

	nowFn func() time.Time
	newID func() string

	// baseCtx parents every run; Shutdown cancels it.
	baseCtx context.Context
	cancel  context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewService creates the report service and ensures the output directory exists.
func NewService(dataset storage.DatasetReader, runs storage.ReportRunStore, opts Options) (*Service, error) {
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report output dir: %w", err)
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	return &Service{
		dataset:    dataset,
		runs:       runs,
		outputDir:  opts.OutputDir,
		workers:    opts.WorkerCount,
		runTimeout: opts.RunTimeout,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
		newID:   uuid.NewString,
		baseCtx: baseCtx,
		cancel:  cancel,
	}, nil
}

// ReportPath is where the CSV for id is written.
func (s *Service) ReportPath(id string) string {
	return filepath.Join(s.outputDir, id+".csv")
}

// Trigger records a new run and starts generating it in the background.
// It returns as soon as the run is recorded.
func (s *Service) Trigger(ctx context.Context) (string, error) {
	// Reserve the run under the lock so Shutdown waits for it; CreateRun
	// itself runs unlocked.
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return "", ErrShuttingDown
	}
	s.wg.Add(1)
	s.mu.Unlock()

	id := s.newID()
	run := &v1.ReportRun{
		ID:        id,
		Status:    v1.RunStatusRunning,
		StartedAt: s.nowFn(),
		FilePath:  s.ReportPath(id),
	}
	if err := s.runs.CreateRun(ctx, run); err != nil {
		s.wg.Done()
		return "", fmt.Errorf("failed to create report run: %w", err)
	}

	slog.Info("[ReportService] Report run triggered", "report_id", id)

	go s.execute(id)
	return id, nil
}

// Wait blocks until every in-flight run has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

// Shutdown stops accepting runs, cancels in-flight ones and waits for them
// to record their outcome, or for ctx to expire.
func (s *Service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("[ReportService] All report runs stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for report runs: %w", ctx.Err())
	}
}

func (s *Service) execute(id string) {
	defer s.wg.Done()

	ctx, cancel := context.WithTimeout(s.baseCtx, s.runTimeout)
	defer cancel()

	start := time.Now()
	report, err := s.generate(ctx, id)
	elapsed := time.Since(start)

	// The run context may already be cancelled; status writes get their own.
	statusCtx, cancelStatus := context.WithTimeout(context.Background(), statusWriteTimeout)
	defer cancelStatus()

	if err != nil {
		metrics.ObserveReportRun(metrics.ResultError, elapsed, 0)
		slog.Error("[ReportService] Report run failed",
			"report_id", id,
			"duration", elapsed,
			"error", err)
		if ferr := s.runs.FailRun(statusCtx, id, s.nowFn(), err.Error()); ferr != nil {
			slog.Error("[ReportService] Failed to record run failure", "report_id", id, "error", ferr)
		}
		return
	}

	stores := len(report.Records)
	if err := s.runs.CompleteRun(statusCtx, id, s.nowFn(), report.Reference, stores); err != nil {
		metrics.ObserveReportRun(metrics.ResultError, elapsed, stores)
		slog.Error("[ReportService] Failed to record run completion", "report_id", id, "error", err)
		return
	}

	metrics.ObserveReportRun(metrics.ResultSuccess, elapsed, stores)
	slog.Info("[ReportService] Report run complete",
		"report_id", id,
		"stores", stores,
		"reference_at", report.Reference,
		"duration", elapsed)
}

func (s *Service) generate(ctx context.Context, id string) (*uptime.Report, error) {
	dataset, err := storage.LoadDataset(ctx, s.dataset)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	report, err := uptime.BuildReport(ctx, dataset, uptime.BuildOptions{WorkerCount: s.workers})
	if err != nil {
		return nil, err
	}

	if err := writeReportCSV(s.ReportPath(id), report.Records); err != nil {
		return nil, err
	}
	return report, nil
}

// Status returns the run for id. A report file without a run record (for
// example one copied in from another deployment) is reported as complete.
func (s *Service) Status(ctx context.Context, id string) (*v1.ReportRun, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReportID, id)
	}

	run, err := s.runs.GetRun(ctx, id)
	if err == nil {
		return run, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	path := s.ReportPath(id)
	info, statErr := os.Stat(path)
	if statErr != nil {
		return nil, storage.ErrNotFound
	}
	completed := info.ModTime().UTC()
	return &v1.ReportRun{
		ID:          id,
		Status:      v1.RunStatusComplete,
		StartedAt:   completed,
		CompletedAt: &completed,
		FilePath:    path,
	}, nil
}

// fileFor returns the report file of a run, falling back to the configured
// location for runs recorded without one.
func (s *Service) fileFor(run *v1.ReportRun) string {
	if run.FilePath != "" {
		return run.FilePath
	}
	return s.ReportPath(run.ID)
}

// SummaryResponse is the roll-up of a finished report.
type SummaryResponse struct {
	ReportID    string     `json:"report_id"`
	ReferenceAt *time.Time `json:"reference_at,omitempty"`
	uptime.ReportSummary
}

// Summary reads a finished report back and rolls it up per window.
func (s *Service) Summary(ctx context.Context, id string) (*SummaryResponse, error) {
	run, err := s.Status(ctx, id)
	if err != nil {
		return nil, err
	}
	if run.Status != v1.RunStatusComplete {
		return nil, ErrNotComplete
	}

	records, err := readReportCSV(s.fileFor(run))
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", id, err)
	}
	return &SummaryResponse{
		ReportID:      id,
		ReferenceAt:   run.ReferenceAt,
		ReportSummary: uptime.Summarize(records),
	}, nil
}

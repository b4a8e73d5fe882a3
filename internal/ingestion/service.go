package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/storepulse/storepulse/internal/core/storage"
	"github.com/storepulse/storepulse/internal/observability/metrics"
)

// ErrUnknownTable is returned for table names other than the three inputs.
var ErrUnknownTable = errors.New("unknown table")

// Service loads CSV exports into the dataset store.
type Service struct {
	store            storage.DatasetWriter
	maxBodySizeBytes int
}

// Files names the CSV export for each input table.
type Files struct {
	StatusPath        string
	BusinessHoursPath string
	TimezonesPath     string
}

// NewService creates an ingestion service. maxBodySizeMB bounds HTTP uploads.
func NewService(store storage.DatasetWriter, maxBodySizeMB int) *Service {
	return &Service{
		store:            store,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
	}
}

// RegisterRoutes registers ingestion endpoints on the router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/ingest/:table", s.IngestHandler)
}

// Load parses r as the named table and replaces that table's rows.
// It returns the number of rows written.
func (s *Service) Load(ctx context.Context, table string, r io.Reader) (int, error) {
	start := time.Now()
	n, err := s.load(ctx, table, r)

	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	}
	metrics.ObserveIngest(tableLabel(table), result, n, time.Since(start))
	return n, err
}

// tableLabel keeps the metrics table label to the known inputs.
func tableLabel(table string) string {
	switch table {
	case TableStoreStatus, TableMenuHours, TableTimezones:
		return table
	default:
		return "unknown"
	}
}

func (s *Service) load(ctx context.Context, table string, r io.Reader) (int, error) {
	switch table {
	case TableStoreStatus:
		rows, err := ParseStoreStatus(r)
		if err != nil {
			return 0, err
		}
		if err := s.store.ReplaceStatusObservations(ctx, rows); err != nil {
			return 0, fmt.Errorf("failed to store %s: %w", table, err)
		}
		return len(rows), nil

	case TableMenuHours:
		rows, err := ParseMenuHours(r)
		if err != nil {
			return 0, err
		}
		if err := s.store.ReplaceBusinessHours(ctx, rows); err != nil {
			return 0, fmt.Errorf("failed to store %s: %w", table, err)
		}
		return len(rows), nil

	case TableTimezones:
		rows, err := ParseTimezones(r)
		if err != nil {
			return 0, err
		}
		if err := s.store.ReplaceTimezones(ctx, rows); err != nil {
			return 0, fmt.Errorf("failed to store %s: %w", table, err)
		}
		return len(rows), nil

	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownTable, table)
	}
}

// ImportFiles loads all three tables from disk. Used on startup.
func (s *Service) ImportFiles(ctx context.Context, files Files) error {
	sources := []struct {
		table string
		path  string
	}{
		{TableStoreStatus, files.StatusPath},
		{TableMenuHours, files.BusinessHoursPath},
		{TableTimezones, files.TimezonesPath},
	}

	for _, src := range sources {
		if err := s.importFile(ctx, src.table, src.path); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) importFile(ctx context.Context, table, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s export: %w", table, err)
	}
	defer f.Close()

	start := time.Now()
	n, err := s.Load(ctx, table, f)
	if err != nil {
		return fmt.Errorf("failed to import %s from %s: %w", table, path, err)
	}

	slog.Info("[Ingestion] Imported table",
		"table", table,
		"path", path,
		"rows", n,
		"duration", time.Since(start))
	return nil
}

package v1

import (
	"fmt"
	"time"
)

// RunStatus is the lifecycle state of a report run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// ReportRun tracks one triggered report generation.
type ReportRun struct {
	// ID is the UUID handed back to the caller on trigger.
	ID string `json:"report_id"`

	Status RunStatus `json:"status"`

	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// ReferenceAt is the "now" the run's windows were computed against:
	// the latest observation timestamp at generation time.
	ReferenceAt *time.Time `json:"reference_at,omitempty"`

	StoreCount int    `json:"store_count"`
	Error      string `json:"error,omitempty"`

	// FilePath is where the finished CSV lives. Not exposed over the API.
	FilePath string `json:"-"`
}

// Validate ensures the run carries the fields required to persist it.
func (r *ReportRun) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("report_id is required")
	}
	switch r.Status {
	case RunStatusRunning, RunStatusComplete, RunStatusFailed:
	default:
		return fmt.Errorf("invalid status %q", r.Status)
	}
	if r.StartedAt.IsZero() {
		return fmt.Errorf("started_at is required")
	}
	return nil
}

// TriggerResponse is returned when a report run is started.
type TriggerResponse struct {
	ReportID string `json:"report_id"`
}

// PollResponse is returned while a report is not downloadable.
type PollResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Poll status strings as seen by API clients.
const (
	PollRunning = "Running"
	PollFailed  = "Failed"
)

// IngestResponse reports how many rows replaced a table.
type IngestResponse struct {
	Table string `json:"table"`
	Rows  int    `json:"rows"`
}

package report

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	v1 "github.com/storepulse/storepulse/internal/api/v1"
	httperr "github.com/storepulse/storepulse/internal/core/errors"
	"github.com/storepulse/storepulse/internal/core/storage"
	"github.com/storepulse/storepulse/internal/observability/metrics"
)

const (
	msgTriggerFailed  = "Failed to start report run"
	msgLookupFailed   = "Failed to look up report"
	msgReportNotFound = "Report not found"
	msgFileMissing    = "Report file is missing"
)

// RegisterRoutes registers report API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	// Canonical report endpoints.
	r.POST("/v1/reports", s.HandleTrigger)
	r.GET("/v1/reports/:report_id", s.HandleGetReport)
	r.GET("/v1/reports/:report_id/summary", s.HandleSummary)

	// Backward-compatible aliases. Can be removed after clients migrate.
	r.GET("/trigger_report", s.HandleTrigger)
	r.GET("/get_report/:report_id", s.HandleGetReport)
}

// HandleTrigger starts a report run and returns its ID.
func (s *Service) HandleTrigger(c *gin.Context) {
	id, err := s.Trigger(c.Request.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrShuttingDown) {
			status = http.StatusServiceUnavailable
		}
		slog.Error("[ReportService] Trigger failed", "error", err)
		c.JSON(status, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   msgTriggerFailed,
		})
		return
	}

	c.JSON(http.StatusOK, v1.TriggerResponse{ReportID: id})
}

// HandleGetReport returns the CSV of a finished run, or its status.
func (s *Service) HandleGetReport(c *gin.Context) {
	run, ok := s.lookup(c)
	if !ok {
		return
	}

	switch run.Status {
	case v1.RunStatusRunning:
		metrics.IncReportPoll(string(run.Status))
		c.JSON(http.StatusOK, v1.PollResponse{Status: v1.PollRunning})
	case v1.RunStatusFailed:
		metrics.IncReportPoll(string(run.Status))
		c.JSON(http.StatusOK, v1.PollResponse{Status: v1.PollFailed, Error: run.Error})
	default:
		path := s.fileFor(run)
		if _, err := os.Stat(path); err != nil {
			slog.Error("[ReportService] Completed report has no file", "report_id", run.ID, "path", path, "error", err)
			c.JSON(http.StatusNotFound, httperr.ErrorResponse{
				ErrorType: httperr.HttpReportNotFoundError,
				Message:   msgFileMissing,
			})
			return
		}
		metrics.IncReportPoll(string(run.Status))
		c.FileAttachment(path, run.ID+".csv")
	}
}

// HandleSummary returns per-window totals and availability for a finished run.
func (s *Service) HandleSummary(c *gin.Context) {
	summary, err := s.Summary(c.Request.Context(), c.Param("report_id"))
	if err == nil {
		c.JSON(http.StatusOK, summary)
		return
	}

	switch {
	case errors.Is(err, ErrNotComplete):
		c.JSON(http.StatusConflict, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   err.Error(),
		})
	default:
		s.writeLookupError(c, err)
	}
}

// lookup resolves the run for the report_id path parameter, writing the
// error response itself when it cannot.
func (s *Service) lookup(c *gin.Context) (*v1.ReportRun, bool) {
	run, err := s.Status(c.Request.Context(), c.Param("report_id"))
	if err != nil {
		s.writeLookupError(c, err)
		return nil, false
	}
	return run, true
}

func (s *Service) writeLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidReportID):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   err.Error(),
		})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpReportNotFoundError,
			Message:   msgReportNotFound,
			Details:   map[string]string{"report_id": c.Param("report_id")},
		})
	default:
		slog.Error("[ReportService] Report lookup failed", "report_id", c.Param("report_id"), "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   msgLookupFailed,
		})
	}
}

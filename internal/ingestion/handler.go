package ingestion

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	v1 "github.com/storepulse/storepulse/internal/api/v1"
	httperr "github.com/storepulse/storepulse/internal/core/errors"
)

const (
	msgReadBodyFailed = "Failed to read request body"
	msgStoreFailed    = "Failed to store table"
	msgBodyTooLarge   = "Request body exceeds maximum allowed size"
)

// IngestHandler replaces one input table with the CSV request body.
func (s *Service) IngestHandler(c *gin.Context) {
	table := c.Param("table")

	// +1 to detect oversized requests
	maxBytes := int64(s.maxBodySizeBytes)
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBytes+1))
	if err != nil {
		slog.Error("[Ingestion] Failed to read request body", "table", table, "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   msgReadBodyFailed,
		})
		return
	}
	if int64(len(body)) > maxBytes {
		slog.Warn("[Ingestion] Request body exceeds maximum size", "table", table, "max", maxBytes)
		c.JSON(http.StatusRequestEntityTooLarge, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   msgBodyTooLarge,
			Details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		})
		return
	}

	rows, err := s.Load(c.Request.Context(), table, bytes.NewReader(body))
	switch {
	case errors.Is(err, ErrUnknownTable):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpUnknownTableError,
			Message:   err.Error(),
			Details: map[string]interface{}{
				"tables": []string{TableStoreStatus, TableMenuHours, TableTimezones},
			},
		})
		return
	case errors.Is(err, ErrInvalidCSV):
		slog.Warn("[Ingestion] Rejected CSV upload", "table", table, "error", err)
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidCSVError,
			Message:   err.Error(),
		})
		return
	case err != nil:
		slog.Error("[Ingestion] Failed to store table", "table", table, "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   msgStoreFailed,
		})
		return
	}

	slog.Info("[Ingestion] Replaced table", "table", table, "rows", rows, "payload_size", len(body))
	c.JSON(http.StatusOK, v1.IngestResponse{Table: table, Rows: rows})
}

package ingestion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	v1 "github.com/storepulse/storepulse/internal/api/v1"
	httperr "github.com/storepulse/storepulse/internal/core/errors"
	"github.com/storepulse/storepulse/internal/core/storage/memory"
	"github.com/storepulse/storepulse/internal/core/uptime"
	storagemocks "github.com/storepulse/storepulse/internal/mocks/storage"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIngestHandler_ReplacesTimezones(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockStore := storagemocks.NewDatasetStore(t)
	mockStore.EXPECT().
		ReplaceTimezones(mock.Anything, mock.MatchedBy(func(rows []uptime.TimezoneAssignment) bool {
			return len(rows) == 2 && rows[0].StoreID == "s1" && rows[1].Timezone == "Asia/Kolkata"
		})).
		Return(nil).
		Once()

	svc := NewService(mockStore, 1)
	r := gin.New()
	svc.RegisterRoutes(r)

	body := "store_id,timezone_str\ns1,America/Chicago\ns2,Asia/Kolkata\n"
	req := httptest.NewRequest(http.MethodPost, "/v1/ingest/timezones", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/csv")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	var result v1.IngestResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.Equal(t, v1.IngestResponse{Table: "timezones", Rows: 2}, result)
}

func TestIngestHandler_InvalidCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockStore := storagemocks.NewDatasetStore(t)
	svc := NewService(mockStore, 1)
	r := gin.New()
	svc.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/v1/ingest/menu_hours", strings.NewReader("store_id,day\ns1,0\n"))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	var result httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.Equal(t, httperr.HttpInvalidCSVError, result.ErrorType)
	require.Contains(t, result.Message, "start_time_local")
	mockStore.AssertNotCalled(t, "ReplaceBusinessHours", mock.Anything, mock.Anything)
}

func TestIngestHandler_UnknownTable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := NewService(storagemocks.NewDatasetStore(t), 1)
	r := gin.New()
	svc.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/v1/ingest/orders", strings.NewReader("a,b\n"))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusNotFound, resp.Code)
	var result httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.Equal(t, httperr.HttpUnknownTableError, result.ErrorType)
}

func TestIngestHandler_BodyTooLarge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := NewService(storagemocks.NewDatasetStore(t), 1)
	r := gin.New()
	svc.RegisterRoutes(r)

	body := "store_id,timezone_str\n" + strings.Repeat("s1,UTC\n", 200_000)
	req := httptest.NewRequest(http.MethodPost, "/v1/ingest/timezones", strings.NewReader(body))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)
}

func TestIngestHandler_StoreFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockStore := storagemocks.NewDatasetStore(t)
	mockStore.EXPECT().
		ReplaceStatusObservations(mock.Anything, mock.Anything).
		Return(errors.New("connection refused")).
		Once()

	svc := NewService(mockStore, 1)
	r := gin.New()
	svc.RegisterRoutes(r)

	body := "store_id,status,timestamp_utc\ns1,active,2023-01-24 09:07:26.441407 UTC\n"
	req := httptest.NewRequest(http.MethodPost, "/v1/ingest/store_status", strings.NewReader(body))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusInternalServerError, resp.Code)
	var result httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.Equal(t, httperr.HttpInternalError, result.ErrorType)
	require.NotContains(t, result.Message, "connection refused")
}

func TestService_ImportFiles(t *testing.T) {
	dir := t.TempDir()
	files := Files{
		StatusPath:        filepath.Join(dir, "store_status.csv"),
		BusinessHoursPath: filepath.Join(dir, "menu_hours.csv"),
		TimezonesPath:     filepath.Join(dir, "store_timezone.csv"),
	}
	require.NoError(t, os.WriteFile(files.StatusPath, []byte(
		"store_id,status,timestamp_utc\ns1,active,2023-01-25 18:13:22.47922 UTC\ns1,inactive,2023-01-25 17:13:22 UTC\n"), 0o644))
	require.NoError(t, os.WriteFile(files.BusinessHoursPath, []byte(
		"store_id,day,start_time_local,end_time_local\ns1,2,09:00:00,17:00:00\n"), 0o644))
	require.NoError(t, os.WriteFile(files.TimezonesPath, []byte(
		"store_id,timezone_str\ns1,America/Chicago\n"), 0o644))

	store := memory.NewDatasetStore()
	svc := NewService(store, 32)
	require.NoError(t, svc.ImportFiles(context.Background(), files))

	obs, err := store.ListStatusObservations(context.Background())
	require.NoError(t, err)
	require.Len(t, obs, 2)
	hours, err := store.ListBusinessHours(context.Background())
	require.NoError(t, err)
	require.Len(t, hours, 1)
	tzs, err := store.ListTimezones(context.Background())
	require.NoError(t, err)
	require.Equal(t, "America/Chicago", tzs[0].Timezone)
}

func TestService_ImportFilesMissingFile(t *testing.T) {
	svc := NewService(memory.NewDatasetStore(), 32)
	err := svc.ImportFiles(context.Background(), Files{StatusPath: filepath.Join(t.TempDir(), "nope.csv")})
	require.ErrorContains(t, err, "failed to open store_status export")
}

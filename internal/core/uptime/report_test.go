package uptime

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Observations: []StatusObservation{
			{StoreID: "S1", Timestamp: monday(10, 0, 0), Status: StatusActive},
			{StoreID: "S1", Timestamp: monday(16, 0, 0), Status: StatusInactive},
			{StoreID: "S1", Timestamp: monday(20, 0, 0), Status: StatusActive},
			{StoreID: "S2", Timestamp: monday(16, 30, 0), Status: StatusActive},
			{StoreID: "S2", Timestamp: monday(23, 59, 0), Status: StatusActive},
			{StoreID: "S3", Timestamp: monday(12, 0, 0), Status: StatusInactive},
		},
		BusinessHours: []BusinessHourRow{
			{StoreID: "S1", DayOfWeek: 0, StartLocal: "04:00:00", EndLocal: "12:00:00"},
			{StoreID: "S2", DayOfWeek: 0, StartLocal: "09:00:00.000000", EndLocal: "17:00:00"},
			{StoreID: "S4", DayOfWeek: 0, StartLocal: "00:00:00", EndLocal: "23:59:59"},
		},
		Timezones: []TimezoneAssignment{
			{StoreID: "S1", Timezone: "America/New_York"},
		},
	}
}

func TestBuildReport(t *testing.T) {
	report, err := BuildReport(context.Background(), sampleDataset(), BuildOptions{WorkerCount: 2})
	require.NoError(t, err)

	require.Equal(t, monday(23, 59, 0), report.Reference)
	require.Equal(t, []ReportRecord{
		{StoreID: "S1", UptimeLastDay: 1, UptimeLastWeek: 1, DowntimeLastDay: 1, DowntimeLastWeek: 1},
		{StoreID: "S2", UptimeLastDay: 1, UptimeLastWeek: 1},
		{StoreID: "S3"},
	}, report.Records)
}

func TestBuildReport_WorkerCountDoesNotChangeResult(t *testing.T) {
	base, err := BuildReport(context.Background(), sampleDataset(), BuildOptions{WorkerCount: 1})
	require.NoError(t, err)

	for _, workers := range []int{0, 3, 64} {
		got, err := BuildReport(context.Background(), sampleDataset(), BuildOptions{WorkerCount: workers})
		require.NoError(t, err)
		require.Equal(t, base, got, "workers=%d", workers)
	}
}

func TestBuildReport_InvalidTimezoneFailsRun(t *testing.T) {
	ds := sampleDataset()
	ds.Timezones = append(ds.Timezones, TimezoneAssignment{StoreID: "S2", Timezone: "Mars/Colony"})

	report, err := BuildReport(context.Background(), ds, BuildOptions{})
	require.ErrorIs(t, err, ErrInvalidTimezone)
	require.Nil(t, report)
}

func TestBuildReport_NoObservations(t *testing.T) {
	ds := sampleDataset()
	ds.Observations = nil

	report, err := BuildReport(context.Background(), ds, BuildOptions{})
	require.NoError(t, err)
	require.True(t, report.Reference.IsZero())
	require.Empty(t, report.Records)
}

func TestBuildReport_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildReport(ctx, sampleDataset(), BuildOptions{WorkerCount: 2})
	require.ErrorIs(t, err, context.Canceled)
}

func TestReferenceInstant(t *testing.T) {
	_, ok := ReferenceInstant(nil)
	require.False(t, ok)

	latest := time.Date(2023, 1, 25, 18, 13, 22, 0, time.FixedZone("X", 3600))
	got, ok := ReferenceInstant([]StatusObservation{
		{Timestamp: monday(1, 0, 0)},
		{Timestamp: latest},
		{Timestamp: monday(2, 0, 0)},
	})
	require.True(t, ok)
	require.Equal(t, latest.UTC(), got)
}

func TestSummarize(t *testing.T) {
	report, err := BuildReport(context.Background(), sampleDataset(), BuildOptions{})
	require.NoError(t, err)

	summary := Summarize(report.Records)
	require.Equal(t, 3, summary.Stores)
	require.Len(t, summary.Windows, 3)

	hour := summary.Windows[0]
	require.Equal(t, "last_hour", hour.Window)
	require.True(t, hour.Availability.IsZero())

	day := summary.Windows[1]
	require.Equal(t, int64(2), day.Uptime)
	require.Equal(t, int64(1), day.Downtime)
	require.True(t, decimal.RequireFromString("0.6667").Equal(day.Availability), day.Availability.String())
}

func TestReportRecord_Values(t *testing.T) {
	r := ReportRecord{StoreID: "S1", UptimeLastHour: 1, UptimeLastDay: 2, UptimeLastWeek: 3,
		DowntimeLastHour: 4, DowntimeLastDay: 5, DowntimeLastWeek: 6}
	require.Equal(t, []string{"S1", "1", "2", "3", "4", "5", "6"}, r.Values())
	require.Len(t, ReportColumns, len(r.Values()))
}

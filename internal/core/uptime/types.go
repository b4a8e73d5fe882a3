package uptime

import (
	"fmt"
	"time"
)

// Status is the operational state reported by a store poll.
// Only active and inactive are counted; anything else is ignored by Aggregate.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// DefaultTimezone is used for stores without a timezone assignment.
const DefaultTimezone = "UTC"

// Report lookback windows.
const (
	LastHour = time.Hour
	LastDay  = 24 * time.Hour
	LastWeek = 7 * 24 * time.Hour
)

// StatusObservation is a single timestamped poll result for a store.
type StatusObservation struct {
	StoreID   string
	Timestamp time.Time // UTC
	Status    Status
}

// BusinessHourRow is one row of the business hours table, in store-local time.
// StartLocal/EndLocal are HH:MM:SS with an optional fractional-second suffix.
type BusinessHourRow struct {
	StoreID    string
	DayOfWeek  int // 0=Monday .. 6=Sunday
	StartLocal string
	EndLocal   string
}

// BusinessHourRule is a business hour row after UTC normalization.
type BusinessHourRule struct {
	StoreID   string
	DayOfWeek int
	Start     TimeOfDay
	End       TimeOfDay
}

// TimezoneAssignment maps a store to an IANA timezone identifier.
type TimezoneAssignment struct {
	StoreID  string
	Timezone string
}

// TimeOfDay is a wall-clock time with second precision.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// String formats t as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// On combines t with the UTC calendar date of date.
func (t TimeOfDay) On(date time.Time) time.Time {
	y, m, d := date.UTC().Date()
	return time.Date(y, m, d, t.Hour, t.Minute, t.Second, 0, time.UTC)
}

// WindowCount is the number of active and inactive observations seen
// inside business hours for one lookback window.
type WindowCount struct {
	Uptime   int64
	Downtime int64
}

// ReportRecord is one row of the uptime report.
type ReportRecord struct {
	StoreID          string
	UptimeLastHour   int64
	UptimeLastDay    int64
	UptimeLastWeek   int64
	DowntimeLastHour int64
	DowntimeLastDay  int64
	DowntimeLastWeek int64
}

// ReportColumns is the CSV header of a report, in column order.
var ReportColumns = []string{
	"store_id",
	"uptime_last_hour",
	"uptime_last_day",
	"uptime_last_week",
	"downtime_last_hour",
	"downtime_last_day",
	"downtime_last_week",
}

// Values returns the record's fields in ReportColumns order.
func (r ReportRecord) Values() []string {
	return []string{
		r.StoreID,
		fmt.Sprint(r.UptimeLastHour),
		fmt.Sprint(r.UptimeLastDay),
		fmt.Sprint(r.UptimeLastWeek),
		fmt.Sprint(r.DowntimeLastHour),
		fmt.Sprint(r.DowntimeLastDay),
		fmt.Sprint(r.DowntimeLastWeek),
	}
}

// weekdayIndex converts a time.Weekday (Sunday=0) to the table convention (Monday=0).
func weekdayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

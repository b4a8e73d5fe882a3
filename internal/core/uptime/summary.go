package uptime

import "github.com/shopspring/decimal"

const availabilityPlaces = 4

// WindowSummary totals one lookback window across all stores in a report.
type WindowSummary struct {
	Window       string          `json:"window"`
	Uptime       int64           `json:"uptime"`
	Downtime     int64           `json:"downtime"`
	Availability decimal.Decimal `json:"availability"`
}

// ReportSummary is a roll-up of a report's records.
type ReportSummary struct {
	Stores  int             `json:"stores"`
	Windows []WindowSummary `json:"windows"`
}

// Availability returns uptime / (uptime + downtime) rounded to four places,
// or zero when the window saw no counted observations.
func Availability(c WindowCount) decimal.Decimal {
	total := c.Uptime + c.Downtime
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(c.Uptime).DivRound(decimal.NewFromInt(total), availabilityPlaces)
}

// Summarize rolls the records up into hour/day/week totals.
func Summarize(records []ReportRecord) ReportSummary {
	var hourly, daily, weekly WindowCount
	for _, r := range records {
		hourly.Uptime += r.UptimeLastHour
		hourly.Downtime += r.DowntimeLastHour
		daily.Uptime += r.UptimeLastDay
		daily.Downtime += r.DowntimeLastDay
		weekly.Uptime += r.UptimeLastWeek
		weekly.Downtime += r.DowntimeLastWeek
	}

	return ReportSummary{
		Stores: len(records),
		Windows: []WindowSummary{
			windowSummary("last_hour", hourly),
			windowSummary("last_day", daily),
			windowSummary("last_week", weekly),
		},
	}
}

func windowSummary(label string, c WindowCount) WindowSummary {
	return WindowSummary{
		Window:       label,
		Uptime:       c.Uptime,
		Downtime:     c.Downtime,
		Availability: Availability(c),
	}
}

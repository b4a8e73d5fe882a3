package uptime

import "time"

const day = 24 * time.Hour

// Aggregate counts active and inactive observations that fall inside both the
// lookback window ending at reference and the store's business hours.
//
// All bounds are inclusive. Business hours are built per calendar day as
// [date+start, date+end]; a rule whose UTC end precedes its start therefore
// matches nothing on that day.
func Aggregate(observations []StatusObservation, schedule Schedule, reference time.Time, lookback time.Duration) WindowCount {
	var count WindowCount
	if lookback < 0 {
		return count
	}

	windowStart := reference.Add(-lookback)
	windowEnd := reference

	candidates := make([]StatusObservation, 0, len(observations))
	for _, obs := range observations {
		if within(obs.Timestamp, windowStart, windowEnd) {
			candidates = append(candidates, obs)
		}
	}
	if len(candidates) == 0 {
		return count
	}

	// Whole days in the lookback plus the day holding window_start. A sub-day
	// window only checks that one day.
	days := int(lookback/day) + 1
	first := windowStart.UTC()

	for n := 0; n < days; n++ {
		date := first.AddDate(0, 0, n)
		rule, ok := schedule.For(weekdayIndex(date.Weekday()))
		if !ok {
			continue
		}

		opens := rule.Start.On(date)
		closes := rule.End.On(date)
		for _, obs := range candidates {
			if !within(obs.Timestamp, opens, closes) {
				continue
			}
			switch obs.Status {
			case StatusActive:
				count.Uptime++
			case StatusInactive:
				count.Downtime++
			}
		}
	}

	return count
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

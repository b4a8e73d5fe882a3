package uptime

import "fmt"

// Schedule holds one UTC business-hours rule per day of week for a single store.
type Schedule struct {
	rules [7]*BusinessHourRule
}

// NewSchedule builds a schedule from rules. When a day has more than one
// rule, the first one wins; rules with an out-of-range day are ignored.
func NewSchedule(rules []BusinessHourRule) Schedule {
	var s Schedule
	for i := range rules {
		day := rules[i].DayOfWeek
		if day < 0 || day > 6 || s.rules[day] != nil {
			continue
		}
		rule := rules[i]
		s.rules[day] = &rule
	}
	return s
}

// For returns the rule for day (0=Monday). ok is false when the store is closed that day.
func (s Schedule) For(day int) (BusinessHourRule, bool) {
	if day < 0 || day > 6 || s.rules[day] == nil {
		return BusinessHourRule{}, false
	}
	return *s.rules[day], true
}

// Empty reports whether the schedule has no rule for any day.
func (s Schedule) Empty() bool {
	for _, r := range s.rules {
		if r != nil {
			return false
		}
	}
	return true
}

// Timezones is a lookup of store timezone assignments.
type Timezones map[string]string

// NewTimezones indexes assignments by store. The first assignment per store wins.
func NewTimezones(assignments []TimezoneAssignment) Timezones {
	tz := make(Timezones, len(assignments))
	for _, a := range assignments {
		if _, exists := tz[a.StoreID]; exists {
			continue
		}
		tz[a.StoreID] = a.Timezone
	}
	return tz
}

// Lookup returns the store's timezone. ok is false when the store has no
// assignment or the assignment is blank.
func (t Timezones) Lookup(storeID string) (string, bool) {
	name, ok := t[storeID]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// Resolve returns the store's timezone, or DefaultTimezone when absent.
func (t Timezones) Resolve(storeID string) string {
	if name, ok := t.Lookup(storeID); ok {
		return name
	}
	return DefaultTimezone
}

// NormalizeSchedules converts every business hour row to UTC and groups the
// results into per-store schedules. The first invalid row aborts the whole
// conversion.
func NormalizeSchedules(rows []BusinessHourRow, timezones Timezones) (map[string]Schedule, error) {
	grouped := make(map[string][]BusinessHourRule)
	for _, row := range rows {
		tz := timezones.Resolve(row.StoreID)

		start, err := NormalizeTime(row.StartLocal, tz)
		if err != nil {
			return nil, fmt.Errorf("store %s day %d start: %w", row.StoreID, row.DayOfWeek, err)
		}
		end, err := NormalizeTime(row.EndLocal, tz)
		if err != nil {
			return nil, fmt.Errorf("store %s day %d end: %w", row.StoreID, row.DayOfWeek, err)
		}

		grouped[row.StoreID] = append(grouped[row.StoreID], BusinessHourRule{
			StoreID:   row.StoreID,
			DayOfWeek: row.DayOfWeek,
			Start:     start,
			End:       end,
		})
	}

	schedules := make(map[string]Schedule, len(grouped))
	for storeID, rules := range grouped {
		schedules[storeID] = NewSchedule(rules)
	}
	return schedules, nil
}

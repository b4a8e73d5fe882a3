package uptime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 2023-01-23 is a Monday.
func monday(hour, min, sec int) time.Time {
	return time.Date(2023, 1, 23, hour, min, sec, 0, time.UTC)
}

func obs(ts time.Time, status Status) StatusObservation {
	return StatusObservation{StoreID: "S1", Timestamp: ts, Status: status}
}

func rule(day int, start, end TimeOfDay) BusinessHourRule {
	return BusinessHourRule{StoreID: "S1", DayOfWeek: day, Start: start, End: end}
}

func allWeek() Schedule {
	rules := make([]BusinessHourRule, 0, 7)
	for d := 0; d < 7; d++ {
		rules = append(rules, rule(d, TimeOfDay{}, TimeOfDay{Hour: 23, Minute: 59, Second: 59}))
	}
	return NewSchedule(rules)
}

func TestAggregate_MondayScenario(t *testing.T) {
	schedule := NewSchedule([]BusinessHourRule{
		rule(0, TimeOfDay{Hour: 9}, TimeOfDay{Hour: 17}),
	})
	observations := []StatusObservation{
		obs(monday(10, 0, 0), StatusActive),
		obs(monday(16, 0, 0), StatusInactive),
		obs(monday(20, 0, 0), StatusActive),
	}

	got := Aggregate(observations, schedule, monday(23, 59, 0), LastDay)
	require.Equal(t, WindowCount{Uptime: 1, Downtime: 1}, got)
}

func TestAggregate_NoRulesYieldsZero(t *testing.T) {
	observations := []StatusObservation{
		obs(monday(10, 0, 0), StatusActive),
		obs(monday(11, 0, 0), StatusInactive),
	}
	for _, lookback := range []time.Duration{LastHour, LastDay, LastWeek} {
		got := Aggregate(observations, Schedule{}, monday(11, 30, 0), lookback)
		require.Equal(t, WindowCount{}, got, "lookback %s", lookback)
	}
}

func TestAggregate_WindowBounds(t *testing.T) {
	reference := monday(12, 0, 0)
	windowStart := reference.Add(-LastHour)

	observations := []StatusObservation{
		obs(windowStart.Add(-time.Second), StatusActive),
		obs(windowStart, StatusActive),
		obs(reference, StatusInactive),
		obs(reference.Add(time.Second), StatusInactive),
	}

	// Only the day holding window_start (Monday) is checked, so the Tuesday
	// observation falls outside every business-hour interval.
	got := Aggregate(observations, allWeek(), reference, LastHour)
	require.Equal(t, WindowCount{Uptime: 1}, got)
}

func TestAggregate_BusinessHourBounds(t *testing.T) {
	schedule := NewSchedule([]BusinessHourRule{
		rule(0, TimeOfDay{Hour: 9}, TimeOfDay{Hour: 17}),
	})
	observations := []StatusObservation{
		obs(monday(8, 59, 59), StatusActive),
		obs(monday(9, 0, 0), StatusActive),
		obs(monday(17, 0, 0), StatusInactive),
		obs(monday(17, 0, 1), StatusInactive),
	}

	got := Aggregate(observations, schedule, monday(23, 0, 0), LastDay)
	require.Equal(t, WindowCount{Uptime: 1, Downtime: 1}, got)
}

func TestAggregate_IgnoresUnknownStatus(t *testing.T) {
	observations := []StatusObservation{
		obs(monday(10, 0, 0), StatusActive),
		obs(monday(10, 5, 0), Status("degraded")),
		obs(monday(10, 10, 0), Status("")),
	}

	got := Aggregate(observations, allWeek(), monday(10, 30, 0), LastHour)
	require.Equal(t, WindowCount{Uptime: 1}, got)
}

func TestAggregate_HourWindowSpanningMidnight(t *testing.T) {
	reference := time.Date(2023, 1, 24, 0, 30, 0, 0, time.UTC) // Tuesday
	observations := []StatusObservation{
		obs(monday(23, 45, 0), StatusActive),
		obs(reference.Add(-15*time.Minute), StatusInactive),
	}

	// Only the day holding window_start (Monday) is checked, so the Tuesday
	// observation falls outside every business-hour interval.
	got := Aggregate(observations, allWeek(), reference, LastHour)
	require.Equal(t, WindowCount{Uptime: 1}, got)
}

func TestAggregate_InvertedRuleMatchesNothing(t *testing.T) {
	schedule := NewSchedule([]BusinessHourRule{
		rule(0, TimeOfDay{Hour: 22}, TimeOfDay{Hour: 6}),
	})
	observations := []StatusObservation{
		obs(monday(23, 0, 0), StatusActive),
		obs(monday(3, 0, 0), StatusInactive),
	}

	got := Aggregate(observations, schedule, monday(23, 30, 0), LastDay)
	require.Equal(t, WindowCount{}, got)
}

func TestAggregate_WeekCountsEachDayOnce(t *testing.T) {
	reference := monday(23, 0, 0)
	var observations []StatusObservation
	for d := 0; d < 7; d++ {
		ts := reference.AddDate(0, 0, -d).Add(-time.Hour) // 22:00 each day
		observations = append(observations, obs(ts, StatusActive))
		observations = append(observations, obs(ts.Add(30*time.Minute), StatusInactive))
	}

	got := Aggregate(observations, allWeek(), reference, LastWeek)
	require.Equal(t, WindowCount{Uptime: 7, Downtime: 7}, got)
}

func TestAggregate_UnorderedInputAndIdempotence(t *testing.T) {
	observations := []StatusObservation{
		obs(monday(16, 0, 0), StatusInactive),
		obs(monday(10, 0, 0), StatusActive),
		obs(monday(12, 0, 0), StatusActive),
	}
	schedule := NewSchedule([]BusinessHourRule{
		rule(0, TimeOfDay{Hour: 9}, TimeOfDay{Hour: 17}),
	})

	first := Aggregate(observations, schedule, monday(18, 0, 0), LastDay)
	second := Aggregate(observations, schedule, monday(18, 0, 0), LastDay)
	require.Equal(t, first, second)
	require.Equal(t, WindowCount{Uptime: 2, Downtime: 1}, first)
}

func TestAggregate_NegativeLookback(t *testing.T) {
	observations := []StatusObservation{obs(monday(10, 0, 0), StatusActive)}
	got := Aggregate(observations, allWeek(), monday(10, 0, 0), -time.Hour)
	require.Equal(t, WindowCount{}, got)
}

package uptime

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Unpadded minute and second fields accept one or two digits.
const timeOfDayLayout = "15:4:5"

// referenceDate anchors local times before conversion. Only the resulting
// time-of-day is kept, so any fixed date works; a fixed one keeps
// NormalizeTime deterministic.
var referenceDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var locationCache sync.Map // timezone name -> *time.Location

// ParseTimeOfDay parses H:M:S with one or two digits per field, so both
// "09:05:07" and "9:5:7" are accepted. Any fractional-second suffix is dropped.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	raw := s
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

// LoadTimezone resolves an IANA identifier. An empty name means DefaultTimezone.
func LoadTimezone(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	if cached, ok := locationCache.Load(name); ok {
		return cached.(*time.Location), nil
	}
	// "Local" is the host zone, not a tz database entry.
	if name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	locationCache.Store(name, loc)
	return loc, nil
}

// NormalizeTime converts a local time-of-day in the given timezone to UTC.
// An empty timezone falls back to DefaultTimezone.
func NormalizeTime(local, timezone string) (TimeOfDay, error) {
	loc, err := LoadTimezone(timezone)
	if err != nil {
		return TimeOfDay{}, err
	}
	tod, err := ParseTimeOfDay(local)
	if err != nil {
		return TimeOfDay{}, err
	}

	y, m, d := referenceDate.Date()
	utc := time.Date(y, m, d, tod.Hour, tod.Minute, tod.Second, 0, loc).UTC()
	return TimeOfDay{Hour: utc.Hour(), Minute: utc.Minute(), Second: utc.Second()}, nil
}

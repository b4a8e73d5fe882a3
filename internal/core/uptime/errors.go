package uptime

import "errors"

var (
	// ErrInvalidTimezone is returned when a timezone identifier is not in the tz database.
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrInvalidTimeFormat is returned when a local time string is not HH:MM:SS[.ffffff].
	ErrInvalidTimeFormat = errors.New("invalid time format")
)

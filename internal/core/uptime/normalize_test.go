package uptime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name     string
		local    string
		timezone string
		want     string
		wantErr  error
	}{
		{name: "utc passthrough", local: "10:00:00", timezone: "UTC", want: "10:00:00"},
		{name: "fractional seconds dropped", local: "10:00:00.500000", timezone: "UTC", want: "10:00:00"},
		{name: "absent timezone defaults to utc", local: "10:00:00", timezone: "", want: "10:00:00"},
		{name: "single digit hour", local: "9:15:00", timezone: "UTC", want: "09:15:00"},
		{name: "single digit fields", local: "9:5:7", timezone: "UTC", want: "09:05:07"},
		{name: "chicago winter offset", local: "09:00:00", timezone: "America/Chicago", want: "15:00:00"},
		{name: "half hour offset", local: "20:00:00", timezone: "Asia/Kolkata", want: "14:30:00"},
		{name: "wraps past midnight", local: "23:00:00", timezone: "America/New_York", want: "04:00:00"},
		{name: "unknown timezone", local: "10:00:00", timezone: "Mars/Colony", wantErr: ErrInvalidTimezone},
		{name: "host local zone rejected", local: "10:00:00", timezone: "Local", wantErr: ErrInvalidTimezone},
		{name: "timezone checked before time", local: "garbage", timezone: "Mars/Colony", wantErr: ErrInvalidTimezone},
		{name: "hour out of range", local: "25:00:00", timezone: "UTC", wantErr: ErrInvalidTimeFormat},
		{name: "missing seconds", local: "10:00", timezone: "UTC", wantErr: ErrInvalidTimeFormat},
		{name: "minute out of range", local: "10:60:00", timezone: "UTC", wantErr: ErrInvalidTimeFormat},
		{name: "three digit hour", local: "010:00:00", timezone: "UTC", wantErr: ErrInvalidTimeFormat},
		{name: "empty field", local: "10::00", timezone: "UTC", wantErr: ErrInvalidTimeFormat},
		{name: "signed field", local: "+1:00:00", timezone: "UTC", wantErr: ErrInvalidTimeFormat},
		{name: "not a time", local: "ten o'clock", timezone: "UTC", wantErr: ErrInvalidTimeFormat},
		{name: "empty", local: "", timezone: "UTC", wantErr: ErrInvalidTimeFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeTime(tc.local, tc.timezone)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestNormalizeTime_Deterministic(t *testing.T) {
	first, err := NormalizeTime("18:30:00", "Europe/Berlin")
	require.NoError(t, err)
	second, err := NormalizeTime("18:30:00", "Europe/Berlin")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, TimeOfDay{Hour: 17, Minute: 30}, first)
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("07:08:09.123")
	require.NoError(t, err)
	require.Equal(t, TimeOfDay{Hour: 7, Minute: 8, Second: 9}, tod)

	tod, err = ParseTimeOfDay("7:8:9")
	require.NoError(t, err)
	require.Equal(t, TimeOfDay{Hour: 7, Minute: 8, Second: 9}, tod)

	_, err = ParseTimeOfDay("07:08:09pm")
	require.ErrorIs(t, err, ErrInvalidTimeFormat)
	require.ErrorContains(t, err, "07:08:09pm")
}

func TestLoadTimezone_EmptyIsDefault(t *testing.T) {
	loc, err := LoadTimezone("")
	require.NoError(t, err)
	require.Equal(t, "UTC", loc.String())
}

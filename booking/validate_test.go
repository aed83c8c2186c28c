package booking_test

import (
	"testing"
	"time"

	bk "github.com/hanksha/condo-amenity-hub/booking"
	"github.com/stretchr/testify/require"
)

func TestValidateDate(t *testing.T) {

	t.Run("valid dates are returned unchanged", func(t *testing.T) {
		for _, raw := range []string{"2025-09-02", "2025-09-10", "2025-12-31", "2028-02-29"} {
			got, err := bk.ValidateDate(raw, bk.DefaultMinBookingDate)

			require.NoError(t, err, raw)
			require.Equal(t, raw, got)
		}
	})

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "single digit month and day", raw: "2025-9-2", want: bk.ErrFormat},
		{name: "letters", raw: "abcd-ef-gh", want: bk.ErrFormat},
		{name: "surrounding space", raw: " 2025-09-10", want: bk.ErrFormat},
		{name: "slashes", raw: "2025/09/10", want: bk.ErrFormat},
		{name: "empty", raw: "", want: bk.ErrFormat},
		{name: "month 13", raw: "2025-13-01", want: bk.ErrInvalidDate},
		{name: "month 0", raw: "2025-00-10", want: bk.ErrInvalidDate},
		{name: "day 0", raw: "2025-09-00", want: bk.ErrInvalidDate},
		{name: "february 30", raw: "2025-02-30", want: bk.ErrInvalidDate},
		{name: "non leap february 29", raw: "2026-02-29", want: bk.ErrInvalidDate},
		{name: "year zero", raw: "0000-09-10", want: bk.ErrInvalidDate},
		{name: "day before minimum", raw: "2025-09-01", want: bk.ErrTooEarly},
		{name: "previous year", raw: "2024-12-31", want: bk.ErrTooEarly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bk.ValidateDate(tt.raw, bk.DefaultMinBookingDate)

			require.ErrorIs(t, err, tt.want)
			require.Empty(t, got)
		})
	}

	t.Run("zero minimum disables lower bound", func(t *testing.T) {
		got, err := bk.ValidateDate("2020-01-01", time.Time{})

		require.NoError(t, err)
		require.Equal(t, "2020-01-01", got)
	})

	t.Run("year zero without lower bound", func(t *testing.T) {
		got, err := bk.ValidateDate("0000-09-10", time.Time{})

		require.ErrorIs(t, err, bk.ErrInvalidDate)
		require.Empty(t, got)
	})

	t.Run("minimum time of day is ignored", func(t *testing.T) {
		minDate := time.Date(2025, time.September, 2, 18, 30, 0, 0, time.UTC)

		got, err := bk.ValidateDate("2025-09-02", minDate)

		require.NoError(t, err)
		require.Equal(t, "2025-09-02", got)
	})
}

func TestValidateTime(t *testing.T) {

	t.Run("valid times", func(t *testing.T) {
		for _, raw := range []string{"00:00", "09:05", "12:30", "23:59"} {
			got, err := bk.ValidateTime(raw, "start_time")

			require.NoError(t, err, raw)
			require.Equal(t, raw, got)
		}
	})

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "single digit hour", raw: "9:00", want: bk.ErrFormat},
		{name: "single digit minute", raw: "12:0", want: bk.ErrFormat},
		{name: "letters", raw: "aa:bb", want: bk.ErrFormat},
		{name: "seconds", raw: "12:00:00", want: bk.ErrFormat},
		{name: "empty", raw: "", want: bk.ErrFormat},
		{name: "hour 24", raw: "24:00", want: bk.ErrRange},
		{name: "minute 60", raw: "12:60", want: bk.ErrRange},
		{name: "hour 99", raw: "99:99", want: bk.ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bk.ValidateTime(tt.raw, "end_time")

			require.ErrorIs(t, err, tt.want)
			require.Contains(t, err.Error(), "end_time")
			require.Empty(t, got)
		})
	}
}

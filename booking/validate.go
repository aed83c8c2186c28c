package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// DefaultMinBookingDate is the earliest date a booking may be made for.
var DefaultMinBookingDate = time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC)

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ValidateDate checks raw against YYYY-MM-DD, rejects impossible calendar
// dates and dates before minDate, and returns the canonical form. A zero
// minDate disables the lower bound.
func ValidateDate(raw string, minDate time.Time) (string, error) {
	if !dateRegex.MatchString(raw) {
		return "", fmt.Errorf("%w: date must be in 'YYYY-MM-DD' format, e.g. '2025-11-22'", ErrFormat)
	}

	year, _ := strconv.Atoi(raw[0:4])
	month, _ := strconv.Atoi(raw[5:7])
	day, _ := strconv.Atoi(raw[8:10])

	candidate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// time.Date normalizes overflow (2025-02-30 becomes 2025-03-02).
	if year < 1 || candidate.Year() != year || int(candidate.Month()) != month || candidate.Day() != day {
		return "", fmt.Errorf("%w: %q is not a calendar date", ErrInvalidDate, raw)
	}

	if !minDate.IsZero() {
		floor := time.Date(minDate.Year(), minDate.Month(), minDate.Day(), 0, 0, 0, 0, time.UTC)

		if candidate.Before(floor) {
			return "", fmt.Errorf("%w: booking date must be on or after %v", ErrTooEarly, floor.Format(DateFormat))
		}
	}

	return candidate.Format(DateFormat), nil
}

// ValidateTime checks raw against 24-hour HH:MM. Valid input is already
// canonical and is returned unchanged.
func ValidateTime(raw, field string) (string, error) {
	if !timeRegex.MatchString(raw) {
		return "", fmt.Errorf("%w: %v must be in 'HH:MM' format, e.g. '12:30'", ErrFormat, field)
	}

	hour, _ := strconv.Atoi(raw[0:2])
	minute, _ := strconv.Atoi(raw[3:5])

	if hour > 23 {
		return "", fmt.Errorf("%w: %v hour must be between 00 and 23", ErrRange, field)
	}

	if minute > 59 {
		return "", fmt.Errorf("%w: %v minutes must be between 00 and 59", ErrRange, field)
	}

	return raw, nil
}

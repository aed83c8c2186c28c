package booking

import (
	"strconv"
	"strings"
)

// ToMinutes converts HH:MM into minutes since midnight, or -1 when the
// value cannot be parsed.
func ToMinutes(hhmm string) int {
	hourStr, minuteStr, found := strings.Cut(hhmm, ":")

	if !found {
		return -1
	}

	hour, err := strconv.Atoi(hourStr)

	if err != nil {
		return -1
	}

	minute, err := strconv.Atoi(minuteStr)

	if err != nil {
		return -1
	}

	return hour*60 + minute
}

// HasConflict reports whether candidate overlaps any booking for the same
// facility and date. Intervals are half-open, so touching ends do not
// overlap. The booking sharing candidate's id is skipped. Cancelled bookings
// are not skipped: they keep holding their slot.
func HasConflict(candidate Booking, existing []Booking) bool {
	candidateStart := ToMinutes(candidate.StartTime)
	candidateEnd := ToMinutes(candidate.EndTime)

	if candidateStart < 0 || candidateEnd < 0 {
		return false
	}

	for _, other := range existing {
		if other.ID == candidate.ID {
			continue
		}

		if other.FacilityType != candidate.FacilityType || other.Date != candidate.Date {
			continue
		}

		start := ToMinutes(other.StartTime)
		end := ToMinutes(other.EndTime)

		if start < 0 || end < 0 {
			continue
		}

		if start < candidateEnd && candidateStart < end {
			return true
		}
	}

	return false
}

package booking

import "errors"

// Construction errors. Callers get them wrapped with the offending field.
var (
	ErrFormat = errors.New("invalid format")

	ErrInvalidDate = errors.New("invalid date value")

	ErrTooEarly = errors.New("booking date is before the earliest allowed date")

	ErrRange = errors.New("value out of range")

	ErrOrdering = errors.New("start_time must be earlier than end_time")

	ErrMissingField = errors.New("missing required field")

	ErrInvalidStatus = errors.New("invalid booking status")

	ErrUnknownFacility = errors.New("unknown facility")
)

var ErrBookingNotFound = errors.New("booking not found")

var ErrConflict = errors.New("this facility is already booked for the given time range")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

// ErrAlreadyCancelled is informational: the cancel was a no-op.
var ErrAlreadyCancelled = errors.New("booking is already cancelled")

// IsValidationError reports whether err was caused by malformed booking input.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrFormat,
		ErrInvalidDate,
		ErrTooEarly,
		ErrRange,
		ErrOrdering,
		ErrMissingField,
		ErrInvalidStatus,
		ErrUnknownFacility,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

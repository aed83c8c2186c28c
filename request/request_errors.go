package request

import "errors"

var (
	ErrMissingField = errors.New("missing required field")

	ErrUnknownType = errors.New("unknown request type")

	ErrInvalidStatus = errors.New("invalid request status")
)

var ErrRequestNotFound = errors.New("request not found")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

// IsValidationError reports whether err was caused by malformed request input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingField) || errors.Is(err, ErrUnknownType) || errors.Is(err, ErrInvalidStatus)
}

package session

import "errors"

var ErrMissingUsername = errors.New("username is required")

var ErrMissingUnit = errors.New("unit is required for residents")

var ErrUnknownRole = errors.New("role must be resident or admin")

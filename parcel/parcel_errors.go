package parcel

import "errors"

var ErrMissingField = errors.New("missing required field")

var ErrParcelNotFound = errors.New("package not found")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

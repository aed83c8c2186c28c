package announcement

import "errors"

var ErrMissingField = errors.New("missing required field")

var ErrAnnouncementNotFound = errors.New("announcement not found")

var ErrNotAllowed = errors.New("only admins may manage announcements")

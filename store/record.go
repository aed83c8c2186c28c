package store

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Collection keys, shared by the JSON document and the table names.
const (
	AmenityBookings = "amenity_bookings"
	Packages        = "packages"
	ServiceRequests = "service_requests"
	Announcements   = "announcements"
)

var ErrFieldType = errors.New("unexpected field type")

// Record is the flat form a domain value takes in a store.
type Record map[string]any

func String(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func Int(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrFieldType, v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrFieldType, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %T is not an integer", ErrFieldType, value)
	}
}

// Bool accepts booleans and the 0/1 integers older stores wrote.
func Bool(value any) (bool, error) {
	switch v := value.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("%w: %q is not a boolean", ErrFieldType, v)
		}
		return b, nil
	default:
		n, err := Int(value)
		if err != nil || (n != 0 && n != 1) {
			return false, fmt.Errorf("%w: %v is not a boolean", ErrFieldType, value)
		}
		return n == 1, nil
	}
}

func maxID(records []Record) int {
	highest := 0

	for _, rec := range records {
		if id, err := Int(rec["id"]); err == nil {
			highest = max(highest, id)
		}
	}

	return highest
}

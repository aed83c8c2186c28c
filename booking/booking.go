package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/hanksha/condo-amenity-hub/store"
)

type Status string

const (
	StatusBooked    Status = "Booked"
	StatusCancelled Status = "Cancelled"
)

// Booking is an amenity reservation. Values are only produced by NewBooking
// or FromRecord, so date and time fields are always valid.
type Booking struct {
	ID           int    `json:"id"`
	Unit         string `json:"unit"`
	FacilityType string `json:"facilityType"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Status       Status `json:"status"`
	CreatedBy    string `json:"createdBy"`
}

// Fields are the raw strings submitted by a booking form.
type Fields struct {
	Unit         string `json:"unit"`
	FacilityType string `json:"facilityType"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Status       string `json:"status"`
}

func NewBooking(id int, fields Fields, createdBy string, minDate time.Time) (Booking, error) {
	unit := strings.TrimSpace(fields.Unit)
	facility := strings.TrimSpace(fields.FacilityType)
	dateStr := strings.TrimSpace(fields.Date)
	startStr := strings.TrimSpace(fields.StartTime)
	endStr := strings.TrimSpace(fields.EndTime)

	required := []struct{ name, value string }{
		{"unit", unit},
		{"facility_type", facility},
		{"date", dateStr},
		{"start_time", startStr},
		{"end_time", endStr},
	}

	for _, field := range required {
		if len(field.value) == 0 {
			return Booking{}, fmt.Errorf("%w: %v", ErrMissingField, field.name)
		}
	}

	date, err := ValidateDate(dateStr, minDate)

	if err != nil {
		return Booking{}, err
	}

	start, err := ValidateTime(startStr, "start_time")

	if err != nil {
		return Booking{}, err
	}

	end, err := ValidateTime(endStr, "end_time")

	if err != nil {
		return Booking{}, err
	}

	if ToMinutes(start) >= ToMinutes(end) {
		return Booking{}, ErrOrdering
	}

	status, err := parseStatus(fields.Status)

	if err != nil {
		return Booking{}, err
	}

	return Booking{
		ID:           id,
		Unit:         unit,
		FacilityType: facility,
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		Status:       status,
		CreatedBy:    strings.TrimSpace(createdBy),
	}, nil
}

func (b Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

func parseStatus(raw string) (Status, error) {
	switch Status(strings.TrimSpace(raw)) {
	case "", StatusBooked:
		return StatusBooked, nil
	case StatusCancelled:
		return StatusCancelled, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
}

// Record is the flat form a booking takes in a record store.
type Record = store.Record

func (b Booking) ToRecord() Record {
	return Record{
		"id":            b.ID,
		"unit":          b.Unit,
		"facility_type": b.FacilityType,
		"date":          b.Date,
		"start_time":    b.StartTime,
		"end_time":      b.EndTime,
		"status":        string(b.Status),
		"created_by":    b.CreatedBy,
	}
}

// FromRecord rebuilds a stored booking. The earliest-date rule is not
// re-applied: it held when the record was written.
func FromRecord(rec Record) (Booking, error) {
	id, err := store.Int(rec["id"])

	if err != nil {
		return Booking{}, fmt.Errorf("%w: booking id: %w", ErrFormat, err)
	}

	fields := Fields{
		Unit:         store.String(rec["unit"]),
		FacilityType: store.String(rec["facility_type"]),
		Date:         store.String(rec["date"]),
		StartTime:    store.String(rec["start_time"]),
		EndTime:      store.String(rec["end_time"]),
		Status:       store.String(rec["status"]),
	}

	booking, err := NewBooking(id, fields, store.String(rec["created_by"]), time.Time{})

	if err != nil {
		return Booking{}, fmt.Errorf("invalid stored booking %v: %w", id, err)
	}

	return booking, nil
}

package parcel

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	bk "github.com/hanksha/condo-amenity-hub/booking"
	"github.com/hanksha/condo-amenity-hub/store"
)

// Parcel is a package delivered to the front desk for a unit.
type Parcel struct {
	ID          int    `json:"id"`
	Unit        string `json:"unit"`
	Carrier     string `json:"carrier"`
	ArrivalDate string `json:"arrivalDate"`
	PickedUp    bool   `json:"pickedUp"`
}

type Fields struct {
	Unit        string `json:"unit"`
	Carrier     string `json:"carrier"`
	ArrivalDate string `json:"arrivalDate"`
	PickedUp    bool   `json:"pickedUp"`
}

func NewParcel(id int, fields Fields) (Parcel, error) {
	unit := strings.TrimSpace(fields.Unit)
	carrier := strings.TrimSpace(fields.Carrier)
	dateStr := strings.TrimSpace(fields.ArrivalDate)

	required := []struct{ name, value string }{
		{"unit", unit},
		{"carrier", carrier},
		{"arrival_date", dateStr},
	}

	for _, field := range required {
		if len(field.value) == 0 {
			return Parcel{}, fmt.Errorf("%w: %v", ErrMissingField, field.name)
		}
	}

	// Arrival dates are recorded after the fact, so there is no lower bound.
	date, err := bk.ValidateDate(dateStr, time.Time{})

	if err != nil {
		return Parcel{}, err
	}

	return Parcel{
		ID:          id,
		Unit:        unit,
		Carrier:     carrier,
		ArrivalDate: date,
		PickedUp:    fields.PickedUp,
	}, nil
}

// IsValidationError reports whether err was caused by malformed package input.
func IsValidationError(err error) bool {
	return bk.IsValidationError(err) || errors.Is(err, ErrMissingField)
}

func (p Parcel) ToRecord() store.Record {
	return store.Record{
		"id":           p.ID,
		"unit":         p.Unit,
		"carrier":      p.Carrier,
		"arrival_date": p.ArrivalDate,
		"picked_up":    p.PickedUp,
	}
}

func FromRecord(rec store.Record) (Parcel, error) {
	id, err := store.Int(rec["id"])

	if err != nil {
		return Parcel{}, fmt.Errorf("package id: %w", err)
	}

	pickedUp, err := store.Bool(rec["picked_up"])

	if err != nil {
		return Parcel{}, fmt.Errorf("package %d picked_up: %w", id, err)
	}

	return NewParcel(id, Fields{
		Unit:        store.String(rec["unit"]),
		Carrier:     store.String(rec["carrier"]),
		ArrivalDate: store.String(rec["arrival_date"]),
		PickedUp:    pickedUp,
	})
}

// SortParcels puts the latest arrivals first.
func SortParcels(parcels []Parcel) {
	slices.SortFunc(parcels, func(a, b Parcel) int {
		return cmp.Or(
			strings.Compare(b.ArrivalDate, a.ArrivalDate),
			cmp.Compare(b.ID, a.ID),
		)
	})
}

func toRecords(parcels []Parcel) []store.Record {
	records := make([]store.Record, 0, len(parcels))

	for _, p := range parcels {
		records = append(records, p.ToRecord())
	}

	return records
}

func fromRecords(records []store.Record) ([]Parcel, error) {
	parcels := make([]Parcel, 0, len(records))

	for _, rec := range records {
		p, err := FromRecord(rec)

		if err != nil {
			return nil, err
		}

		parcels = append(parcels, p)
	}

	return parcels, nil
}

package booking

import (
	"context"

	"github.com/hanksha/condo-amenity-hub/store"
)

var bookingColumns = []string{"id", "unit", "facility_type", "date", "start_time", "end_time", "status", "created_by"}

// Repository stores bookings in PostgreSQL. ReplaceAllBookings leaves its
// transaction open until Persist commits it.
type Repository struct {
	table *store.Table
}

func NewRepository(db store.DB) *Repository {
	return &Repository{
		table: store.NewTable(db, store.AmenityBookings, bookingColumns, "date", "start_time", "id"),
	}
}

func (r *Repository) ListBookings(ctx context.Context) ([]Booking, error) {
	records, err := r.table.Select(ctx)

	if err != nil {
		return nil, err
	}

	return fromRecords(records)
}

func (r *Repository) ReplaceAllBookings(ctx context.Context, bookings []Booking) error {
	return r.table.Replace(ctx, toRecords(bookings))
}

func (r *Repository) Persist(ctx context.Context) error {
	return r.table.Commit(ctx)
}

func (r *Repository) NextID(ctx context.Context) (int, error) {
	return r.table.NextID(ctx)
}

func toRecords(bookings []Booking) []Record {
	records := make([]Record, 0, len(bookings))

	for _, b := range bookings {
		records = append(records, b.ToRecord())
	}

	return records
}

func fromRecords(records []Record) ([]Booking, error) {
	bookings := make([]Booking, 0, len(records))

	for _, rec := range records {
		booking, err := FromRecord(rec)

		if err != nil {
			return nil, err
		}

		bookings = append(bookings, booking)
	}

	return bookings, nil
}

package booking

import (
	"context"

	"github.com/hanksha/condo-amenity-hub/store"
)

// FileRepository keeps bookings in the amenity_bookings collection of the
// shared JSON document.
type FileRepository struct {
	file *store.File
}

// NewFileRepository checks that every stored booking is valid.
func NewFileRepository(file *store.File) (*FileRepository, error) {
	if _, err := fromRecords(file.Records(store.AmenityBookings)); err != nil {
		return nil, err
	}

	return &FileRepository{file: file}, nil
}

func (r *FileRepository) ListBookings(ctx context.Context) ([]Booking, error) {
	bookings, err := fromRecords(r.file.Records(store.AmenityBookings))

	if err != nil {
		return nil, err
	}

	SortBookings(bookings)

	return bookings, nil
}

func (r *FileRepository) ReplaceAllBookings(ctx context.Context, bookings []Booking) error {
	r.file.Stage(store.AmenityBookings, toRecords(bookings))
	return nil
}

func (r *FileRepository) NextID(ctx context.Context) (int, error) {
	return r.file.NextID(store.AmenityBookings), nil
}

func (r *FileRepository) Persist(ctx context.Context) error {
	return r.file.Commit(store.AmenityBookings)
}

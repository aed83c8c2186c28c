package parcel

import (
	"context"

	"github.com/hanksha/condo-amenity-hub/store"
)

// FileRepository keeps packages in the packages collection of the shared
// JSON document.
type FileRepository struct {
	file *store.File
}

func NewFileRepository(file *store.File) (*FileRepository, error) {
	if _, err := fromRecords(file.Records(store.Packages)); err != nil {
		return nil, err
	}

	return &FileRepository{file: file}, nil
}

func (r *FileRepository) ListParcels(ctx context.Context) ([]Parcel, error) {
	parcels, err := fromRecords(r.file.Records(store.Packages))

	if err != nil {
		return nil, err
	}

	SortParcels(parcels)

	return parcels, nil
}

func (r *FileRepository) ReplaceAllParcels(ctx context.Context, parcels []Parcel) error {
	r.file.Stage(store.Packages, toRecords(parcels))
	return nil
}

func (r *FileRepository) NextID(ctx context.Context) (int, error) {
	return r.file.NextID(store.Packages), nil
}

func (r *FileRepository) Persist(ctx context.Context) error {
	return r.file.Commit(store.Packages)
}

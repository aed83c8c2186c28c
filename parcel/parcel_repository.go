package parcel

import (
	"context"

	"github.com/hanksha/condo-amenity-hub/store"
)

var parcelColumns = []string{"id", "unit", "carrier", "arrival_date", "picked_up"}

type Repository struct {
	table *store.Table
}

func NewRepository(db store.DB) *Repository {
	return &Repository{
		table: store.NewTable(db, store.Packages, parcelColumns, "arrival_date DESC", "id DESC"),
	}
}

func (r *Repository) ListParcels(ctx context.Context) ([]Parcel, error) {
	records, err := r.table.Select(ctx)

	if err != nil {
		return nil, err
	}

	return fromRecords(records)
}

func (r *Repository) ReplaceAllParcels(ctx context.Context, parcels []Parcel) error {
	return r.table.Replace(ctx, toRecords(parcels))
}

func (r *Repository) Persist(ctx context.Context) error {
	return r.table.Commit(ctx)
}

func (r *Repository) NextID(ctx context.Context) (int, error) {
	return r.table.NextID(ctx)
}

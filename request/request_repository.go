package request

import (
	"context"

	"github.com/hanksha/condo-amenity-hub/store"
)

var requestColumns = []string{"id", "unit", "req_type", "description", "status", "created_by"}

type Repository struct {
	table *store.Table
}

func NewRepository(db store.DB) *Repository {
	return &Repository{
		table: store.NewTable(db, store.ServiceRequests, requestColumns, "id DESC"),
	}
}

func (r *Repository) ListRequests(ctx context.Context) ([]Request, error) {
	records, err := r.table.Select(ctx)

	if err != nil {
		return nil, err
	}

	return fromRecords(records)
}

func (r *Repository) ReplaceAllRequests(ctx context.Context, requests []Request) error {
	return r.table.Replace(ctx, toRecords(requests))
}

func (r *Repository) Persist(ctx context.Context) error {
	return r.table.Commit(ctx)
}

func (r *Repository) NextID(ctx context.Context) (int, error) {
	return r.table.NextID(ctx)
}

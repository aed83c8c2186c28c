package announcement

import (
	"context"

	"github.com/hanksha/condo-amenity-hub/store"
)

var announcementColumns = []string{"id", "title", "content", "created_at"}

type Repository struct {
	table *store.Table
}

func NewRepository(db store.DB) *Repository {
	return &Repository{
		table: store.NewTable(db, store.Announcements, announcementColumns, "id"),
	}
}

func (r *Repository) ListAnnouncements(ctx context.Context) ([]Announcement, error) {
	records, err := r.table.Select(ctx)

	if err != nil {
		return nil, err
	}

	return fromRecords(records)
}

func (r *Repository) ReplaceAllAnnouncements(ctx context.Context, announcements []Announcement) error {
	return r.table.Replace(ctx, toRecords(announcements))
}

func (r *Repository) Persist(ctx context.Context) error {
	return r.table.Commit(ctx)
}

func (r *Repository) NextID(ctx context.Context) (int, error) {
	return r.table.NextID(ctx)
}

package announcement

import (
	"context"

	"github.com/hanksha/condo-amenity-hub/store"
)

type FileRepository struct {
	file *store.File
}

func NewFileRepository(file *store.File) (*FileRepository, error) {
	if _, err := fromRecords(file.Records(store.Announcements)); err != nil {
		return nil, err
	}

	return &FileRepository{file: file}, nil
}

func (r *FileRepository) ListAnnouncements(ctx context.Context) ([]Announcement, error) {
	announcements, err := fromRecords(r.file.Records(store.Announcements))

	if err != nil {
		return nil, err
	}

	SortAnnouncements(announcements)

	return announcements, nil
}

func (r *FileRepository) ReplaceAllAnnouncements(ctx context.Context, announcements []Announcement) error {
	r.file.Stage(store.Announcements, toRecords(announcements))
	return nil
}

func (r *FileRepository) NextID(ctx context.Context) (int, error) {
	return r.file.NextID(store.Announcements), nil
}

func (r *FileRepository) Persist(ctx context.Context) error {
	return r.file.Commit(store.Announcements)
}

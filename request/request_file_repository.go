package request

import (
	"context"

	"github.com/hanksha/condo-amenity-hub/store"
)

type FileRepository struct {
	file *store.File
}

func NewFileRepository(file *store.File) (*FileRepository, error) {
	if _, err := fromRecords(file.Records(store.ServiceRequests)); err != nil {
		return nil, err
	}

	return &FileRepository{file: file}, nil
}

func (r *FileRepository) ListRequests(ctx context.Context) ([]Request, error) {
	requests, err := fromRecords(r.file.Records(store.ServiceRequests))

	if err != nil {
		return nil, err
	}

	SortRequests(requests)

	return requests, nil
}

func (r *FileRepository) ReplaceAllRequests(ctx context.Context, requests []Request) error {
	r.file.Stage(store.ServiceRequests, toRecords(requests))
	return nil
}

func (r *FileRepository) NextID(ctx context.Context) (int, error) {
	return r.file.NextID(store.ServiceRequests), nil
}

func (r *FileRepository) Persist(ctx context.Context) error {
	return r.file.Commit(store.ServiceRequests)
}

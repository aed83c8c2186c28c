package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/goccy/go-json"
)

const DefaultDataFile = "condo_data.json"

var collections = []string{AmenityBookings, Packages, ServiceRequests, Announcements}

// File keeps every collection in one JSON document. Staged records are kept
// apart from committed ones until Commit has rewritten the file.
type File struct {
	path      string
	mu        sync.Mutex
	committed map[string][]Record
	pending   map[string][]Record
}

func OpenFile(path string) (*File, error) {
	if path == "" {
		path = DefaultDataFile
	}

	f := &File{
		path:      path,
		committed: map[string][]Record{},
		pending:   map[string][]Record{},
	}

	for _, key := range collections {
		f.committed[key] = []Record{}
	}

	if err := f.load(); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *File) load() error {
	content, err := os.ReadFile(f.path)

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to read data file %v: %w", f.path, err)
	}

	if len(content) == 0 {
		return nil
	}

	var doc map[string][]Record

	if err := json.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("failed to decode data file %v: %w", f.path, err)
	}

	for key, records := range doc {
		if records == nil {
			records = []Record{}
		}
		f.committed[key] = records
	}

	return nil
}

// Records returns the committed records of a collection.
func (f *File) Records(key string) []Record {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.committed[key])
}

// Stage replaces the pending content of a collection. It is not visible
// through Records until Commit succeeds.
func (f *File) Stage(key string, records []Record) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pending[key] = append([]Record{}, records...)
}

// NextID is one more than the highest committed id, or 1 when empty.
func (f *File) NextID(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return maxID(f.committed[key]) + 1
}

// Commit writes the staged collection together with the committed content
// of the others. The staged records are dropped when the write fails.
func (f *File) Commit(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	staged, ok := f.pending[key]

	if !ok {
		return nil
	}

	delete(f.pending, key)

	doc := make(map[string][]Record, len(f.committed))

	for k, records := range f.committed {
		doc[k] = records
	}

	doc[key] = staged

	if err := f.write(doc); err != nil {
		return err
	}

	f.committed[key] = staged

	return nil
}

func (f *File) write(doc map[string][]Record) error {
	body, err := json.MarshalIndent(doc, "", "  ")

	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")

	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file: %w", err)
	}

	return nil
}

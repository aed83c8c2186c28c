package announcement

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hanksha/condo-amenity-hub/store"
)

const TimestampFormat = "2006-01-02 15:04"

type Announcement struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

type Fields struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func NewAnnouncement(id int, fields Fields, createdAt time.Time) (Announcement, error) {
	return build(id, fields, createdAt.Format(TimestampFormat))
}

func build(id int, fields Fields, createdAt string) (Announcement, error) {
	title := strings.TrimSpace(fields.Title)
	content := strings.TrimSpace(fields.Content)

	if len(title) == 0 {
		return Announcement{}, fmt.Errorf("%w: title", ErrMissingField)
	}

	if len(content) == 0 {
		return Announcement{}, fmt.Errorf("%w: content", ErrMissingField)
	}

	return Announcement{
		ID:        id,
		Title:     title,
		Content:   content,
		CreatedAt: createdAt,
	}, nil
}

func (a Announcement) ToRecord() store.Record {
	return store.Record{
		"id":         a.ID,
		"title":      a.Title,
		"content":    a.Content,
		"created_at": a.CreatedAt,
	}
}

// FromRecord keeps the stored timestamp as written.
func FromRecord(rec store.Record) (Announcement, error) {
	id, err := store.Int(rec["id"])

	if err != nil {
		return Announcement{}, fmt.Errorf("announcement id: %w", err)
	}

	return build(id, Fields{
		Title:   store.String(rec["title"]),
		Content: store.String(rec["content"]),
	}, store.String(rec["created_at"]))
}

func SortAnnouncements(announcements []Announcement) {
	slices.SortFunc(announcements, func(a, b Announcement) int { return cmp.Compare(a.ID, b.ID) })
}

func toRecords(announcements []Announcement) []store.Record {
	records := make([]store.Record, 0, len(announcements))

	for _, a := range announcements {
		records = append(records, a.ToRecord())
	}

	return records
}

func fromRecords(records []store.Record) ([]Announcement, error) {
	announcements := make([]Announcement, 0, len(records))

	for _, rec := range records {
		a, err := FromRecord(rec)

		if err != nil {
			return nil, err
		}

		announcements = append(announcements, a)
	}

	return announcements, nil
}

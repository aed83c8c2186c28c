package announcement_test

import (
	"testing"
	"time"

	"github.com/hanksha/condo-amenity-hub/announcement"
	"github.com/hanksha/condo-amenity-hub/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnnouncement(t *testing.T) {
	posted := time.Date(2025, 9, 3, 8, 30, 45, 0, time.UTC)

	a, err := announcement.NewAnnouncement(2, announcement.Fields{Title: " Pool ", Content: " Closed Friday "}, posted)
	require.NoError(t, err)
	assert.Equal(t, announcement.Announcement{ID: 2, Title: "Pool", Content: "Closed Friday", CreatedAt: "2025-09-03 08:30"}, a)

	_, err = announcement.NewAnnouncement(2, announcement.Fields{Content: "x"}, posted)
	require.ErrorIs(t, err, announcement.ErrMissingField)

	_, err = announcement.NewAnnouncement(2, announcement.Fields{Title: "x", Content: "\n"}, posted)
	require.ErrorIs(t, err, announcement.ErrMissingField)
}

func TestAnnouncementRecord(t *testing.T) {
	a := announcement.Announcement{ID: 1, Title: "Water shut-off", Content: "9am to noon", CreatedAt: "2025-09-01 07:00"}

	got, err := announcement.FromRecord(a.ToRecord())
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = announcement.FromRecord(store.Record{"id": 1.5, "title": "x", "content": "y"})
	require.ErrorIs(t, err, store.ErrFieldType)
}

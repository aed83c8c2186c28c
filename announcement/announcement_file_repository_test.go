package announcement_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/hanksha/condo-amenity-hub/announcement"
	"github.com/hanksha/condo-amenity-hub/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepository(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "condo_data.json")

	file, err := store.OpenFile(path)
	require.NoError(t, err)

	repo, err := announcement.NewFileRepository(file)
	require.NoError(t, err)

	svc := announcement.NewService(repo,
		announcement.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		announcement.WithClock(func() time.Time { return fixedNow }),
	)
	require.NoError(t, svc.Load(ctx))

	seeded, err := svc.EnsureDefault(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 1, seeded.ID)

	added, err := svc.AddAnnouncement(ctx, announcement.Fields{Title: "Fire drill", Content: "Thursday 10am"}, manager)
	require.NoError(t, err)
	assert.Equal(t, 2, added.ID)

	reopened, err := store.OpenFile(path)
	require.NoError(t, err)

	reloaded, err := announcement.NewFileRepository(reopened)
	require.NoError(t, err)

	announcements, err := reloaded.ListAnnouncements(ctx)
	require.NoError(t, err)
	assert.Equal(t, []announcement.Announcement{seeded, added}, announcements)
}

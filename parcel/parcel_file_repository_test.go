package parcel_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/hanksha/condo-amenity-hub/parcel"
	"github.com/hanksha/condo-amenity-hub/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("packages survive a reload", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "condo_data.json")
		file, err := store.OpenFile(path)
		require.NoError(t, err)

		repo, err := parcel.NewFileRepository(file)
		require.NoError(t, err)

		svc := parcel.NewService(repo, parcel.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
		require.NoError(t, svc.Load(ctx))

		first, err := svc.AddParcel(ctx, parcel.Fields{Unit: "101", Carrier: "UPS", ArrivalDate: "2025-09-10"}, manager)
		require.NoError(t, err)
		assert.Equal(t, 1, first.ID)

		second, err := svc.AddParcel(ctx, parcel.Fields{Unit: "202", Carrier: "FedEx", ArrivalDate: "2025-09-11"}, manager)
		require.NoError(t, err)
		assert.Equal(t, 2, second.ID)

		_, err = svc.MarkPickedUp(ctx, first.ID, alice)
		require.NoError(t, err)

		reopened, err := store.OpenFile(path)
		require.NoError(t, err)

		reloaded, err := parcel.NewFileRepository(reopened)
		require.NoError(t, err)

		parcels, err := reloaded.ListParcels(ctx)
		require.NoError(t, err)
		require.Len(t, parcels, 2)
		assert.Equal(t, second, parcels[0])
		assert.True(t, parcels[1].PickedUp)
	})

	t.Run("invalid stored package", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "condo_data.json")
		doc := `{"packages":[{"id":1,"unit":"101","carrier":"UPS","arrival_date":"2025-13-01","picked_up":false}]}`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

		file, err := store.OpenFile(path)
		require.NoError(t, err)

		_, err = parcel.NewFileRepository(file)
		require.Error(t, err)
	})
}

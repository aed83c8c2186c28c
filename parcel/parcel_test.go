package parcel_test

import (
	"testing"

	bk "github.com/hanksha/condo-amenity-hub/booking"
	"github.com/hanksha/condo-amenity-hub/parcel"
	"github.com/hanksha/condo-amenity-hub/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParcel(t *testing.T) {
	t.Run("trims fields", func(t *testing.T) {
		p, err := parcel.NewParcel(3, parcel.Fields{Unit: " 101 ", Carrier: " UPS ", ArrivalDate: " 2024-01-05 "})

		require.NoError(t, err)
		assert.Equal(t, parcel.Parcel{ID: 3, Unit: "101", Carrier: "UPS", ArrivalDate: "2024-01-05"}, p)
	})

	tests := []struct {
		name   string
		fields parcel.Fields
		want   error
	}{
		{name: "missing unit", fields: parcel.Fields{Carrier: "UPS", ArrivalDate: "2025-09-10"}, want: parcel.ErrMissingField},
		{name: "missing carrier", fields: parcel.Fields{Unit: "101", ArrivalDate: "2025-09-10"}, want: parcel.ErrMissingField},
		{name: "missing date", fields: parcel.Fields{Unit: "101", Carrier: "UPS"}, want: parcel.ErrMissingField},
		{name: "bad format", fields: parcel.Fields{Unit: "101", Carrier: "UPS", ArrivalDate: "10/09/2025"}, want: bk.ErrFormat},
		{name: "not a calendar date", fields: parcel.Fields{Unit: "101", Carrier: "UPS", ArrivalDate: "2025-02-30"}, want: bk.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := parcel.NewParcel(1, tt.fields)

			require.ErrorIs(t, err, tt.want)
			assert.True(t, parcel.IsValidationError(err))
			assert.Zero(t, p)
		})
	}
}

func TestParcelRecord(t *testing.T) {
	p := parcel.Parcel{ID: 2, Unit: "202", Carrier: "FedEx", ArrivalDate: "2025-09-11", PickedUp: true}

	got, err := parcel.FromRecord(p.ToRecord())
	require.NoError(t, err)
	assert.Equal(t, p, got)

	legacy := store.Record{"id": float64(5), "unit": "303", "carrier": "DHL", "arrival_date": "2025-09-12", "picked_up": float64(1)}

	got, err = parcel.FromRecord(legacy)
	require.NoError(t, err)
	assert.True(t, got.PickedUp)
	assert.Equal(t, 5, got.ID)

	_, err = parcel.FromRecord(store.Record{"id": "x"})
	require.ErrorIs(t, err, store.ErrFieldType)
}

func TestSortParcels(t *testing.T) {
	parcels := []parcel.Parcel{
		{ID: 1, ArrivalDate: "2025-09-10"},
		{ID: 3, ArrivalDate: "2025-09-09"},
		{ID: 2, ArrivalDate: "2025-09-10"},
	}

	parcel.SortParcels(parcels)

	assert.Equal(t, []int{2, 1, 3}, []int{parcels[0].ID, parcels[1].ID, parcels[2].ID})
}

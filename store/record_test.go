package store_test

import (
	"testing"
	"time"

	"github.com/hanksha/condo-amenity-hub/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{name: "int", value: 7, want: 7},
		{name: "int32", value: int32(7), want: 7},
		{name: "int64", value: int64(7), want: 7},
		{name: "json number", value: float64(7), want: 7},
		{name: "numeric string", value: " 7 ", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Int(tt.value)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, value := range []any{7.5, "seven", nil, true} {
		_, err := store.Int(value)
		assert.ErrorIs(t, err, store.ErrFieldType, "%v", value)
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		value any
		want  bool
	}{
		{value: nil, want: false},
		{value: true, want: true},
		{value: "false", want: false},
		{value: float64(1), want: true},
		{value: int64(0), want: false},
	}

	for _, tt := range tests {
		got, err := store.Bool(tt.value)

		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v", tt.value)
	}

	_, err := store.Bool(2)
	assert.ErrorIs(t, err, store.ErrFieldType)
}

func TestString(t *testing.T) {
	assert.Equal(t, "", store.String(nil))
	assert.Equal(t, "101", store.String("101"))
	assert.Equal(t, "101", store.String(101))
	assert.Equal(t, "1h0m0s", store.String(time.Hour))
}

package booking_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	bk "github.com/hanksha/condo-amenity-hub/booking"
	"github.com/stretchr/testify/assert"
)

func TestResidentNotice(t *testing.T) {
	tests := []struct {
		name     string
		change   bk.Change
		notified bool
	}{
		{"admin create", bk.Change{Op: bk.OpCreate, Booking: bookingA, Actor: manager}, true},
		{"admin edit", bk.Change{Op: bk.OpEdit, Booking: bookingA, Actor: manager}, true},
		{"admin cancel", bk.Change{Op: bk.OpCancel, Booking: bookingA, Actor: manager}, false},
		{"admin delete", bk.Change{Op: bk.OpDelete, Booking: bookingA, Actor: manager}, false},
		{"resident create", bk.Change{Op: bk.OpCreate, Booking: bookingA, Actor: alice}, false},
		{"load", bk.Change{Op: bk.OpLoad}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			notice := bk.NewResidentNotice(slog.New(slog.NewTextHandler(&buf, nil)))

			notice.BookingsChanged(context.Background(), tt.change)

			if tt.notified {
				assert.Contains(t, buf.String(), "resident notified")
				assert.Contains(t, buf.String(), "unit=101")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

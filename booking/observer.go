package booking

import (
	"context"

	"github.com/hanksha/condo-amenity-hub/session"
)

type Op string

const (
	OpLoad   Op = "load"
	OpCreate Op = "create"
	OpEdit   Op = "edit"
	OpCancel Op = "cancel"
	OpDelete Op = "delete"
)

// Change describes the booking collection after a successful operation.
// Booking is the affected booking; it is zero for OpLoad.
type Change struct {
	Op       Op
	Booking  Booking
	Actor    session.User
	Bookings []Booking
}

type ChangeObserver interface {
	BookingsChanged(ctx context.Context, change Change)
}

type Observers []ChangeObserver

func (o Observers) BookingsChanged(ctx context.Context, change Change) {
	for _, observer := range o {
		observer.BookingsChanged(ctx, change)
	}
}

package booking

import (
	"context"
	"log/slog"
)

// ResidentNotice acknowledges that the resident of a unit was notified when
// an admin creates or edits their booking. Nothing is delivered.
type ResidentNotice struct {
	logger *slog.Logger
}

func NewResidentNotice(logger *slog.Logger) *ResidentNotice {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResidentNotice{logger: logger.With("component", "resident-notice")}
}

func (n *ResidentNotice) BookingsChanged(ctx context.Context, change Change) {
	if !change.Actor.Admin {
		return
	}

	if change.Op != OpCreate && change.Op != OpEdit {
		return
	}

	n.logger.InfoContext(ctx, "resident notified",
		"unit", change.Booking.Unit,
		"bookingID", change.Booking.ID,
		"op", change.Op,
	)
}

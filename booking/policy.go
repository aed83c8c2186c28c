package booking

import (
	"fmt"
	"strings"

	"github.com/hanksha/condo-amenity-hub/session"
)

type Action int

const (
	ActionEdit Action = iota
	ActionCancel
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionEdit:
		return "edit"
	case ActionCancel:
		return "cancel"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// DeletePolicy decides which residents may delete a booking. Admins always may.
type DeletePolicy string

const (
	// DeleteOwnUnit lets residents delete bookings made for their own unit.
	DeleteOwnUnit DeletePolicy = "own-unit"
	// DeleteAdminOnly reserves deletion to admins.
	DeleteAdminOnly DeletePolicy = "admin-only"
)

func ParseDeletePolicy(raw string) (DeletePolicy, error) {
	switch policy := DeletePolicy(strings.ToLower(strings.TrimSpace(raw))); policy {
	case "":
		return DeleteOwnUnit, nil
	case DeleteOwnUnit, DeleteAdminOnly:
		return policy, nil
	default:
		return "", fmt.Errorf("unknown delete policy %q", raw)
	}
}

type Policy struct {
	Delete DeletePolicy
}

func DefaultPolicy() Policy {
	return Policy{Delete: DeleteOwnUnit}
}

// CanModify is the single permission check for every booking mutation.
func (p Policy) CanModify(user session.User, booking Booking, action Action) bool {
	if user.Admin {
		return true
	}

	switch action {
	case ActionEdit, ActionCancel:
		return len(user.Username) != 0 && booking.CreatedBy == user.Username
	case ActionDelete:
		if p.Delete == DeleteAdminOnly {
			return false
		}
		return len(user.Unit) != 0 && booking.Unit == user.Unit
	default:
		return false
	}
}

package booking

import (
	"net/http"
	"time"

	"github.com/peershare/item-sharing-backend/internal/pkg/apperror"
)

var (
	// ErrNotFound is also returned when a booking exists but the requester
	// is neither the booker nor the item's owner, so outsiders cannot tell
	// the two cases apart.
	ErrNotFound = apperror.New(http.StatusNotFound, "booking not found")
	// ErrActionNotAllowed covers an owner booking their own item and a
	// booker deciding their own booking. Reported as 404 per the public
	// API contract.
	ErrActionNotAllowed = apperror.New(http.StatusNotFound, "action not allowed for this user")
	ErrAlreadyApproved  = apperror.New(http.StatusBadRequest, "booking is already approved")
	ErrUserMismatch     = apperror.New(http.StatusNotFound, "user is not allowed to change the status of the booking")
	ErrItemUnavailable  = apperror.New(http.StatusBadRequest, "item is unavailable for booking")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "end date must be after start date")
	ErrStartTimePast    = apperror.New(http.StatusBadRequest, "start date must not be in the past")
)

// Status is the lifecycle state of a booking. A booking is created WAITING
// and moves to APPROVED or REJECTED exactly once; both are terminal.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Booking is a reservation request for an item over a time window.
// ItemName and ItemOwnerID are denormalized from the joined item row.
type Booking struct {
	ID          int64
	Start       time.Time
	End         time.Time
	Status      Status
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
	BookerID    int64
}

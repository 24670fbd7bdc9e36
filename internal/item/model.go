package item

import (
	"net/http"
	"time"

	"github.com/peershare/item-sharing-backend/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.New(http.StatusNotFound, "item not found")
	// ErrUserMismatch reports an attempt to change an item that belongs to
	// another user. Reported as 404 so the caller cannot probe foreign
	// items.
	ErrUserMismatch      = apperror.New(http.StatusNotFound, "item belongs to another user")
	ErrCommentNotAllowed = apperror.New(http.StatusBadRequest, "only a past booker may comment on the item")
)

// Item is a shareable object listed by its owner. RequestID links the item
// to the item request it answers; zero means the item was listed
// spontaneously.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   int64
}

// Patch enumerates the fields a PATCH request may change. Nil fields are
// left untouched.
type Patch struct {
	Name        *string
	Description *string
	Available   *bool
}

// BookingDetails is the slice of a booking shown on item views.
type BookingDetails struct {
	ID       int64     `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	BookerID int64     `json:"bookerId"`
}

// Comment is feedback left by a past booker of the item.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

// View is an item enriched with display-oriented fields: the last and next
// booking relative to the request time (owner only) and the item's
// comments.
type View struct {
	Item
	LastBooking *BookingDetails
	NextBooking *BookingDetails
	Comments    []Comment
}

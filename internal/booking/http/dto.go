package http

import (
	"time"

	"github.com/peershare/item-sharing-backend/internal/booking"
)

type CreateBookingBody struct {
	ItemID int64     `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// Validate performs the transport-level checks on a new booking request:
// the window must be forward and must not start in the past.
func (b *CreateBookingBody) Validate() error {
	if !b.End.After(b.Start) {
		return booking.ErrInvalidTimeRange
	}
	if b.Start.Before(time.Now()) {
		return booking.ErrStartTimePast
	}
	return nil
}

type BookingResponse struct {
	ID     int64          `json:"id"`
	ItemID int64          `json:"itemId"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Item   ItemTag        `json:"item"`
	Booker BookerTag      `json:"booker"`
	Status booking.Status `json:"status"`
}

type ItemTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookerTag struct {
	ID int64 `json:"id"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
		Item:   ItemTag{ID: b.ItemID, Name: b.ItemName},
		Booker: BookerTag{ID: b.BookerID},
		Status: b.Status,
	}
}

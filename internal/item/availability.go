package item

import "time"

// LastBooking returns the item's most recently finished booking, or nil.
//
// The input must be ordered by start descending; the first entry whose end
// lies before now wins. The scan depends on that order, not on which end
// time is closest to now, and callers expect exactly this selection.
func LastBooking(now time.Time, bookings []BookingDetails) *BookingDetails {
	for i := range bookings {
		if bookings[i].End.Before(now) {
			return &bookings[i]
		}
	}
	return nil
}

// NextBooking returns the item's upcoming booking, or nil.
//
// Same contract as LastBooking: the list is scanned in start-descending
// order and the first entry whose end lies after now wins, even when a
// later entry starts sooner.
func NextBooking(now time.Time, bookings []BookingDetails) *BookingDetails {
	for i := range bookings {
		if bookings[i].End.After(now) {
			return &bookings[i]
		}
	}
	return nil
}

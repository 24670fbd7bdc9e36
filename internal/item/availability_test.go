package item

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastAndNextBooking(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	past := BookingDetails{
		ID:       1,
		Start:    now.Add(-2 * time.Hour),
		End:      now.Add(-time.Hour),
		BookerID: 5,
	}
	future := BookingDetails{
		ID:       2,
		Start:    now.Add(time.Hour),
		End:      now.Add(2 * time.Hour),
		BookerID: 6,
	}
	farFuture := BookingDetails{
		ID:       3,
		Start:    now.Add(24 * time.Hour),
		End:      now.Add(25 * time.Hour),
		BookerID: 7,
	}

	t.Run("empty_list", func(t *testing.T) {
		assert.Nil(t, LastBooking(now, nil))
		assert.Nil(t, NextBooking(now, nil))
	})

	t.Run("past_and_future", func(t *testing.T) {
		// Start-descending order, as the projection query returns them.
		bookings := []BookingDetails{future, past}

		last := LastBooking(now, bookings)
		require.NotNil(t, last)
		assert.Equal(t, past.ID, last.ID)

		next := NextBooking(now, bookings)
		require.NotNil(t, next)
		assert.Equal(t, future.ID, next.ID)
	})

	t.Run("next_is_first_match_in_scan_order", func(t *testing.T) {
		// Both bookings end after now; the scan picks the one listed
		// first, which has the latest start, not the soonest.
		bookings := []BookingDetails{farFuture, future}

		next := NextBooking(now, bookings)
		require.NotNil(t, next)
		assert.Equal(t, farFuture.ID, next.ID)
	})

	t.Run("only_future", func(t *testing.T) {
		bookings := []BookingDetails{future}
		assert.Nil(t, LastBooking(now, bookings))
		require.NotNil(t, NextBooking(now, bookings))
	})

	t.Run("only_past", func(t *testing.T) {
		bookings := []BookingDetails{past}
		require.NotNil(t, LastBooking(now, bookings))
		assert.Nil(t, NextBooking(now, bookings))
	})

	t.Run("ongoing_booking_counts_as_next", func(t *testing.T) {
		ongoing := BookingDetails{
			ID:       4,
			Start:    now.Add(-30 * time.Minute),
			End:      now.Add(30 * time.Minute),
			BookerID: 8,
		}
		bookings := []BookingDetails{ongoing}

		// It has not ended yet, so it is not "last" but it is "next".
		assert.Nil(t, LastBooking(now, bookings))
		next := NextBooking(now, bookings)
		require.NotNil(t, next)
		assert.Equal(t, ongoing.ID, next.ID)
	})
}

package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peershare/item-sharing-backend/internal/booking"
	bookingHttp "github.com/peershare/item-sharing-backend/internal/booking/http"
	itemHttp "github.com/peershare/item-sharing-backend/internal/item/http"
)

func TestBookingLifecycle(t *testing.T) {
	clearTables()

	owner := createTestUser(t, "Owner", "owner@bookings.io")
	booker := createTestUser(t, "Booker", "booker@bookings.io")
	stranger := createTestUser(t, "Stranger", "stranger@bookings.io")

	avail := true
	notAvail := false

	var drillID, ladderID int64
	var bookingID int64

	t.Run("Setup Items", func(t *testing.T) {
		w := executeRequest("POST", "/items", itemHttp.CreateItemBody{
			Name: "Drill", Description: "Cordless drill", Available: &avail,
		}, owner.ID)
		require.Equal(t, http.StatusCreated, w.Code)
		var drill itemHttp.ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &drill))
		drillID = drill.ID

		w = executeRequest("POST", "/items", itemHttp.CreateItemBody{
			Name: "Ladder", Description: "Step ladder", Available: &notAvail,
		}, owner.ID)
		require.Equal(t, http.StatusCreated, w.Code)
		var ladder itemHttp.ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ladder))
		ladderID = ladder.ID
	})

	start := time.Now().Add(time.Hour).Truncate(time.Second)
	end := start.Add(time.Hour)

	t.Run("Create Booking: Start In The Past", func(t *testing.T) {
		w := executeRequest("POST", "/bookings", bookingHttp.CreateBookingBody{
			ItemID: drillID,
			Start:  time.Now().Add(-time.Hour),
			End:    end,
		}, booker.ID)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Create Booking: Inverted Window", func(t *testing.T) {
		w := executeRequest("POST", "/bookings", bookingHttp.CreateBookingBody{
			ItemID: drillID,
			Start:  end,
			End:    start,
		}, booker.ID)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Create Booking: Unavailable Item", func(t *testing.T) {
		w := executeRequest("POST", "/bookings", bookingHttp.CreateBookingBody{
			ItemID: ladderID,
			Start:  start,
			End:    end,
		}, booker.ID)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Create Booking: Owner Books Own Item", func(t *testing.T) {
		w := executeRequest("POST", "/bookings", bookingHttp.CreateBookingBody{
			ItemID: drillID,
			Start:  start,
			End:    end,
		}, owner.ID)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Create Booking: Success", func(t *testing.T) {
		w := executeRequest("POST", "/bookings", bookingHttp.CreateBookingBody{
			ItemID: drillID,
			Start:  start,
			End:    end,
		}, booker.ID)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp bookingHttp.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, booking.StatusWaiting, resp.Status)
		assert.Equal(t, drillID, resp.Item.ID)
		assert.Equal(t, "Drill", resp.Item.Name)
		assert.Equal(t, booker.ID, resp.Booker.ID)
		bookingID = resp.ID
	})

	t.Run("Get Booking: Parties Only", func(t *testing.T) {
		w := executeRequest("GET", fmt.Sprintf("/bookings/%d", bookingID), nil, booker.ID)
		assert.Equal(t, http.StatusOK, w.Code)

		w = executeRequest("GET", fmt.Sprintf("/bookings/%d", bookingID), nil, owner.ID)
		assert.Equal(t, http.StatusOK, w.Code)

		w = executeRequest("GET", fmt.Sprintf("/bookings/%d", bookingID), nil, stranger.ID)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Approve: Booker Cannot Decide", func(t *testing.T) {
		w := executeRequest("PATCH", fmt.Sprintf("/bookings/%d?approved=true", bookingID), nil, booker.ID)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Approve: Stranger Cannot Decide", func(t *testing.T) {
		w := executeRequest("PATCH", fmt.Sprintf("/bookings/%d?approved=true", bookingID), nil, stranger.ID)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Approve: Owner Approves", func(t *testing.T) {
		w := executeRequest("PATCH", fmt.Sprintf("/bookings/%d?approved=true", bookingID), nil, owner.ID)
		require.Equal(t, http.StatusOK, w.Code)

		var resp bookingHttp.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, booking.StatusApproved, resp.Status)
	})

	t.Run("Approve: Second Decision Rejected", func(t *testing.T) {
		w := executeRequest("PATCH", fmt.Sprintf("/bookings/%d?approved=false", bookingID), nil, owner.ID)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("List By Booker: States", func(t *testing.T) {
		for _, tc := range []struct {
			state string
			count int
		}{
			{state: "ALL", count: 1},
			{state: "FUTURE", count: 1},
			{state: "future", count: 1},
			{state: "PAST", count: 0},
			{state: "WAITING", count: 0},
			{state: "REJECTED", count: 0},
		} {
			w := executeRequest("GET", "/bookings?state="+tc.state, nil, booker.ID)
			require.Equal(t, http.StatusOK, w.Code, "state %s", tc.state)

			var resp []bookingHttp.BookingResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Len(t, resp, tc.count, "state %s", tc.state)
		}
	})

	t.Run("List By Booker: Unsupported State", func(t *testing.T) {
		w := executeRequest("GET", "/bookings?state=SOMETHING", nil, booker.ID)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unknown state: UNSUPPORTED_STATUS")
	})

	t.Run("List By Owner", func(t *testing.T) {
		w := executeRequest("GET", "/bookings/owner", nil, owner.ID)
		require.Equal(t, http.StatusOK, w.Code)

		var resp []bookingHttp.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, bookingID, resp[0].ID)
	})

	t.Run("List By Owner: No Items", func(t *testing.T) {
		w := executeRequest("GET", "/bookings/owner", nil, booker.ID)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("List: Unknown User", func(t *testing.T) {
		w := executeRequest("GET", "/bookings", nil, 999999)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("List: Invalid Page", func(t *testing.T) {
		w := executeRequest("GET", "/bookings?from=-1&size=5", nil, booker.ID)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peershare/item-sharing-backend/internal/booking"
	itemHttp "github.com/peershare/item-sharing-backend/internal/item/http"
)

func TestItemEndpoints(t *testing.T) {
	clearTables()

	owner := createTestUser(t, "Owner", "owner@items.io")
	other := createTestUser(t, "Other", "other@items.io")

	var drillID int64
	avail := true

	t.Run("Create Item", func(t *testing.T) {
		w := executeRequest("POST", "/items", itemHttp.CreateItemBody{
			Name:        "Drill",
			Description: "Cordless drill",
			Available:   &avail,
		}, owner.ID)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp itemHttp.ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotZero(t, resp.ID)
		assert.True(t, resp.Available)
		drillID = resp.ID
	})

	t.Run("Create Item: Missing Identity Header", func(t *testing.T) {
		w := executeRequest("POST", "/items", itemHttp.CreateItemBody{
			Name:        "Saw",
			Description: "Hand saw",
			Available:   &avail,
		}, 0)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Create Item: Unknown Owner", func(t *testing.T) {
		w := executeRequest("POST", "/items", itemHttp.CreateItemBody{
			Name:        "Saw",
			Description: "Hand saw",
			Available:   &avail,
		}, 999999)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Create Item: Missing Availability", func(t *testing.T) {
		w := executeRequest("POST", "/items", map[string]any{
			"name":        "Saw",
			"description": "Hand saw",
		}, owner.ID)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Patch Item: Non-Owner Rejected", func(t *testing.T) {
		w := executeRequest("PATCH", fmt.Sprintf("/items/%d", drillID), map[string]any{
			"name": "Stolen drill",
		}, other.ID)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Patch Item: Owner Updates", func(t *testing.T) {
		w := executeRequest("PATCH", fmt.Sprintf("/items/%d", drillID), map[string]any{
			"description": "Cordless hammer drill",
		}, owner.ID)
		require.Equal(t, http.StatusOK, w.Code)

		var resp itemHttp.ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Cordless hammer drill", resp.Description)
		assert.Equal(t, "Drill", resp.Name)
	})

	t.Run("Search Items", func(t *testing.T) {
		w := executeRequest("GET", "/items/search?text=hAmMeR", nil, other.ID)
		require.Equal(t, http.StatusOK, w.Code)

		var resp []itemHttp.ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, drillID, resp[0].ID)
	})

	t.Run("Search Items: Blank Text", func(t *testing.T) {
		w := executeRequest("GET", "/items/search?text=", nil, other.ID)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("Search Items: Invalid Page", func(t *testing.T) {
		w := executeRequest("GET", "/items/search?text=drill&from=-1&size=2", nil, other.ID)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Comment: Without Finished Booking", func(t *testing.T) {
		w := executeRequest("POST", fmt.Sprintf("/items/%d/comment", drillID), itemHttp.CreateCommentBody{
			Text: "never borrowed it",
		}, other.ID)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Comment: After Finished Booking", func(t *testing.T) {
		// Seed a finished approved booking directly.
		repo := booking.NewPgxRepository(testPool)
		now := time.Now()
		err := repo.Create(context.Background(), &booking.Booking{
			Start:    now.Add(-2 * time.Hour),
			End:      now.Add(-time.Hour),
			Status:   booking.StatusApproved,
			ItemID:   drillID,
			BookerID: other.ID,
		})
		require.NoError(t, err)

		w := executeRequest("POST", fmt.Sprintf("/items/%d/comment", drillID), itemHttp.CreateCommentBody{
			Text: "works great",
		}, other.ID)
		require.Equal(t, http.StatusOK, w.Code)

		var resp itemHttp.CommentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "works great", resp.Text)
		assert.Equal(t, "Other", resp.AuthorName)
	})

	t.Run("Get Item: Owner Sees Booking Details", func(t *testing.T) {
		w := executeRequest("GET", fmt.Sprintf("/items/%d", drillID), nil, owner.ID)
		require.Equal(t, http.StatusOK, w.Code)

		var resp itemHttp.ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.LastBooking)
		assert.Equal(t, other.ID, resp.LastBooking.BookerID)
		require.Len(t, resp.Comments, 1)
	})

	t.Run("Get Item: Non-Owner Sees No Booking Details", func(t *testing.T) {
		w := executeRequest("GET", fmt.Sprintf("/items/%d", drillID), nil, other.ID)
		require.Equal(t, http.StatusOK, w.Code)

		var resp itemHttp.ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Nil(t, resp.LastBooking)
		assert.Nil(t, resp.NextBooking)
		require.Len(t, resp.Comments, 1)
	})

	t.Run("List Own Items", func(t *testing.T) {
		w := executeRequest("GET", "/items", nil, owner.ID)
		require.Equal(t, http.StatusOK, w.Code)

		var resp []itemHttp.ItemResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.NotNil(t, resp[0].LastBooking)
	})
}

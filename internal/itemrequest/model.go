package itemrequest

import (
	"net/http"
	"time"

	"github.com/peershare/item-sharing-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "item request not found")

// ItemRequest is a wish published by a user looking for an item to borrow.
// Owners can later list items referencing the request.
type ItemRequest struct {
	ID          int64
	Description string
	RequestorID int64
	Created     time.Time
	Items       []ItemBrief
}

// ItemBrief holds minimal item info for request views.
type ItemBrief struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   int64  `json:"requestId"`
}

package http

import (
	"time"

	"github.com/peershare/item-sharing-backend/internal/itemrequest"
)

type CreateRequestBody struct {
	Description string `json:"description" binding:"required"`
}

type RequestResponse struct {
	ID          int64                   `json:"id"`
	Description string                  `json:"description"`
	Created     time.Time               `json:"created"`
	Items       []itemrequest.ItemBrief `json:"items"`
}

func NewRequestResponse(req *itemrequest.ItemRequest) RequestResponse {
	items := req.Items
	if items == nil {
		items = make([]itemrequest.ItemBrief, 0)
	}

	return RequestResponse{
		ID:          req.ID,
		Description: req.Description,
		Created:     req.Created,
		Items:       items,
	}
}

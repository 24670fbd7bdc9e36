package http

import (
	"time"

	"github.com/peershare/item-sharing-backend/internal/item"
)

type CreateItemBody struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   int64  `json:"requestId"`
}

type PatchItemBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateCommentBody struct {
	Text string `json:"text" binding:"required"`
}

type ItemResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Available   bool                 `json:"available"`
	RequestID   int64                `json:"requestId,omitempty"`
	LastBooking *item.BookingDetails `json:"lastBooking"`
	NextBooking *item.BookingDetails `json:"nextBooking"`
	Comments    []CommentResponse    `json:"comments"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func NewCommentResponse(c item.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    c.Created,
	}
}

func NewItemResponse(i *item.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		RequestID:   i.RequestID,
		Comments:    make([]CommentResponse, 0),
	}
}

func NewItemViewResponse(v *item.View) ItemResponse {
	resp := NewItemResponse(&v.Item)
	resp.LastBooking = v.LastBooking
	resp.NextBooking = v.NextBooking
	for _, c := range v.Comments {
		resp.Comments = append(resp.Comments, NewCommentResponse(c))
	}
	return resp
}

package booking

import (
	"context"
	"time"

	"github.com/peershare/item-sharing-backend/internal/item"
	"github.com/peershare/item-sharing-backend/internal/pkg/request"
	"github.com/peershare/item-sharing-backend/internal/user"
)

// CreateRequest carries the fields of a new booking request.
type CreateRequest struct {
	BookerID int64
	ItemID   int64
	Start    time.Time
	End      time.Time
}

// Service owns the booking lifecycle: creation, the owner's
// approve/reject decision, access-controlled retrieval and the state
// filtered listings.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	ApproveOrReject(ctx context.Context, bookingID int64, approved bool, userID int64) (*Booking, error)
	GetByID(ctx context.Context, bookingID, userID int64) (*Booking, error)
	// ListByBooker and ListByOwner return bookings ordered by start
	// descending; page may be nil for the unpaged variant.
	ListByBooker(ctx context.Context, state string, bookerID int64, page *request.PageParams) ([]*Booking, error)
	ListByOwner(ctx context.Context, state string, ownerID int64, page *request.PageParams) ([]*Booking, error)
}

type service struct {
	repo        Repository
	userService user.Service
	itemService item.Service
}

// NewService creates a new booking Service.
func NewService(repo Repository, userService user.Service, itemService item.Service) Service {
	return &service{
		repo:        repo,
		userService: userService,
		itemService: itemService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// Nothing may be persisted with an inverted or empty window, even
	// though the transport layer validates it too.
	if !req.End.After(req.Start) {
		return nil, ErrInvalidTimeRange
	}

	booker, err := s.userService.GetByID(ctx, req.BookerID)
	if err != nil {
		return nil, err
	}

	i, err := s.itemService.Get(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if i.OwnerID == booker.ID {
		return nil, ErrActionNotAllowed
	}

	if !i.Available {
		return nil, ErrItemUnavailable
	}

	b := &Booking{
		Start:       req.Start,
		End:         req.End,
		Status:      StatusWaiting,
		ItemID:      i.ID,
		ItemName:    i.Name,
		ItemOwnerID: i.OwnerID,
		BookerID:    booker.ID,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) ApproveOrReject(ctx context.Context, bookingID int64, approved bool, userID int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.BookerID == userID {
		return nil, ErrActionNotAllowed
	}

	// APPROVED is terminal; the already-approved guard fires before the
	// ownership check, matching the established API behavior.
	if b.Status == StatusApproved {
		return nil, ErrAlreadyApproved
	}

	if b.ItemOwnerID != userID {
		return nil, ErrUserMismatch
	}

	if approved {
		b.Status = StatusApproved
	} else {
		b.Status = StatusRejected
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, bookingID, userID int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Only the two parties of the booking may see it; everyone else gets
	// the same answer as for a nonexistent booking.
	if b.BookerID != userID && b.ItemOwnerID != userID {
		return nil, ErrNotFound
	}

	return b, nil
}

func (s *service) ListByBooker(ctx context.Context, state string, bookerID int64, page *request.PageParams) ([]*Booking, error) {
	booker, err := s.userService.GetByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}

	return s.list(ctx, state, Filter{BookerID: booker.ID}, page)
}

func (s *service) ListByOwner(ctx context.Context, state string, ownerID int64, page *request.PageParams) ([]*Booking, error) {
	owner, err := s.userService.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return s.list(ctx, state, Filter{OwnerID: owner.ID}, page)
}

func (s *service) list(ctx context.Context, state string, filter Filter, page *request.PageParams) ([]*Booking, error) {
	parsed, err := ParseState(state)
	if err != nil {
		return nil, err
	}

	switch parsed {
	case StatePast:
		filter.Frame = FramePast
	case StateFuture:
		filter.Frame = FrameFuture
	case StateCurrent:
		filter.Frame = FrameCurrent
	case StateWaiting:
		filter.Status = StatusWaiting
	case StateRejected:
		filter.Status = StatusRejected
	}

	if page != nil {
		if err := page.Validate(); err != nil {
			return nil, err
		}
		filter.Limit = page.Size
		filter.Offset = page.Offset()
	}

	return s.repo.List(ctx, filter)
}

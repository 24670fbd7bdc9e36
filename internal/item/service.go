package item

import (
	"context"
	"strings"
	"time"

	"github.com/peershare/item-sharing-backend/internal/itemrequest"
	"github.com/peershare/item-sharing-backend/internal/pkg/request"
	"github.com/peershare/item-sharing-backend/internal/user"
)

// CreateRequest carries the fields of a new item listing.
type CreateRequest struct {
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   int64
}

// Service defines business logic related to items.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Item, error)
	// Get returns the bare item without display enrichment.
	Get(ctx context.Context, id int64) (*Item, error)
	// GetView returns the item enriched with last/next booking and
	// comments. Booking details are only visible when userID is the
	// item's owner.
	GetView(ctx context.Context, userID, itemID int64) (*View, error)
	ListByOwner(ctx context.Context, ownerID int64, page *request.PageParams) ([]*View, error)
	Patch(ctx context.Context, itemID, userID int64, patch Patch) (*Item, error)
	Search(ctx context.Context, text string, page *request.PageParams) ([]*Item, error)
	CreateComment(ctx context.Context, authorID, itemID int64, text string) (*Comment, error)
}

type service struct {
	repo           Repository
	userService    user.Service
	requestService itemrequest.Service
}

// NewService creates a new item Service.
func NewService(repo Repository, userService user.Service, requestService itemrequest.Service) Service {
	return &service{
		repo:           repo,
		userService:    userService,
		requestService: requestService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Item, error) {
	owner, err := s.userService.GetByID(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	if req.RequestID != 0 {
		if _, err := s.requestService.GetByID(ctx, req.OwnerID, req.RequestID); err != nil {
			return nil, err
		}
	}

	i := &Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		OwnerID:     owner.ID,
		RequestID:   req.RequestID,
	}

	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}

	return i, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetView(ctx context.Context, userID, itemID int64) (*View, error) {
	i, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	// The booking projection is scoped to item+owner, so a non-owner
	// requester gets an empty list and no last/next booking.
	bookings, err := s.repo.ListBookingDetails(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.ListComments(ctx, itemID)
	if err != nil {
		return nil, err
	}

	return newView(*i, time.Now(), bookings, comments), nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64, page *request.PageParams) ([]*View, error) {
	limit, offset := 0, 0
	if page != nil {
		if err := page.Validate(); err != nil {
			return nil, err
		}
		limit, offset = page.Size, page.Offset()
	}

	items, err := s.repo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]*View, 0, len(items))
	for _, i := range items {
		bookings, err := s.repo.ListBookingDetails(ctx, i.ID, ownerID)
		if err != nil {
			return nil, err
		}

		// The owner's item list carries only the owner's own comments.
		comments, err := s.repo.ListCommentsByAuthor(ctx, ownerID, i.ID)
		if err != nil {
			return nil, err
		}

		views = append(views, newView(*i, now, bookings, comments))
	}

	return views, nil
}

func (s *service) Patch(ctx context.Context, itemID, userID int64, patch Patch) (*Item, error) {
	i, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if i.OwnerID != userID {
		return nil, ErrUserMismatch
	}

	if patch.Name != nil {
		i.Name = *patch.Name
	}
	if patch.Description != nil {
		i.Description = *patch.Description
	}
	if patch.Available != nil {
		i.Available = *patch.Available
	}

	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}

	return i, nil
}

func (s *service) Search(ctx context.Context, text string, page *request.PageParams) ([]*Item, error) {
	limit, offset := 0, 0
	if page != nil {
		if err := page.Validate(); err != nil {
			return nil, err
		}
		limit, offset = page.Size, page.Offset()
	}

	if strings.TrimSpace(text) == "" {
		return []*Item{}, nil
	}

	return s.repo.Search(ctx, text, limit, offset)
}

func (s *service) CreateComment(ctx context.Context, authorID, itemID int64, text string) (*Comment, error) {
	author, err := s.userService.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	finished, err := s.repo.HasFinishedBooking(ctx, authorID, itemID, time.Now())
	if err != nil {
		return nil, err
	}
	if !finished {
		return nil, ErrCommentNotAllowed
	}

	c := &Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
	}

	if err := s.repo.CreateComment(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func newView(i Item, now time.Time, bookings []BookingDetails, comments []Comment) *View {
	return &View{
		Item:        i,
		LastBooking: LastBooking(now, bookings),
		NextBooking: NextBooking(now, bookings),
		Comments:    comments,
	}
}

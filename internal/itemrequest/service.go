package itemrequest

import (
	"context"

	"github.com/peershare/item-sharing-backend/internal/pkg/request"
	"github.com/peershare/item-sharing-backend/internal/user"
)

// Service defines business logic related to item requests.
type Service interface {
	Create(ctx context.Context, userID int64, description string) (*ItemRequest, error)
	GetByID(ctx context.Context, userID, requestID int64) (*ItemRequest, error)
	ListOwn(ctx context.Context, userID int64) ([]*ItemRequest, error)
	// ListAll returns other users' requests; page may be nil for the
	// unpaged variant.
	ListAll(ctx context.Context, userID int64, page *request.PageParams) ([]*ItemRequest, error)
}

type service struct {
	repo        Repository
	userService user.Service
}

// NewService creates a new item request Service.
func NewService(repo Repository, userService user.Service) Service {
	return &service{
		repo:        repo,
		userService: userService,
	}
}

func (s *service) Create(ctx context.Context, userID int64, description string) (*ItemRequest, error) {
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	req := &ItemRequest{
		Description: description,
		RequestorID: userID,
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

func (s *service) GetByID(ctx context.Context, userID, requestID int64) (*ItemRequest, error) {
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, requestID)
}

func (s *service) ListOwn(ctx context.Context, userID int64) ([]*ItemRequest, error) {
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.repo.ListByRequestor(ctx, userID)
}

func (s *service) ListAll(ctx context.Context, userID int64, page *request.PageParams) ([]*ItemRequest, error) {
	if page == nil {
		return s.repo.ListByOtherUsers(ctx, userID, 0, 0)
	}

	if err := page.Validate(); err != nil {
		return nil, err
	}

	return s.repo.ListByOtherUsers(ctx, userID, page.Size, page.Offset())
}

package user

import (
	"net/http"

	"github.com/peershare/item-sharing-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyExists = apperror.New(http.StatusConflict, "email address already exists")
)

// User represents a registered participant of the sharing platform. A user
// may own items, request them, and book items owned by others.
type User struct {
	ID    int64
	Name  string
	Email string
}

// Patch enumerates the fields a PATCH request may change. Nil fields are
// left untouched. Keeping the set explicit avoids updating arbitrary
// columns by name.
type Patch struct {
	Name  *string
	Email *string
}

package request

import (
	"net/http"

	"github.com/peershare/item-sharing-backend/internal/pkg/apperror"
)

// ErrInvalidPageableParameters rejects malformed from/size query parameters.
var ErrInvalidPageableParameters = apperror.New(http.StatusBadRequest, "Invalid pageable parameters")

// PageParams carries the raw from/size pagination parameters of a list
// request. Pages are counted in multiples of size: the effective page
// index is from / size, not a row offset. Clients rely on that
// convention, so it is kept as-is.
type PageParams struct {
	From int
	Size int
}

// Validate checks the raw parameters: from must be non-negative and size
// strictly positive.
func (p PageParams) Validate() error {
	if p.From < 0 || p.Size <= 0 {
		return ErrInvalidPageableParameters
	}
	return nil
}

// Index returns the derived zero-based page index (from / size).
func (p PageParams) Index() int {
	return p.From / p.Size
}

// Offset returns the row offset the derived page starts at.
func (p PageParams) Offset() int {
	return p.Index() * p.Size
}

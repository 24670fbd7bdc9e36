package request

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageFromQuery reads the optional from/size query parameters. It returns
// nil when either parameter is absent, which selects the unpaged variant of
// a listing. Values are only parsed here; range validation happens in the
// services via PageParams.Validate.
func PageFromQuery(c *gin.Context) (*PageParams, error) {
	fromStr := c.Query("from")
	sizeStr := c.Query("size")
	if fromStr == "" || sizeStr == "" {
		return nil, nil
	}

	from, err := strconv.Atoi(fromStr)
	if err != nil {
		return nil, ErrInvalidPageableParameters
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		return nil, ErrInvalidPageableParameters
	}

	return &PageParams{From: from, Size: size}, nil
}

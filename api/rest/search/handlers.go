package search

import (
	"context"
	"errors"
	"net/http"
	"time"

	apierrors "codeberg.org/voltshop/server/internal/errors"
	"codeberg.org/voltshop/server/internal/retriever"
	"github.com/gin-gonic/gin"
)

// upper bound on embedding + similarity query for one request
const requestTimeout = 30 * time.Second

// interface for product search, satisfied by retriever.Client
type ProductSearcher interface {
	SearchProducts(ctx context.Context, queryText string) ([]retriever.ProductResult, error)
}

// Handler godoc
// @Summary Semantic product search
// @Description Rank catalog products by semantic similarity to a free-text query
// @Tags search
// @Accept json
// @Produce json
// @Param request body Request true "Search request"
// @Success 200 {object} Response
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 500 {object} apierrors.ErrorResponse
// @Router /api/v1/search [post]
func Handler(searcher ProductSearcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		results, err := searcher.SearchProducts(ctx, req.Query)

		switch {
		case errors.Is(err, retriever.ErrEmptyQuery):
			apierrors.BadRequest(c, "invalid or missing 'query' field", err)
			return

		case errors.Is(err, context.DeadlineExceeded):
			apierrors.Timeout(c, "search timed out")
			return

		case err != nil:
			apierrors.InternalError(c, "failed to perform semantic search", err)
			return
		}

		// zero matches is a success, not an error; keep the array non-null
		if results == nil {
			results = []retriever.ProductResult{}
		}

		c.JSON(http.StatusOK, Response{Results: results})
	}
}

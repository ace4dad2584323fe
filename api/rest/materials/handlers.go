package materials

import (
	"context"
	"errors"
	"net/http"
	"time"

	apierrors "codeberg.org/voltshop/server/internal/errors"
	"codeberg.org/voltshop/server/internal/retriever"
	"github.com/gin-gonic/gin"
)

const requestTimeout = 30 * time.Second

// interface for material search, satisfied by retriever.Client
type MaterialSearcher interface {
	SearchMaterials(ctx context.Context, queryText string) ([]retriever.MaterialResult, error)
}

// Handler godoc
// @Summary Match electrical materials
// @Description Rank catalog materials by semantic similarity to a work description
// @Tags materials
// @Accept json
// @Produce json
// @Param request body Request true "Match request"
// @Success 200 {object} Response
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 500 {object} apierrors.ErrorResponse
// @Router /api/v1/materials/search [post]
func Handler(searcher MaterialSearcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		results, err := searcher.SearchMaterials(ctx, req.Query)

		switch {
		case errors.Is(err, retriever.ErrEmptyQuery):
			apierrors.BadRequest(c, "invalid query", err)
			return

		case errors.Is(err, context.DeadlineExceeded):
			apierrors.Timeout(c, "material match timed out")
			return

		case err != nil:
			apierrors.InternalError(c, "failed to match materials", err)
			return
		}

		if results == nil {
			results = []retriever.MaterialResult{}
		}

		c.JSON(http.StatusOK, Response{Results: results})
	}
}

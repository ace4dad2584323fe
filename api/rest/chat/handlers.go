package chat

import (
	"context"
	"errors"
	"net/http"
	"time"

	"codeberg.org/voltshop/server/internal/assistant"
	apierrors "codeberg.org/voltshop/server/internal/errors"
	"codeberg.org/voltshop/server/internal/llm"
	"codeberg.org/voltshop/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// upper bound on retrieval + model streaming for one chat turn
const requestTimeout = 30 * time.Second

// interface for streamed chat turns, satisfied by assistant.Assistant
type Chatter interface {
	ChatStream(ctx context.Context, messages []llm.Message, onDelta func(text string) error) error
}

// Handler godoc
// @Summary Shopping assistant chat turn
// @Description Stream a retrieval-augmented assistant reply as chunked plain text
// @Tags chat
// @Accept json
// @Produce text/plain
// @Param request body Request true "Conversation so far"
// @Success 200 {string} string "streamed reply"
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 500 {object} apierrors.ErrorResponse
// @Router /api/v1/chat [post]
func Handler(chatter Chatter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		// chunked relay: flush every fragment so the client renders the
		// reply as it is generated
		started := false
		err := chatter.ChatStream(ctx, req.Messages, func(text string) error {
			if !started {
				c.Header("Content-Type", "text/plain; charset=utf-8")
				c.Header("Cache-Control", "no-cache")
				c.Status(http.StatusOK)
				started = true
			}

			if _, err := c.Writer.WriteString(text); err != nil {
				return err
			}

			c.Writer.Flush()
			return nil
		})

		if err == nil {
			return
		}

		if started {
			// headers are gone; the truncated stream is all we can signal
			logger.ErrorErr(err, "chat stream aborted mid-reply")
			return
		}

		switch {
		case errors.Is(err, assistant.ErrNoUserMessage):
			apierrors.BadRequest(c, "conversation must contain a user message", err)

		case errors.Is(err, context.DeadlineExceeded):
			apierrors.Timeout(c, "chat turn timed out")

		default:
			apierrors.InternalError(c, "failed to generate assistant reply", err)
		}
	}
}

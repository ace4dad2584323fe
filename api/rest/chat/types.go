package chat

import "codeberg.org/voltshop/server/internal/llm"

// Request represents the request body for a chat turn
type Request struct {
	Messages []llm.Message `json:"messages" binding:"required,min=1"`
}

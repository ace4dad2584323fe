package assistant

import (
	"context"
	"strings"

	"codeberg.org/voltshop/server/internal/llm"
	"codeberg.org/voltshop/server/internal/logger"
	"codeberg.org/voltshop/server/internal/retriever"
)

// ChatStream runs one retrieval-augmented conversation turn and streams
// the reply through onDelta. The latest user message drives product
// retrieval; a retrieval failure downgrades the turn to an empty product
// context instead of aborting it, so the conversation always answers.
func (a *Assistant) ChatStream(ctx context.Context, messages []llm.Message, onDelta func(text string) error) error {
	userQuery := latestUserText(messages)
	if userQuery == "" {
		return ErrNoUserMessage
	}

	products, err := a.retriever.SearchProducts(ctx, userQuery)
	if err != nil {
		logger.Warn("product retrieval failed, continuing with empty context", "error", err)
		products = nil
	}

	return a.generator.StreamText(ctx, llm.TextGenerationRequest{
		SystemPrompt: buildSystemPrompt(BuildProductContext(products)),
		Messages:     sanitizeHistory(messages),
	}, onDelta)
}

// returns the text of the most recent user message
func latestUserText(messages []llm.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return strings.TrimSpace(messages[i].Content)
		}
	}

	return ""
}

// drops messages with empty content; model APIs reject them
func sanitizeHistory(messages []llm.Message) []llm.Message {
	filtered := make([]llm.Message, 0, len(messages))

	for _, msg := range messages {
		if strings.TrimSpace(msg.Content) == "" {
			continue
		}

		filtered = append(filtered, msg)
	}

	return filtered
}

// compile-time check that the concrete retriever satisfies the interface
var _ ProductRetriever = (*retriever.Client)(nil)

package assistant

import (
	"context"
	"errors"

	"codeberg.org/voltshop/server/internal/llm"
	"codeberg.org/voltshop/server/internal/retriever"
)

// the conversation contained no user message to answer
var ErrNoUserMessage = errors.New("conversation has no user message")

// interface for product retrieval, satisfied by retriever.Client
type ProductRetriever interface {
	SearchProducts(ctx context.Context, queryText string) ([]retriever.ProductResult, error)
}

// Assistant orchestrates retrieval-augmented chat turns: it grounds the
// shopping conversation in the products most relevant to the latest
// user message and streams the model's reply.
type Assistant struct {
	retriever ProductRetriever
	generator llm.TextGenerator
}

func New(ret ProductRetriever, generator llm.TextGenerator) *Assistant {
	return &Assistant{
		retriever: ret,
		generator: generator,
	}
}

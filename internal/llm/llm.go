package llm

import (
	"fmt"

	"codeberg.org/voltshop/server/internal/config"
)

// combines an Embedder and a TextGenerator into a single client
type CompositeLLM struct {
	Embedder
	TextGenerator
}

// creates a new LLM client from the process-wide configuration
func New(cfg *config.Config) (*CompositeLLM, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	embedder := NewOpenAIEmbedder(OpenAIConfig{
		APIKey: cfg.OpenAIKey,
		Model:  cfg.EmbeddingModel,
	})

	generator := NewAnthropicGenerator(AnthropicConfig{
		APIKey: cfg.AnthropicKey,
		Model:  cfg.ChatModel,
	})

	return &CompositeLLM{
		Embedder:      embedder,
		TextGenerator: generator,
	}, nil
}

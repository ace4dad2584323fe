package llm

import "context"

// represents different model providers
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// generates embeddings from text
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// generates conversational text, optionally streamed
type TextGenerator interface {
	Model() string
	GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error)
	StreamText(ctx context.Context, req TextGenerationRequest, onDelta func(text string) error) error
}

// represents a single conversation turn
type Message struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // message content
}

// contains all inputs for a text generation call
type TextGenerationRequest struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int
}

// contains generated text and usage metadata
type TextGenerationResponse struct {
	Text  string
	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

// holds configuration for LLM client initialization
type Config struct {
	// embedder configuration
	EmbedderAPIKey string
	EmbedderModel  string // e.g., "text-embedding-3-small"

	// generator configuration
	GeneratorAPIKey      string
	GeneratorModel       string // e.g., "claude-3-5-haiku-20241022"
	GeneratorMaxTokens   int
	GeneratorTemperature float32
}

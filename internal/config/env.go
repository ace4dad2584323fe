package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultEmbeddingModel = "text-embedding-3-small"
	defaultChatModel      = "claude-3-5-haiku-20241022"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	databaseURL := os.Getenv("DATABASE_URL")
	environment := os.Getenv("ENVIRONMENT")

	if openaiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	if anthropicKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
	}

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	embeddingModel := os.Getenv("EMBEDDING_MODEL")
	if embeddingModel == "" {
		embeddingModel = defaultEmbeddingModel
	}

	chatModel := os.Getenv("CHAT_MODEL")
	if chatModel == "" {
		chatModel = defaultChatModel
	}

	return &Config{
		OpenAIKey:      openaiKey,
		AnthropicKey:   anthropicKey,
		DatabaseURL:    databaseURL,
		EmbeddingModel: embeddingModel,
		ChatModel:      chatModel,
		Environment:    environment,
	}, nil
}

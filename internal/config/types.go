package config

type Config struct {
	OpenAIKey      string
	AnthropicKey   string
	DatabaseURL    string
	EmbeddingModel string
	ChatModel      string
	Environment    string
}

type Flags struct {
	Path  string
	Clear bool
}

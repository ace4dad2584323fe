package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timeout for chat requests; the server streams for up to 30s
const chatRequestTimeout = 45 * time.Second

// manages HTTP requests to the chat REST API
type ChatClient struct {
	endpoint   string
	httpClient *http.Client
}

// creates a new chat REST client
func NewChatClient() *ChatClient {
	endpoint := os.Getenv("VOLTSHOP_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &ChatClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: chatRequestTimeout,
		},
	}
}

// sends the conversation and collects the streamed reply. The server
// streams chunked plain text; the TUI only relays it, so reading the
// body to completion is all the protocol there is.
func (c *ChatClient) Chat(ctx context.Context, conversation []ChatMessage) (string, error) {
	// drop empty messages; the model API rejects them
	filtered := make([]ChatMessage, 0, len(conversation))
	for _, msg := range conversation {
		if msg.Content != "" {
			filtered = append(filtered, msg)
		}
	}

	payloadBytes, err := json.Marshal(chatRequest{Messages: filtered})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/chat", c.endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp chatErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return "", fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}
		return "", fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return string(body), nil
}

// returns a tea.Cmd that runs one chat turn
func (c *ChatClient) ChatCmd(conversation []ChatMessage) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chatRequestTimeout)
		defer cancel()

		reply, err := c.Chat(ctx, conversation)
		if err != nil {
			return ChatErrorMsg{err: err}
		}

		return ChatResponseMsg{reply: reply}
	}
}

// REST API request/response types

type chatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

type chatErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

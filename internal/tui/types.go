package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// represents a chat message in the conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// main TUI application model
type Model struct {
	input           textinput.Model
	viewport        viewport.Model
	spinner         spinner.Model
	glamourRenderer *glamour.TermRenderer
	client          *ChatClient
	conversation    []ChatMessage
	width           int
	height          int
	isFetching      bool
	ready           bool
	err             error
}

// sent when the assistant finishes a reply
type ChatResponseMsg struct {
	reply string
}

// sent when a chat request fails
type ChatErrorMsg struct {
	err error
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

func NewApp() *Model {
	input := textinput.New()
	input.Placeholder = "Ask about products..."
	input.Focus()
	input.CharLimit = 500

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &Model{
		input:   input,
		spinner: spin,
		client:  NewChatClient(),
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case ChatResponseMsg:
		m.isFetching = false
		m.conversation = append(m.conversation, ChatMessage{Role: "assistant", Content: msg.reply})
		m.refreshViewport()
		return m, nil

	case ChatErrorMsg:
		m.isFetching = false
		m.err = msg.err
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		if m.isFetching {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	var inputCmd, viewportCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.viewport, viewportCmd = m.viewport.Update(msg)

	return m, tea.Batch(inputCmd, viewportCmd)
}

func (m *Model) View() string {
	if !m.ready {
		return "\n  loading..."
	}

	var builder strings.Builder

	builder.WriteString(titleStyle.Render("voltshop assistant"))
	builder.WriteString("\n")
	builder.WriteString(m.viewport.View())
	builder.WriteString("\n")

	if m.isFetching {
		builder.WriteString(infoStyle.Render(m.spinner.View() + " thinking..."))
	} else {
		builder.WriteString(promptStyle.Render("> ") + m.input.View())
	}

	builder.WriteString(helpStyle.Render("\nenter: send • esc: quit"))

	return builder.String()
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.input.Value())

	if query == "" || m.isFetching {
		return m, nil
	}

	m.err = nil
	m.conversation = append(m.conversation, ChatMessage{Role: "user", Content: query})
	m.input.Reset()
	m.isFetching = true
	m.refreshViewport()

	return m, tea.Batch(m.spinner.Tick, m.client.ChatCmd(m.conversation))
}

func (m *Model) resize() {
	viewportHeight := m.height - 8
	if viewportHeight < 3 {
		viewportHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = viewportHeight
	}

	// renderer width tracks the terminal so markdown wraps correctly
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.width-4),
	)
	if err == nil {
		m.glamourRenderer = renderer
	}

	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	var builder strings.Builder

	if len(m.conversation) == 0 {
		builder.WriteString(banner)
		builder.WriteString(infoStyle.Render("\n  Ask about anything in the catalog.\n"))
	}

	for _, msg := range m.conversation {
		if msg.Role == "user" {
			builder.WriteString(userLabelStyle.Render("you"))
			builder.WriteString("\n")
			builder.WriteString(msg.Content)
			builder.WriteString("\n\n")
			continue
		}

		builder.WriteString(assistantLabelStyle.Render("assistant"))
		builder.WriteString("\n")
		builder.WriteString(m.renderMarkdown(msg.Content))
		builder.WriteString("\n")
	}

	if m.err != nil {
		builder.WriteString(errorStyle.Render(fmt.Sprintf("error: %v\n", m.err)))
	}

	m.viewport.SetContent(builder.String())
	m.viewport.GotoBottom()
}

func (m *Model) renderMarkdown(content string) string {
	if m.glamourRenderer == nil {
		return content
	}

	rendered, err := m.glamourRenderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}

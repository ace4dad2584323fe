package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/voltshop/server/internal/tui"
)

func main() {
	app := tui.NewApp()

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running chat client: %v\n", err)
		os.Exit(1)
	}
}

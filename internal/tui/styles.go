package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorAmber     = lipgloss.Color("#FFB000")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAmber).
			MarginTop(1).
			MarginBottom(1)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorAmber).
				Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorLightGray)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)
)

const banner = `
  ██╗   ██╗ ██████╗ ██╗  ████████╗███████╗██╗  ██╗ ██████╗ ██████╗
  ██║   ██║██╔═══██╗██║  ╚══██╔══╝██╔════╝██║  ██║██╔═══██╗██╔══██╗
  ██║   ██║██║   ██║██║     ██║   ███████╗███████║██║   ██║██████╔╝
  ╚██╗ ██╔╝██║   ██║██║     ██║   ╚════██║██╔══██║██║   ██║██╔═══╝
   ╚████╔╝ ╚██████╔╝███████╗██║   ███████║██║  ██║╚██████╔╝██║
    ╚═══╝   ╚═════╝ ╚══════╝╚═╝   ╚══════╝╚═╝  ╚═╝ ╚═════╝ ╚═╝
`

package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette
var (
	salmonPink  = lipgloss.Color("#FFB3BA") // Primary accent
	coralPink   = lipgloss.Color("#FFCCCB") // Echoed commands
	mintGreen   = lipgloss.Color("#A8E6CF") // Answers
	mutedGray   = lipgloss.Color("#6B7280") // Secondary text
	brightWhite = lipgloss.Color("#F9FAFB")
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true)

	commandStyle = lipgloss.NewStyle().
			Foreground(coralPink).
			Bold(true)

	outputStyle = lipgloss.NewStyle().
			Foreground(brightWhite)

	exitStyle = lipgloss.NewStyle().
			Foreground(mintGreen)

	toolbarStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Italic(true).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(salmonPink).
			Padding(0, 1)
)

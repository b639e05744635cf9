package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
const (
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	Red     = "#FF6188" // Errors
	Orange  = "#FC9867" // Warnings
	Yellow  = "#FFD866" // Highlights
	Green   = "#A9DC76" // Success
	Cyan    = "#78DCE8" // Info
	Magenta = "#FF6188" // Titles

	Comment = "#727072" // Dim text
	Border  = "#5B595C" // Separators
)

// Common styles
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)

	// Tree dump styles
	HeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Cyan))
	MarkerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow))
	MetaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment)).Italic(true)

	NormalTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Foreground))
)

package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, study-friendly
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F97316") // Orange
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Critical = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	Warn = lipgloss.NewStyle().
		Foreground(Warning)
)

// DifficultyStyle returns the style for a difficulty label.
func DifficultyStyle(label string) lipgloss.Style {
	switch label {
	case "Easy":
		return lipgloss.NewStyle().Foreground(Success)
	case "Medium":
		return lipgloss.NewStyle().Foreground(Accent)
	case "Hard":
		return lipgloss.NewStyle().Foreground(Error)
	default:
		return Body
	}
}

package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette. Chalkboard greens with a warm accent for the active field.
var (
	Primary   = lipgloss.Color("#4ADE80") // Chalk green
	Secondary = lipgloss.Color("#38BDF8") // Sky
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F87171")
	Text      = lipgloss.Color("#F1F5F9")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1F2937")
	Border    = lipgloss.Color("#374151")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(Accent).
		Italic(true)
)

// Menu states
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Worksheet cells
var (
	// Given is the printed problem: divisor, dividend and bracket.
	Given = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	// Rule draws the bracket and the subtraction underlines.
	Rule = lipgloss.NewStyle().
		Foreground(TextDim)

	// Empty is an unanswered field.
	Empty = lipgloss.NewStyle().
		Foreground(Border)

	// Focused is the field receiving keystrokes.
	Focused = lipgloss.NewStyle().
		Foreground(BgCard).
		Background(Accent).
		Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true).
			Underline(true)

	// Mistake lists error counts outside the worksheet.
	Mistake = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 3)
)

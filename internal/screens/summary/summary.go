package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/longdiv/internal/division"
	"github.com/abhisek/longdiv/internal/router"
	"github.com/abhisek/longdiv/internal/screen"
	"github.com/abhisek/longdiv/internal/session"
	"github.com/abhisek/longdiv/internal/ui/layout"
	"github.com/abhisek/longdiv/internal/ui/theme"
)

// SummaryScreen shows how a solved problem went.
type SummaryScreen struct {
	summary session.Summary
	next    func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. next builds the screen Enter moves on to;
// when nil, Enter returns to the menu.
func New(sum session.Summary, next func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: sum, next: next}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Problem Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next problem"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "n":
		if s.next == nil {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		next := s.next()
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(style lipgloss.Style, text string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text))
	}

	var b strings.Builder

	p := sum.Problem
	answer := fmt.Sprintf("%d ÷ %d = %d", p.Dividend, p.Divisor, p.Quotient)
	if p.Remainder > 0 {
		answer += fmt.Sprintf(" R %d", p.Remainder)
	}
	b.WriteString(center(theme.Title, "Problem solved!"))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Given, answer))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(theme.Subtitle, fmt.Sprintf("Time: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Fields: %d      Answers: %d      Accuracy: %.0f%%",
		sum.FieldCount, sum.Submissions, sum.Accuracy*100)
	b.WriteString(center(theme.Body, stats))
	b.WriteString("\n\n")

	if sum.Mistakes == 0 {
		b.WriteString(center(theme.Correct, "No mistakes. Every step right the first time."))
		return b.String()
	}

	divider := strings.Repeat("─", max(min(width-8, 40), 0))
	b.WriteString(center(theme.Subtitle, "Mistakes"))
	b.WriteString("\n")
	b.WriteString(center(theme.Rule, divider))
	b.WriteString("\n")
	for _, f := range division.FieldTypes {
		n := sum.MistakesByField[f]
		if n == 0 {
			continue
		}
		b.WriteString(center(theme.Mistake, fmt.Sprintf("%-12s %d", fieldName(f), n)))
		b.WriteString("\n")
	}
	return b.String()
}

func fieldName(f division.FieldType) string {
	switch f {
	case division.FieldQuotient:
		return "Quotient"
	case division.FieldMultiply:
		return "Multiply"
	case division.FieldSubtract:
		return "Subtract"
	case division.FieldBringDown:
		return "Bring down"
	}
	return string(f)
}

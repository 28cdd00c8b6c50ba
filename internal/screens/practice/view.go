package practice

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/longdiv/internal/division"
	"github.com/abhisek/longdiv/internal/focus"
	"github.com/abhisek/longdiv/internal/session"
	"github.com/abhisek/longdiv/internal/ui/components"
	"github.com/abhisek/longdiv/internal/ui/theme"
)

const placeholder = "_"

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + s.errMsg + "\n\nPress any key to go back.")
	}

	state := s.ctrl.State()
	if state.Phase == session.PhaseNotStarted {
		return theme.Subtitle.Width(width).Render("\n\nPreparing a problem...")
	}

	var b strings.Builder
	b.WriteString(theme.Card.Render(s.renderWorksheet(state)))
	b.WriteString("\n\n")

	completion := s.ctrl.CheckCompletion()
	b.WriteString(components.StepProgress(completion.ValidCount, completion.TotalSteps, 40).View())
	b.WriteString("\n\n")
	b.WriteString(s.renderStatus(state))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *PracticeScreen) renderStatus(state session.State) string {
	if state.Phase == session.PhaseComplete {
		p := state.Problem
		line := theme.Correct.Render(fmt.Sprintf("Solved! %d ÷ %d = %d", p.Dividend, p.Divisor, p.Quotient))
		if p.Remainder > 0 {
			line += theme.Correct.Render(fmt.Sprintf(" R %d", p.Remainder))
		}
		if s.nextReady {
			line += "\n" + theme.Subtitle.Render("Enter for a summary, N for a new problem")
		}
		return line
	}

	cur := s.focus.Current()
	if e, ok := s.ctrl.ActiveError(cur.StepNumber, cur.FieldType); ok {
		return theme.Hint.Render(e.Message)
	}
	if s.hint != "" {
		return theme.Hint.Render(s.hint)
	}
	return theme.Subtitle.Render(prompt(cur.FieldType))
}

func prompt(field division.FieldType) string {
	switch field {
	case division.FieldQuotient:
		return "How many times does the divisor fit?"
	case division.FieldMultiply:
		return "Multiply the quotient digit by the divisor."
	case division.FieldSubtract:
		return "Subtract to find what is left."
	case division.FieldBringDown:
		return "Bring down the next digit."
	}
	return ""
}

// row is one worksheet line on a grid of dividend-digit columns.
type row []string

func newRow(cols int) row {
	r := make(row, cols)
	for i := range r {
		r[i] = "  "
	}
	return r
}

// place writes text so that its last character lands in column end.
func (r row) place(text string, end int, style lipgloss.Style) {
	start := end - len(text) + 1
	for i, ch := range text {
		col := start + i
		if col < 0 || col >= len(r) {
			continue
		}
		r[col] = style.Render(string(ch)) + " "
	}
}

// rule underlines width columns ending at column end.
func (r row) rule(width, end int) {
	for col := end - width + 1; col <= end; col++ {
		if col >= 0 && col < len(r) {
			r[col] = theme.Rule.Render("──")
		}
	}
}

func (r row) String() string {
	return strings.TrimRight(strings.Join(r, ""), " ")
}

// renderWorksheet lays the problem out the way it is written on paper:
// quotient above the bracket, then a multiply, subtract and bring-down
// line per cycle, right-aligned under the dividend digits they belong to.
func (s *PracticeScreen) renderWorksheet(state session.State) string {
	p := state.Problem
	digits := division.Digits(p.Dividend)
	cols := len(digits)

	divisor := strconv.Itoa(p.Divisor)
	margin := strings.Repeat(" ", len(divisor)+3)
	minus := strings.Repeat(" ", len(divisor)+1) + theme.Rule.Render("−") + " "

	var lines []string

	quotient := newRow(cols)
	for c := range state.Cycles() {
		step, ok := division.Lookup(state.Steps, c, division.FieldQuotient)
		if !ok {
			continue
		}
		text, style := s.cell(state, focus.Position{StepNumber: c, FieldType: division.FieldQuotient})
		quotient.place(text, step.Position, style)
	}
	lines = append(lines, margin+quotient.String())
	lines = append(lines, strings.Repeat(" ", len(divisor)+1)+theme.Rule.Render("┌"+strings.Repeat("─", cols*2+1)))

	dividend := newRow(cols)
	for i, d := range digits {
		dividend[i] = theme.Given.Render(strconv.Itoa(d)) + " "
	}
	lines = append(lines, theme.Given.Render(divisor)+" "+theme.Rule.Render("│")+" "+dividend.String())

	for c := range state.Cycles() {
		mul, ok := division.Lookup(state.Steps, c, division.FieldMultiply)
		if !ok {
			continue
		}
		end := mul.Position

		product := newRow(cols)
		text, style := s.cell(state, focus.Position{StepNumber: c, FieldType: division.FieldMultiply})
		product.place(text, end, style)
		lines = append(lines, minus+product.String())

		underline := newRow(cols)
		underline.rule(max(len(text), len(strconv.Itoa(mul.Value))), end)
		lines = append(lines, margin+underline.String())

		diff := newRow(cols)
		text, style = s.cell(state, focus.Position{StepNumber: c, FieldType: division.FieldSubtract})
		diff.place(text, end, style)
		if bd, ok := division.Lookup(state.Steps, c, division.FieldBringDown); ok {
			text, style = s.cell(state, focus.Position{StepNumber: c, FieldType: division.FieldBringDown})
			diff.place(text, bd.Position, style)
		}
		lines = append(lines, margin+diff.String())
	}

	return strings.Join(lines, "\n")
}

// cell returns the text and style for one field.
func (s *PracticeScreen) cell(state session.State, p focus.Position) (string, lipgloss.Style) {
	focused := state.Phase == session.PhaseInProgress && s.focus.Current() == p

	text := placeholder
	if focused {
		if v := s.input.Value(); v != "" {
			text = v
		}
		return text, theme.Focused
	}

	v, ok := s.recorded(state, p)
	if !ok {
		return text, theme.Empty
	}
	text = strconv.Itoa(v)
	if _, bad := s.ctrl.ActiveError(p.StepNumber, p.FieldType); bad {
		return text, theme.Incorrect
	}
	return text, theme.Correct
}

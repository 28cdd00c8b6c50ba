// Package practice is the interactive worksheet: the learner fills in
// quotient digits and the multiply, subtract and bring-down rows of a long
// division problem while the session controller checks each value.
package practice

import (
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/longdiv/internal/division"
	"github.com/abhisek/longdiv/internal/focus"
	"github.com/abhisek/longdiv/internal/problemgen"
	"github.com/abhisek/longdiv/internal/router"
	"github.com/abhisek/longdiv/internal/screen"
	"github.com/abhisek/longdiv/internal/screens/summary"
	"github.com/abhisek/longdiv/internal/session"
	"github.com/abhisek/longdiv/internal/ui/components"
	"github.com/abhisek/longdiv/internal/ui/layout"
	"github.com/abhisek/longdiv/internal/validation"
)

// Each cycle has one quotient digit, so the quotient row holds a single
// position per step.
const quotientLength = 1

// Options configures a PracticeScreen.
type Options struct {
	// Constraints drive problem generation.
	Constraints problemgen.Constraints

	// Label names the difficulty in the header.
	Label string

	// Debounce is how long the "next" shortcut stays disabled after a
	// problem is solved.
	Debounce time.Duration

	// Problem, when set, is loaded first instead of a generated one.
	Problem *division.Problem

	Logger *zap.Logger
}

// PracticeScreen implements screen.Screen for one worksheet.
type PracticeScreen struct {
	ctrl        *session.Controller
	focus       *focus.Controller
	input       components.DigitInput
	constraints problemgen.Constraints
	label       string
	debounce    time.Duration
	pending     *division.Problem
	logger      *zap.Logger

	hint      string
	errMsg    string
	nextReady bool

	// attempt counts loads and resets, so a timer started before a reset
	// cannot enable the next-problem shortcut after it.
	attempt int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.StatusProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen driving ctrl.
func New(ctrl *session.Controller, opts Options) *PracticeScreen {
	s := &PracticeScreen{
		ctrl:        ctrl,
		input:       components.NewDigitInput(maxDigits(division.FieldQuotient, 0)),
		constraints: opts.Constraints,
		label:       opts.Label,
		debounce:    opts.Debounce,
		pending:     opts.Problem,
		logger:      opts.Logger,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.focus = focus.NewController(quotientLength, 0, s.onFocus)
	return s
}

func (s *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(
		s.input.Init(),
		func() tea.Msg { return newProblemMsg{} },
	)
}

func (s *PracticeScreen) Title() string {
	return "Long Division"
}

func (s *PracticeScreen) Status() string {
	return s.label
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.ctrl.Phase() == session.PhaseComplete {
		if !s.nextReady {
			return []layout.KeyHint{{Key: "Esc", Description: "Menu"}}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Summary"},
			{Key: "N", Description: "New problem"},
			{Key: "Esc", Description: "Menu"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab/Enter", Description: "Next"},
		{Key: "Shift+Tab", Description: "Back"},
		{Key: "Ctrl+R", Description: "Reset"},
		{Key: "Ctrl+N", Description: "New"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case newProblemMsg:
		return s.loadProblem()

	case completionReadyMsg:
		if msg == s.readyMsg() && s.ctrl.Phase() == session.PhaseComplete {
			s.nextReady = true
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch msg.String() {
	case "ctrl+r":
		s.reset()
		return s, nil
	case "ctrl+n":
		return s.loadProblem()
	}

	if s.ctrl.Phase() == session.PhaseComplete {
		if !s.nextReady {
			return s, nil
		}
		switch msg.String() {
		case "enter":
			return s, s.showSummary()
		case "n", "N":
			return s.loadProblem()
		}
		return s, nil
	}

	ev := keyEvent(msg)
	var done tea.Cmd
	if a := focus.Classify(ev); a == focus.ActionNext || a == focus.ActionPrevious {
		done = s.commit()
	}
	if s.focus.HandleKeyDown(ev) {
		return s, done
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, tea.Batch(done, cmd)
}

// loadProblem starts the pending fixed problem or generates a new one.
func (s *PracticeScreen) loadProblem() (screen.Screen, tea.Cmd) {
	var err error
	if s.pending != nil {
		err = s.ctrl.StartProblem(*s.pending)
		s.pending = nil
	} else {
		c := s.constraints
		_, err = s.ctrl.GenerateProblem(&c)
	}
	if err != nil {
		s.logger.Error("load problem", zap.Error(err))
		s.errMsg = err.Error()
		return s, nil
	}

	s.attempt++
	s.hint = ""
	s.nextReady = false
	s.focus.Reset(quotientLength, s.ctrl.State().Cycles())
	return s, nil
}

func (s *PracticeScreen) reset() {
	if err := s.ctrl.ResetProblem(); err != nil {
		return
	}
	s.attempt++
	s.hint = ""
	s.nextReady = false
	s.focus.Reset(quotientLength, s.ctrl.State().Cycles())
}

// commit submits the focused field's buffer. Empty and unchanged buffers
// are not submitted. It returns the debounce timer when this solved the
// problem.
func (s *PracticeScreen) commit() tea.Cmd {
	v, ok := s.input.Int()
	if !ok {
		return nil
	}
	p := s.focus.Current()
	if prev, had := s.recorded(s.ctrl.State(), p); had && prev == v {
		return nil
	}

	res, err := s.ctrl.SubmitStep(validation.Input{
		StepNumber: p.StepNumber,
		FieldType:  p.FieldType,
		Position:   p.Position,
		Value:      v,
	})
	if err != nil {
		// Not started or already solved; nothing was recorded.
		return nil
	}
	s.hint = res.Hint

	if s.ctrl.Phase() != session.PhaseComplete {
		return nil
	}
	ready := s.readyMsg()
	return tea.Tick(s.debounce, func(time.Time) tea.Msg {
		return ready
	})
}

func (s *PracticeScreen) readyMsg() completionReadyMsg {
	return completionReadyMsg{SessionID: s.ctrl.State().SessionID, Attempt: s.attempt}
}

func (s *PracticeScreen) showSummary() tea.Cmd {
	sum := session.BuildSummary(s.ctrl.State(), time.Now())
	next := func() screen.Screen { return s }
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, next)}
	}
}

// onFocus loads the newly focused field's recorded value into the buffer.
func (s *PracticeScreen) onFocus(p focus.Position) {
	state := s.ctrl.State()
	s.input.Model.CharLimit = maxDigits(p.FieldType, state.Problem.Divisor)
	if v, ok := s.recorded(state, p); ok {
		s.input.SetValue(strconv.Itoa(v))
		return
	}
	s.input.SetValue("")
}

// recorded returns the latest submitted value for the field at p.
func (s *PracticeScreen) recorded(state session.State, p focus.Position) (int, bool) {
	if p.FieldType == division.FieldQuotient {
		if p.StepNumber < 0 || p.StepNumber >= len(state.QuotientDigits) || state.QuotientDigits[p.StepNumber] == nil {
			return 0, false
		}
		return *state.QuotientDigits[p.StepNumber], true
	}
	return state.WorkingArea.Get(p.FieldType, p.StepNumber)
}

// maxDigits bounds what a field can hold. Products and differences never
// exceed the partial dividend, which has at most one digit more than the
// divisor.
func maxDigits(field division.FieldType, divisor int) int {
	switch field {
	case division.FieldQuotient, division.FieldBringDown:
		return 1
	}
	return len(strconv.Itoa(divisor)) + 1
}

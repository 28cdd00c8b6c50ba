package session

import (
	"time"

	"github.com/abhisek/longdiv/internal/division"
	"github.com/abhisek/longdiv/internal/validation"
)

// Phase represents where a session is in its lifecycle.
type Phase int

const (
	PhaseNotStarted Phase = iota // No problem loaded yet
	PhaseInProgress              // Accepting step submissions
	PhaseComplete                // Every step answered correctly
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// State is a snapshot of one problem being worked.
type State struct {
	// SessionID is the UUID assigned when the problem was started.
	SessionID string

	// Phase is the current lifecycle phase.
	Phase Phase

	// Problem is the division being worked.
	Problem division.Problem

	// Steps is the canonical plan, fixed until the next start.
	Steps []division.Step

	// TotalSteps is len(Steps).
	TotalSteps int

	// QuotientDigits holds the learner's quotient digit per cycle (nil = empty).
	QuotientDigits []*int

	// WorkingArea holds the learner's multiply/subtract/bring-down values.
	WorkingArea WorkingArea

	// UserInputs is the append-only submission history.
	UserInputs []validation.Input

	// Errors holds at most one active error per (StepNumber, FieldType).
	Errors []validation.Error

	// CurrentStep counts correct submissions, capped at TotalSteps.
	CurrentStep int

	// IsComplete is true once the problem has been solved.
	IsComplete bool

	// StartedAt is when the problem was started.
	StartedAt time.Time

	// CompletedAt is when the problem was solved (zero while in progress).
	CompletedAt time.Time
}

// Cycles returns the number of divide cycles in the plan.
func (s State) Cycles() int {
	return len(s.QuotientDigits)
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.Steps = append([]division.Step(nil), s.Steps...)
	out.QuotientDigits = cloneCells(s.QuotientDigits)
	out.WorkingArea = s.WorkingArea.Clone()
	out.UserInputs = append([]validation.Input(nil), s.UserInputs...)
	out.Errors = append([]validation.Error(nil), s.Errors...)
	return out
}

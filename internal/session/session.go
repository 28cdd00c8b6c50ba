package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/longdiv/internal/division"
	"github.com/abhisek/longdiv/internal/problemgen"
	"github.com/abhisek/longdiv/internal/validation"
)

var (
	// ErrNotStarted is returned by operations that need a loaded problem.
	ErrNotStarted = errors.New("no problem started")

	// ErrProblemComplete is returned when a step is submitted after the
	// problem was solved. Nothing is recorded.
	ErrProblemComplete = errors.New("problem already complete")
)

// Options configures a Controller. Zero values pick sensible defaults.
type Options struct {
	// Generator draws problems for GenerateProblem (default: randomly seeded).
	Generator problemgen.Generator

	// Constraints are used by GenerateProblem when the caller passes none.
	Constraints *problemgen.Constraints

	// Logger receives lifecycle and submission events (default: no-op).
	Logger *zap.Logger

	// Now returns the current time (default: time.Now).
	Now func() time.Time
}

// Controller owns the mutable state of one problem at a time.
//
// Methods must be called from a single goroutine (the UI event loop).
// Every method applies its changes completely before returning, and State
// hands out deep copies, so no partial update is ever observable.
type Controller struct {
	state       State
	generator   problemgen.Generator
	constraints problemgen.Constraints
	logger      *zap.Logger
	now         func() time.Time
}

// NewController creates a Controller in the NotStarted phase.
func NewController(opts Options) *Controller {
	c := &Controller{
		generator:   opts.Generator,
		constraints: problemgen.DefaultConstraints(),
		logger:      opts.Logger,
		now:         opts.Now,
	}
	if c.generator == nil {
		c.generator = problemgen.New()
	}
	if opts.Constraints != nil {
		c.constraints = *opts.Constraints
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// StartProblem plans p and resets every accumulator. An unplannable problem
// is rejected and the current state is left untouched.
func (c *Controller) StartProblem(p division.Problem) error {
	steps, err := division.Plan(p.Divisor, p.Dividend)
	if err != nil {
		return fmt.Errorf("start problem: %w", err)
	}
	if !p.Solved {
		p = p.Solve()
	}

	c.state = State{
		SessionID: uuid.New().String(),
		Problem:   p,
		Steps:     steps,
		StartedAt: c.now(),
	}
	c.clearProgress()

	c.logger.Info("problem started",
		zap.String("session_id", c.state.SessionID),
		zap.Int("divisor", p.Divisor),
		zap.Int("dividend", p.Dividend),
		zap.Int("total_steps", c.state.TotalSteps),
	)
	return nil
}

// GenerateProblem draws a problem from constraints (or the configured
// defaults when nil) and starts it.
func (c *Controller) GenerateProblem(constraints *problemgen.Constraints) (division.Problem, error) {
	cons := c.constraints
	if constraints != nil {
		cons = *constraints
	}
	p, err := c.generator.Generate(cons)
	if err != nil {
		return division.Problem{}, fmt.Errorf("generate problem: %w", err)
	}
	if err := c.StartProblem(p); err != nil {
		return division.Problem{}, err
	}
	return p, nil
}

// SubmitStep records one learner value and re-evaluates the session.
//
// The input is appended to history, its working-area cell is updated, any
// earlier error for the same field is dropped and replaced by a new one if
// the value is wrong, the step cursor advances only on a correct value, and
// completion is recomputed. Wrong answers and unknown fields are reported
// through the returned Result and the error list, never as an error.
func (c *Controller) SubmitStep(in validation.Input) (validation.Result, error) {
	switch c.state.Phase {
	case PhaseNotStarted:
		return validation.Result{}, ErrNotStarted
	case PhaseComplete:
		return validation.ValidateStep(in, c.state.Steps), ErrProblemComplete
	}

	if in.Timestamp.IsZero() {
		in.Timestamp = c.now()
	}
	result := validation.ValidateStep(in, c.state.Steps)

	c.state.UserInputs = append(c.state.UserInputs, in)
	if in.FieldType == division.FieldQuotient {
		if in.StepNumber >= 0 && in.StepNumber < len(c.state.QuotientDigits) {
			v := in.Value
			c.state.QuotientDigits[in.StepNumber] = &v
		}
	} else {
		c.state.WorkingArea.Set(in.FieldType, in.StepNumber, in.Value)
	}

	c.state.Errors = removeErrors(c.state.Errors, in.Key())
	if !result.IsValid {
		c.state.Errors = append(c.state.Errors, validation.Error{
			StepNumber: in.StepNumber,
			FieldType:  in.FieldType,
			Position:   in.Position,
			Message:    result.Hint,
			Severity:   validation.SeverityError,
		})
	} else if c.state.CurrentStep < c.state.TotalSteps {
		c.state.CurrentStep++
	}

	completion := validation.CheckCompletion(c.state.Steps, c.state.UserInputs, c.state.Errors)
	if completion.IsComplete {
		c.state.IsComplete = true
		c.state.Phase = PhaseComplete
		c.state.CompletedAt = c.now()
	}

	c.logger.Debug("step submitted",
		zap.String("session_id", c.state.SessionID),
		zap.Int("step", in.StepNumber),
		zap.String("field", string(in.FieldType)),
		zap.Int("value", in.Value),
		zap.Bool("valid", result.IsValid),
		zap.Int("valid_fields", completion.ValidCount),
	)
	if completion.IsComplete {
		c.logger.Info("problem complete",
			zap.String("session_id", c.state.SessionID),
			zap.Int("submissions", len(c.state.UserInputs)),
			zap.Duration("elapsed", c.state.CompletedAt.Sub(c.state.StartedAt)),
		)
	}

	return result, nil
}

// ResetProblem clears all learner progress and keeps the same problem.
func (c *Controller) ResetProblem() error {
	if c.state.Phase == PhaseNotStarted {
		return ErrNotStarted
	}
	c.clearProgress()
	c.logger.Info("problem reset", zap.String("session_id", c.state.SessionID))
	return nil
}

// ValidateStep checks in against the current plan without recording it.
func (c *Controller) ValidateStep(in validation.Input) validation.Result {
	return validation.ValidateStep(in, c.state.Steps)
}

// CheckCompletion re-evaluates completion from the recorded history.
func (c *Controller) CheckCompletion() validation.Completion {
	return validation.CheckCompletion(c.state.Steps, c.state.UserInputs, c.state.Errors)
}

// State returns a deep copy of the current state.
func (c *Controller) State() State {
	return c.state.Clone()
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.state.Phase
}

// ActiveError returns the current error for a field, if any.
func (c *Controller) ActiveError(stepNumber int, field division.FieldType) (validation.Error, bool) {
	key := validation.FieldKey{StepNumber: stepNumber, FieldType: field}
	for _, e := range c.state.Errors {
		if e.Key() == key {
			return e, true
		}
	}
	return validation.Error{}, false
}

// clearProgress resets every accumulator for the loaded plan.
func (c *Controller) clearProgress() {
	cycles := division.CycleCount(c.state.Steps)
	c.state.Phase = PhaseInProgress
	c.state.TotalSteps = len(c.state.Steps)
	c.state.QuotientDigits = make([]*int, cycles)
	c.state.WorkingArea = NewWorkingArea(cycles)
	c.state.UserInputs = nil
	c.state.Errors = nil
	c.state.CurrentStep = 0
	c.state.IsComplete = false
	c.state.CompletedAt = time.Time{}
}

func removeErrors(errs []validation.Error, key validation.FieldKey) []validation.Error {
	out := errs[:0]
	for _, e := range errs {
		if e.Key() != key {
			out = append(out, e)
		}
	}
	return out
}

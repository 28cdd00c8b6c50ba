package validation

import (
	"time"

	"github.com/abhisek/longdiv/internal/division"
)

// Input is a single value a learner committed to one field.
type Input struct {
	// StepNumber is the cycle (divide-step index) the field belongs to.
	StepNumber int
	FieldType  division.FieldType
	Position   int
	Value      int
	Timestamp  time.Time
}

// Key returns the field identity of the input.
func (in Input) Key() FieldKey {
	return FieldKey{StepNumber: in.StepNumber, FieldType: in.FieldType}
}

// FieldKey identifies one answerable field. At most one active error
// exists per key.
type FieldKey struct {
	StepNumber int
	FieldType  division.FieldType
}

// Severity grades a validation error.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityHint    Severity = "hint"
)

// Error is a recorded problem with a learner's submission.
type Error struct {
	StepNumber int
	FieldType  division.FieldType
	Position   int
	Message    string
	Severity   Severity
}

// Key returns the field identity of the error.
func (e Error) Key() FieldKey {
	return FieldKey{StepNumber: e.StepNumber, FieldType: e.FieldType}
}

// Result is the outcome of checking one input.
type Result struct {
	IsValid      bool
	CorrectValue int
	Hint         string // empty when IsValid
}

// Completion describes whether a whole problem is finished.
type Completion struct {
	IsComplete bool
	HasErrors  bool
	ValidCount int
	TotalSteps int
}

package session

import (
	"time"

	"github.com/abhisek/longdiv/internal/division"
	"github.com/abhisek/longdiv/internal/validation"
)

// Summary holds the data displayed once a problem is solved.
type Summary struct {
	Problem     division.Problem
	Duration    time.Duration
	Submissions int
	Mistakes    int
	FieldCount  int
	Accuracy    float64

	// MistakesByField counts wrong submissions per field kind.
	MistakesByField map[division.FieldType]int
}

// BuildSummary creates a Summary from a state snapshot. Duration runs to
// CompletedAt, or to now if the problem is still open.
func BuildSummary(state State, now time.Time) Summary {
	end := state.CompletedAt
	if end.IsZero() {
		end = now
	}

	sum := Summary{
		Problem:         state.Problem,
		Submissions:     len(state.UserInputs),
		FieldCount:      state.TotalSteps,
		MistakesByField: make(map[division.FieldType]int),
	}
	if !state.StartedAt.IsZero() {
		sum.Duration = end.Sub(state.StartedAt)
	}

	for _, in := range state.UserInputs {
		if validation.ValidateStep(in, state.Steps).IsValid {
			continue
		}
		sum.Mistakes++
		sum.MistakesByField[in.FieldType]++
	}

	if sum.Submissions > 0 {
		sum.Accuracy = float64(sum.Submissions-sum.Mistakes) / float64(sum.Submissions)
	}
	return sum
}

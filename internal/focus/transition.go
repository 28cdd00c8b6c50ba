package focus

import "github.com/abhisek/longdiv/internal/division"

// State is the navigation cursor plus the shape of the field sequence.
type State struct {
	Current Position

	// QuotientLength is the number of quotient positions per step.
	QuotientLength int

	// TotalSteps is the number of divide steps.
	TotalSteps int
}

// NewState returns a State positioned on the first quotient field.
func NewState(quotientLength, totalSteps int) State {
	return State{Current: Start, QuotientLength: quotientLength, TotalSteps: totalSteps}
}

func (s State) lastQuotient() int {
	if s.QuotientLength < 1 {
		return 0
	}
	return s.QuotientLength - 1
}

// Next returns the field after the current one. At the end of the sequence
// the current field is returned unchanged.
func Next(s State) Position {
	p := s.Current
	switch p.FieldType {
	case division.FieldQuotient:
		if p.Position < s.lastQuotient() {
			return Position{StepNumber: p.StepNumber, FieldType: division.FieldQuotient, Position: p.Position + 1}
		}
		return Position{StepNumber: p.StepNumber, FieldType: division.FieldMultiply}
	case division.FieldMultiply:
		return Position{StepNumber: p.StepNumber, FieldType: division.FieldSubtract}
	case division.FieldSubtract:
		if p.StepNumber < s.TotalSteps-1 {
			return Position{StepNumber: p.StepNumber, FieldType: division.FieldBringDown}
		}
		return p
	case division.FieldBringDown:
		return Position{StepNumber: p.StepNumber + 1, FieldType: division.FieldQuotient}
	}
	return p
}

// Previous mirrors Next. The first quotient field of the first step has no
// predecessor and is returned unchanged.
func Previous(s State) Position {
	p := s.Current
	switch p.FieldType {
	case division.FieldQuotient:
		if p.Position > 0 {
			return Position{StepNumber: p.StepNumber, FieldType: division.FieldQuotient, Position: p.Position - 1}
		}
		if p.StepNumber > 0 {
			return Position{StepNumber: p.StepNumber - 1, FieldType: division.FieldBringDown}
		}
		return p
	case division.FieldMultiply:
		return Position{StepNumber: p.StepNumber, FieldType: division.FieldQuotient, Position: s.lastQuotient()}
	case division.FieldSubtract:
		return Position{StepNumber: p.StepNumber, FieldType: division.FieldMultiply}
	case division.FieldBringDown:
		return Position{StepNumber: p.StepNumber, FieldType: division.FieldSubtract}
	}
	return p
}

// Sequence enumerates every field in navigation order.
func Sequence(quotientLength, totalSteps int) []Position {
	s := NewState(quotientLength, totalSteps)
	seq := []Position{s.Current}
	for {
		n := Next(s)
		if n == s.Current {
			return seq
		}
		seq = append(seq, n)
		s.Current = n
	}
}

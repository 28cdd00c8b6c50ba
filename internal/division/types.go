package division

// Operation is the arithmetic action performed by a single long-division step.
type Operation string

const (
	OpDivide    Operation = "divide"
	OpMultiply  Operation = "multiply"
	OpSubtract  Operation = "subtract"
	OpBringDown Operation = "bringDown"
)

// FieldType identifies which learner-facing input a value belongs to.
// Each FieldType maps to exactly one Operation.
type FieldType string

const (
	FieldQuotient  FieldType = "quotient"
	FieldMultiply  FieldType = "multiply"
	FieldSubtract  FieldType = "subtract"
	FieldBringDown FieldType = "bringDown"
)

// FieldTypes lists every field type in navigation order within a cycle.
var FieldTypes = []FieldType{FieldQuotient, FieldMultiply, FieldSubtract, FieldBringDown}

// Valid reports whether f is one of the four known field types.
func (f FieldType) Valid() bool {
	switch f {
	case FieldQuotient, FieldMultiply, FieldSubtract, FieldBringDown:
		return true
	}
	return false
}

// Operation returns the step operation a field is answered against.
// Unknown field types return the empty Operation.
func (f FieldType) Operation() Operation {
	switch f {
	case FieldQuotient:
		return OpDivide
	case FieldMultiply:
		return OpMultiply
	case FieldSubtract:
		return OpSubtract
	case FieldBringDown:
		return OpBringDown
	}
	return ""
}

// Field returns the field type a learner fills in for op.
func (op Operation) Field() FieldType {
	switch op {
	case OpDivide:
		return FieldQuotient
	case OpMultiply:
		return FieldMultiply
	case OpSubtract:
		return FieldSubtract
	case OpBringDown:
		return FieldBringDown
	}
	return ""
}

// Problem is a single division exercise.
type Problem struct {
	Divisor  int
	Dividend int

	// Quotient and Remainder are only meaningful when Solved is true.
	Quotient  int
	Remainder int
	Solved    bool
}

// NewProblem validates the operands and returns a solved Problem.
func NewProblem(divisor, dividend int) (Problem, error) {
	if err := CheckOperands(divisor, dividend); err != nil {
		return Problem{}, err
	}
	return Problem{Divisor: divisor, Dividend: dividend}.Solve(), nil
}

// Solve returns a copy of p with Quotient and Remainder attached.
// The divisor must be positive.
func (p Problem) Solve() Problem {
	p.Quotient = p.Dividend / p.Divisor
	p.Remainder = p.Dividend % p.Divisor
	p.Solved = true
	return p
}

// Step is one atomic action in the canonical long-division procedure.
type Step struct {
	// Number is the contiguous index of the step in the plan (0..N-1).
	Number int

	// Operation is the action performed.
	Operation Operation

	// Cycle is the index of the divide step this step belongs to. Divide k,
	// its multiply and subtract, and the bring-down that follows share cycle k.
	Cycle int

	// Position is the index of the dividend digit the step is aligned under.
	Position int

	// CorrectAnswer is the value the learner must enter.
	CorrectAnswer int

	// Value is the partial dividend the step works on. For a bring-down it is
	// the partial dividend after the digit has been appended.
	Value int
}

// Field returns the field type answered by this step.
func (s Step) Field() FieldType {
	return s.Operation.Field()
}

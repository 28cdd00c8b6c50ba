package division

import "fmt"

// Plan computes the canonical ordered steps for dividing dividend by divisor.
//
// The dividend is consumed left to right. Digits are gathered until the
// partial dividend reaches the divisor (or the digits run out), then every
// cycle emits divide, multiply and subtract, followed by a bring-down when
// more digits remain. Every brought-down digit opens a new cycle, so zero
// quotient digits only appear after the first significant one.
func Plan(divisor, dividend int) ([]Step, error) {
	if err := CheckOperands(divisor, dividend); err != nil {
		return nil, fmt.Errorf("plan %d ÷ %d: %w", dividend, divisor, err)
	}

	digits := Digits(dividend)
	steps := make([]Step, 0, 4*len(digits))
	emit := func(s Step) {
		s.Number = len(steps)
		steps = append(steps, s)
	}

	// Gather the leading partial dividend.
	pos := 0
	acc := digits[0]
	for acc < divisor && pos < len(digits)-1 {
		pos++
		acc = acc*10 + digits[pos]
	}

	for cycle := 0; ; cycle++ {
		q := acc / divisor
		product := q * divisor
		diff := acc - product

		emit(Step{Operation: OpDivide, Cycle: cycle, Position: pos, CorrectAnswer: q, Value: acc})
		emit(Step{Operation: OpMultiply, Cycle: cycle, Position: pos, CorrectAnswer: product, Value: acc})
		emit(Step{Operation: OpSubtract, Cycle: cycle, Position: pos, CorrectAnswer: diff, Value: acc})

		if pos == len(digits)-1 {
			break
		}
		pos++
		acc = diff*10 + digits[pos]
		emit(Step{Operation: OpBringDown, Cycle: cycle, Position: pos, CorrectAnswer: digits[pos], Value: acc})
	}

	return steps, nil
}

// Digits returns the base-10 digits of a non-negative n, most significant first.
func Digits(n int) []int {
	if n == 0 {
		return []int{0}
	}
	var rev []int
	for n > 0 {
		rev = append(rev, n%10)
		n /= 10
	}
	out := make([]int, len(rev))
	for i, d := range rev {
		out[len(rev)-1-i] = d
	}
	return out
}

// CycleCount returns the number of divide steps in a plan.
func CycleCount(steps []Step) int {
	n := 0
	for _, s := range steps {
		if s.Operation == OpDivide {
			n++
		}
	}
	return n
}

// QuotientDigits returns the correct answer of every divide step in order.
func QuotientDigits(steps []Step) []int {
	var out []int
	for _, s := range steps {
		if s.Operation == OpDivide {
			out = append(out, s.CorrectAnswer)
		}
	}
	return out
}

// Quotient reassembles the quotient from the plan's divide steps.
func Quotient(steps []Step) int {
	q := 0
	for _, d := range QuotientDigits(steps) {
		q = q*10 + d
	}
	return q
}

// Remainder returns the correct answer of the final subtract step.
func Remainder(steps []Step) int {
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i].Operation == OpSubtract {
			return steps[i].CorrectAnswer
		}
	}
	return 0
}

// Lookup finds the canonical step answered by field in the given cycle.
func Lookup(steps []Step, cycle int, field FieldType) (Step, bool) {
	op := field.Operation()
	if op == "" {
		return Step{}, false
	}
	for _, s := range steps {
		if s.Cycle == cycle && s.Operation == op {
			return s, true
		}
	}
	return Step{}, false
}

package division

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPlan_53Into1006(t *testing.T) {
	steps, err := Plan(53, 1006)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	want := []Step{
		{Number: 0, Operation: OpDivide, Cycle: 0, Position: 2, CorrectAnswer: 1, Value: 100},
		{Number: 1, Operation: OpMultiply, Cycle: 0, Position: 2, CorrectAnswer: 53, Value: 100},
		{Number: 2, Operation: OpSubtract, Cycle: 0, Position: 2, CorrectAnswer: 47, Value: 100},
		{Number: 3, Operation: OpBringDown, Cycle: 0, Position: 3, CorrectAnswer: 6, Value: 476},
		{Number: 4, Operation: OpDivide, Cycle: 1, Position: 3, CorrectAnswer: 8, Value: 476},
		{Number: 5, Operation: OpMultiply, Cycle: 1, Position: 3, CorrectAnswer: 424, Value: 476},
		{Number: 6, Operation: OpSubtract, Cycle: 1, Position: 3, CorrectAnswer: 52, Value: 476},
	}
	if diff := cmp.Diff(want, steps); diff != "" {
		t.Errorf("Plan(53, 1006) mismatch (-want +got):\n%s", diff)
	}

	if got := QuotientDigits(steps); !cmp.Equal(got, []int{1, 8}) {
		t.Errorf("QuotientDigits = %v, want [1 8]", got)
	}
	if got := Remainder(steps); got != 52 {
		t.Errorf("Remainder = %d, want 52", got)
	}
}

func TestPlan_12Into84(t *testing.T) {
	steps, err := Plan(12, 84)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("len(steps) = %d, want 3", len(steps))
	}
	ops := []Operation{OpDivide, OpMultiply, OpSubtract}
	for i, s := range steps {
		if s.Operation != ops[i] {
			t.Errorf("steps[%d].Operation = %s, want %s", i, s.Operation, ops[i])
		}
	}
	if Quotient(steps) != 7 || Remainder(steps) != 0 {
		t.Errorf("quotient/remainder = %d/%d, want 7/0", Quotient(steps), Remainder(steps))
	}
}

func TestPlan_SingleDigitSmallerThanDivisor(t *testing.T) {
	steps, err := Plan(7, 3)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("len(steps) = %d, want 3", len(steps))
	}
	if steps[0].CorrectAnswer != 0 || steps[1].CorrectAnswer != 0 || steps[2].CorrectAnswer != 3 {
		t.Errorf("answers = %d/%d/%d, want 0/0/3",
			steps[0].CorrectAnswer, steps[1].CorrectAnswer, steps[2].CorrectAnswer)
	}
}

func TestPlan_InnerZeroDigit(t *testing.T) {
	steps, err := Plan(5, 1025)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if got := QuotientDigits(steps); !cmp.Equal(got, []int{2, 0, 5}) {
		t.Errorf("QuotientDigits = %v, want [2 0 5]", got)
	}
}

func TestPlan_RejectsBadOperands(t *testing.T) {
	tests := []struct {
		divisor, dividend int
		want              error
	}{
		{0, 10, ErrDivisionByZero},
		{-3, 10, ErrNonPositive},
		{3, 0, ErrNonPositive},
		{3, -9, ErrNonPositive},
	}

	for _, tc := range tests {
		steps, err := Plan(tc.divisor, tc.dividend)
		if steps != nil {
			t.Errorf("Plan(%d, %d) produced %d steps, want none", tc.divisor, tc.dividend, len(steps))
		}
		if !errors.Is(err, tc.want) {
			t.Errorf("Plan(%d, %d) error = %v, want %v", tc.divisor, tc.dividend, err, tc.want)
		}
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("Plan(%d, %d) error is not a ConfigurationError", tc.divisor, tc.dividend)
		}
	}
}

// TestPlan_Invariants checks the arithmetic and ordering invariants over a
// grid of divisors and dividends.
func TestPlan_Invariants(t *testing.T) {
	for d := 1; d <= 60; d++ {
		for _, n := range []int{1, 7, 9, 10, 42, 99, 100, 101, 507, 999, 1000, 1006, 4096, 9999, 10203, 98765} {
			steps, err := Plan(d, n)
			if err != nil {
				t.Fatalf("Plan(%d, %d): %v", d, n, err)
			}
			again, _ := Plan(d, n)
			if !cmp.Equal(steps, again) {
				t.Fatalf("Plan(%d, %d) is not deterministic", d, n)
			}

			if got := Quotient(steps); got != n/d {
				t.Errorf("Plan(%d, %d) quotient = %d, want %d", d, n, got, n/d)
			}
			if got := Remainder(steps); got != n%d {
				t.Errorf("Plan(%d, %d) remainder = %d, want %d", d, n, got, n%d)
			}
			if steps[len(steps)-1].Operation == OpBringDown {
				t.Errorf("Plan(%d, %d) ends with a bring-down", d, n)
			}

			for i, s := range steps {
				if s.Number != i {
					t.Fatalf("Plan(%d, %d) step %d has Number %d", d, n, i, s.Number)
				}
				if s.Operation != OpDivide {
					continue
				}
				if i+2 >= len(steps) {
					t.Fatalf("Plan(%d, %d) divide step %d is not followed by multiply and subtract", d, n, i)
				}
				mul, sub := steps[i+1], steps[i+2]
				if mul.Operation != OpMultiply || sub.Operation != OpSubtract {
					t.Fatalf("Plan(%d, %d) step %d: got %s, %s after divide", d, n, i, mul.Operation, sub.Operation)
				}
				if mul.CorrectAnswer != s.CorrectAnswer*d {
					t.Errorf("Plan(%d, %d) multiply = %d, want %d", d, n, mul.CorrectAnswer, s.CorrectAnswer*d)
				}
				if sub.CorrectAnswer != s.Value-mul.CorrectAnswer || sub.CorrectAnswer < 0 || sub.CorrectAnswer >= d {
					t.Errorf("Plan(%d, %d) subtract = %d out of range for partial %d", d, n, sub.CorrectAnswer, s.Value)
				}
			}
		}
	}
}

func TestDigits(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, []int{0}},
		{5, []int{5}},
		{1006, []int{1, 0, 0, 6}},
	}
	for _, tc := range tests {
		if got := Digits(tc.n); !cmp.Equal(got, tc.want) {
			t.Errorf("Digits(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestLookup(t *testing.T) {
	steps, _ := Plan(53, 1006)

	s, ok := Lookup(steps, 1, FieldSubtract)
	if !ok || s.CorrectAnswer != 52 {
		t.Errorf("Lookup(1, subtract) = %+v, %v; want answer 52", s, ok)
	}
	if _, ok := Lookup(steps, 1, FieldBringDown); ok {
		t.Error("Lookup(1, bringDown) should not exist on the last cycle")
	}
	if _, ok := Lookup(steps, 0, FieldType("carry")); ok {
		t.Error("Lookup with an unknown field type should fail")
	}
}

func TestNewProblem(t *testing.T) {
	p, err := NewProblem(53, 1006)
	if err != nil {
		t.Fatalf("NewProblem: %v", err)
	}
	if !p.Solved || p.Quotient != 18 || p.Remainder != 52 {
		t.Errorf("NewProblem(53, 1006) = %+v", p)
	}
	if _, err := NewProblem(0, 5); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("NewProblem(0, 5) error = %v, want ErrDivisionByZero", err)
	}
}

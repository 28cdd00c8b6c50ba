package focus

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abhisek/longdiv/internal/division"
)

func q(step, pos int) Position {
	return Position{StepNumber: step, FieldType: division.FieldQuotient, Position: pos}
}

func at(step int, f division.FieldType) Position {
	return Position{StepNumber: step, FieldType: f}
}

func TestNext_FiveSteps(t *testing.T) {
	c := NewController(2, 2, nil)
	want := []Position{
		q(0, 1),
		at(0, division.FieldMultiply),
		at(0, division.FieldSubtract),
		at(0, division.FieldBringDown),
		q(1, 0),
	}
	for i, w := range want {
		if got := c.Next(); got != w {
			t.Fatalf("Next() #%d = %s, want %s", i+1, got, w)
		}
	}
}

func TestNext_StopsAtSequenceEnd(t *testing.T) {
	c := NewController(1, 2, nil)
	c.JumpTo(at(1, division.FieldSubtract))
	if got := c.Next(); got != at(1, division.FieldSubtract) {
		t.Errorf("Next() at the last subtract = %s, want no-op", got)
	}
}

func TestPrevious_StopsAtStart(t *testing.T) {
	c := NewController(2, 2, nil)
	if got := c.Previous(); got != Start {
		t.Errorf("Previous() at start = %s, want %s", got, Start)
	}
}

func TestPrevious_MirrorsNext(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {1, 3}, {2, 2}, {3, 4}} {
		seq := Sequence(shape[0], shape[1])
		for i := 1; i < len(seq); i++ {
			s := State{Current: seq[i], QuotientLength: shape[0], TotalSteps: shape[1]}
			if got := Previous(s); got != seq[i-1] {
				t.Errorf("shape %v: Previous(%s) = %s, want %s", shape, seq[i], got, seq[i-1])
			}
			s.Current = seq[i-1]
			if got := Next(s); got != seq[i] {
				t.Errorf("shape %v: Next(%s) = %s, want %s", shape, seq[i-1], got, seq[i])
			}
		}
	}
}

func TestSequence(t *testing.T) {
	got := Sequence(1, 2)
	want := []Position{
		q(0, 0),
		at(0, division.FieldMultiply),
		at(0, division.FieldSubtract),
		at(0, division.FieldBringDown),
		q(1, 0),
		at(1, division.FieldMultiply),
		at(1, division.FieldSubtract),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sequence(1, 2) mismatch (-want +got):\n%s", diff)
	}

	sorted := slices.Clone(got)
	slices.SortFunc(sorted, Compare)
	if !slices.Equal(sorted, got) {
		t.Error("Compare does not agree with navigation order")
	}
}

func TestSequence_MatchesPlanFieldCount(t *testing.T) {
	steps, err := division.Plan(53, 1006)
	if err != nil {
		t.Fatal(err)
	}
	cycles := division.CycleCount(steps)
	if got := len(Sequence(1, cycles)); got != len(steps) {
		t.Errorf("len(Sequence) = %d, want %d (one field per step)", got, len(steps))
	}
}

func TestHandleKeyDown(t *testing.T) {
	tests := []struct {
		name         string
		ev           KeyEvent
		wantSuppress bool
		wantPos      Position
	}{
		{"digit", KeyEvent{Key: "7"}, false, q(0, 1)},
		{"tab", KeyEvent{Key: KeyTab}, true, at(0, division.FieldMultiply)},
		{"shift+tab", KeyEvent{Key: KeyTab, Shift: true}, true, q(0, 0)},
		{"enter", KeyEvent{Key: KeyEnter}, true, at(0, division.FieldMultiply)},
		{"arrow down", KeyEvent{Key: KeyArrowDown}, true, at(0, division.FieldMultiply)},
		{"arrow right", KeyEvent{Key: KeyArrowRight}, true, at(0, division.FieldMultiply)},
		{"arrow up", KeyEvent{Key: KeyArrowUp}, true, q(0, 0)},
		{"arrow left", KeyEvent{Key: KeyArrowLeft}, true, q(0, 0)},
		{"backspace", KeyEvent{Key: KeyBackspace}, false, q(0, 1)},
		{"delete", KeyEvent{Key: KeyDelete}, false, q(0, 1)},
		{"letter", KeyEvent{Key: "a"}, true, q(0, 1)},
		{"minus", KeyEvent{Key: "-"}, true, q(0, 1)},
		{"escape", KeyEvent{Key: "Escape"}, true, q(0, 1)},
		{"ctrl+r", KeyEvent{Key: "r", Ctrl: true}, false, q(0, 1)},
		{"alt+tab", KeyEvent{Key: KeyTab, Alt: true}, false, q(0, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewController(2, 2, nil)
			c.JumpTo(q(0, 1))
			if got := c.HandleKeyDown(tc.ev); got != tc.wantSuppress {
				t.Errorf("HandleKeyDown(%+v) = %v, want %v", tc.ev, got, tc.wantSuppress)
			}
			if c.Current() != tc.wantPos {
				t.Errorf("focus = %s, want %s", c.Current(), tc.wantPos)
			}
		})
	}
}

func TestTransition_IsPure(t *testing.T) {
	s := NewState(2, 2)
	next, suppress := Transition(s, KeyEvent{Key: KeyTab})
	if !suppress || next.Current != q(0, 1) {
		t.Errorf("Transition(tab) = %s, %v", next.Current, suppress)
	}
	if s.Current != Start {
		t.Error("Transition mutated its input")
	}
}

func TestJumpTo_BypassesAdjacency(t *testing.T) {
	c := NewController(2, 3, nil)
	target := at(2, division.FieldSubtract)
	c.JumpTo(target)
	if c.Current() != target {
		t.Errorf("JumpTo: focus = %s, want %s", c.Current(), target)
	}
}

func TestFocusCallback(t *testing.T) {
	var calls []Position
	c := NewController(1, 2, func(p Position) { calls = append(calls, p) })

	c.Previous() // no-op, no callback
	c.Next()
	c.JumpTo(c.Current()) // unchanged, no callback
	c.FocusField(c.Current())
	c.Reset(2, 3)

	want := []Position{at(0, division.FieldMultiply), at(0, division.FieldMultiply), Start}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("focus callbacks mismatch (-want +got):\n%s", diff)
	}
	if c.State().QuotientLength != 2 || c.State().TotalSteps != 3 {
		t.Errorf("Reset did not update shape: %+v", c.State())
	}
}

func TestCompare(t *testing.T) {
	if Compare(q(0, 1), q(0, 1)) != 0 {
		t.Error("equal positions should compare 0")
	}
	if Compare(at(0, division.FieldBringDown), q(1, 0)) >= 0 {
		t.Error("bring-down of step 0 should sort before quotient of step 1")
	}
	if q(0, 1).Key() == q(0, 0).Key() {
		t.Error("distinct positions share a key")
	}
}

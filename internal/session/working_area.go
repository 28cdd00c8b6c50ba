package session

import (
	"github.com/abhisek/longdiv/internal/division"
	"github.com/abhisek/longdiv/internal/validation"
)

// WorkingArea holds the learner's scratch values, one cell per cycle.
// A nil cell has not been filled in yet.
type WorkingArea struct {
	MultiplyResults []*int
	SubtractResults []*int
	BringDownDigits []*int

	// Remainders lists the filled subtract results in cycle order.
	Remainders []int
}

// NewWorkingArea allocates an empty working area for the given number of cycles.
func NewWorkingArea(cycles int) WorkingArea {
	return WorkingArea{
		MultiplyResults: make([]*int, cycles),
		SubtractResults: make([]*int, cycles),
		BringDownDigits: make([]*int, cycles),
	}
}

// RebuildWorkingArea replays the input history into a fresh working area.
// Quotient inputs and inputs outside the cycle range are skipped.
func RebuildWorkingArea(cycles int, inputs []validation.Input) WorkingArea {
	wa := NewWorkingArea(cycles)
	for _, in := range inputs {
		wa.Set(in.FieldType, in.StepNumber, in.Value)
	}
	return wa
}

// Set stores v in the bucket for field at cycle. It reports whether the
// field belongs to the working area and the cycle is in range.
func (w *WorkingArea) Set(field division.FieldType, cycle, v int) bool {
	cells := w.bucket(field)
	if cells == nil || cycle < 0 || cycle >= len(cells) {
		return false
	}
	cells[cycle] = &v
	if field == division.FieldSubtract {
		w.Remainders = w.Remainders[:0]
		for _, c := range w.SubtractResults {
			if c != nil {
				w.Remainders = append(w.Remainders, *c)
			}
		}
	}
	return true
}

// Get returns the value stored for field at cycle.
func (w WorkingArea) Get(field division.FieldType, cycle int) (int, bool) {
	cells := w.bucket(field)
	if cells == nil || cycle < 0 || cycle >= len(cells) || cells[cycle] == nil {
		return 0, false
	}
	return *cells[cycle], true
}

func (w WorkingArea) bucket(field division.FieldType) []*int {
	switch field {
	case division.FieldMultiply:
		return w.MultiplyResults
	case division.FieldSubtract:
		return w.SubtractResults
	case division.FieldBringDown:
		return w.BringDownDigits
	}
	return nil
}

// Clone returns a deep copy of w.
func (w WorkingArea) Clone() WorkingArea {
	return WorkingArea{
		MultiplyResults: cloneCells(w.MultiplyResults),
		SubtractResults: cloneCells(w.SubtractResults),
		BringDownDigits: cloneCells(w.BringDownDigits),
		Remainders:      append([]int(nil), w.Remainders...),
	}
}

func cloneCells(cells []*int) []*int {
	if cells == nil {
		return nil
	}
	out := make([]*int, len(cells))
	for i, c := range cells {
		if c != nil {
			v := *c
			out[i] = &v
		}
	}
	return out
}

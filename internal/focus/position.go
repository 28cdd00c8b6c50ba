// Package focus decides which long-division input field is active and how
// keyboard events move between fields.
//
// The field order mirrors the step plan: within each cycle the quotient
// positions come first (left to right), then multiply, subtract and, if more
// dividend digits remain, bring-down. After a bring-down the next cycle's
// quotient fields follow.
package focus

import (
	"cmp"
	"fmt"

	"github.com/abhisek/longdiv/internal/division"
)

// Position identifies one input field.
type Position struct {
	StepNumber int
	FieldType  division.FieldType
	Position   int
}

// Start is the first field of every problem.
var Start = Position{StepNumber: 0, FieldType: division.FieldQuotient, Position: 0}

func (p Position) String() string {
	return fmt.Sprintf("%s(%d,%d)", p.FieldType, p.StepNumber, p.Position)
}

// Key returns a value usable as a map key for sets of positions.
func (p Position) Key() [3]int {
	return [3]int{p.StepNumber, fieldRank(p.FieldType), p.Position}
}

// Compare orders positions by step, then field order within the step, then
// position. It returns -1, 0 or +1.
func Compare(a, b Position) int {
	if c := cmp.Compare(a.StepNumber, b.StepNumber); c != 0 {
		return c
	}
	if c := cmp.Compare(fieldRank(a.FieldType), fieldRank(b.FieldType)); c != 0 {
		return c
	}
	return cmp.Compare(a.Position, b.Position)
}

// fieldRank places unknown field types after every known one.
func fieldRank(f division.FieldType) int {
	switch f {
	case division.FieldQuotient:
		return 0
	case division.FieldMultiply:
		return 1
	case division.FieldSubtract:
		return 2
	case division.FieldBringDown:
		return 3
	}
	return 4
}

package validation

import "github.com/abhisek/longdiv/internal/division"

const (
	hintQuotient  = "How many times does the divisor fit into the current number? Try multiplying to check."
	hintMultiply  = "Multiply the quotient digit you just wrote by the divisor."
	hintSubtract  = "Subtract the product from the number above it. The result must be smaller than the divisor."
	hintBringDown = "Bring down the next digit of the dividend and write it beside the remainder."
	hintGeneric   = "Check this step again."
)

// HintFor returns the fixed hint shown after a wrong answer in a field.
func HintFor(field division.FieldType) string {
	switch field {
	case division.FieldQuotient:
		return hintQuotient
	case division.FieldMultiply:
		return hintMultiply
	case division.FieldSubtract:
		return hintSubtract
	case division.FieldBringDown:
		return hintBringDown
	default:
		return hintGeneric
	}
}

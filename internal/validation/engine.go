package validation

import "github.com/abhisek/longdiv/internal/division"

// ValidateStep checks one input against the canonical plan.
//
// An input whose (StepNumber, FieldType) pair has no canonical step fails
// closed with CorrectValue 0 and the generic hint; it is reported as a wrong
// answer, never as an error.
func ValidateStep(in Input, steps []division.Step) Result {
	step, ok := division.Lookup(steps, in.StepNumber, in.FieldType)
	if !ok {
		return Result{IsValid: false, CorrectValue: 0, Hint: hintGeneric}
	}
	if in.Value == step.CorrectAnswer {
		return Result{IsValid: true, CorrectValue: step.CorrectAnswer}
	}
	return Result{
		IsValid:      false,
		CorrectValue: step.CorrectAnswer,
		Hint:         HintFor(in.FieldType),
	}
}

// CheckCompletion decides whether a problem is finished.
//
// Every field is judged by its most recent input only, and that input is
// re-validated against the plan, so a superseded correct answer never counts.
// A problem is complete when the number of valid fields reaches the plan
// length and no active error has error severity.
func CheckCompletion(steps []division.Step, inputs []Input, errs []Error) Completion {
	latest := LatestInputs(inputs)

	valid := 0
	for _, in := range latest {
		if ValidateStep(in, steps).IsValid {
			valid++
		}
	}

	hasErrors := false
	for _, e := range errs {
		if e.Severity == SeverityError {
			hasErrors = true
			break
		}
	}

	return Completion{
		IsComplete: len(steps) > 0 && valid >= len(steps) && !hasErrors,
		HasErrors:  hasErrors,
		ValidCount: valid,
		TotalSteps: len(steps),
	}
}

// LatestInputs returns the most recent input for every field, in the order
// each field was first answered.
func LatestInputs(inputs []Input) []Input {
	index := make(map[FieldKey]int, len(inputs))
	var out []Input
	for _, in := range inputs {
		if i, ok := index[in.Key()]; ok {
			out[i] = in
			continue
		}
		index[in.Key()] = len(out)
		out = append(out, in)
	}
	return out
}

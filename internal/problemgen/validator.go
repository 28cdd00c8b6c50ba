package problemgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/abhisek/longdiv/internal/division"
)

var validate = validator.New()

// ErrInvalidConstraints is returned when a Constraints value fails validation.
var ErrInvalidConstraints = errors.New("invalid constraints")

// ValidateConstraints checks c with its struct tags.
func ValidateConstraints(c Constraints) error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, describeFieldError(fe))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConstraints, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConstraints, err)
	}
	return nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not be less than %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
	}
}

// RangeError reports operands that fall outside the configured bounds.
// Values are never clamped, the caller decides what to do.
type RangeError struct {
	Messages []string
}

func (e *RangeError) Error() string {
	return "out of range: " + strings.Join(e.Messages, "; ")
}

// CheckRange verifies a learner- or caller-supplied problem against c.
// A zero or negative divisor is reported as a division.ConfigurationError
// before any range check runs.
func CheckRange(divisor, dividend int, c Constraints) error {
	if err := division.CheckOperands(divisor, dividend); err != nil {
		return err
	}

	var msgs []string
	if divisor < c.MinDivisor {
		msgs = append(msgs, fmt.Sprintf("divisor %d is below the minimum %d", divisor, c.MinDivisor))
	}
	if divisor > c.MaxDivisor {
		msgs = append(msgs, fmt.Sprintf("divisor %d is above the maximum %d", divisor, c.MaxDivisor))
	}
	if dividend < c.MinDividend {
		msgs = append(msgs, fmt.Sprintf("dividend %d is below the minimum %d", dividend, c.MinDividend))
	}
	if dividend > c.MaxDividend {
		msgs = append(msgs, fmt.Sprintf("dividend %d is above the maximum %d", dividend, c.MaxDividend))
	}
	if !c.AllowRemainders && dividend%divisor != 0 {
		msgs = append(msgs, fmt.Sprintf("%d is not a multiple of %d", dividend, divisor))
	}
	if len(msgs) > 0 {
		return &RangeError{Messages: msgs}
	}
	return nil
}

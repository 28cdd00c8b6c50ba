package division

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNonPositive is returned when an operand is negative, or the dividend is zero.
	ErrNonPositive = errors.New("operand must be positive")
)

// ConfigurationError describes an operand that cannot define a problem.
// It is the only error kind that aborts starting a problem.
type ConfigurationError struct {
	Field  string // "divisor" or "dividend"
	Value  int
	Reason error // ErrDivisionByZero or ErrNonPositive
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %d: %v", e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Reason
}

// CheckOperands rejects operands that cannot be planned.
func CheckOperands(divisor, dividend int) error {
	if divisor == 0 {
		return &ConfigurationError{Field: "divisor", Value: divisor, Reason: ErrDivisionByZero}
	}
	if divisor < 0 {
		return &ConfigurationError{Field: "divisor", Value: divisor, Reason: ErrNonPositive}
	}
	if dividend <= 0 {
		return &ConfigurationError{Field: "dividend", Value: dividend, Reason: ErrNonPositive}
	}
	return nil
}

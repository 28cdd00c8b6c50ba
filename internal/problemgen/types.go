package problemgen

import "fmt"

// Difficulty names a preset range of divisors and dividends.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"   // 1-digit divisor, 2-digit dividend, no remainders
	DifficultyMedium Difficulty = "medium" // 1-digit divisor, 3-digit dividend
	DifficultyHard   Difficulty = "hard"   // 2-digit divisor, 4-digit dividend
)

// ParseDifficulty converts a config or flag value to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(s); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
}

// Constraints bound the problems a Generator may produce.
type Constraints struct {
	Difficulty Difficulty `mapstructure:"difficulty" validate:"omitempty,oneof=easy medium hard"`

	MinDivisor int `mapstructure:"min_divisor" validate:"gt=0"`
	MaxDivisor int `mapstructure:"max_divisor" validate:"gtefield=MinDivisor"`

	MinDividend int `mapstructure:"min_dividend" validate:"gt=0"`
	MaxDividend int `mapstructure:"max_dividend" validate:"gtefield=MinDividend"`

	// AllowRemainders permits dividends that are not a multiple of the divisor.
	AllowRemainders bool `mapstructure:"allow_remainders"`
}

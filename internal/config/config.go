package config

import (
	"time"

	"github.com/abhisek/longdiv/internal/problemgen"
)

// Config holds all application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Problem ProblemConfig `mapstructure:"problem" validate:"required"`
	UI      UIConfig      `mapstructure:"ui" validate:"required"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	// File receives log output. Empty means stderr for CLI commands and no
	// logging for the interactive UI, which owns the terminal.
	File string `mapstructure:"file"`
}

// ProblemConfig selects the generator constraints. Range fields override
// the difficulty preset when non-zero.
type ProblemConfig struct {
	Difficulty      string `mapstructure:"difficulty" validate:"required,oneof=easy medium hard"`
	MinDivisor      int    `mapstructure:"min_divisor" validate:"gte=0"`
	MaxDivisor      int    `mapstructure:"max_divisor" validate:"gte=0"`
	MinDividend     int    `mapstructure:"min_dividend" validate:"gte=0"`
	MaxDividend     int    `mapstructure:"max_dividend" validate:"gte=0"`
	AllowRemainders *bool  `mapstructure:"allow_remainders"`
}

// UIConfig holds presentation timings.
type UIConfig struct {
	// CompletionDebounce delays the "next problem" shortcut after a problem
	// is solved so the key press that solved it does not also skip ahead.
	CompletionDebounce time.Duration `mapstructure:"completion_debounce" validate:"gte=0"`
}

// Constraints resolves the problem section into generator constraints.
func (p ProblemConfig) Constraints() problemgen.Constraints {
	c := problemgen.ConstraintsFor(problemgen.Difficulty(p.Difficulty))
	if p.MinDivisor > 0 {
		c.MinDivisor = p.MinDivisor
	}
	if p.MaxDivisor > 0 {
		c.MaxDivisor = p.MaxDivisor
	}
	if p.MinDividend > 0 {
		c.MinDividend = p.MinDividend
	}
	if p.MaxDividend > 0 {
		c.MaxDividend = p.MaxDividend
	}
	if p.AllowRemainders != nil {
		c.AllowRemainders = *p.AllowRemainders
	}
	return c
}

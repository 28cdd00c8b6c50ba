package problemgen

// Presets maps each difficulty to its default constraints.
var Presets = map[Difficulty]Constraints{
	DifficultyEasy: {
		Difficulty:      DifficultyEasy,
		MinDivisor:      2,
		MaxDivisor:      9,
		MinDividend:     10,
		MaxDividend:     99,
		AllowRemainders: false,
	},
	DifficultyMedium: {
		Difficulty:      DifficultyMedium,
		MinDivisor:      2,
		MaxDivisor:      9,
		MinDividend:     100,
		MaxDividend:     999,
		AllowRemainders: true,
	},
	DifficultyHard: {
		Difficulty:      DifficultyHard,
		MinDivisor:      11,
		MaxDivisor:      99,
		MinDividend:     1000,
		MaxDividend:     9999,
		AllowRemainders: true,
	},
}

// DefaultConstraints returns the medium preset.
func DefaultConstraints() Constraints {
	return Presets[DifficultyMedium]
}

// ConstraintsFor returns the preset for d, falling back to the default.
func ConstraintsFor(d Difficulty) Constraints {
	if c, ok := Presets[d]; ok {
		return c
	}
	return DefaultConstraints()
}

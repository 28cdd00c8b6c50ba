package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/abhisek/longdiv/internal/problemgen"
)

// EnvPrefix is prepended to every environment override, e.g.
// LONGDIV_PROBLEM_DIFFICULTY=hard.
const EnvPrefix = "LONGDIV"

// Load reads configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence.
//
// When path is empty, longdiv.yaml is searched for in the user config
// directory and the working directory; a missing file is not an error.
// An explicitly named file must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("longdiv")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "longdiv"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only covers keys viper already knows; range overrides
	// have no default, so bind them explicitly.
	for _, key := range []string{
		"problem.min_divisor", "problem.max_divisor",
		"problem.min_dividend", "problem.max_dividend",
		"problem.allow_remainders", "log.file",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info"},
		Problem: ProblemConfig{Difficulty: string(problemgen.DifficultyMedium)},
		UI:      UIConfig{CompletionDebounce: defaultDebounce},
	}
}

// Validate checks struct tags and that the resolved constraints are usable.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := problemgen.ValidateConstraints(cfg.Problem.Constraints()); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("problem.difficulty", d.Problem.Difficulty)
	v.SetDefault("ui.completion_debounce", d.UI.CompletionDebounce)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/longdiv/internal/problemgen"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "longdiv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// isolate points the config search paths at an empty directory.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Chdir(dir)
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "medium", cfg.Problem.Difficulty)
	assert.Equal(t, 600*time.Millisecond, cfg.UI.CompletionDebounce)
	assert.Equal(t, problemgen.Presets[problemgen.DifficultyMedium], cfg.Problem.Constraints())
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
log:
  level: debug
  file: /tmp/longdiv.log
problem:
  difficulty: hard
  max_divisor: 25
  allow_remainders: false
ui:
  completion_debounce: 1s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/longdiv.log", cfg.Log.File)
	assert.Equal(t, time.Second, cfg.UI.CompletionDebounce)

	c := cfg.Problem.Constraints()
	assert.Equal(t, problemgen.DifficultyHard, c.Difficulty)
	assert.Equal(t, 11, c.MinDivisor)
	assert.Equal(t, 25, c.MaxDivisor)
	assert.False(t, c.AllowRemainders)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "problem:\n  difficulty: hard\n")
	t.Setenv("LONGDIV_PROBLEM_DIFFICULTY", "easy")
	t.Setenv("LONGDIV_PROBLEM_MAX_DIVIDEND", "50")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "easy", cfg.Problem.Difficulty)
	assert.Equal(t, 50, cfg.Problem.Constraints().MaxDividend)
}

func TestLoad_InvalidValues(t *testing.T) {
	isolate(t)

	tests := map[string]string{
		"bad level":       "log:\n  level: loud\n",
		"bad difficulty":  "problem:\n  difficulty: extreme\n",
		"inverted ranges": "problem:\n  difficulty: easy\n  min_divisor: 9\n  max_divisor: 3\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.ErrorContains(t, err, "configuration validation failed")
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Validate(Default()))
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("AOC_INPUT_DIR", "")
	t.Setenv("AOC_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Setenv("AOC_INPUT_DIR", "")
	t.Setenv("AOC_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_dir: /puzzles\nlog:\n  level: debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/puzzles", cfg.InputDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.Equal(t, zapcore.DebugLevel, cfg.Level())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_dir: [\n"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("AOC_INPUT_DIR", "/env/inputs")
	t.Setenv("AOC_LOG_LEVEL", "error")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/env/inputs", cfg.InputDir)
	assert.Equal(t, zapcore.ErrorLevel, cfg.Level())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Log.Level = "loud"
	require.ErrorIs(t, cfg.Validate(), ErrInvalidLevel)

	cfg = DefaultConfig()
	cfg.InputDir = ""
	require.ErrorIs(t, cfg.Validate(), ErrNoInputDir)

	cfg = DefaultConfig()
	cfg.Log.Encoding = "jsno"
	require.ErrorIs(t, cfg.Validate(), ErrInvalidEncoding)

	cfg.Log.Encoding = "json"
	require.NoError(t, cfg.Validate())
}

func TestInputPath(t *testing.T) {
	t.Parallel()

	cfg := &Config{InputDir: "in"}
	assert.Equal(t, filepath.Join("in", "2018", "09.txt"), cfg.InputPath(2018, 9))
}

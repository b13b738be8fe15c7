// Package config loads the settings of the aoc command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the aoc command looks for its config file.
const DefaultPath = "aoc.yaml"

var (
	ErrInvalidLevel    = errors.New("invalid log level")
	ErrInvalidEncoding = errors.New("invalid log encoding")
	ErrNoInputDir      = errors.New("input directory not configured")
)

var (
	// ValidLevels lists the accepted log levels.
	ValidLevels = []string{"debug", "info", "warn", "error"}
	// ValidEncodings lists the accepted log encodings.
	ValidEncodings = []string{"json", "console"}
)

// Config is the aoc command configuration.
type Config struct {
	// InputDir holds the puzzle inputs as <year>/<day>.txt.
	InputDir string    `yaml:"input_dir"`
	Log      LogConfig `yaml:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		InputDir: "inputs",
		Log: LogConfig{
			Level:    "warn",
			Encoding: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file gives the defaults.
// Environment variables override both.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)

	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("AOC_INPUT_DIR"); dir != "" {
		c.InputDir = dir
	}

	if level := os.Getenv("AOC_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return ErrNoInputDir
	}

	if !slices.Contains(ValidLevels, c.Log.Level) {
		return fmt.Errorf("%w: %q (valid: %v)", ErrInvalidLevel, c.Log.Level, ValidLevels)
	}

	if !slices.Contains(ValidEncodings, c.Log.Encoding) {
		return fmt.Errorf("%w: %q (valid: %v)", ErrInvalidEncoding, c.Log.Encoding, ValidEncodings)
	}

	return nil
}

// Level returns the configured zap level.
func (c *Config) Level() zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return zapcore.WarnLevel
	}

	return l
}

// InputPath returns the input file of a puzzle.
func (c *Config) InputPath(year, day int) string {
	return filepath.Join(c.InputDir, strconv.Itoa(year), fmt.Sprintf("%02d.txt", day))
}

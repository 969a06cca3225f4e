// Package config loads the optional .gotraps.yaml file controlling rendering
// and logging. A missing file means defaults; a malformed file is an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no --config flag is given.
const DefaultPath = ".gotraps.yaml"

// EnvTheme overrides the configured theme, for terminals where auto-detection
// guesses wrong.
const EnvTheme = "GOTRAPS_THEME"

// Config holds all gotraps configuration.
type Config struct {
	// Theme selects the terminal style: auto, dark, light, notty, dracula,
	// or none for raw markdown.
	Theme string `yaml:"theme"`

	// Wrap is the word-wrap column for terminal rendering.
	Wrap int `yaml:"wrap"`

	// DocPath is the default output path for the doc command ("" = stdout).
	DocPath string `yaml:"doc_path"`

	// Playground is the base URL bare playground share IDs resolve against.
	Playground string `yaml:"playground"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme:      "auto",
		Wrap:       100,
		Playground: "https://go.dev/play/",
		Logging:    LoggingConfig{Level: "warn"},
	}
}

// Load reads the config at path, or DefaultPath when path is empty. The
// environment theme override is applied last.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No config file is the common case.
	case err != nil:
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
	}

	if theme := os.Getenv(EnvTheme); theme != "" {
		cfg.Theme = theme
	}
	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	d := Default()
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	if c.Wrap <= 0 {
		c.Wrap = d.Wrap
	}
	if c.Playground == "" {
		c.Playground = d.Playground
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	return c
}

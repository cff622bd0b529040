// Package config loads misbaha settings from the config file, the first-run
// prompt and command-line flags
package config

import (
	"fmt"
	"io"
	"os"
)

type (
	// Config holds all configuration settings
	Config struct {
		Settings      SettingsConfig     `mapstructure:"settings"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// SettingsConfig holds counting-related settings
	SettingsConfig struct {
		// Haptic selects how a counted tap is acknowledged
		Haptic HapticMode `mapstructure:"haptic"`
		// CompletionCmd is executed each time a target is reached
		CompletionCmd string `mapstructure:"completion_cmd"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		AccentColor string `mapstructure:"accent_color"`
		ProgressBar bool   `mapstructure:"progress_bar"`
	}

	// CLIConfig holds values that only come from the command line
	CLIConfig struct {
		NoColor bool
		Debug   bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error

	// HapticMode is the feedback produced for each counted tap
	HapticMode string
)

const Version = "v1.0.0"

const (
	HapticTone HapticMode = "tone"
	HapticBell HapticMode = "bell"
	HapticOff  HapticMode = "off"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", errConfigValidation.Message, err)
	}

	return cfg, nil
}

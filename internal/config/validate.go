package config

import (
	"regexp"
	"slices"

	"github.com/kballard/go-shellquote"
)

var (
	hapticModes = []HapticMode{HapticTone, HapticBell, HapticOff}

	// Color format validation.
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateSettings(); err != nil {
		return err
	}

	return c.validateDisplay()
}

// validateSettings validates the SettingsConfig.
func (c *Config) validateSettings() error {
	if !slices.Contains(hapticModes, c.Settings.Haptic) {
		return errUnknownHaptic.Fmt(c.Settings.Haptic)
	}

	if c.Settings.CompletionCmd != "" {
		if _, err := shellquote.Split(c.Settings.CompletionCmd); err != nil {
			return errInvalidCompletionCmd.Wrap(err)
		}
	}

	return nil
}

// validateDisplay validates the DisplayConfig.
func (c *Config) validateDisplay() error {
	if !hexColorRegex.MatchString(c.Display.AccentColor) {
		return errInvalidColor.Fmt(c.Display.AccentColor)
	}

	return nil
}

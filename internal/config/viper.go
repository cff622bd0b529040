package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyHaptic               = "settings.haptic"
	keyCompletionCmd        = "settings.completion_cmd"
	keyNotificationsEnabled = "notifications.enabled"
	keyAccentColor          = "display.accent_color"
	keyProgressBar          = "display.progress_bar"
)

// WithViperConfig returns an Option that loads configuration from Viper. The
// file is created with default values if it does not exist yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyHaptic, string(HapticTone))
	v.SetDefault(keyCompletionCmd, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyAccentColor, "#F59E0B")
	v.SetDefault(keyProgressBar, true)

	// values chosen in the first-run prompt take precedence over defaults
	if c.Settings.Haptic != "" {
		v.Set(keyHaptic, string(c.Settings.Haptic))
		v.Set(keyNotificationsEnabled, c.Notifications.Enabled)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	return v.Unmarshal(c)
}

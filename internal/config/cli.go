package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Haptic        string
	CompletionCmd string
	DisableNotify bool
	NoColor       bool
	Debug         bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Haptic:        ctx.String("haptic"),
			CompletionCmd: ctx.String("completion-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoColor:       ctx.Bool("no-color"),
			Debug:         ctx.Bool("debug"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Haptic != "" {
		c.Settings.Haptic = HapticMode(strings.ToLower(opts.Haptic))
	}

	if opts.CompletionCmd != "" {
		c.Settings.CompletionCmd = opts.CompletionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	c.CLI.NoColor = opts.NoColor
	c.CLI.Debug = opts.Debug
}

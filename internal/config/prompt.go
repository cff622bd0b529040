package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
 __  __ ___ ____  ____    _    _   _    _
|  \/  |_ _/ ___|| __ )  / \  | | | |  / \
| |\/| || |\___ \|  _ \ / _ \ | |_| | / _ \
| |  | || | ___) | |_) / ___ \|  _  |/ ___ \
|_|  |_|___|____/|____/_/   \_\_| |_/_/   \_\`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Haptic        HapticMode
	Notifications bool
}

// WithPromptConfig returns an Option that configures settings via interactive
// prompts. The prompt is only shown on the first run, when the config file
// does not exist and stdin is a terminal.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return nil
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Haptic:        HapticTone,
		Notifications: true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure misbaha for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'misbaha edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[HapticMode]().
				Title("Feedback on every count").
				Options(
					huh.NewOption("Short tone", HapticTone).Selected(true),
					huh.NewOption("Terminal bell", HapticBell),
					huh.NewOption("None", HapticOff),
				).
				Value(&opts.Haptic),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show a desktop notification when a target is reached?").
				Affirmative("Yes").
				Negative("No").
				Value(&opts.Notifications),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Settings.Haptic = opts.Haptic
	c.Notifications.Enabled = opts.Notifications
}

// Package app wires the misbaha command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/misbaha/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the misbaha app instance.
func Get() *cli.App {
	misbahaApp := &cli.App{
		Name: "misbaha",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Misbaha is a tally counter for the command-line. Keep a list of azkar,
		count each one towards an optional target and track your lifetime
		progress.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "Print the list of counters",
				Action: withTally(listAction),
				Flags: []cli.Flag{
					jsonFlag,
					sortFlag,
				},
			},
			{
				Name:   "add",
				Usage:  "Add a new counter",
				Action: withTally(addAction),
				Flags: []cli.Flag{
					nameFlag,
					targetFlag,
					fixedFlag,
				},
			},
			{
				Name:      "edit",
				Usage:     "Edit the name, target or mode of a counter",
				ArgsUsage: "<id|name>",
				Action:    withTally(editAction),
				Flags: []cli.Flag{
					nameFlag,
					targetFlag,
					fixedFlag,
					noFixedFlag,
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a counter and all its statistics",
				ArgsUsage: "<id|name>",
				Action:    withTally(deleteAction),
				Flags: []cli.Flag{
					yesFlag,
				},
			},
			{
				Name:      "hit",
				Usage:     "Count towards a counter without opening the interface",
				ArgsUsage: "<id|name>",
				Action:    withTally(hitAction),
				Flags: []cli.Flag{
					timesFlag,
				},
			},
			{
				Name:      "reset",
				Usage:     "Set the session count of a counter back to zero",
				ArgsUsage: "<id|name>",
				Action:    withTally(resetAction),
			},
			{
				Name:      "theme",
				Usage:     "Print or change the colour theme",
				ArgsUsage: "[dark|light|toggle]",
				Action:    withTally(themeAction),
			},
			{
				Name:      "import",
				Usage:     "Replace all counters with the contents of a JSON export",
				ArgsUsage: "<file>",
				Action:    withTally(importAction),
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			hapticFlag,
			disableNotificationFlag,
			completionCmdFlag,
			noColorFlag,
			debugFlag,
		},
		Action: withSession(defaultAction, true),
		Before: beforeAction,
		After:  afterAction,
	}

	return misbahaApp
}

package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Log debug messages and mirror the log to stderr",
	}

	hapticFlag = &cli.StringFlag{
		Name:  "haptic",
		Usage: "Feedback for each count. Options: tone, bell, off (default: tone)",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when a target is reached",
	}

	completionCmdFlag = &cli.StringFlag{
		Name:    "completion-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command each time a target is reached",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the counters as a JSON array",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Sort the counters. Options: natural, lifetime (default: display order)",
	}

	nameFlag = &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Usage:   "The text of the zekr",
	}

	targetFlag = &cli.StringFlag{
		Name:    "target",
		Aliases: []string{"t"},
		Usage:   "The number of counts for a session. Leave empty for no target",
	}

	fixedFlag = &cli.BoolFlag{
		Name:    "fixed",
		Aliases: []string{"f"},
		Usage:   "Start counting with the stored target without asking for one",
	}

	noFixedFlag = &cli.BoolFlag{
		Name:  "no-fixed",
		Usage: "Ask for a target each time the counter is opened",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	timesFlag = &cli.UintFlag{
		Name:  "times",
		Usage: "The number of counts to add",
		Value: 1,
	}
)

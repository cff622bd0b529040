package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
)

const notificationTitle = "ما شاء الله!"

// Announcement describes a reached target.
type Announcement struct {
	Name    string
	Message string
	Target  int
}

// Announcer shows a desktop notification and runs the configured
// completion command whenever a target is reached.
type Announcer struct {
	logger  *slog.Logger
	notify  func(title, message, icon string) error
	Cmd     string
	Enabled bool
}

// NewAnnouncer returns an Announcer backed by beeep desktop notifications.
func NewAnnouncer(enabled bool, cmd string, logger *slog.Logger) *Announcer {
	return &Announcer{
		Enabled: enabled,
		Cmd:     cmd,
		logger:  logger,
		notify:  beeep.Notify,
	}
}

// Announce sends the notification and runs the completion command. A
// notification failure is logged and ignored; the command error is returned.
func (a *Announcer) Announce(ctx context.Context, ann Announcement) error {
	if a.Enabled {
		err := a.notify(notificationTitle, ann.Message, "")
		if err != nil {
			a.logger.Debug("unable to display notification", "err", err)
		}
	}

	return a.runCompletionCmd(ctx, ann)
}

// runCompletionCmd executes the completion command. The counter name and
// target are exposed through the environment.
func (a *Announcer) runCompletionCmd(ctx context.Context, ann Announcement) error {
	if a.Cmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(a.Cmd)
	if err != nil {
		return fmt.Errorf("unable to parse completion_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(
		os.Environ(),
		"MISBAHA_NAME="+ann.Name,
		"MISBAHA_TARGET="+strconv.Itoa(ann.Target),
		"MISBAHA_MESSAGE="+ann.Message,
	)

	return cmd.Run()
}

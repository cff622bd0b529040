package feedback

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/misbaha/internal/config"
	"github.com/ayoisaiah/misbaha/internal/logging"
	"github.com/ayoisaiah/misbaha/internal/osutil"
	"github.com/ayoisaiah/misbaha/tally"
)

func TestNewPulserOff(t *testing.T) {
	p := NewPulser(config.HapticOff, logging.Discard())

	assert.Equal(t, Nop{}, p)
	assert.NotPanics(t, p.Pulse)
}

func TestNewPulserModes(t *testing.T) {
	cases := []struct {
		mode config.HapticMode
		want any
	}{
		{config.HapticBell, &bellPulser{}},
		{config.HapticTone, &tonePulser{}},
	}

	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			p := NewPulser(tc.mode, logging.Discard())

			assert.NotEqual(t, Nop{}, p)
			assert.IsType(t, tc.want, p)
		})
	}
}

func TestPulseDoesNotBlock(t *testing.T) {
	pulsers := map[string]tally.Pulser{
		"bell":           &bellPulser{logger: logging.Discard()},
		"tone not ready": &tonePulser{logger: logging.Discard()},
	}

	for name, p := range pulsers {
		t.Run(name, func(t *testing.T) {
			done := make(chan struct{})

			go func() {
				p.Pulse()
				close(done)
			}()

			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("Pulse blocked")
			}
		})
	}
}

func TestAnnounceNotification(t *testing.T) {
	var gotTitle, gotMsg string

	a := NewAnnouncer(true, "", logging.Discard())
	a.notify = func(title, message, _ string) error {
		gotTitle, gotMsg = title, message
		return nil
	}

	err := a.Announce(context.Background(), Announcement{
		Name:    "x",
		Target:  33,
		Message: "done",
	})
	require.NoError(t, err)

	assert.Equal(t, notificationTitle, gotTitle)
	assert.Equal(t, "done", gotMsg)
}

func TestAnnounceIgnoresNotificationFailure(t *testing.T) {
	a := NewAnnouncer(true, "", logging.Discard())
	a.notify = func(_, _, _ string) error {
		return errors.New("no notification daemon")
	}

	assert.NoError(t, a.Announce(context.Background(), Announcement{}))
}

func TestAnnounceDisabled(t *testing.T) {
	called := false

	a := NewAnnouncer(false, "", logging.Discard())
	a.notify = func(_, _, _ string) error {
		called = true
		return nil
	}

	require.NoError(t, a.Announce(context.Background(), Announcement{}))
	assert.False(t, called)
}

func TestCompletionCmd(t *testing.T) {
	if runtime.GOOS == osutil.Windows {
		t.Skip("completion command test relies on sh")
	}

	out := filepath.Join(t.TempDir(), "out.txt")

	a := NewAnnouncer(
		false,
		`sh -c 'printf "%s:%s" "$MISBAHA_NAME" "$MISBAHA_TARGET" > "$0"' `+out,
		logging.Discard(),
	)

	err := a.Announce(context.Background(), Announcement{
		Name:   "سبحان الله",
		Target: 33,
	})
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "سبحان الله:33", string(b))
}

func TestCompletionCmdParseError(t *testing.T) {
	a := NewAnnouncer(false, `echo "unterminated`, logging.Discard())

	assert.Error(t, a.Announce(context.Background(), Announcement{}))
}

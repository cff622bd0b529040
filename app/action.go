package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/misbaha/feedback"
	"github.com/ayoisaiah/misbaha/internal/config"
	"github.com/ayoisaiah/misbaha/internal/logging"
	"github.com/ayoisaiah/misbaha/internal/pathutil"
	"github.com/ayoisaiah/misbaha/store"
	"github.com/ayoisaiah/misbaha/tally"
	"github.com/ayoisaiah/misbaha/ui"
)

const (
	envNoColor        = "NO_COLOR"
	envMisbahaNoColor = "MISBAHA_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// session holds everything an action needs to work with the counters.
type session struct {
	cfg       *config.Config
	db        store.DB
	tally     *tally.Tally
	announcer *feedback.Announcer
	logCloser io.Closer
	out       io.Writer
	in        io.Reader
}

// Close flushes pending writes and releases the database.
func (s *session) Close() {
	s.tally.Close()

	if err := s.db.Close(); err != nil {
		slog.Error("unable to close database", "err", err)
	}

	_ = s.logCloser.Close()
}

// openSession loads the configuration, sets up logging and opens the
// counter store. Haptic feedback is only wired for the interactive shell.
func openSession(ctx *cli.Context, interactive bool) (*session, error) {
	configPath := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	if cfg.CLI.NoColor {
		disableStyling()
	}

	logCloser, err := logging.Init(logging.Options{
		Path:   pathutil.LogFilePath(),
		Debug:  cfg.CLI.Debug,
		Stderr: config.Stderr,
	})
	if err != nil {
		return nil, err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		_ = logCloser.Close()
		return nil, err
	}

	logger := slog.Default()

	opts := []tally.Option{
		tally.WithLogger(logger),
		tally.WithDarkDetector(ui.DetectDark),
	}

	if interactive {
		opts = append(
			opts,
			tally.WithPulser(feedback.NewPulser(cfg.Settings.Haptic, logger)),
		)
	}

	return &session{
		cfg:   cfg,
		db:    db,
		tally: tally.New(db, opts...),
		announcer: feedback.NewAnnouncer(
			cfg.Notifications.Enabled,
			cfg.Settings.CompletionCmd,
			logger,
		),
		logCloser: logCloser,
		out:       ctx.App.Writer,
		in:        config.Stdin,
	}, nil
}

type sessionAction func(ctx *cli.Context, s *session) error

// withTally opens a session for the duration of a headless action.
func withTally(action sessionAction) cli.ActionFunc {
	return withSession(action, false)
}

func withSession(action sessionAction, interactive bool) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		s, err := openSession(ctx, interactive)
		if err != nil {
			return err
		}

		defer s.Close()

		return action(ctx, s)
	}
}

// defaultAction opens the interactive counter.
func defaultAction(_ *cli.Context, s *session) error {
	m := ui.New(s.tally, ui.Options{
		Announcer:   s.announcer,
		Logger:      slog.Default(),
		AccentColor: s.cfg.Display.AccentColor,
		ProgressBar: s.cfg.Display.ProgressBar,
	})

	return ui.Run(m)
}

// editConfigAction handles the edit-config command which opens the misbaha
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/misbaha/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if MISBAHA_NO_COLOR is set
	if _, exists := os.LookupEnv(envMisbahaNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return pathutil.Initialize()
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting misbaha")

	return nil
}

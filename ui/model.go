// Package ui is the terminal presentation shell. It renders the list and
// counting screens and routes key presses to tally operations.
package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/misbaha/feedback"
	"github.com/ayoisaiah/misbaha/internal/logging"
	"github.com/ayoisaiah/misbaha/tally"
)

// Announcer is notified when a counter reaches its target.
type Announcer interface {
	Announce(ctx context.Context, ann feedback.Announcement) error
}

type formKind int

const (
	formNone formKind = iota
	formTarget
	formEdit
	formDelete
)

// formFields holds the values bound to the active huh form.
type formFields struct {
	counterID string
	name      string
	target    string
	pin       bool
	confirm   bool
}

// Options configures the shell.
type Options struct {
	Announcer   Announcer
	Logger      *slog.Logger
	AccentColor string
	ProgressBar bool
}

// Model is the bubbletea model for the shell.
type Model struct {
	tally      *tally.Tally
	announcer  Announcer
	logger     *slog.Logger
	form       *huh.Form
	styles     Styles
	snap       tally.Snapshot
	accent     string
	completion string
	fields     formFields
	help       help.Model
	progress   progress.Model
	formKind   formKind
	cursor     int
	width      int
	showBar    bool
}

// New returns a shell driving t. The model observes t and renders the latest
// snapshot it was given.
func New(t *tally.Tally, opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	m := &Model{
		tally:     t,
		announcer: opts.Announcer,
		logger:    opts.Logger,
		accent:    opts.AccentColor,
		showBar:   opts.ProgressBar,
		help:      help.New(),
		snap:      t.Snapshot(),
	}

	m.applyTheme()

	t.Subscribe(m.observe)

	return m
}

func (m *Model) observe(snap tally.Snapshot) {
	themeChanged := snap.Theme != m.snap.Theme

	m.snap = snap

	if themeChanged {
		m.applyTheme()
	}

	m.clampCursor()
}

func (m *Model) applyTheme() {
	m.styles = NewStyles(m.snap.Theme, m.accent)

	width := maxWidth
	if m.progress.Width > 0 {
		width = m.progress.Width
	}

	m.progress = progress.New(
		progress.WithSolidFill(string(m.styles.AccentColor)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
}

func (m *Model) clampCursor() {
	n := len(m.snap.Counters)
	if m.cursor >= n {
		m.cursor = n - 1
	}

	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the id of the counter under the cursor.
func (m *Model) selected() string {
	if m.cursor < 0 || m.cursor >= len(m.snap.Counters) {
		return ""
	}

	return m.snap.Counters[m.cursor].ID
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Run starts the shell and blocks until the user quits.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err := p.Run()

	return err
}

// Package tally owns the counter collection and implements every operation
// that changes it: selection, counting, resets, edits and the theme toggle.
//
// A Tally is not safe for concurrent use. It is driven from a single
// goroutine, such as a bubbletea update loop or a CLI action. Persistence
// happens in the background and never blocks or rolls back an operation.
package tally

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/ayoisaiah/misbaha/internal/logging"
	"github.com/ayoisaiah/misbaha/internal/models"
	"github.com/ayoisaiah/misbaha/store"
)

// Screen is the top-level state of the presentation shell.
type Screen int

const (
	// ScreenList shows the collection.
	ScreenList Screen = iota
	// ScreenCounting shows the active counter.
	ScreenCounting
)

func (s Screen) String() string {
	if s == ScreenCounting {
		return "counting"
	}

	return "list"
}

// Persister is the durable storage used by a Tally.
type Persister interface {
	LoadCounters() ([]models.Counter, error)
	SaveCounters(counters []models.Counter) error
	LoadTheme() (models.Theme, error)
	SaveTheme(theme models.Theme) error
}

// Pulser requests a brief acknowledgement for a counted tap. Pulse must not
// block.
type Pulser interface {
	Pulse()
}

// Snapshot is a read-only view of the state after a mutation.
type Snapshot struct {
	ActiveID  string
	PendingID string
	Theme     models.Theme
	Counters  []models.Counter
	Screen    Screen
}

// Tally is the counter store.
type Tally struct {
	logger      *slog.Logger
	pulser      Pulser
	writer      *writer
	detectDark  func() bool
	newID       func() string
	activeID    string
	pendingID   string
	theme       models.Theme
	counters    []models.Counter
	subscribers []func(Snapshot)
	screen      Screen
}

// Option configures a Tally.
type Option func(*Tally)

// WithLogger sets the logger used for persistence and recovery messages.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tally) {
		t.logger = l
	}
}

// WithPulser sets the haptic pulse requested on every counted tap.
func WithPulser(p Pulser) Option {
	return func(t *Tally) {
		t.pulser = p
	}
}

// WithDarkDetector sets the function that reports the host's ambient colour
// scheme. It is only consulted when no theme has been saved.
func WithDarkDetector(fn func() bool) Option {
	return func(t *Tally) {
		t.detectDark = fn
	}
}

// WithIDGenerator overrides how ids for new counters are created.
func WithIDGenerator(fn func() string) Option {
	return func(t *Tally) {
		t.newID = fn
	}
}

// New loads the collection and then the theme from db. A missing or corrupt
// collection is replaced with DefaultCounters, and a missing theme is resolved
// from the ambient colour scheme and saved.
func New(db Persister, opts ...Option) *Tally {
	t := &Tally{
		logger:     logging.Discard(),
		pulser:     nopPulser{},
		detectDark: func() bool { return false },
		newID:      newID,
		screen:     ScreenList,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.counters = t.loadCounters(db)
	t.theme = t.loadTheme(db)
	t.writer = newWriter(db, t.logger)

	return t
}

func (t *Tally) loadCounters(db Persister) []models.Counter {
	counters, err := db.LoadCounters()
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			t.logger.Warn("discarding unreadable counters", "err", err)
		}

		return DefaultCounters()
	}

	if err := validateCollection(counters); err != nil {
		t.logger.Warn("discarding invalid counters", "err", err)
		return DefaultCounters()
	}

	return counters
}

func (t *Tally) loadTheme(db Persister) models.Theme {
	theme, err := db.LoadTheme()
	if err == nil {
		return theme
	}

	if !errors.Is(err, store.ErrNotFound) {
		t.logger.Warn("discarding unreadable theme", "err", err)
	}

	theme = models.Light
	if t.detectDark() {
		theme = models.Dark
	}

	if err := db.SaveTheme(theme); err != nil {
		t.logger.Error("unable to save theme", "err", err)
	}

	return theme
}

// Close waits for pending writes to finish. The Tally must not be used
// afterwards.
func (t *Tally) Close() {
	t.writer.close()
}

// Subscribe registers fn to be called with a snapshot after every mutation.
func (t *Tally) Subscribe(fn func(Snapshot)) {
	t.subscribers = append(t.subscribers, fn)
}

// Counters returns a copy of the collection in display order.
func (t *Tally) Counters() []models.Counter {
	return slices.Clone(t.counters)
}

// Get returns the counter with the given id.
func (t *Tally) Get(id string) (models.Counter, bool) {
	i := t.index(id)
	if i < 0 {
		return models.Counter{}, false
	}

	return t.counters[i], true
}

// Active returns the counter being counted, if any.
func (t *Tally) Active() (models.Counter, bool) {
	if t.activeID == "" {
		return models.Counter{}, false
	}

	return t.Get(t.activeID)
}

// Pending returns the counter awaiting target setup, if any.
func (t *Tally) Pending() (models.Counter, bool) {
	if t.pendingID == "" {
		return models.Counter{}, false
	}

	return t.Get(t.pendingID)
}

// Screen returns the current screen.
func (t *Tally) Screen() Screen {
	return t.screen
}

// Theme returns the theme preference.
func (t *Tally) Theme() models.Theme {
	return t.theme
}

// Snapshot returns the current state.
func (t *Tally) Snapshot() Snapshot {
	return Snapshot{
		Counters:  t.Counters(),
		ActiveID:  t.activeID,
		PendingID: t.pendingID,
		Screen:    t.screen,
		Theme:     t.theme,
	}
}

func (t *Tally) index(id string) int {
	if id == "" {
		return -1
	}

	return slices.IndexFunc(t.counters, func(c models.Counter) bool {
		return c.ID == id
	})
}

// changed persists the collection and notifies subscribers.
func (t *Tally) changed() {
	t.writer.saveCounters(t.Counters())
	t.notify()
}

func (t *Tally) notify() {
	if len(t.subscribers) == 0 {
		return
	}

	snap := t.Snapshot()

	for _, fn := range t.subscribers {
		fn(snap)
	}
}

type nopPulser struct{}

func (nopPulser) Pulse() {}

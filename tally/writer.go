package tally

import (
	"log/slog"

	"github.com/ayoisaiah/misbaha/internal/models"
)

// writer persists snapshots on a background goroutine. Each record has a
// single slot: a snapshot that has not been written yet is replaced by a newer
// one, so a burst of taps results in few writes and the last write always
// carries the latest state.
type writer struct {
	db       Persister
	logger   *slog.Logger
	counters chan []models.Counter
	theme    chan models.Theme
	done     chan struct{}
	closed   bool
}

func newWriter(db Persister, logger *slog.Logger) *writer {
	w := &writer{
		db:       db,
		logger:   logger,
		counters: make(chan []models.Counter, 1),
		theme:    make(chan models.Theme, 1),
		done:     make(chan struct{}),
	}

	go w.run()

	return w
}

func (w *writer) run() {
	defer close(w.done)

	counters, theme := w.counters, w.theme

	for counters != nil || theme != nil {
		select {
		case c, ok := <-counters:
			if !ok {
				counters = nil
				continue
			}

			if err := w.db.SaveCounters(c); err != nil {
				w.logger.Error("unable to save counters", "err", err)
			}
		case th, ok := <-theme:
			if !ok {
				theme = nil
				continue
			}

			if err := w.db.SaveTheme(th); err != nil {
				w.logger.Error("unable to save theme", "err", err)
			}
		}
	}
}

// saveCounters queues counters for writing. It never blocks because the
// Tally is the only sender.
func (w *writer) saveCounters(counters []models.Counter) {
	if w.closed {
		return
	}

	select {
	case <-w.counters:
	default:
	}

	w.counters <- counters
}

func (w *writer) saveTheme(theme models.Theme) {
	if w.closed {
		return
	}

	select {
	case <-w.theme:
	default:
	}

	w.theme <- theme
}

// close flushes the queued snapshots and stops the goroutine.
func (w *writer) close() {
	if w.closed {
		return
	}

	w.closed = true

	close(w.counters)
	close(w.theme)

	<-w.done
}

package store

import (
	"github.com/ayoisaiah/misbaha/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// LoadCounters returns the persisted collection in display order. It
	// returns ErrNotFound if nothing has been saved yet.
	LoadCounters() ([]models.Counter, error)
	// SaveCounters overwrites the persisted collection
	SaveCounters(counters []models.Counter) error
	// LoadTheme returns the persisted theme preference or ErrNotFound
	LoadTheme() (models.Theme, error)
	// SaveTheme overwrites the persisted theme preference
	SaveTheme(theme models.Theme) error
	// Close ends the database connection
	Close() error
}

// Package store persists the counter collection and the theme preference in
// a BoltDB file
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/misbaha/internal/apperr"
	"github.com/ayoisaiah/misbaha/internal/models"
)

const (
	bucketName = "misbaha"
	// countersKey is versioned so that records written by an older schema
	// can be told apart and migrated.
	countersKey = "azkar.v2"
	themeKey    = "theme"
)

var (
	// ErrNotFound is returned when a record has never been saved.
	ErrNotFound = errors.New("record not found")

	errNullCollection = errors.New("stored collection is null")

	errAlreadyRunning = &apperr.Error{
		Message: "is misbaha already running? Only one instance can be active at a time",
	}

	errInvalidTheme = &apperr.Error{
		Message: "stored theme %q is not recognised",
	}
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) LoadCounters() ([]models.Counter, error) {
	var counters []models.Counter

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName)).Get([]byte(countersKey))
		if b == nil {
			return ErrNotFound
		}

		return json.Unmarshal(b, &counters)
	})
	if err != nil {
		return nil, err
	}

	if counters == nil {
		return nil, errNullCollection
	}

	return counters, nil
}

func (c *Client) SaveCounters(counters []models.Counter) error {
	if counters == nil {
		counters = []models.Counter{}
	}

	value, err := json.Marshal(counters)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(countersKey), value)
	})
}

func (c *Client) LoadTheme() (models.Theme, error) {
	var theme models.Theme

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName)).Get([]byte(themeKey))
		if b == nil {
			return ErrNotFound
		}

		var ok bool

		theme, ok = models.ParseTheme(string(b))
		if !ok {
			return errInvalidTheme.Fmt(string(b))
		}

		return nil
	})

	return theme, err
}

func (c *Client) SaveTheme(theme models.Theme) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(themeKey), []byte(theme))
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection. Records written by the
// previous schema are migrated before the client is returned.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	c := &Client{
		db,
	}

	// Create the bucket for storing data if it does not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return err
		}

		return c.migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}

package store

import (
	"encoding/json"

	"go.etcd.io/bbolt"

	"github.com/ayoisaiah/misbaha/internal/models"
)

// legacyCountersKey holds the collection written by the first release, which
// used camelCase field names.
const legacyCountersKey = "safaa_react_v1"

// LegacyCounter is a counter record in the v1 schema.
type LegacyCounter struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CurrentCount int    `json:"currentCount"`
	Lifetime     int    `json:"lifetime"`
	Target       int    `json:"target"`
	IsFixed      bool   `json:"isFixed"`
}

// ToModel converts a v1 record to the current schema.
func (l LegacyCounter) ToModel() models.Counter {
	return models.Counter{
		ID:           l.ID,
		Name:         l.Name,
		CurrentCount: l.CurrentCount,
		Lifetime:     l.Lifetime,
		Target:       l.Target,
		IsFixed:      l.IsFixed,
	}
}

// DecodeLegacy parses a v1 collection.
func DecodeLegacy(b []byte) ([]models.Counter, error) {
	var legacy []LegacyCounter

	err := json.Unmarshal(b, &legacy)
	if err != nil {
		return nil, err
	}

	if legacy == nil {
		return nil, errNullCollection
	}

	counters := make([]models.Counter, len(legacy))
	for i := range legacy {
		counters[i] = legacy[i].ToModel()
	}

	return counters, nil
}

// migrateCounters rewrites a v1 collection under the current key. An
// unreadable v1 record is dropped, and an existing v2 record always wins.
func migrateCounters(tx *bbolt.Tx) error {
	bucket := tx.Bucket([]byte(bucketName))

	v := bucket.Get([]byte(legacyCountersKey))
	if v == nil {
		return nil
	}

	if bucket.Get([]byte(countersKey)) == nil {
		counters, err := DecodeLegacy(v)
		if err == nil {
			var b []byte

			b, err = json.Marshal(counters)
			if err != nil {
				return err
			}

			err = bucket.Put([]byte(countersKey), b)
			if err != nil {
				return err
			}
		}
	}

	return bucket.Delete([]byte(legacyCountersKey))
}

func (c *Client) migrate(tx *bbolt.Tx) error {
	return migrateCounters(tx)
}

package tally

import (
	"github.com/ayoisaiah/misbaha/internal/apperr"
	"github.com/ayoisaiah/misbaha/internal/models"
)

var (
	errCounterNotFound = &apperr.Error{
		Message: "counter %q not found",
	}

	errDuplicateID = &apperr.Error{
		Message: "duplicate counter id %q",
	}

	errInvalidCounter = &apperr.Error{
		Message: "invalid counter at position %d",
	}

	errInvalidImport = &apperr.Error{
		Message: "import rejected",
	}
)

// ErrCounterNotFound is returned when an id or name does not match any
// counter.
var ErrCounterNotFound error = errCounterNotFound

// DefaultCounters returns the collection used on first run or when the
// stored collection cannot be read.
func DefaultCounters() []models.Counter {
	return []models.Counter{
		{ID: "1", Name: "أستغفر الله", Target: 100},
		{ID: "2", Name: "سبحان الله وبحمده", Target: 33, IsFixed: true},
		{ID: "3", Name: "اللهم صلِ على محمد"},
	}
}

func validateCollection(counters []models.Counter) error {
	seen := make(map[string]struct{}, len(counters))

	for i := range counters {
		c := &counters[i]

		if err := c.Validate(); err != nil {
			return errInvalidCounter.Fmt(i + 1).Wrap(err)
		}

		if _, ok := seen[c.ID]; ok {
			return errDuplicateID.Fmt(c.ID)
		}

		seen[c.ID] = struct{}{}
	}

	return nil
}

// Package models defines the records persisted by misbaha
package models

import (
	"errors"
	"strings"
)

var (
	errBlankID       = errors.New("counter id must not be blank")
	errBlankName     = errors.New("counter name must not be blank")
	errNegativeCount = errors.New("counter values must not be negative")
)

// Counter is a single named tally (a zekr).
type Counter struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// CurrentCount is the progress of the current session. It only goes back
	// to zero through an explicit reset.
	CurrentCount int `json:"current_count"`
	// Lifetime is the cumulative count across all sessions and resets.
	Lifetime int `json:"lifetime"`
	// Target is the goal for a session. Zero means there is no target.
	Target int `json:"target"`
	// IsFixed skips the target prompt and starts counting with the stored
	// target.
	IsFixed bool `json:"is_fixed"`
}

// HasTarget reports whether the counter has a positive goal.
func (c *Counter) HasTarget() bool {
	return c.Target > 0
}

// Completed reports whether the current session has reached its target.
func (c *Counter) Completed() bool {
	return c.HasTarget() && c.CurrentCount >= c.Target
}

// Remaining returns how many counts are left until the target is reached.
func (c *Counter) Remaining() int {
	if !c.HasTarget() {
		return 0
	}

	return max(0, c.Target-c.CurrentCount)
}

// Progress returns the session progress as a fraction between 0 and 1.
func (c *Counter) Progress() float64 {
	if !c.HasTarget() {
		return 0
	}

	return min(1, float64(c.CurrentCount)/float64(c.Target))
}

// Validate checks the invariants every stored counter must satisfy.
func (c *Counter) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errBlankID
	}

	if strings.TrimSpace(c.Name) == "" {
		return errBlankName
	}

	if c.CurrentCount < 0 || c.Lifetime < 0 || c.Target < 0 {
		return errNegativeCount
	}

	return nil
}

// Theme is the visual theme preference.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// ParseTheme converts a stored or user-supplied value into a Theme.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, true
	case Light:
		return Light, true
	}

	return "", false
}

// IsDark reports whether the theme is the dark one.
func (t Theme) IsDark() bool {
	return t == Dark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}

	return Dark
}

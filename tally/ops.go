package tally

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/ayoisaiah/misbaha/internal/models"
)

// DefaultName is given to new counters created without a name.
const DefaultName = "ذكر جديد"

// SelectResult tells the shell what to show after Select.
type SelectResult int

const (
	// SelectNone means the id did not name a counter.
	SelectNone SelectResult = iota
	// SelectCounting means the counter is active and counting can begin.
	SelectCounting
	// SelectPrompt means a target must be chosen with ConfirmTargetSetup or
	// dismissed with CancelTargetSetup.
	SelectPrompt
)

// Completion is emitted by the tap that makes a counter reach its target.
type Completion struct {
	CounterID string
	Name      string
	Message   string
	Target    int
}

// HitResult describes the outcome of Hit.
type HitResult struct {
	// Completion is set only on the tap that reaches the target.
	Completion *Completion
	Counter    models.Counter
	// Counted is false when there is no active counter or the target has
	// already been reached.
	Counted bool
}

// CompletionMessage returns the message shown when a target is reached.
func CompletionMessage(name string, target int) string {
	return fmt.Sprintf("أتممت ورد \"%s\" بنجاح (%d)", name, target)
}

// Select starts the entry flow for the counter with the given id. Fixed
// counters become active straight away; other counters wait for a target.
func (t *Tally) Select(id string) SelectResult {
	i := t.index(id)
	if i < 0 {
		return SelectNone
	}

	if t.counters[i].IsFixed {
		t.pendingID = ""
		t.activeID = id
		t.screen = ScreenCounting
		t.notify()

		return SelectCounting
	}

	t.pendingID = id
	t.notify()

	return SelectPrompt
}

// ConfirmTargetSetup stores target and pin as the pending counter's Target
// and IsFixed fields and makes it active. Negative targets mean no target. It
// reports false if no counter is awaiting setup.
func (t *Tally) ConfirmTargetSetup(target int, pin bool) bool {
	i := t.index(t.pendingID)
	if i < 0 {
		t.pendingID = ""
		return false
	}

	t.counters[i].Target = max(0, target)
	t.counters[i].IsFixed = pin

	t.activeID = t.pendingID
	t.pendingID = ""
	t.screen = ScreenCounting

	t.changed()

	return true
}

// CancelTargetSetup dismisses the target prompt without changing anything.
func (t *Tally) CancelTargetSetup() {
	if t.pendingID == "" {
		return
	}

	t.pendingID = ""
	t.notify()
}

// Hit counts one tap on the active counter. Once a positive target has been
// reached, further taps are ignored until the counter is reset.
func (t *Tally) Hit() HitResult {
	i := t.index(t.activeID)
	if i < 0 {
		return HitResult{}
	}

	c := &t.counters[i]

	if c.Completed() {
		return HitResult{Counter: *c}
	}

	c.CurrentCount++
	c.Lifetime++

	res := HitResult{
		Counter: *c,
		Counted: true,
	}

	if c.HasTarget() && c.CurrentCount == c.Target {
		res.Completion = &Completion{
			CounterID: c.ID,
			Name:      c.Name,
			Target:    c.Target,
			Message:   CompletionMessage(c.Name, c.Target),
		}
	}

	t.pulser.Pulse()

	t.changed()

	return res
}

// Reset sets the active counter's session count back to zero.
func (t *Tally) Reset() bool {
	i := t.index(t.activeID)
	if i < 0 {
		return false
	}

	t.counters[i].CurrentCount = 0

	t.changed()

	return true
}

// GoBack returns to the list and clears the active counter.
func (t *Tally) GoBack() {
	t.activeID = ""
	t.pendingID = ""
	t.screen = ScreenList
	t.notify()
}

// Save updates the counter named by existingID, or appends a new counter when
// existingID is empty. Edits keep the counts; a blank name keeps the old name
// on edit and falls back to DefaultName on creation.
func (t *Tally) Save(
	existingID, name string,
	target int,
	fixed bool,
) (models.Counter, error) {
	name = strings.TrimSpace(name)
	target = max(0, target)

	if existingID != "" {
		i := t.index(existingID)
		if i < 0 {
			return models.Counter{}, errCounterNotFound.Fmt(existingID)
		}

		c := &t.counters[i]
		if name != "" {
			c.Name = name
		}

		c.Target = target
		c.IsFixed = fixed

		t.changed()

		return *c, nil
	}

	if name == "" {
		name = DefaultName
	}

	c := models.Counter{
		ID:      t.uniqueID(),
		Name:    name,
		Target:  target,
		IsFixed: fixed,
	}

	t.counters = append(t.counters, c)

	t.changed()

	return c, nil
}

// Delete removes the counter with the given id. If it was active or awaiting
// target setup, that reference is cleared and the shell returns to the list.
func (t *Tally) Delete(id string) bool {
	i := t.index(id)
	if i < 0 {
		return false
	}

	t.counters = slices.Delete(t.counters, i, i+1)

	if t.activeID == id {
		t.activeID = ""
		t.screen = ScreenList
	}

	if t.pendingID == id {
		t.pendingID = ""
	}

	t.changed()

	return true
}

// Find resolves ref as a counter id or, failing that, as a counter name
// compared without regard to case.
func (t *Tally) Find(ref string) (models.Counter, error) {
	if c, ok := t.Get(ref); ok {
		return c, nil
	}

	ref = strings.TrimSpace(ref)

	for _, c := range t.counters {
		if strings.EqualFold(c.Name, ref) {
			return c, nil
		}
	}

	return models.Counter{}, errCounterNotFound.Fmt(ref)
}

// Import replaces the whole collection. The records are validated first and
// nothing changes if any of them is invalid.
func (t *Tally) Import(counters []models.Counter) error {
	if err := validateCollection(counters); err != nil {
		return errInvalidImport.Wrap(err)
	}

	t.counters = slices.Clone(counters)
	t.activeID = ""
	t.pendingID = ""
	t.screen = ScreenList

	t.changed()

	return nil
}

// ToggleTheme switches between the dark and light themes and returns the new
// one.
func (t *Tally) ToggleTheme() models.Theme {
	return t.SetTheme(t.theme.Toggle())
}

// SetTheme stores the theme preference.
func (t *Tally) SetTheme(theme models.Theme) models.Theme {
	t.theme = theme
	t.writer.saveTheme(theme)
	t.notify()

	return t.theme
}

func (t *Tally) uniqueID() string {
	for {
		id := t.newID()
		if t.index(id) < 0 {
			return id
		}
	}
}

func newID() string {
	return uuid.NewString()
}

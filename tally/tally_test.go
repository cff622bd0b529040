package tally

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/misbaha/internal/models"
	"github.com/ayoisaiah/misbaha/store"
)

// memDB is an in-memory Persister.
type memDB struct {
	counters     []models.Counter
	theme        models.Theme
	loadErr      error
	saveErr      error
	counterSaves int
	themeSaves   int
	mu           sync.Mutex
}

func (m *memDB) LoadCounters() ([]models.Counter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loadErr != nil {
		return nil, m.loadErr
	}

	if m.counters == nil {
		return nil, store.ErrNotFound
	}

	return slices.Clone(m.counters), nil
}

func (m *memDB) SaveCounters(counters []models.Counter) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counterSaves++

	if m.saveErr != nil {
		return m.saveErr
	}

	m.counters = slices.Clone(counters)

	return nil
}

func (m *memDB) LoadTheme() (models.Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.theme == "" {
		return "", store.ErrNotFound
	}

	return m.theme, nil
}

func (m *memDB) SaveTheme(theme models.Theme) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.themeSaves++
	m.theme = theme

	return nil
}

type countingPulser struct {
	n int
}

func (p *countingPulser) Pulse() {
	p.n++
}

func sequentialIDs() func() string {
	var n int

	return func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	}
}

func newTestTally(t *testing.T, db *memDB, opts ...Option) *Tally {
	t.Helper()

	opts = append([]Option{WithIDGenerator(sequentialIDs())}, opts...)

	tl := New(db, opts...)

	t.Cleanup(tl.Close)

	return tl
}

func hitN(tl *Tally, n int) []HitResult {
	results := make([]HitResult, n)
	for i := 0; i < n; i++ {
		results[i] = tl.Hit()
	}

	return results
}

func TestNewSeedsDefaults(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	assert.Equal(t, DefaultCounters(), tl.Counters())
	assert.Equal(t, ScreenList, tl.Screen())

	_, ok := tl.Active()
	assert.False(t, ok)
}

func TestNewRecoversFromCorruptData(t *testing.T) {
	testCases := []struct {
		Name string
		DB   *memDB
	}{
		{
			Name: "load error",
			DB:   &memDB{loadErr: errors.New("invalid character 'x'")},
		},
		{
			Name: "duplicate ids",
			DB: &memDB{counters: []models.Counter{
				{ID: "a", Name: "x"},
				{ID: "a", Name: "y"},
			}},
		},
		{
			Name: "negative count",
			DB: &memDB{counters: []models.Counter{
				{ID: "a", Name: "x", CurrentCount: -4},
			}},
		},
		{
			Name: "blank name",
			DB: &memDB{counters: []models.Counter{
				{ID: "a", Name: ""},
			}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tl := newTestTally(t, tc.DB)

			assert.Equal(t, DefaultCounters(), tl.Counters())
		})
	}
}

func TestNewKeepsEmptyCollection(t *testing.T) {
	tl := newTestTally(t, &memDB{counters: []models.Counter{}})

	assert.Empty(t, tl.Counters())
}

func TestThemeResolution(t *testing.T) {
	t.Run("stored theme wins", func(t *testing.T) {
		db := &memDB{theme: models.Light}
		tl := newTestTally(t, db, WithDarkDetector(func() bool { return true }))

		assert.Equal(t, models.Light, tl.Theme())
		assert.Equal(t, 0, db.themeSaves)
	})

	t.Run("ambient dark preference", func(t *testing.T) {
		db := &memDB{}
		tl := newTestTally(t, db, WithDarkDetector(func() bool { return true }))

		assert.Equal(t, models.Dark, tl.Theme())
		assert.Equal(t, models.Dark, db.theme)
	})

	t.Run("defaults to light", func(t *testing.T) {
		tl := newTestTally(t, &memDB{})

		assert.Equal(t, models.Light, tl.Theme())
	})
}

func TestToggleTheme(t *testing.T) {
	db := &memDB{theme: models.Light}
	tl := New(db)

	assert.Equal(t, models.Dark, tl.ToggleTheme())
	assert.Equal(t, models.Light, tl.ToggleTheme())
	assert.Equal(t, models.Dark, tl.ToggleTheme())

	tl.Close()

	assert.Equal(t, models.Dark, db.theme)
}

func TestSelectFixedCounter(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	res := tl.Select("2")
	assert.Equal(t, SelectCounting, res)
	assert.Equal(t, ScreenCounting, tl.Screen())

	active, ok := tl.Active()
	require.True(t, ok)
	assert.Equal(t, 33, active.Target)
}

func TestSelectPromptsForTarget(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	res := tl.Select("1")
	assert.Equal(t, SelectPrompt, res)
	assert.Equal(t, ScreenList, tl.Screen())

	pending, ok := tl.Pending()
	require.True(t, ok)
	assert.Equal(t, "1", pending.ID)

	_, ok = tl.Active()
	assert.False(t, ok)
}

func TestSelectUnknown(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	assert.Equal(t, SelectNone, tl.Select("nope"))
	assert.Equal(t, ScreenList, tl.Screen())
}

func TestConfirmTargetSetup(t *testing.T) {
	db := &memDB{}
	tl := New(db)

	tl.Select("1")
	ok := tl.ConfirmTargetSetup(7, true)
	require.True(t, ok)

	assert.Equal(t, ScreenCounting, tl.Screen())

	active, found := tl.Active()
	require.True(t, found)
	assert.Equal(t, 7, active.Target)
	assert.True(t, active.IsFixed)

	_, found = tl.Pending()
	assert.False(t, found)

	tl.Close()

	assert.Equal(t, 7, db.counters[0].Target)
	assert.True(t, db.counters[0].IsFixed)
}

func TestConfirmTargetSetupNormalizesNegative(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	tl.Select("1")
	tl.ConfirmTargetSetup(-10, false)

	active, _ := tl.Active()
	assert.Equal(t, 0, active.Target)
	assert.False(t, active.IsFixed)
}

func TestConfirmWithoutPending(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	assert.False(t, tl.ConfirmTargetSetup(5, true))
	assert.Equal(t, DefaultCounters(), tl.Counters())
	assert.Equal(t, ScreenList, tl.Screen())
}

func TestCancelTargetSetup(t *testing.T) {
	db := &memDB{}
	tl := New(db)

	tl.Select("3")
	tl.CancelTargetSetup()

	_, ok := tl.Pending()
	assert.False(t, ok)
	assert.Equal(t, ScreenList, tl.Screen())
	assert.False(t, tl.ConfirmTargetSetup(5, false))

	tl.Close()

	assert.Equal(t, 0, db.counterSaves)
}

func TestHitWithoutTargetNeverSaturates(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	tl.Select("3")
	tl.ConfirmTargetSetup(0, false)

	for i, res := range hitN(tl, 250) {
		assert.True(t, res.Counted)
		assert.Nil(t, res.Completion)
		assert.Equal(t, i+1, res.Counter.CurrentCount)
	}

	tl.Reset()
	hitN(tl, 50)

	active, _ := tl.Active()
	assert.Equal(t, 50, active.CurrentCount)
	assert.Equal(t, 300, active.Lifetime)
}

func TestHitSaturatesAtTarget(t *testing.T) {
	for _, target := range []int{1, 2, 33, 100} {
		t.Run(fmt.Sprintf("target %d", target), func(t *testing.T) {
			tl := newTestTally(t, &memDB{})

			tl.Select("1")
			tl.ConfirmTargetSetup(target, false)

			var completions []*Completion

			for _, res := range hitN(tl, target) {
				assert.True(t, res.Counted)

				if res.Completion != nil {
					completions = append(completions, res.Completion)
				}
			}

			require.Len(t, completions, 1)
			assert.Equal(t, target, completions[0].Target)

			extra := tl.Hit()
			assert.False(t, extra.Counted)
			assert.Nil(t, extra.Completion)
			assert.Equal(t, target, extra.Counter.CurrentCount)
			assert.Equal(t, target, extra.Counter.Lifetime)
		})
	}
}

func TestHitCompletionOnlyOnFinalTap(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	tl.Select("2")

	results := hitN(tl, 33)

	for _, res := range results[:32] {
		assert.Nil(t, res.Completion)
	}

	assert.Equal(t, &Completion{
		CounterID: "2",
		Name:      "سبحان الله وبحمده",
		Target:    33,
		Message:   `أتممت ورد "سبحان الله وبحمده" بنجاح (33)`,
	}, results[32].Completion)
}

func TestHitRequestsPulse(t *testing.T) {
	p := &countingPulser{}
	tl := newTestTally(t, &memDB{}, WithPulser(p))

	tl.Hit()
	assert.Equal(t, 0, p.n, "no active counter")

	tl.Select("2")
	hitN(tl, 40)

	assert.Equal(t, 33, p.n, "saturated taps do not pulse")
}

func TestHitAndResetWithoutActive(t *testing.T) {
	db := &memDB{}
	tl := New(db)

	assert.Equal(t, HitResult{}, tl.Hit())
	assert.False(t, tl.Reset())

	tl.Close()

	assert.Equal(t, 0, db.counterSaves)
}

func TestReset(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	tl.Select("2")
	hitN(tl, 10)

	require.True(t, tl.Reset())

	active, _ := tl.Active()
	assert.Equal(t, 0, active.CurrentCount)
	assert.Equal(t, 10, active.Lifetime)
	assert.Equal(t, 33, active.Target)
	assert.True(t, active.IsFixed)
}

func TestResetAfterSaturation(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	tl.Select("2")
	hitN(tl, 33)
	tl.Reset()

	res := tl.Hit()
	assert.True(t, res.Counted)
	assert.Equal(t, 1, res.Counter.CurrentCount)
	assert.Equal(t, 34, res.Counter.Lifetime)
}

func TestGoBackClearsActive(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	tl.Select("2")
	tl.GoBack()

	assert.Equal(t, ScreenList, tl.Screen())

	_, ok := tl.Active()
	assert.False(t, ok)
	assert.False(t, tl.Hit().Counted)
}

func TestSaveCreatesCounter(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	c, err := tl.Save("", "  لا إله إلا الله ", ParseTarget(""), false)
	require.NoError(t, err)

	assert.Equal(t, models.Counter{ID: "new-1", Name: "لا إله إلا الله"}, c)

	counters := tl.Counters()
	require.Len(t, counters, 4)
	assert.Equal(t, c, counters[3])

	tl.Select(c.ID)
	tl.ConfirmTargetSetup(c.Target, false)

	assert.Nil(t, hitN(tl, 1)[0].Completion)
	assert.Equal(t, 5, hitN(tl, 4)[3].Counter.CurrentCount)
}

func TestSaveBlankNameUsesDefault(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	c, err := tl.Save("", "   ", -5, true)
	require.NoError(t, err)

	assert.Equal(t, DefaultName, c.Name)
	assert.Equal(t, 0, c.Target)
	assert.True(t, c.IsFixed)
}

func TestSaveUniqueIDs(t *testing.T) {
	ids := []string{"2", "2", "fresh"}

	tl := newTestTally(t, &memDB{}, WithIDGenerator(func() string {
		id := ids[0]
		ids = ids[1:]

		return id
	}))

	c, err := tl.Save("", "x", 0, false)
	require.NoError(t, err)
	assert.Equal(t, "fresh", c.ID)
}

func TestSaveEditsInPlace(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	tl.Select("2")
	hitN(tl, 5)

	c, err := tl.Save("2", "X", 10, false)
	require.NoError(t, err)

	want := models.Counter{
		ID:           "2",
		Name:         "X",
		CurrentCount: 5,
		Lifetime:     5,
		Target:       10,
	}
	assert.Equal(t, want, c)
	assert.Equal(t, want, tl.Counters()[1])

	c, err = tl.Save("2", " ", 10, false)
	require.NoError(t, err)
	assert.Equal(t, "X", c.Name, "blank name keeps the old one")
}

func TestSaveUnknownID(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	_, err := tl.Save("missing", "x", 0, false)
	assert.ErrorIs(t, err, ErrCounterNotFound)
	assert.Equal(t, DefaultCounters(), tl.Counters())
}

func TestDeleteActiveCounter(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	tl.Select("2")
	hitN(tl, 3)

	require.True(t, tl.Delete("2"))

	assert.Len(t, tl.Counters(), 2)
	assert.Equal(t, ScreenList, tl.Screen())

	_, ok := tl.Active()
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		assert.False(t, tl.Hit().Counted)
		assert.False(t, tl.Reset())
	})
}

func TestDeletePendingCounter(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	tl.Select("1")
	tl.Delete("1")

	_, ok := tl.Pending()
	assert.False(t, ok)
	assert.False(t, tl.ConfirmTargetSetup(3, false))
}

func TestDeleteOtherCounterKeepsActive(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	tl.Select("2")
	tl.Delete("3")

	active, ok := tl.Active()
	require.True(t, ok)
	assert.Equal(t, "2", active.ID)
	assert.Equal(t, ScreenCounting, tl.Screen())
}

func TestDeleteUnknown(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	assert.False(t, tl.Delete("nope"))
	assert.Len(t, tl.Counters(), 3)
}

func TestFind(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	_, err := tl.Save("", "SubhanAllah", 0, false)
	require.NoError(t, err)

	c, err := tl.Find("2")
	require.NoError(t, err)
	assert.Equal(t, "2", c.ID)

	c, err = tl.Find("subhanallah")
	require.NoError(t, err)
	assert.Equal(t, "new-1", c.ID)

	_, err = tl.Find("nothing")
	assert.ErrorIs(t, err, ErrCounterNotFound)
}

func TestImport(t *testing.T) {
	db := &memDB{}
	tl := New(db)

	tl.Select("2")

	imported := []models.Counter{
		{ID: "a", Name: "x", Lifetime: 9},
	}

	require.NoError(t, tl.Import(imported))

	_, ok := tl.Active()
	assert.False(t, ok)
	assert.Equal(t, imported, tl.Counters())

	err := tl.Import([]models.Counter{{ID: "a", Name: "x"}, {ID: "a", Name: "y"}})
	assert.Error(t, err)
	assert.Equal(t, imported, tl.Counters())

	tl.Close()

	assert.Equal(t, imported, db.counters)
}

func TestCountersReturnsCopy(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	counters := tl.Counters()
	counters[0].Name = "changed"

	assert.Equal(t, "أستغفر الله", tl.Counters()[0].Name)
}

func TestSubscribeReadAfterWrite(t *testing.T) {
	tl := newTestTally(t, &memDB{})

	var snaps []Snapshot

	tl.Subscribe(func(s Snapshot) {
		snaps = append(snaps, s)
		assert.Equal(t, s.Counters, tl.Counters())
	})

	tl.Select("2")
	tl.Hit()
	tl.GoBack()

	require.Len(t, snaps, 3)
	assert.Equal(t, ScreenCounting, snaps[0].Screen)
	assert.Equal(t, 1, snaps[1].Counters[1].CurrentCount)
	assert.Equal(t, ScreenList, snaps[2].Screen)
	assert.Empty(t, snaps[2].ActiveID)
}

func TestFailedWriteKeepsState(t *testing.T) {
	db := &memDB{saveErr: errors.New("disk full")}
	tl := New(db)

	tl.Select("2")
	hitN(tl, 3)

	active, _ := tl.Active()
	assert.Equal(t, 3, active.CurrentCount)

	tl.Close()

	assert.Positive(t, db.counterSaves)
}

func TestPersistedStateMatchesAfterClose(t *testing.T) {
	db := &memDB{}
	tl := New(db)

	tl.Select("2")
	hitN(tl, 500)

	want := tl.Counters()

	tl.Close()

	if diff := cmp.Diff(want, db.counters); diff != "" {
		t.Fatalf("persisted counters mismatch (-want +got):\n%s", diff)
	}

	assert.LessOrEqual(t, db.counterSaves, 33)

	reloaded := newTestTally(t, db)
	assert.Equal(t, want, reloaded.Counters())
}

// Seed, complete the fixed counter, reset, rename and delete it.
func TestDefaultScenario(t *testing.T) {
	db := &memDB{}
	tl := New(db)

	require.Equal(t, SelectCounting, tl.Select("2"))

	results := hitN(tl, 33)

	active, _ := tl.Active()
	assert.Equal(t, 33, active.CurrentCount)
	assert.Equal(t, 33, active.Lifetime)
	require.NotNil(t, results[32].Completion)
	assert.Contains(t, results[32].Completion.Message, "(33)")

	tl.Reset()

	active, _ = tl.Active()
	assert.Equal(t, 0, active.CurrentCount)
	assert.Equal(t, 33, active.Lifetime)

	c, err := tl.Save("2", "X", active.Target, active.IsFixed)
	require.NoError(t, err)
	assert.Equal(t, "X", c.Name)
	assert.Equal(t, 0, c.CurrentCount)
	assert.Equal(t, 33, c.Lifetime)

	tl.Delete("2")

	assert.Len(t, tl.Counters(), 2)

	_, ok := tl.Active()
	assert.False(t, ok)

	tl.Close()

	assert.Len(t, db.counters, 2)
}

func TestParseTarget(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"  ", 0},
		{"abc", 0},
		{"33", 33},
		{" 33 ", 33},
		{"33.5", 33},
		{"12abc", 12},
		{"-5", 0},
		{"+7", 7},
		{"0", 0},
		{"99999999999999999999999", 0},
		{"٣٣", 0},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseTarget(tc.in))
		})
	}
}

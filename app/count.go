package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/misbaha/feedback"
	"github.com/ayoisaiah/misbaha/internal/models"
	"github.com/ayoisaiah/misbaha/store"
	"github.com/ayoisaiah/misbaha/tally"
)

const themeToggle = "toggle"

// hitAction handles the hit command which counts towards a counter.
func hitAction(ctx *cli.Context, s *session) error {
	return s.hit(ctx.Context, ctx.Args().First(), int(ctx.Uint("times")))
}

// resetAction handles the reset command.
func resetAction(ctx *cli.Context, s *session) error {
	return s.reset(ctx.Args().First())
}

// themeAction prints the theme or changes it to the first argument.
func themeAction(ctx *cli.Context, s *session) error {
	return s.theme(ctx.Args().First())
}

// importAction replaces the collection with the contents of a file.
func importAction(ctx *cli.Context, s *session) error {
	return s.importFile(ctx.Args().First())
}

// activate makes the counter with id the active one. A counter that would
// ask for a target keeps the target and mode it already has.
func activate(t *tally.Tally, id string) {
	if t.Select(id) != tally.SelectPrompt {
		return
	}

	c, _ := t.Pending()
	t.ConfirmTargetSetup(c.Target, c.IsFixed)
}

func progressText(c *models.Counter) string {
	if c.HasTarget() {
		return fmt.Sprintf("%d/%d", c.CurrentCount, c.Target)
	}

	return fmt.Sprintf("%d", c.CurrentCount)
}

func (s *session) hit(ctx context.Context, ref string, times int) error {
	if ref == "" {
		return errMissingRef
	}

	c, err := s.tally.Find(ref)
	if err != nil {
		return err
	}

	activate(s.tally, c.ID)

	defer s.tally.GoBack()

	var completion *tally.Completion

	for i, n := 0, max(times, 1); i < n; i++ {
		res := s.tally.Hit()
		if !res.Counted {
			break
		}

		if res.Completion != nil {
			completion = res.Completion
		}
	}

	c, _ = s.tally.Get(c.ID)

	if completion == nil && c.Completed() {
		pterm.Info.WithWriter(s.out).Printfln(
			"%s has reached its target (%s). Reset it to count again",
			c.Name,
			progressText(&c),
		)

		return nil
	}

	pterm.Fprintln(s.out, fmt.Sprintf("%s: %s", c.Name, progressText(&c)))

	if completion == nil {
		return nil
	}

	pterm.Success.WithWriter(s.out).Println(completion.Message)

	err = s.announcer.Announce(ctx, feedback.Announcement{
		Name:    completion.Name,
		Message: completion.Message,
		Target:  completion.Target,
	})
	if err != nil {
		return errCompletionCmd.Wrap(err)
	}

	return nil
}

func (s *session) reset(ref string) error {
	if ref == "" {
		return errMissingRef
	}

	c, err := s.tally.Find(ref)
	if err != nil {
		return err
	}

	activate(s.tally, c.ID)
	s.tally.Reset()
	s.tally.GoBack()

	pterm.Success.WithWriter(s.out).Printfln("Reset %s", c.Name)

	return nil
}

func (s *session) theme(arg string) error {
	switch arg {
	case "":
	case themeToggle:
		s.tally.ToggleTheme()
	default:
		theme, ok := models.ParseTheme(arg)
		if !ok {
			return errUnknownTheme.Fmt(arg)
		}

		s.tally.SetTheme(theme)
	}

	pterm.Fprintln(s.out, string(s.tally.Theme()))

	return nil
}

// decodeImport parses an exported collection. Both the current schema and
// the camelCase schema of the first release are accepted.
func decodeImport(b []byte) ([]models.Counter, error) {
	var records []map[string]json.RawMessage

	err := json.Unmarshal(b, &records)
	if err != nil {
		return nil, err
	}

	if records == nil {
		return nil, errNullImport
	}

	for _, r := range records {
		_, hasCount := r["currentCount"]
		_, hasFixed := r["isFixed"]

		if hasCount || hasFixed {
			return store.DecodeLegacy(b)
		}
	}

	counters := make([]models.Counter, 0, len(records))

	err = json.Unmarshal(b, &counters)
	if err != nil {
		return nil, err
	}

	return counters, nil
}

func (s *session) importFile(path string) error {
	if path == "" {
		return errReadImport.Fmt(path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return errReadImport.Fmt(path).Wrap(err)
	}

	counters, err := decodeImport(b)
	if err != nil {
		return errDecodeImport.Fmt(path).Wrap(err)
	}

	err = s.tally.Import(counters)
	if err != nil {
		return err
	}

	pterm.Success.WithWriter(s.out).Printfln(
		"Imported %d counters from %s",
		len(counters),
		path,
	)

	return nil
}

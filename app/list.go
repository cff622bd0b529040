package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sort"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/misbaha/internal/models"
	"github.com/ayoisaiah/misbaha/internal/pretty"
)

const noCountersMsg = "No counters found. Add one with: misbaha add --name <zekr>"

const (
	sortNone     = ""
	sortNatural  = "natural"
	sortLifetime = "lifetime"
)

// sortCounters returns a sorted copy of counters. The display order is kept
// when by is empty.
func sortCounters(counters []models.Counter, by string) ([]models.Counter, error) {
	sorted := slices.Clone(counters)

	switch by {
	case sortNone:
	case sortNatural:
		sort.SliceStable(sorted, func(i, j int) bool {
			return natural.Less(sorted[i].Name, sorted[j].Name)
		})
	case sortLifetime:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Lifetime > sorted[j].Lifetime
		})
	default:
		return nil, errUnknownSort.Fmt(by)
	}

	return sorted, nil
}

func modeText(c *models.Counter) string {
	if c.IsFixed {
		return pretty.Cyan("fixed")
	}

	return pretty.Magenta("manual")
}

func sessionText(c *models.Counter) string {
	text := progressText(c)

	if c.Completed() {
		return pretty.Green(text)
	}

	return text
}

// printCountersTable prints a counters table to w.
func printCountersTable(w io.Writer, counters []models.Counter) {
	tableBody := make([][]string, len(counters))

	for i := range counters {
		c := &counters[i]

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			c.ID,
			pretty.Highlight(c.Name),
			sessionText(c),
			pretty.Yellow(c.Lifetime),
			modeText(c),
		}
	}

	tableBody = append([][]string{
		{"#", "ID", "NAME", "SESSION", "LIFETIME", "MODE"},
	}, tableBody...)

	pretty.PrintTable(tableBody, w)
}

// writeCountersJSON writes counters as an indented JSON array.
func writeCountersJSON(w io.Writer, counters []models.Counter) error {
	if counters == nil {
		counters = []models.Counter{}
	}

	b, err := json.MarshalIndent(counters, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// listAction handles the list command and prints the counters.
func listAction(ctx *cli.Context, s *session) error {
	return s.list(ctx.Bool("json"), ctx.String("sort"))
}

func (s *session) list(asJSON bool, sortBy string) error {
	counters, err := sortCounters(s.tally.Counters(), sortBy)
	if err != nil {
		return err
	}

	if asJSON {
		return writeCountersJSON(s.out, counters)
	}

	if len(counters) == 0 {
		pterm.Info.WithWriter(s.out).Println(noCountersMsg)
		return nil
	}

	pretty.DarkTheme = s.tally.Theme().IsDark()

	printCountersTable(s.out, counters)

	return nil
}

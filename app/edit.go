package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/misbaha/tally"
)

// editOpts holds the fields changed by the edit command. A nil pointer leaves
// the field as it is.
type editOpts struct {
	target *int
	fixed  *bool
	name   string
}

func editOptsFromFlags(ctx *cli.Context) (editOpts, error) {
	opts := editOpts{
		name: ctx.String("name"),
	}

	if ctx.IsSet("target") {
		target := tally.ParseTarget(ctx.String("target"))
		opts.target = &target
	}

	fixed, noFixed := ctx.Bool("fixed"), ctx.Bool("no-fixed")

	switch {
	case fixed && noFixed:
		return opts, errConflictingFixed
	case fixed, noFixed:
		opts.fixed = &fixed
	}

	return opts, nil
}

// addAction handles the add command which appends a new counter.
func addAction(ctx *cli.Context, s *session) error {
	return s.add(
		ctx.String("name"),
		tally.ParseTarget(ctx.String("target")),
		ctx.Bool("fixed"),
	)
}

// editAction handles the edit command which updates the counter named by
// the first argument.
func editAction(ctx *cli.Context, s *session) error {
	opts, err := editOptsFromFlags(ctx)
	if err != nil {
		return err
	}

	return s.edit(ctx.Args().First(), opts)
}

func (s *session) add(name string, target int, fixed bool) error {
	c, err := s.tally.Save("", name, target, fixed)
	if err != nil {
		return err
	}

	pterm.Success.WithWriter(s.out).Printfln("Added %s (%s)", c.Name, c.ID)

	return nil
}

func (s *session) edit(ref string, opts editOpts) error {
	if ref == "" {
		return errMissingRef
	}

	c, err := s.tally.Find(ref)
	if err != nil {
		return err
	}

	target, fixed := c.Target, c.IsFixed

	if opts.target != nil {
		target = *opts.target
	}

	if opts.fixed != nil {
		fixed = *opts.fixed
	}

	c, err = s.tally.Save(c.ID, opts.name, target, fixed)
	if err != nil {
		return err
	}

	pterm.Success.WithWriter(s.out).Printfln("Updated %s (%s)", c.Name, c.ID)

	return nil
}

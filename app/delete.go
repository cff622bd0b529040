package app

import (
	"bufio"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/misbaha/internal/models"
)

// deleteAction handles the delete command which removes a counter.
func deleteAction(ctx *cli.Context, s *session) error {
	return s.delete(ctx.Args().First(), ctx.Bool("yes"))
}

// delete removes the counter named by ref. It requests for confirmation
// before proceeding unless skipConfirm is set.
func (s *session) delete(ref string, skipConfirm bool) error {
	if ref == "" {
		return errMissingRef
	}

	c, err := s.tally.Find(ref)
	if err != nil {
		return err
	}

	if !skipConfirm {
		printCountersTable(s.out, []models.Counter{c})

		warning := pterm.Warning.Sprint(
			"The counter above will be deleted permanently. Press ENTER to proceed",
		)

		fmt.Fprint(s.out, warning)

		reader := bufio.NewReader(s.in)

		if _, err = reader.ReadString('\n'); err != nil {
			return errDeleteAborted.Wrap(err)
		}
	}

	s.tally.Delete(c.ID)

	pterm.Success.WithWriter(s.out).Printfln("Deleted %s", c.Name)

	return nil
}

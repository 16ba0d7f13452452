package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/zxrxiaoha/checkInRecord/internal/record"
	"github.com/zxrxiaoha/checkInRecord/store"
)

var errMissingID = errors.New("a record id is required")

// resolveRecord finds the single record whose id starts with the given
// prefix. Full ids resolve directly; shortened ids from the list output
// work as long as they are unambiguous.
func resolveRecord(s *store.Store, prefix string) (*record.Record, error) {
	if r := s.Get(prefix); r != nil {
		return r, nil
	}

	var match *record.Record

	for _, r := range s.All() {
		if !strings.HasPrefix(r.ID, prefix) {
			continue
		}

		if match != nil {
			return nil, fmt.Errorf(
				"the id %q matches more than one record", prefix,
			)
		}

		match = r
	}

	if match == nil {
		return nil, store.ErrNotFound
	}

	return match, nil
}

// editAction handles the edit command which changes the content of a
// record. Without --content it prompts for the new text, prefilled with
// the current one.
func editAction(ctx *cli.Context) error {
	if ctx.Args().Len() == 0 {
		return errMissingID
	}

	_, s, db, err := storeHelper()
	if err != nil {
		return err
	}

	defer db.Close()

	r, err := resolveRecord(s, ctx.Args().First())
	if err != nil {
		return err
	}

	content := ctx.String("content")

	if !ctx.IsSet("content") {
		content = r.Content

		input := huh.NewInput().
			Title(fmt.Sprintf(
				"Content for %s (%s)",
				shortID(r.ID),
				r.StartTime.Format("Jan 02, 2006"),
			)).
			Value(&content)

		if err = input.Run(); err != nil {
			return err
		}
	}

	updated, err := s.Edit(r.ID, strings.TrimSpace(content))
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Updated record %s", shortID(updated.ID))

	return nil
}

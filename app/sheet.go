package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/zxrxiaoha/checkInRecord/internal/timeutil"
	"github.com/zxrxiaoha/checkInRecord/sheet"
)

var errMissingFile = errors.New("a file to import is required")

// exportAction writes the records matching the query flags to a CSV
// file.
func exportAction(ctx *cli.Context) error {
	_, s, db, err := storeHelper()
	if err != nil {
		return err
	}

	defer db.Close()

	q, err := queryFromCtx(ctx)
	if err != nil {
		return err
	}

	records := s.Search(q)
	if len(records) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return nil
	}

	path := ctx.String("output")
	if path == "" {
		path = fmt.Sprintf(
			"checkin_records_%s.csv",
			time.Now().Format(timeutil.DayFormat),
		)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer f.Close()

	if err = sheet.Export(f, records); err != nil {
		return err
	}

	pterm.Success.Printfln("Exported %d records to %s", len(records), path)

	return nil
}

// importAction merges records from an exported CSV file into the
// collection. Imported rows replace any existing record for the same
// day.
func importAction(ctx *cli.Context) error {
	if ctx.Args().Len() == 0 {
		return errMissingFile
	}

	_, s, db, err := storeHelper()
	if err != nil {
		return err
	}

	defer db.Close()

	f, err := os.Open(ctx.Args().First())
	if err != nil {
		return err
	}

	defer f.Close()

	records, err := sheet.Import(f)
	if err != nil {
		return err
	}

	if err = s.MergeImported(records); err != nil {
		return err
	}

	pterm.Success.Printfln("Imported %d records", len(records))

	return nil
}

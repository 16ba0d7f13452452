package app

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/zxrxiaoha/checkInRecord/internal/record"
)

// deleteAction handles the delete command which removes a record
// permanently. It requests for confirmation before proceeding unless
// --yes is given.
func deleteAction(ctx *cli.Context) error {
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

	if !ctx.Bool("yes") {
		printRecordsTable(os.Stdout, []*record.Record{r})

		warning := pterm.Warning.Sprint(
			"The above record will be deleted permanently. Press ENTER to proceed",
		)

		fmt.Fprint(os.Stdout, warning)

		reader := bufio.NewReader(os.Stdin)

		_, _ = reader.ReadString('\n')
	}

	if err = s.Delete(r.ID); err != nil {
		return err
	}

	pterm.Success.Printfln("Deleted record %s", shortID(r.ID))

	return nil
}

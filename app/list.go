package app

import (
	"encoding/json"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/zxrxiaoha/checkInRecord/internal/record"
	"github.com/zxrxiaoha/checkInRecord/internal/ui"
	"github.com/zxrxiaoha/checkInRecord/list"
)

const (
	noRecordsMsg = "No check-in records found for the specified filters"

	idDisplayLen = 8
)

// shortID returns the leading segment of a record id, which is enough
// to address the record in edit and delete commands.
func shortID(id string) string {
	if len(id) <= idDisplayLen {
		return id
	}

	return id[:idDisplayLen]
}

// printRecordsTable prints a record table to the command-line.
func printRecordsTable(w io.Writer, records []*record.Record) {
	tableBody := make([][]string, len(records))

	for i := range records {
		r := records[i]

		kind := "session"
		if r.IsMakeup {
			kind = ui.Yellow("make-up")
		}

		row := []string{
			shortID(r.ID),
			r.StartTime.Format("Jan 02, 2006 03:04 PM"),
			r.EndTime.Format("03:04 PM"),
			r.Duration,
			r.Content,
			kind,
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"ID", "START", "END", "DURATION", "CONTENT", "TYPE"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// printRecords writes records as JSON or as a table depending on the
// --json flag.
func printRecords(ctx *cli.Context, records []*record.Record) error {
	if ctx.Bool("json") {
		b, err := json.Marshal(records)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	if len(records) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return nil
	}

	printRecordsTable(os.Stdout, records)

	return nil
}

// listAction opens the interactive record browser, or prints a table
// when --plain or --json is given.
func listAction(ctx *cli.Context) error {
	cfg, s, db, err := storeHelper()
	if err != nil {
		return err
	}

	defer db.Close()

	q, err := queryFromCtx(ctx)
	if err != nil {
		return err
	}

	if ctx.Bool("plain") || ctx.Bool("json") {
		return printRecords(ctx, s.Search(q))
	}

	m := list.New(s, q, cfg.List.BufferRows, cfg.TwentyFourHour)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	_, err = p.Run()

	return err
}

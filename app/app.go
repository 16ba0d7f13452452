// Package app defines the command-line interface of checkin.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/zxrxiaoha/checkInRecord/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the checkin app instance.
func Get() *cli.App {
	checkinApp := &cli.App{
		Name: "checkin",
		Usage: `
		Checkin is a command-line attendance tracker. Running it with no
		arguments starts a check-in session; checking out closes the session
		into a permanent record. Forgotten days can be backfilled with the
		makeup command.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "makeup",
				Usage:  "Backfill a record for a day you forgot to check in",
				Action: makeupAction,
				Flags: []cli.Flag{
					dateFlag,
					startFlag,
					endFlag,
					contentFlag,
				},
			},
			{
				Name:   "list",
				Usage:  "Browse check-in records interactively",
				Action: listAction,
				Flags: []cli.Flag{
					fromFlag,
					toFlag,
					keywordFlag,
					plainFlag,
					jsonFlag,
				},
			},
			{
				Name:   "search",
				Usage:  "Print the records whose content matches a keyword",
				Action: searchAction,
				Flags: []cli.Flag{
					fromFlag,
					toFlag,
					keywordFlag,
					jsonFlag,
				},
			},
			{
				Name:      "edit",
				Usage:     "Change the content of a record",
				ArgsUsage: "<record id>",
				Action:    editAction,
				Flags: []cli.Flag{
					contentFlag,
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a record permanently",
				ArgsUsage: "<record id>",
				Action:    deleteAction,
				Flags: []cli.Flag{
					yesFlag,
				},
			},
			{
				Name:   "stats",
				Usage:  "Report averages, streaks and daily trends",
				Action: statsAction,
			},
			{
				Name:   "export",
				Usage:  "Write records to a CSV file",
				Action: exportAction,
				Flags: []cli.Flag{
					fromFlag,
					toFlag,
					outputFlag,
				},
			},
			{
				Name:      "import",
				Usage:     "Merge records from a previously exported CSV file",
				ArgsUsage: "<file>",
				Action:    importAction,
			},
		},
		Flags: []cli.Flag{
			disableNotificationFlag,
			sessionCmdFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return checkinApp
}

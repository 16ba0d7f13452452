package app

import "github.com/urfave/cli/v2"

var (
	fromFlag = &cli.StringFlag{
		Name:    "from",
		Aliases: []string{"f"},
		Usage:   "Only include records starting on or after this date (e.g. '2026-01-01' or 'last monday')",
	}

	toFlag = &cli.StringFlag{
		Name:    "to",
		Aliases: []string{"t"},
		Usage:   "Only include records starting on or before this date",
	}

	keywordFlag = &cli.StringFlag{
		Name:    "keyword",
		Aliases: []string{"k"},
		Usage:   "Only include records whose content contains this text (case-insensitive)",
	}

	plainFlag = &cli.BoolFlag{
		Name:  "plain",
		Usage: "Print a table instead of opening the interactive browser",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print records as JSON",
	}

	dateFlag = &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "The day to backfill (e.g. 'yesterday' or '2026-08-21'). Must not be in the future",
	}

	startFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "Check-in time of the backfilled record in HH:MM form",
	}

	endFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "Check-out time of the backfilled record in HH:MM form",
	}

	contentFlag = &cli.StringFlag{
		Name:    "content",
		Aliases: []string{"c"},
		Usage:   "A note describing what was done",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Path of the CSV file to write. Defaults to checkin_records_<date>.csv",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after checking out",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after checking out",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)

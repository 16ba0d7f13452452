package app

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/markusmobius/go-dateparser"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/zxrxiaoha/checkInRecord/config"
	"github.com/zxrxiaoha/checkInRecord/session"
	"github.com/zxrxiaoha/checkInRecord/stats"
	"github.com/zxrxiaoha/checkInRecord/store"
)

const (
	envNoColor        = "NO_COLOR"
	envCheckinNoColor = "CHECKIN_NO_COLOR"
)

var logOnce sync.Once

// initLogging routes slog output to a rotated log file so that it never
// interleaves with the TUI or table output on stdout.
func initLogging(cfg *config.Config) {
	logOnce.Do(func() {
		w := &lumberjack.Logger{
			Filename:   cfg.LogFilePath,
			MaxSize:    5,
			MaxBackups: 3,
		}

		slog.SetDefault(slog.New(slog.NewJSONHandler(w, nil)))
	})
}

// storeHelper builds the config and the record store backed by the bolt
// database. The caller owns the returned DB and must close it.
func storeHelper() (*config.Config, *store.Store, store.DB, error) {
	cfg, err := config.New(config.WithViperConfig())
	if err != nil {
		return nil, nil, nil, err
	}

	initLogging(cfg)

	db, err := store.NewClient(cfg.DBFilePath)
	if err != nil {
		return nil, nil, nil, err
	}

	s, err := store.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}

	return cfg, s, db, nil
}

// parseDate resolves a natural-language or formatted date string
// relative to the current time.
func parseDate(s string) (time.Time, error) {
	dt, err := dateparser.Parse(&dateparser.Configuration{
		CurrentTime: time.Now(),
	}, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	return dt.Time, nil
}

// queryFromCtx translates the --from/--to/--keyword flags into a store
// query.
func queryFromCtx(ctx *cli.Context) (store.Query, error) {
	var q store.Query

	if v := ctx.String("from"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return q, err
		}

		q.From = t
	}

	if v := ctx.String("to"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return q, err
		}

		q.To = t
	}

	q.Keyword = ctx.String("keyword")

	return q, nil
}

// defaultAction starts a check-in session and opens the live session
// view. The session ends when the user checks out, abandons it, or the
// auto-checkout timer fires.
func defaultAction(ctx *cli.Context) error {
	cfg, s, db, err := storeHelper()
	if err != nil {
		return err
	}

	defer db.Close()

	if ctx.Bool("disable-notification") {
		cfg.Session.Notify = false
	}

	if v := ctx.String("session-cmd"); v != "" {
		cfg.Session.Cmd = v
	}

	control := session.NewController(s, &cfg.Session)

	if _, err = control.Start(); err != nil {
		return err
	}

	m := session.NewModel(control, cfg.TwentyFourHour)

	p := tea.NewProgram(m)
	if _, err = p.Run(); err != nil {
		return err
	}

	switch {
	case m.Err() != nil:
		return m.Err()
	case m.Abandoned():
		pterm.Info.Println("Session abandoned, nothing was recorded")
	case m.AutoEnded():
		pterm.Warning.Println(
			"The session exceeded the auto-checkout limit and was closed",
		)
	case m.Record() != nil:
		pterm.Success.Printfln("Checked out after %s", m.Record().Duration)
	}

	return nil
}

// searchAction prints the records matching the query flags.
func searchAction(ctx *cli.Context) error {
	_, s, db, err := storeHelper()
	if err != nil {
		return err
	}

	defer db.Close()

	q, err := queryFromCtx(ctx)
	if err != nil {
		return err
	}

	return printRecords(ctx, s.Search(q))
}

// statsAction reports aggregate figures over all records.
func statsAction(_ *cli.Context) error {
	_, s, db, err := storeHelper()
	if err != nil {
		return err
	}

	defer db.Close()

	stats.Render(os.Stdout, s.All(), time.Now())

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if CHECKIN_NO_COLOR is set
	if _, exists := os.LookupEnv(envCheckinNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting checkin")

	return nil
}

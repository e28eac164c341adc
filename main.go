package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"logtime/config"
	"logtime/holiday"
	"logtime/intra"
	"logtime/logtime"
	"logtime/server"
	"logtime/store"
	"logtime/view"

	"github.com/alexflint/go-filemutex"

	"github.com/tidwall/buntdb"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:  "logtime",
		Usage: "42 logtime and goals",
		Commands: []*cli.Command{
			reportCommand,
			monthCommand,
			viewCommand,
			holidaysCommand,
			serveCommand,
			watchCommand,
		},
	}
	return app.RunContext(ctx, os.Args)
}

var reportCommand = &cli.Command{
	Name:      "report",
	Usage:     "today / week / month totals and remaining time",
	ArgsUsage: "<login>",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "json", Usage: "print the report as JSON"},
	},
	Action: func(c *cli.Context) error {
		env, err := newEnv(false)
		if err != nil {
			return err
		}
		defer env.Close()

		login := c.Args().First()
		rp, err := env.reporter.BuildReport(c.Context, login, time.Now())
		if err != nil {
			return err
		}
		if c.Bool("json") {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rp)
		}
		view.RenderReport(os.Stdout, login, rp)
		return nil
	},
}

var monthCommand = &cli.Command{
	Name:      "month",
	Usage:     "per-day table of a month",
	ArgsUsage: "<login> [YYYY-MM]",
	Action: func(c *cli.Context) error {
		env, err := newEnv(false)
		if err != nil {
			return err
		}
		defer env.Close()

		v := view.NewTableViewer(view.NewViewRepository(env.reporter), os.Stdout)
		return v.Do(c.Context, c.Args().Get(0), c.Args().Get(1))
	},
}

var viewCommand = &cli.Command{
	Name:      "view",
	Usage:     "browse months in a TUI",
	ArgsUsage: "<login> [YYYY-MM]",
	Action: func(c *cli.Context) error {
		env, err := newEnv(false)
		if err != nil {
			return err
		}
		defer env.Close()

		v := view.NewTUI(view.NewViewRepository(env.reporter), env.logger)
		return v.Do(c.Context, c.Args().Get(0), c.Args().Get(1))
	},
}

var holidaysCommand = &cli.Command{
	Name:      "holidays",
	Usage:     "list the public holidays of a year",
	ArgsUsage: "[year]",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "country", Value: "fr", EnvVars: []string{"HOLIDAY_COUNTRY"}, Usage: "holiday ruleset (fr, fr-alsace-moselle, none)"},
	},
	Action: func(c *cli.Context) error {
		year := time.Now().Year()
		if arg := c.Args().First(); arg != "" {
			y, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid year %q", arg)
			}
			year = y
		}
		rs, err := holiday.Lookup(c.String("country"))
		if err != nil {
			return err
		}
		cal, err := holiday.NewCalendar(rs)
		if err != nil {
			return err
		}
		view.RenderHolidays(c.App.Writer, rs.Name(), cal.HolidaysFor(year).Sorted())
		return nil
	},
}

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "serve GET /logtime?login=<login>",
	Action: func(c *cli.Context) error {
		env, err := newEnv(true)
		if err != nil {
			return err
		}
		defer env.Close()

		srv := server.NewHTTPServer(server.Config{
			Addr:           fmt.Sprintf(":%d", env.cfg.Port),
			AllowedOrigins: env.cfg.AllowedOrigins,
		}, env.reporter, env.logger)
		return server.Serve(c.Context, srv, env.logger)
	},
}

var watchCommand = &cli.Command{
	Name:      "watch",
	Usage:     "notify when the weekly or monthly goal is reached",
	ArgsUsage: "<login>",
	Action: func(c *cli.Context) error {
		env, err := newEnv(false)
		if err != nil {
			return err
		}
		defer env.Close()

		mgr := logtime.NewManager(env.reporter, env.repo, &logtime.BeeepNotificator{}, env.logger, c.Args().First(), env.cfg.PollInterval)
		return mgr.Watch(c.Context)
	},
}

// env holds what every command needs once the configuration is loaded.
type env struct {
	cfg      *config.Config
	logger   *slog.Logger
	db       *buntdb.DB
	repo     store.SessionRepository
	reporter *logtime.Reporter
	closers  []io.Closer
}

func newEnv(logToStdout bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	dir, err := cfg.EnsureDir()
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg}
	var out io.Writer = os.Stdout
	if !logToStdout {
		logFile, err := os.OpenFile(filepath.Join(dir, "log.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, err
		}
		e.closers = append(e.closers, logFile)
		out = logFile
	}
	e.logger = newLogger(out, cfg.SlogLevel())

	db, err := initDB(dir)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.db = db
	e.closers = append(e.closers, db)
	e.repo = store.NewSessionRepository(db)

	fm, err := filemutex.New(filepath.Join(dir, "logtime.lock"))
	if err != nil {
		e.Close()
		return nil, err
	}
	e.closers = append(e.closers, fm)

	rs, err := holiday.Lookup(cfg.HolidayCountry)
	if err != nil {
		e.Close()
		return nil, err
	}
	cal, err := holiday.NewCalendar(rs)
	if err != nil {
		e.Close()
		return nil, err
	}

	client := intra.NewClient(context.Background(), intra.Config{
		BaseURL:      cfg.APIBaseURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
	}, e.logger)
	source := store.NewCachedSource(client, e.repo, fm, cfg.CacheTTL, e.logger)
	e.reporter = logtime.NewReporter(source, logtime.NewGoalCalculator(cal, cfg.DailyTarget), e.logger)
	return e, nil
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i].Close()
	}
}

func initDB(dir string) (*buntdb.DB, error) {
	db, err := buntdb.Open(filepath.Join(dir, "logtime.db"))
	if err != nil {
		return nil, err
	}
	return db, nil
}

func newLogger(out io.Writer, level slog.Level) *slog.Logger {
	return slog.New(
		slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level: level,
		}),
	)
}

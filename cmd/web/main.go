package main

import (
	"context"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/donseba/go-htmx"
	"github.com/joho/godotenv"
	"github.com/lkarjala/vaelor/internal/envstruct"
	"github.com/lkarjala/vaelor/internal/errors"
	"github.com/lkarjala/vaelor/internal/logging"
	"github.com/lkarjala/vaelor/internal/pprofserver"
	"github.com/lkarjala/vaelor/internal/repositories"
	"github.com/lkarjala/vaelor/internal/sqlite"
	"log/slog"
	"os"
	"time"
)

type config struct {
	Addr        string `env:"VAELOR_ADDR" envDefault:"localhost:4000"`
	SqliteURL   string `env:"VAELOR_SQLITE_URL" envDefault:"./vaelor.sqlite"`
	PprofPort   string `env:"VAELOR_PPROF_PORT" envDefault:":6060"`
	TemplateDir string `env:"VAELOR_TEMPLATE_DIR" envDefault:"./ui/templates"`
	StaticDir   string `env:"VAELOR_STATIC_DIR" envDefault:"./ui/static"`
}

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	htmx           *htmx.HTMX
	cases          *repositories.CaseRepository
	verdicts       *repositories.VerdictRepository
	templateDir    string
	staticDir      string
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "parse config")
	}

	// pprof listens on localhost so that it's not open to the world. Tests set the port to
	// empty to avoid clashing on the fixed port.
	if cfg.PprofPort != "" {
		pprofserver.Launch(cfg.PprofPort, logger)
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open database", slog.String("url", cfg.SqliteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "close database", errors.SlogError(closeErr))
		}
	}()
	go db.StartOptimizer(ctx)

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(db.ReadWrite.DB, 24*time.Hour) //nolint:mnd // daily cleanup
	sessionManager.Lifetime = 12 * time.Hour                                                  //nolint:mnd // long enough for a playthrough

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		htmx:           htmx.New(),
		cases:          repositories.NewCaseRepository(db, logger),
		verdicts:       repositories.NewVerdictRepository(db, logger),
		templateDir:    cfg.TemplateDir,
		staticDir:      cfg.StaticDir,
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}

func main() {
	loggerHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	})
	logger := slog.New(logging.NewContextHandler(loggerHandler))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Error(err.Error())
		os.Exit(1)
	}

	if err := run(context.Background(), logger, os.LookupEnv); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

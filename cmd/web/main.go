package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mkarvon/liftwise/internal/envstruct"
	"github.com/mkarvon/liftwise/internal/flightrecorder"
	"github.com/mkarvon/liftwise/internal/logging"
	"github.com/mkarvon/liftwise/internal/sqlite"
	"github.com/mkarvon/liftwise/internal/workout"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger         *slog.Logger
	workoutService *workout.Service
	flightRecorder *flightrecorder.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"LIFTWISE_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"LIFTWISE_SQLITE_URL" envDefault:"./liftwise.sqlite3"`
	// TracesDir is the optional directory where timeout traces are written. Empty disables the flight recorder.
	TracesDir string `env:"LIFTWISE_TRACES_DIR" envDefault:""`
	// RequestTimeoutMillis bounds handler execution time.
	RequestTimeoutMillis int `env:"LIFTWISE_REQUEST_TIMEOUT_MILLIS" envDefault:"2000"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return fmt.Errorf("populate config: %w", err)
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return fmt.Errorf("open db %s: %w", cfg.SqliteURL, err)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	workoutService, err := workout.NewService(db, logger)
	if err != nil {
		return fmt.Errorf("new workout service: %w", err)
	}

	var flightRecorder *flightrecorder.Service
	if cfg.TracesDir != "" {
		if flightRecorder, err = flightrecorder.New(flightrecorder.Config{
			Logger:          logger,
			MinAge:          0,
			MaxBytes:        0,
			TracesDirectory: cfg.TracesDir,
		}); err != nil {
			return fmt.Errorf("new flight recorder: %w", err)
		}
		if err = flightRecorder.Start(ctx); err != nil {
			return fmt.Errorf("start flight recorder: %w", err)
		}
		defer flightRecorder.Stop(ctx)
	}

	app := application{
		logger:         logger,
		workoutService: workoutService,
		flightRecorder: flightRecorder,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.configureAndStartServer(ctx, cfg.Addr, app.routes(cfg.RequestTimeoutMillis))
	})
	g.Go(func() error {
		return db.RunOptimizer(ctx)
	})
	if err = g.Wait(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", slog.Any("error", err))
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/evanhagen/habitual/internal/cli"
	"github.com/evanhagen/habitual/internal/config"
	"github.com/evanhagen/habitual/internal/db"
	"github.com/evanhagen/habitual/internal/repository"
	"github.com/evanhagen/habitual/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, logFile := setupLogger(cfg)
	defer logFile.Close()
	slog.SetDefault(logger)

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return err
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	slog.Info("database opened", "path", dbPath)

	// Wire repositories and the unit of work for transactional logging.
	habitRepo := repository.NewSQLiteHabitRepo(database)
	logRepo := repository.NewSQLiteLogRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Habits: service.NewHabitService(habitRepo),
		Logs:   service.NewLogService(logRepo, habitRepo, uow),
		Stats:  service.NewStatsService(habitRepo, logRepo),

		TickInterval:     cfg.TickInterval,
		DefaultTargetMin: cfg.Timer.DefaultTargetMin,
		DefaultPointsHr:  cfg.Timer.DefaultPointsHr,
	}

	// Detect interactive terminal for the dashboard-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

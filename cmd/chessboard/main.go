package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/chessboard/internal/cli"
	"github.com/alexanderramin/chessboard/internal/cli/formatter"
	"github.com/alexanderramin/chessboard/internal/config"
	"github.com/alexanderramin/chessboard/internal/db"
	"github.com/alexanderramin/chessboard/internal/repository"
	"github.com/alexanderramin/chessboard/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()
	formatter.UseColor(!cfg.NoColor)

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	boardRepo := repository.NewSQLiteChessboardRepo(database)
	complexRepo := repository.NewSQLiteComplexRepo(database)
	developerRepo := repository.NewSQLiteDeveloperRepo(database)
	historyRepo := repository.NewSQLiteHistoryRepo(database)
	notificationRepo := repository.NewSQLiteNotificationRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	var logger *slog.Logger
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	// Wire services
	chessboards := service.NewChessboardService(boardRepo, complexRepo, developerRepo, historyRepo, uow, cfg.PublicBaseURL, observer)

	app := &cli.App{
		Chessboards:   chessboards,
		Developers:    service.NewDeveloperService(developerRepo),
		Complexes:     service.NewComplexService(complexRepo, developerRepo),
		Notifications: service.NewNotificationService(notificationRepo),
		Import:        service.NewImportService(chessboards, cfg.DefaultExchangeRate),
		Actor:         cfg.Actor,
		DefaultRate:   cfg.DefaultExchangeRate,
		Logger:        logger,
	}

	// Prompts and the editor only run on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	return cli.NewRootCmd(app).Execute()
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/splanner/internal/cli"
	"github.com/alexanderramin/splanner/internal/config"
	"github.com/alexanderramin/splanner/internal/credential"
	"github.com/alexanderramin/splanner/internal/db"
	"github.com/alexanderramin/splanner/internal/domain"
	"github.com/alexanderramin/splanner/internal/generation"
	"github.com/alexanderramin/splanner/internal/llm"
	"github.com/alexanderramin/splanner/internal/repository"
	"github.com/alexanderramin/splanner/internal/service"
	"github.com/alexanderramin/splanner/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Lỗi: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	app := &cli.App{}

	app.Setup = func(configPath string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		logger := config.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
		app.Logger = logger

		database, err = db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}

		// Wire repositories
		credRepo := repository.NewSQLiteCredentialRepo(database)
		logRepo := repository.NewSQLiteGenerationLogRepo(database)
		uow := db.NewSQLiteUnitOfWork(database)

		creds := credential.NewManager(credRepo, uow)

		var observer llm.Observer = llm.NoopObserver{}
		if cfg.LLM.LogCalls {
			observer = llm.NewLogObserver(logger)
		}
		gateway := generation.NewGateway(cfg.LLM, observer)
		useCases := service.NewLogUseCaseObserver(logger)

		// Wire services
		app.Lessons = func(plan domain.LessonPlan) service.LessonService {
			return service.NewLessonService(store.New(plan), gateway, creds, logRepo, useCases)
		}
		app.Credentials = service.NewCredentialService(creds, useCases)
		app.History = service.NewHistoryService(logRepo)
		return nil
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

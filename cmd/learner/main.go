package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/alexanderramin/learner/internal/cli"
	"github.com/alexanderramin/learner/internal/config"
	"github.com/alexanderramin/learner/internal/db"
	"github.com/alexanderramin/learner/internal/llm"
	"github.com/alexanderramin/learner/internal/logging"
	"github.com/alexanderramin/learner/internal/repository"
	"github.com/alexanderramin/learner/internal/service"
	"github.com/alexanderramin/learner/internal/state"
)

func main() {
	err := run()
	if errors.Is(err, cli.ErrReported) {
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(os.Getenv("LEARNER_CONFIG"))
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Open database
	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	contentRepo := repository.NewSQLiteContentRepo(database)
	quizRepo := repository.NewSQLiteQuizRepo(database)
	explanationRepo := repository.NewSQLiteExplanationRepo(database)
	statsRepo := repository.NewSQLiteStatsRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewZapUseCaseObserver(logger)

	// The language service is optional; explain falls back to its rubric.
	var llmClient llm.LLMClient
	llmCfg := cfg.LLMConfig()
	if llmCfg.Enabled {
		var llmObserver llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			llmObserver = llm.NewZapObserver(logger)
		}
		llmClient, err = llm.NewClient(ctx, llmCfg, llmObserver)
		if err != nil {
			logger.Warn("language service unavailable", zap.Error(err))
			llmClient = nil
		}
	}

	app := &cli.App{
		Auth:    service.NewAuthService(userRepo, state.NewStore(cfg.State.Dir), observer),
		Learn:   service.NewLearnService(sessionRepo, uow, observer),
		Quiz:    service.NewQuizService(quizRepo, observer),
		Explain: service.NewExplainService(explanationRepo, llmClient, observer),
		Stats:   service.NewStatsService(statsRepo),
		Profile: service.NewProfileService(userRepo, observer),
		Content: service.NewContentService(contentRepo, uow, observer),

		LLM:        llmClient,
		NLPEnabled: cfg.NLPEnabled(),
		Logger:     logger,
	}

	// Detect interactive terminal for prompts and spinners.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

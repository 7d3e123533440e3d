package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexmoren/studyplan/internal/cli"
	"github.com/alexmoren/studyplan/internal/db"
	"github.com/alexmoren/studyplan/internal/intelligence"
	"github.com/alexmoren/studyplan/internal/llm"
	"github.com/alexmoren/studyplan/internal/repository"
	"github.com/alexmoren/studyplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.studyplan/studyplan.db
	dbPath := os.Getenv("STUDYPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".studyplan", "studyplan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	classRepo := repository.NewSQLiteClassRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)

	// Wire the LLM-backed estimator only when enabled; a nil estimator
	// keeps all estimates on the deterministic heuristics.
	var estimator intelligence.EstimateService
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		estimator = intelligence.NewEstimateService(llm.NewOllamaClient(llmCfg, observer))
	}

	var observers []service.UseCaseObserver
	if os.Getenv("STUDYPLAN_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Classes:  service.NewClassService(classRepo),
		Tasks:    service.NewTaskService(taskRepo, classRepo),
		Profile:  service.NewProfileService(profileRepo),
		Workload: service.NewWorkloadService(taskRepo, classRepo, profileRepo, estimator, observers...),
		Plans:    service.NewPlanService(taskRepo, classRepo, profileRepo, scheduleRepo, estimator, observers...),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

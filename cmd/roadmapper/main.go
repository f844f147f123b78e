package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jplancaster/roadmapper/internal/cli"
	"github.com/jplancaster/roadmapper/internal/cli/formatter"
	"github.com/jplancaster/roadmapper/internal/config"
	"github.com/jplancaster/roadmapper/internal/db"
	"github.com/jplancaster/roadmapper/internal/prioritize"
	"github.com/jplancaster/roadmapper/internal/repository"
	"github.com/jplancaster/roadmapper/internal/service"
	"github.com/jplancaster/roadmapper/internal/summarize"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.roadmapper/roadmapper.db
	dbPath := os.Getenv("ROADMAPPER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".roadmapper", "roadmapper.db")
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// External scoring config is optional; a missing or broken file warns
	// and falls back to the built-in defaults.
	provider := config.NewProvider(os.Getenv("ROADMAPPER_CONFIG"), logger)

	summarizerOpts := summarize.Options{}
	if v := os.Getenv("ROADMAPPER_SUMMARY_TARGET"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			summarizerOpts.TargetLength = n
		}
	}

	var observers []service.UseCaseObserver
	if os.Getenv("ROADMAPPER_LOG_USE_CASES") == "1" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Projects:  service.NewProjectService(repository.NewSQLiteProjectRepo(database)),
		Roadmaps:  service.NewRoadmapService(prioritize.NewEngine(provider), observers...),
		Summaries: service.NewSummaryService(summarize.New(summarizerOpts), observers...),
		Config:    provider,
	}

	formatter.SetColorEnabled(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

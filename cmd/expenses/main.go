package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"expenses/internal/backend"
	"expenses/internal/config"
	applog "expenses/internal/log"
	"expenses/internal/session"
	"expenses/internal/shell"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger := applog.New(applog.DefaultConfig())
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	logCfg := applog.DefaultConfig()
	logCfg.Level = level
	logCfg.Component = "expenses"
	logger := applog.New(logCfg)
	applog.SetDefault(logger)

	result, err := backend.NewFactory(logger.Logger).Create(backend.Config{
		Type:         backend.Type(cfg.DataBackend),
		FilePath:     cfg.ExpensesFile,
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		logger.Error("Failed to initialize storage backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup failed", "error", err)
			}
		}()
	}

	sess := session.New(result.Repository)
	sh := shell.New(sess, os.Stdin, os.Stdout)
	if err := sh.Run(context.Background()); err != nil {
		logger.Error("Session failed", "error", err)
		os.Exit(1)
	}
}

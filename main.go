// Package main is the entry point for the lensfocus studio manager daemon.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sajibprobook-creator/lensfocus/internal/advisor"
	"github.com/sajibprobook-creator/lensfocus/internal/config"
	"github.com/sajibprobook-creator/lensfocus/internal/database"
	"github.com/sajibprobook-creator/lensfocus/internal/logger"
	"github.com/sajibprobook-creator/lensfocus/internal/prefs"
	"github.com/sajibprobook-creator/lensfocus/internal/session"
	"github.com/sajibprobook-creator/lensfocus/internal/stats"
	"github.com/sajibprobook-creator/lensfocus/internal/store"
	"github.com/sajibprobook-creator/lensfocus/internal/syncer"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("lensfocus %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.SetLevel(cfg.LogLevel)

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Log.Info().Msg("Database initialized successfully")

	userPrefs, err := prefs.Load()
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Failed to load preferences, using defaults")
		userPrefs = prefs.DefaultPrefs()
	}

	if cfg.AdvisorEnabled() {
		if _, err := advisor.NewClient(ctx, cfg.GeminiAPIKey); err != nil {
			logger.Log.Warn().Err(err).Msg("Studio advisor unavailable")
		} else {
			logger.Log.Info().Msg("Studio advisor enabled")
		}
	}

	ctrl := syncer.NewController(store.NewClient(pool))
	manager := session.NewManager(session.NewEnvProvider(), ctrl, cfg.BootTimeout, func() {
		logger.Log.Warn().Msg("Session check is slow, starting without a session")
	})
	defer manager.Close()

	sess := manager.Bootstrap(ctx)
	if sess == nil {
		logger.Log.Info().Msg("No active session, waiting for sign-in")
	} else {
		logSnapshotSummary(ctrl, userPrefs)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Log.Info().Msg("Shutting down...")
}

func logSnapshotSummary(ctrl *syncer.Controller, userPrefs *prefs.Prefs) {
	snap := ctrl.Snapshot()
	summary := stats.MonthlySummary(snap.Transactions, time.Now())

	logger.Log.Info().
		Int("projects", len(snap.Projects)).
		Int("transactions", len(snap.Transactions)).
		Int("active_projects", stats.ActiveProjectCount(snap.Projects)).
		Int("pending_tasks", stats.PendingTaskCount(snap.Tasks)).
		Str("month_income", summary.Income.String()).
		Str("month_expense", summary.Expense.String()).
		Str("currency", userPrefs.Currency).
		Bool("degraded", ctrl.Degraded()).
		Msg("Snapshot ready")
}

// Command worker runs the materialization sweep on its cron schedule
// without serving the API. Useful for deployments that scale the API and
// the sweep independently.
//
// Usage:
//
//	worker
//
// Requires DATABASE_DSN; worker settings come from the WORKER_* environment
// variables or config.yml.
package main

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres"
	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres/event"
	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres/exception"
	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres/instance"
	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres/rule"
	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres/window"
	"github.com/gatherhub/gatherhub-backend/internal/app"
	"github.com/gatherhub/gatherhub-backend/internal/config"
	"github.com/gatherhub/gatherhub-backend/internal/service/materializer"
	"github.com/gatherhub/gatherhub-backend/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	matService := materializer.NewService(
		logger, event.New(pool), rule.New(pool), instance.New(pool),
		exception.New(pool), txm,
		materializer.Config{
			HotWindowMonthsAhead: cfg.Recurrence.HotWindowMonthsAhead,
			MaxInstancesPerRun:   cfg.Recurrence.MaxInstancesPerRun,
		},
	)

	workerCfg := worker.Config{
		Schedule:        cfg.Worker.Schedule,
		LookAheadMonths: cfg.Worker.LookAheadMonths,
		Cooldown:        cfg.Worker.Cooldown,
		BatchSize:       cfg.Worker.BatchSize,
	}
	sweeper := worker.NewSweeper(logger, window.New(pool), rule.New(pool), matService, workerCfg)

	runner := worker.NewRunner(logger, sweeper, workerCfg)
	if err := runner.Start(ctx); err != nil {
		log.Fatalf("start worker: %v", err)
	}

	logger.Info("worker running", slog.String("schedule", workerCfg.Schedule))
	<-ctx.Done()
	runner.Stop()
}

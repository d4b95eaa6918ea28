// Command sweep runs one materialization sweep and exits. Handy for
// backfilling after a deploy or for cron-driven environments that prefer an
// external scheduler over the in-process worker.
//
// Usage:
//
//	sweep
//
// Requires DATABASE_DSN to be set.
package main

import (
	"context"
	"log"
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

	sweeper := worker.NewSweeper(logger, window.New(pool), rule.New(pool), matService, worker.Config{
		LookAheadMonths: cfg.Worker.LookAheadMonths,
		Cooldown:        cfg.Worker.Cooldown,
		BatchSize:       cfg.Worker.BatchSize,
	})

	if err := sweeper.Sweep(ctx); err != nil {
		log.Fatalf("sweep: %v", err)
	}
}

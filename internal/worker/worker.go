// Package worker runs the background materialization sweep: it finds
// organizations whose generation window has fallen behind the rolling
// horizon, extends every series in them, and advances the window. The sweep
// is driven by a cron schedule and is safe to run concurrently with API
// writes; materialization is idempotent.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Config tunes the worker's schedule and sweep shape.
type Config struct {
	// Schedule is a cron expression, e.g. "*/15 * * * *".
	Schedule string
	// LookAheadMonths is the rolling horizon each window is extended to.
	LookAheadMonths int
	// Cooldown is the minimum time between two sweeps of the same
	// organization.
	Cooldown time.Duration
	// BatchSize caps how many organizations one sweep picks up.
	BatchSize int
}

func (c *Config) applyDefaults() {
	if c.Schedule == "" {
		c.Schedule = "*/15 * * * *"
	}
	if c.LookAheadMonths <= 0 {
		c.LookAheadMonths = 12
	}
	if c.Cooldown <= 0 {
		c.Cooldown = time.Hour
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 50
	}
}

// Runner schedules sweeps with cron and executes them through a Sweeper.
type Runner struct {
	log     *slog.Logger
	sweeper *Sweeper
	cfg     Config
	cron    *cron.Cron
}

// NewRunner creates a runner; Start registers the schedule and begins
// running it.
func NewRunner(logger *slog.Logger, sweeper *Sweeper, cfg Config) *Runner {
	cfg.applyDefaults()
	return &Runner{
		log:     logger.With("component", "worker"),
		sweeper: sweeper,
		cfg:     cfg,
	}
}

// Start registers the sweep on the configured schedule and launches the
// cron loop. It returns immediately; jobs run on cron's goroutine.
func (r *Runner) Start(ctx context.Context) error {
	c := cron.New()
	_, err := c.AddFunc(r.cfg.Schedule, func() {
		if err := r.sweeper.Sweep(ctx); err != nil {
			r.log.ErrorContext(ctx, "sweep failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return err
	}
	r.cron = c
	c.Start()
	r.log.InfoContext(ctx, "worker started", slog.String("schedule", r.cfg.Schedule))
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (r *Runner) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
	r.log.Info("worker stopped")
}

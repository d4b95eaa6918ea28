package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Recurrence.validate(); err != nil {
		return fmt.Errorf("recurrence: %w", err)
	}
	if err := c.Worker.validate(); err != nil {
		return fmt.Errorf("worker: %w", err)
	}

	return nil
}

func (c *RecurrenceConfig) validate() error {
	if c.HotWindowMonthsAhead < 1 {
		return fmt.Errorf("hot_window_months_ahead must be >= 1 (got %d)", c.HotWindowMonthsAhead)
	}
	if c.MaxInstancesPerRun < 1 {
		return fmt.Errorf("max_instances_per_run must be >= 1 (got %d)", c.MaxInstancesPerRun)
	}
	return nil
}

func (c *WorkerConfig) validate() error {
	if c.Schedule == "" {
		return fmt.Errorf("schedule must not be empty")
	}
	if c.LookAheadMonths < 1 {
		return fmt.Errorf("look_ahead_months must be >= 1 (got %d)", c.LookAheadMonths)
	}
	if c.Cooldown <= 0 {
		return fmt.Errorf("cooldown must be positive (got %v)", c.Cooldown)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batch_size must be >= 1 (got %d)", c.BatchSize)
	}
	return nil
}

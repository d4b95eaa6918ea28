package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
	"github.com/gatherhub/gatherhub-backend/internal/recurrence"
)

// windowRepo defines the generation window repository interface needed by the sweeper.
type windowRepo interface {
	EnsureDefault(ctx context.Context, orgID uuid.UUID, monthsAhead int, now time.Time) (*domain.GenerationWindow, error)
	ListDue(ctx context.Context, now time.Time, lookAhead, cooldown time.Duration, limit int) ([]*domain.GenerationWindow, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, windowEnd, processedAt time.Time) error
}

// ruleRepo defines the rule repository interface needed by the sweeper.
type ruleRepo interface {
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]*domain.RecurrenceRule, error)
}

// materializer generates the instance rows for one template's window.
type materializer interface {
	MaterializeWindow(ctx context.Context, templateID uuid.UUID, windowStart, windowEnd time.Time) (int, error)
}

// Sweeper finds organizations whose materialization horizon has fallen
// behind and extends every series in them.
type Sweeper struct {
	log     *slog.Logger
	windows windowRepo
	rules   ruleRepo
	mat     materializer
	cfg     Config

	now func() time.Time
}

// NewSweeper creates a sweeper.
func NewSweeper(logger *slog.Logger, windows windowRepo, rules ruleRepo, mat materializer, cfg Config) *Sweeper {
	cfg.applyDefaults()
	return &Sweeper{
		log:     logger.With("component", "sweeper"),
		windows: windows,
		rules:   rules,
		mat:     mat,
		cfg:     cfg,
		now:     time.Now,
	}
}

// EnsureOrganization makes sure the organization has a generation window,
// creating the default one if missing. Called when an organization gets its
// first recurring series.
func (s *Sweeper) EnsureOrganization(ctx context.Context, orgID uuid.UUID) (*domain.GenerationWindow, error) {
	return s.windows.EnsureDefault(ctx, orgID, s.cfg.LookAheadMonths, s.now().UTC())
}

// Sweep runs one pass: pick due windows in priority order and extend each
// organization's series to the rolling horizon. A failing series does not
// stop the others; an organization with any failure keeps its old horizon
// so the next sweep retries it, but its cooldown still advances.
func (s *Sweeper) Sweep(ctx context.Context) error {
	now := s.now().UTC()
	horizon := now.AddDate(0, s.cfg.LookAheadMonths, 0)

	due, err := s.windows.ListDue(ctx, now, horizon.Sub(now), s.cfg.Cooldown, s.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("list due windows: %w", err)
	}
	if len(due) == 0 {
		return nil
	}

	s.log.InfoContext(ctx, "sweep started",
		slog.Int("due_organizations", len(due)),
		slog.Time("horizon", horizon),
	)

	for _, w := range due {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.sweepOrganization(ctx, w, now, horizon)
	}
	return nil
}

func (s *Sweeper) sweepOrganization(ctx context.Context, w *domain.GenerationWindow, now, horizon time.Time) {
	rules, err := s.rules.ListByOrganization(ctx, w.OrganizationID)
	if err != nil {
		s.log.ErrorContext(ctx, "list organization rules failed",
			slog.String("organization_id", w.OrganizationID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	// Extend from where the window stopped; the unique constraint makes
	// re-covering already-generated ground a no-op.
	from := w.CurrentWindowEndDate
	if from.Before(now) {
		// A long-stale window does not retro-generate the past.
		from = now
	}

	estimated := estimateWorkload(rules, from, horizon)
	s.log.DebugContext(ctx, "sweeping organization",
		slog.String("organization_id", w.OrganizationID.String()),
		slog.Int("series", len(rules)),
		slog.Int("estimated_instances", estimated),
		slog.Int("priority", w.ProcessingPriority),
	)

	failed := 0
	inserted := 0
	for _, rule := range rules {
		n, err := s.mat.MaterializeWindow(ctx, rule.BaseRecurringEventID, from, horizon)
		if err != nil {
			failed++
			s.log.ErrorContext(ctx, "series materialization failed",
				slog.String("template_id", rule.BaseRecurringEventID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		inserted += n
	}

	newEnd := horizon
	if failed > 0 {
		newEnd = w.CurrentWindowEndDate
	}
	if err := s.windows.MarkProcessed(ctx, w.ID, newEnd, now); err != nil {
		s.log.ErrorContext(ctx, "mark window processed failed",
			slog.String("organization_id", w.OrganizationID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	s.log.InfoContext(ctx, "organization swept",
		slog.String("organization_id", w.OrganizationID.String()),
		slog.Int("inserted", inserted),
		slog.Int("failed_series", failed),
	)
}

// estimateWorkload approximates how many instances the sweep will touch,
// for logging and capacity inspection.
func estimateWorkload(rules []*domain.RecurrenceRule, from, to time.Time) int {
	total := 0
	for _, rule := range rules {
		total += recurrence.EstimateCount(rule, from, to)
	}
	return total
}

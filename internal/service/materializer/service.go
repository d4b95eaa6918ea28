// Package materializer turns recurrence rules into persisted instance rows.
// Materialization is idempotent: runs may overlap in time or in windows and
// every occurrence still lands exactly once.
package materializer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// eventRepo defines the event repository interface needed by the materializer.
type eventRepo interface {
	GetTemplate(ctx context.Context, id uuid.UUID) (*domain.Event, error)
}

// ruleRepo defines the rule repository interface needed by the materializer.
type ruleRepo interface {
	GetByTemplateID(ctx context.Context, templateID uuid.UUID) (*domain.RecurrenceRule, error)
	AdvanceWatermark(ctx context.Context, id uuid.UUID, ts time.Time) error
}

// instanceRepo defines the instance repository interface needed by the materializer.
type instanceRepo interface {
	ListOriginalStarts(ctx context.Context, templateID uuid.UUID, from, to time.Time) ([]time.Time, error)
	CreateBatch(ctx context.Context, instances []*domain.EventInstance) (int64, error)
}

// exceptionRepo defines the exception repository interface needed by the materializer.
type exceptionRepo interface {
	ListByTemplates(ctx context.Context, templateIDs []uuid.UUID) (map[string]*domain.EventException, error)
}

// txManager defines the transaction manager interface needed by the materializer.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config tunes the materializer's windows and batch sizes.
type Config struct {
	// HotWindowMonthsAhead is the default rolling horizon.
	HotWindowMonthsAhead int
	// MaxInstancesPerRun caps how many instances one run may insert.
	MaxInstancesPerRun int
}

// Service generates event instances from recurrence rules.
type Service struct {
	log        *slog.Logger
	events     eventRepo
	rules      ruleRepo
	instances  instanceRepo
	exceptions exceptionRepo
	tx         txManager
	cfg        Config
}

// NewService creates a new materializer service.
func NewService(
	logger *slog.Logger,
	events eventRepo,
	rules ruleRepo,
	instances instanceRepo,
	exceptions exceptionRepo,
	tx txManager,
	cfg Config,
) *Service {
	if cfg.HotWindowMonthsAhead <= 0 {
		cfg.HotWindowMonthsAhead = 12
	}
	if cfg.MaxInstancesPerRun <= 0 {
		cfg.MaxInstancesPerRun = 1000
	}
	return &Service{
		log:        logger.With("service", "materializer"),
		events:     events,
		rules:      rules,
		instances:  instances,
		exceptions: exceptions,
		tx:         tx,
		cfg:        cfg,
	}
}

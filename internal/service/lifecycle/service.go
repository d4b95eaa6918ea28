// Package lifecycle implements the write paths of a recurring series:
// converting a standalone event into a series, editing or cancelling single
// occurrences, splitting a series at an occurrence, truncating it, and
// tearing it down. Every multi-table write runs in one transaction with
// explicit dependency-ordered deletes; nothing relies on database cascades.
package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// eventRepo defines the event repository interface needed by the lifecycle service.
type eventRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	GetTemplate(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	Create(ctx context.Context, ev *domain.Event) error
	Update(ctx context.Context, ev *domain.Event) error
	MarkTemplate(ctx context.Context, id uuid.UUID, updaterID uuid.UUID) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// ruleRepo defines the rule repository interface needed by the lifecycle service.
type ruleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RecurrenceRule, error)
	GetByTemplateID(ctx context.Context, templateID uuid.UUID) (*domain.RecurrenceRule, error)
	ListBySeries(ctx context.Context, seriesID uuid.UUID) ([]*domain.RecurrenceRule, error)
	Create(ctx context.Context, rule *domain.RecurrenceRule) error
	SetEndDate(ctx context.Context, id uuid.UUID, end time.Time, updaterID uuid.UUID) error
	DeleteBySeries(ctx context.Context, seriesID uuid.UUID) (int64, error)
}

// instanceRepo defines the instance repository interface needed by the lifecycle service.
type instanceRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.EventInstance, error)
	UpdateActual(ctx context.Context, id uuid.UUID, start, end time.Time, cancelled bool) error
	DeleteBySeriesFrom(ctx context.Context, seriesID uuid.UUID, cut time.Time) (int64, error)
	DeleteBySeries(ctx context.Context, seriesID uuid.UUID) (int64, error)
}

// exceptionRepo defines the exception repository interface needed by the lifecycle service.
type exceptionRepo interface {
	Upsert(ctx context.Context, templateID uuid.UUID, instanceStart time.Time, orgID uuid.UUID, data domain.ExceptionData, creatorID uuid.UUID) (*domain.EventException, error)
	DeleteForTemplatesFrom(ctx context.Context, templateIDs []uuid.UUID, cut time.Time) (int64, error)
	DeleteByTemplates(ctx context.Context, templateIDs []uuid.UUID) (int64, error)
}

// actionItemRepo defines the action item repository interface needed by the lifecycle service.
type actionItemRepo interface {
	DeleteByInstancesOfSeries(ctx context.Context, seriesID uuid.UUID) (int64, error)
	DeleteByInstancesOfSeriesFrom(ctx context.Context, seriesID uuid.UUID, cut time.Time) (int64, error)
	DeleteByEvents(ctx context.Context, eventIDs []uuid.UUID) (int64, error)
}

// volunteerRepo defines the volunteer repository interface needed by the lifecycle service.
type volunteerRepo interface {
	DeleteByInstancesOfSeries(ctx context.Context, seriesID uuid.UUID) (int64, error)
	DeleteByInstancesOfSeriesFrom(ctx context.Context, seriesID uuid.UUID, cut time.Time) (int64, error)
	DeleteByEvents(ctx context.Context, eventIDs []uuid.UUID) (int64, error)
}

// attachmentRepo defines the attachment repository interface needed by the lifecycle service.
type attachmentRepo interface {
	DeleteByEvents(ctx context.Context, eventIDs []uuid.UUID) (int64, error)
}

// materializer populates instance rows for a template. Lifecycle calls it
// outside its own transactions; a failed run is retried by the background
// worker, so eager materialization is best-effort.
type materializer interface {
	MaterializeDefaultWindow(ctx context.Context, templateID uuid.UUID) (int, error)
}

// txManager defines the transaction manager interface needed by the lifecycle service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DeletedSummary reports how many rows a truncation or series delete removed,
// per table.
type DeletedSummary struct {
	Instances   int64
	Exceptions  int64
	ActionItems int64
	Volunteers  int64
	Rules       int64
	Templates   int64
}

// Service manages the write side of recurring series.
type Service struct {
	log         *slog.Logger
	events      eventRepo
	rules       ruleRepo
	instances   instanceRepo
	exceptions  exceptionRepo
	actionItems actionItemRepo
	volunteers  volunteerRepo
	attachments attachmentRepo
	mat         materializer
	tx          txManager
}

// NewService creates a new lifecycle service.
func NewService(
	logger *slog.Logger,
	events eventRepo,
	rules ruleRepo,
	instances instanceRepo,
	exceptions exceptionRepo,
	actionItems actionItemRepo,
	volunteers volunteerRepo,
	attachments attachmentRepo,
	mat materializer,
	tx txManager,
) *Service {
	return &Service{
		log:         logger.With("service", "lifecycle"),
		events:      events,
		rules:       rules,
		instances:   instances,
		exceptions:  exceptions,
		actionItems: actionItems,
		volunteers:  volunteers,
		attachments: attachments,
		mat:         mat,
		tx:          tx,
	}
}

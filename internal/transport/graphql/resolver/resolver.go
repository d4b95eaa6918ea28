package resolver

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
	"github.com/gatherhub/gatherhub-backend/internal/recurrence"
	"github.com/gatherhub/gatherhub-backend/internal/service/lifecycle"
	"github.com/gatherhub/gatherhub-backend/internal/service/resolution"
)

// lifecycleService defines what the resolver needs from the Lifecycle service.
type lifecycleService interface {
	ConvertToRecurring(ctx context.Context, eventID uuid.UUID, spec recurrence.Spec, actorID uuid.UUID) (*domain.Event, *domain.RecurrenceRule, error)
	UpdateSingleOccurrence(ctx context.Context, instanceID uuid.UUID, patch domain.EventPatch, actorID uuid.UUID) (*domain.EventException, error)
	CancelOccurrence(ctx context.Context, instanceID uuid.UUID, actorID uuid.UUID) (*domain.EventException, error)
	UpdateThisAndFollowing(ctx context.Context, instanceID uuid.UUID, patch domain.EventPatch, newSpec *recurrence.Spec, actorID uuid.UUID) (*domain.Event, *domain.RecurrenceRule, error)
	TruncateAtInstance(ctx context.Context, instanceID uuid.UUID, actorID uuid.UUID) (lifecycle.DeletedSummary, error)
	DeleteSeries(ctx context.Context, templateID uuid.UUID, actorID uuid.UUID) (lifecycle.DeletedSummary, error)
	DeleteStandalone(ctx context.Context, eventID uuid.UUID) error
}

// resolutionService defines what the resolver needs from the Resolution service.
type resolutionService interface {
	ResolveByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.ResolvedInstance, error)
	ResolveRange(ctx context.Context, orgID uuid.UUID, from, to time.Time, opts resolution.RangeOptions) ([]*domain.ResolvedInstance, error)
	ResolveByTemplateIDs(ctx context.Context, templateIDs []uuid.UUID, includeCancelled bool) (map[uuid.UUID][]*domain.ResolvedInstance, error)
}

// participationService defines what the resolver needs from the Participation service.
type participationService interface {
	ResolveUserCommitments(ctx context.Context, userID uuid.UUID) ([]*domain.ResolvedEvent, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	lifecycle     lifecycleService
	resolution    resolutionService
	participation participationService
	log           *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	lifecycle lifecycleService,
	resolution resolutionService,
	participation participationService,
) *Resolver {
	return &Resolver{
		lifecycle:     lifecycle,
		resolution:    resolution,
		participation: participation,
		log:           log.With("component", "graphql"),
	}
}

type queryResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type eventResolver struct{ *Resolver }
type resolvedInstanceResolver struct{ *Resolver }

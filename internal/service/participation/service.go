// Package participation interprets volunteer bindings. A binding targets one
// specific occurrence, a whole series, or a standalone event; this service
// turns whichever it is into concrete resolved events a schedule can show.
package participation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// eventRepo defines the event repository interface needed by the participation service.
type eventRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Event, error)
}

// volunteerRepo defines the volunteer repository interface needed by the participation service.
type volunteerRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.VolunteerBinding, error)
}

// instanceResolver resolves materialized occurrences into their displayable
// form, bearing exceptions.
type instanceResolver interface {
	ResolveByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.ResolvedInstance, error)
	ResolveByTemplateIDs(ctx context.Context, templateIDs []uuid.UUID, includeCancelled bool) (map[uuid.UUID][]*domain.ResolvedInstance, error)
}

// Service resolves volunteer bindings to events.
type Service struct {
	log        *slog.Logger
	events     eventRepo
	volunteers volunteerRepo
	resolver   instanceResolver
}

// NewService creates a new participation service.
func NewService(logger *slog.Logger, events eventRepo, volunteers volunteerRepo, resolver instanceResolver) *Service {
	return &Service{
		log:        logger.With("service", "participation"),
		events:     events,
		volunteers: volunteers,
		resolver:   resolver,
	}
}

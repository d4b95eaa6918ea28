package resolver

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
	"github.com/gatherhub/gatherhub-backend/internal/service/resolution"
	"github.com/gatherhub/gatherhub-backend/internal/transport/graphql/dataloader"
)

func (r *queryResolver) ResolvedInstances(ctx context.Context, from, to time.Time, includeCancelled bool, templateIDs []uuid.UUID, limit, offset int) ([]*domain.ResolvedInstance, error) {
	org, err := orgID(ctx)
	if err != nil {
		return nil, err
	}

	return r.resolution.ResolveRange(ctx, org, from, to, resolution.RangeOptions{
		IncludeCancelled: includeCancelled,
		TemplateIDs:      templateIDs,
		Limit:            uint64(limit),
		Offset:           uint64(offset),
	})
}

func (r *queryResolver) Instance(ctx context.Context, id uuid.UUID) (*domain.ResolvedInstance, error) {
	if _, err := actorID(ctx); err != nil {
		return nil, err
	}

	resolved, err := r.resolution.ResolveByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	return resolved[0], nil
}

func (r *queryResolver) SeriesOccurrences(ctx context.Context, templateID uuid.UUID, includeCancelled bool) ([]*domain.ResolvedInstance, error) {
	if _, err := actorID(ctx); err != nil {
		return nil, err
	}

	grouped, err := r.resolution.ResolveByTemplateIDs(ctx, []uuid.UUID{templateID}, includeCancelled)
	if err != nil {
		return nil, err
	}
	return grouped[templateID], nil
}

func (r *queryResolver) MyCommitments(ctx context.Context) ([]*domain.ResolvedEvent, error) {
	actor, err := actorID(ctx)
	if err != nil {
		return nil, err
	}
	return r.participation.ResolveUserCommitments(ctx, actor)
}

// Field resolvers below batch through per-request dataloaders.

func (r *resolvedInstanceResolver) ActionItems(ctx context.Context, obj *domain.ResolvedInstance) ([]*domain.ActionItem, error) {
	return dataloader.FromContext(ctx).ActionItemsByInstanceID.Load(ctx, obj.ID)()
}

func (r *resolvedInstanceResolver) Volunteers(ctx context.Context, obj *domain.ResolvedInstance) ([]*domain.VolunteerBinding, error) {
	return dataloader.FromContext(ctx).VolunteersByInstanceID.Load(ctx, obj.ID)()
}

func (r *eventResolver) ActionItems(ctx context.Context, obj *domain.Event) ([]*domain.ActionItem, error) {
	return dataloader.FromContext(ctx).ActionItemsByEventID.Load(ctx, obj.ID)()
}

func (r *eventResolver) Volunteers(ctx context.Context, obj *domain.Event) ([]*domain.VolunteerBinding, error) {
	return dataloader.FromContext(ctx).VolunteersByEventID.Load(ctx, obj.ID)()
}

func (r *eventResolver) Occurrences(ctx context.Context, obj *domain.Event) ([]*domain.ResolvedInstance, error) {
	if !obj.IsRecurringTemplate {
		return []*domain.ResolvedInstance{}, nil
	}
	return dataloader.FromContext(ctx).ResolvedInstancesByTemplateID.Load(ctx, obj.ID)()
}

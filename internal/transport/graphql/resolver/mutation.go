package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
	"github.com/gatherhub/gatherhub-backend/internal/recurrence"
	"github.com/gatherhub/gatherhub-backend/internal/service/lifecycle"
	"github.com/gatherhub/gatherhub-backend/internal/transport/graphql/model"
	"github.com/gatherhub/gatherhub-backend/internal/transport/middleware"
)

func (r *mutationResolver) ConvertToRecurring(ctx context.Context, eventID uuid.UUID, spec model.RecurrenceSpecInput) (*model.SeriesPayload, error) {
	actor, err := actorID(ctx)
	if err != nil {
		return nil, err
	}

	template, rule, err := r.lifecycle.ConvertToRecurring(ctx, eventID, spec.ToSpec(), actor)
	if err != nil {
		return nil, err
	}
	return &model.SeriesPayload{Template: template, Rule: rule}, nil
}

func (r *mutationResolver) UpdateOccurrence(ctx context.Context, instanceID uuid.UUID, patch model.EventPatchInput) (*domain.EventException, error) {
	actor, err := actorID(ctx)
	if err != nil {
		return nil, err
	}
	return r.lifecycle.UpdateSingleOccurrence(ctx, instanceID, patch.ToPatch(), actor)
}

func (r *mutationResolver) CancelOccurrence(ctx context.Context, instanceID uuid.UUID) (*domain.EventException, error) {
	actor, err := actorID(ctx)
	if err != nil {
		return nil, err
	}
	return r.lifecycle.CancelOccurrence(ctx, instanceID, actor)
}

func (r *mutationResolver) UpdateThisAndFollowing(ctx context.Context, instanceID uuid.UUID, patch *model.EventPatchInput, spec *model.RecurrenceSpecInput) (*model.SeriesPayload, error) {
	actor, err := actorID(ctx)
	if err != nil {
		return nil, err
	}

	var domainPatch domain.EventPatch
	if patch != nil {
		domainPatch = patch.ToPatch()
	}
	var newSpec *recurrence.Spec
	if spec != nil {
		s := spec.ToSpec()
		newSpec = &s
	}

	template, rule, err := r.lifecycle.UpdateThisAndFollowing(ctx, instanceID, domainPatch, newSpec, actor)
	if err != nil {
		return nil, err
	}
	return &model.SeriesPayload{Template: template, Rule: rule}, nil
}

func (r *mutationResolver) TruncateSeriesAt(ctx context.Context, instanceID uuid.UUID) (*model.DeleteSummary, error) {
	actor, err := actorID(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := r.lifecycle.TruncateAtInstance(ctx, instanceID, actor)
	if err != nil {
		return nil, err
	}
	return toDeleteSummary(summary), nil
}

func (r *mutationResolver) DeleteSeries(ctx context.Context, templateID uuid.UUID) (*model.DeleteSummary, error) {
	actor, err := actorID(ctx)
	if err != nil {
		return nil, err
	}
	// Dropping a whole series is admin-only; the engine itself does not
	// check roles.
	if err := middleware.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	summary, err := r.lifecycle.DeleteSeries(ctx, templateID, actor)
	if err != nil {
		return nil, err
	}
	return toDeleteSummary(summary), nil
}

func (r *mutationResolver) DeleteEvent(ctx context.Context, eventID uuid.UUID) (bool, error) {
	if _, err := actorID(ctx); err != nil {
		return false, err
	}

	if err := r.lifecycle.DeleteStandalone(ctx, eventID); err != nil {
		return false, err
	}
	return true, nil
}

func toDeleteSummary(s lifecycle.DeletedSummary) *model.DeleteSummary {
	return &model.DeleteSummary{
		Instances:   int(s.Instances),
		Exceptions:  int(s.Exceptions),
		ActionItems: int(s.ActionItems),
		Volunteers:  int(s.Volunteers),
		Rules:       int(s.Rules),
		Templates:   int(s.Templates),
	}
}

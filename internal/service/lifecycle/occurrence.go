package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// UpdateSingleOccurrence stores a sparse override for one occurrence.
// Repeated edits merge field by field: a later edit only replaces the fields
// it actually sets. When the override moves the occurrence or cancels it,
// the instance row's actual times and cancellation flag are updated in the
// same transaction so range queries stay accurate without reading the
// overlay.
func (s *Service) UpdateSingleOccurrence(ctx context.Context, instanceID uuid.UUID, patch domain.EventPatch, actorID uuid.UUID) (*domain.EventException, error) {
	if patch.IsZero() {
		return nil, domain.NewValidationError("patch", "At least one field must be updated")
	}

	inst, err := s.instances.GetByID(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("load instance: %w", err)
	}

	data := domain.ExceptionData{
		Name:           patch.Name,
		Description:    patch.Description,
		Location:       patch.Location,
		StartAt:        patch.StartAt,
		EndAt:          patch.EndAt,
		AllDay:         patch.AllDay,
		IsPublic:       patch.IsPublic,
		IsRegisterable: patch.IsRegisterable,
	}
	return s.writeException(ctx, inst, data, actorID)
}

// CancelOccurrence cancels one occurrence of a series. The cancellation is
// an exception like any other override, so regenerating the window keeps
// the occurrence cancelled.
func (s *Service) CancelOccurrence(ctx context.Context, instanceID uuid.UUID, actorID uuid.UUID) (*domain.EventException, error) {
	inst, err := s.instances.GetByID(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("load instance: %w", err)
	}
	if inst.IsCancelled {
		return nil, fmt.Errorf("instance %s is already cancelled: %w", instanceID, domain.ErrConflict)
	}

	cancelled := true
	return s.writeException(ctx, inst, domain.ExceptionData{IsCancelled: &cancelled}, actorID)
}

// writeException upserts the occurrence's exception and syncs the instance
// row when the merged override touches schedule or cancellation. The merged
// data is used, not the incoming patch: an earlier edit's moved time must
// survive a later content-only edit.
func (s *Service) writeException(ctx context.Context, inst *domain.EventInstance, data domain.ExceptionData, actorID uuid.UUID) (*domain.EventException, error) {
	var exc *domain.EventException
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		exc, err = s.exceptions.Upsert(txCtx, inst.BaseRecurringEventID, inst.OriginalInstanceStartTime, inst.OrganizationID, data, actorID)
		if err != nil {
			return fmt.Errorf("upsert exception: %w", err)
		}

		merged := exc.Data
		if merged.StartAt == nil && merged.EndAt == nil && merged.IsCancelled == nil {
			return nil
		}

		start := inst.ActualStartTime
		end := inst.ActualEndTime
		cancelled := inst.IsCancelled
		if merged.StartAt != nil {
			start = merged.StartAt.UTC()
		}
		if merged.EndAt != nil {
			end = merged.EndAt.UTC()
		}
		if merged.IsCancelled != nil {
			cancelled = *merged.IsCancelled
		}

		if err := s.instances.UpdateActual(txCtx, inst.ID, start, end, cancelled); err != nil {
			return fmt.Errorf("sync instance row: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "occurrence exception written",
		slog.String("template_id", inst.BaseRecurringEventID.String()),
		slog.String("instance_id", inst.ID.String()),
		slog.Time("original_start", inst.OriginalInstanceStartTime),
	)
	return exc, nil
}

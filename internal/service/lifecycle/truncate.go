package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gatherhub/gatherhub-backend/internal/domain"
)

// TruncateAtInstance ends a series just before the given occurrence: every
// rule in the series whose range reaches the cut (the target's own and any
// fork whose schedule runs on) is shortened to a millisecond before the
// occurrence's original start, and every row at or after that start is
// removed across the whole series. Leaving a fork rule open would let the
// next materialization sweep regenerate the rows this operation deletes.
// The occurrence's original position defines the cut even if an exception
// moved its actual time.
func (s *Service) TruncateAtInstance(ctx context.Context, instanceID uuid.UUID, actorID uuid.UUID) (DeletedSummary, error) {
	var summary DeletedSummary

	inst, err := s.instances.GetByID(ctx, instanceID)
	if err != nil {
		return summary, fmt.Errorf("load instance: %w", err)
	}
	if inst.IsCancelled {
		return summary, domain.NewValidationError("instanceId", "Cannot truncate a series at a cancelled occurrence")
	}

	cut := inst.OriginalInstanceStartTime
	end := cut.Add(-time.Millisecond)

	rules, err := s.rules.ListBySeries(ctx, inst.OriginalSeriesID)
	if err != nil {
		return summary, fmt.Errorf("list series rules: %w", err)
	}
	templateIDs := make([]uuid.UUID, 0, len(rules))
	for _, r := range rules {
		templateIDs = append(templateIDs, r.BaseRecurringEventID)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, r := range rules {
			if r.RecurrenceEndDate != nil && r.RecurrenceEndDate.Before(cut) {
				continue
			}
			if err := s.rules.SetEndDate(txCtx, r.ID, end, actorID); err != nil {
				return fmt.Errorf("shorten rule: %w", err)
			}
		}

		// Dependents first, then the instances they point at.
		if summary.ActionItems, err = s.actionItems.DeleteByInstancesOfSeriesFrom(txCtx, inst.OriginalSeriesID, cut); err != nil {
			return fmt.Errorf("delete action items: %w", err)
		}
		if summary.Volunteers, err = s.volunteers.DeleteByInstancesOfSeriesFrom(txCtx, inst.OriginalSeriesID, cut); err != nil {
			return fmt.Errorf("delete volunteer bindings: %w", err)
		}
		if summary.Exceptions, err = s.exceptions.DeleteForTemplatesFrom(txCtx, templateIDs, cut); err != nil {
			return fmt.Errorf("delete exceptions: %w", err)
		}
		if summary.Instances, err = s.instances.DeleteBySeriesFrom(txCtx, inst.OriginalSeriesID, cut); err != nil {
			return fmt.Errorf("delete instances: %w", err)
		}
		return nil
	})
	if err != nil {
		return DeletedSummary{}, err
	}

	s.log.InfoContext(ctx, "series truncated",
		slog.String("series_id", inst.OriginalSeriesID.String()),
		slog.String("instance_id", instanceID.String()),
		slog.Time("cut", cut),
		slog.Int64("instances_deleted", summary.Instances),
	)
	return summary, nil
}

// seriesTemplateIDs collects the template ids of every rule sharing a
// series, the original plus any forks from this-and-following splits.
func (s *Service) seriesTemplateIDs(ctx context.Context, seriesID uuid.UUID) ([]uuid.UUID, error) {
	rules, err := s.rules.ListBySeries(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("list series rules: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(rules))
	for _, r := range rules {
		ids = append(ids, r.BaseRecurringEventID)
	}
	return ids, nil
}
